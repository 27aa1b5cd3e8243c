package archive

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteArchive_RecordAndBest(t *testing.T) {
	a, err := OpenSQLite(filepath.Join(t.TempDir(), "runs", "archive.db"))
	require.NoError(t, err)
	defer a.Close()

	ctx := context.Background()
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	runs := []Run{
		{Seed: 1, Committee: []int{3, 1}, Plan: "LR", Stop: "budget", ElapsedMs: 12, Mean: 4.5, StdDev: 1, CreatedAt: at},
		{Seed: 18446744073709551615, Committee: []int{0}, Plan: "UUD", Stop: "deadline", ElapsedMs: 30, Mean: 7.25, CreatedAt: at},
		{Seed: 3, Committee: []int{2}, Plan: "", Stop: "exhausted", Mean: 0.5, CreatedAt: at},
	}
	for _, r := range runs {
		id, err := a.Record(ctx, r)
		require.NoError(t, err)
		assert.Positive(t, id)
	}

	best, err := a.Best(ctx, 2)
	require.NoError(t, err)
	require.Len(t, best, 2)
	assert.Equal(t, uint64(18446744073709551615), best[0].Seed)
	assert.Equal(t, []int{0}, best[0].Committee)
	assert.Equal(t, "UUD", best[0].Plan)
	assert.Equal(t, "deadline", best[0].Stop)
	assert.True(t, at.Equal(best[0].CreatedAt))
	assert.Equal(t, uint64(1), best[1].Seed)
	assert.Equal(t, 4.5, best[1].Mean)
}

func TestOpenSQLite_EmptyPath(t *testing.T) {
	_, err := OpenSQLite("")
	assert.Error(t, err)
}
