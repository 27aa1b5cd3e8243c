package mapio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridplan/internal/config"
	"gridplan/internal/util"
)

const sample = `2 1 3 4 10
####
#@o#
####

####
#x@#
####
`

func TestRead_Plain(t *testing.T) {
	pool, err := Read(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, config.Problem{Worlds: 2, Committee: 1, Rows: 3, Cols: 4, Turns: 10}, pool.Problem)
	require.Len(t, pool.Maps, 2)
	assert.Equal(t, "####\n#x@#\n####", pool.Maps[1].String())
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"short header", "1 1 3 4\n"},
		{"bad number", "1 1 3 four 10\n"},
		{"bad dimensions", "1 2 3 4 10\n"},
		{"truncated", "1 1 3 4 10\n####\n#@o#\n"},
		{"wrong width", "1 1 3 4 10\n####\n#@o##\n####\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tc.input))
			assert.ErrorIs(t, err, ErrBadInput)
		})
	}

	_, err := Read(strings.NewReader("1 1 3 4 10\n####\n#@?#\n####\n"))
	assert.Error(t, err)
}

func TestWrite_RoundTripCompressed(t *testing.T) {
	p := config.Problem{Worlds: 5, Committee: 2, Rows: 8, Cols: 9, Turns: 40}
	pool, err := Generate(util.NewRng(3), p, GenOptions{WallRate: 0.15, TrapRate: 0.05})
	require.NoError(t, err)

	var plain, packed bytes.Buffer
	require.NoError(t, Write(&plain, pool))
	require.NoError(t, WriteCompressed(&packed, pool))
	assert.NotEqual(t, plain.Bytes(), packed.Bytes())

	got, err := Read(&packed)
	require.NoError(t, err)
	assert.Equal(t, pool.Problem, got.Problem)
	require.Len(t, got.Maps, len(pool.Maps))
	for i := range pool.Maps {
		assert.Equal(t, pool.Maps[i].String(), got.Maps[i].String())
	}
}

func TestGenerate(t *testing.T) {
	p := config.Problem{Worlds: 4, Committee: 2, Rows: 6, Cols: 7, Turns: 20}
	a, err := Generate(util.NewRng(9), p, GenOptions{TrapRate: 0.1})
	require.NoError(t, err)
	b, err := Generate(util.NewRng(9), p, GenOptions{TrapRate: 0.1})
	require.NoError(t, err)
	for i, m := range a.Maps {
		assert.True(t, m.Walled())
		_, ok := m.Start()
		assert.True(t, ok)
		assert.Equal(t, m.String(), b.Maps[i].String())
	}

	_, err = Generate(util.NewRng(1), config.Problem{Worlds: 1, Committee: 1, Rows: 2, Cols: 2, Turns: 1}, GenOptions{})
	assert.ErrorIs(t, err, ErrBadInput)
}

func TestWritePlan(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePlan(&buf, []int{4, 0, 17}, "LLRUD"))
	assert.Equal(t, "4 0 17\nLLRUD\n", buf.String())
}
