package grid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMap(t *testing.T, rows ...string) *Map {
	t.Helper()
	m, err := NewMap(rows)
	require.NoError(t, err)
	return m
}

func TestNewMap_Errors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want error
	}{
		{name: "empty", rows: nil, want: ErrEmptyMap},
		{name: "ragged", rows: []string{"###", "##"}, want: ErrRaggedMap},
		{name: "bad symbol", rows: []string{"#?#"}, want: ErrUnknownCell},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewMap(tc.rows)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestMap_AtOffGridIsWall(t *testing.T) {
	m := mustMap(t, "o@o")
	assert.Equal(t, Open, m.At(Pos{0, 0}))
	assert.Equal(t, Wall, m.At(Pos{0, -1}))
	assert.Equal(t, Wall, m.At(Pos{-1, 1}))
	assert.Equal(t, Wall, m.At(Pos{0, 3}))
	assert.False(t, m.Walled())
	assert.Equal(t, "o@o", m.String())
}

func TestNewState(t *testing.T) {
	m := mustMap(t,
		"#####",
		"#oo@#",
		"#####",
	)
	s, err := NewState(7, m, 10)
	require.NoError(t, err)
	assert.Equal(t, 7, s.ID)
	assert.Equal(t, Pos{1, 3}, s.Pos)
	assert.Equal(t, 0, s.Turn)
	assert.Equal(t, 0, s.Score)
	assert.False(t, s.Terminated)
	assert.Equal(t, 1, s.VisitedCount())
	assert.True(t, s.Seen(m, Pos{1, 3}))
	assert.True(t, m.Walled())
}

func TestNewState_NoStart(t *testing.T) {
	m := mustMap(t, "###", "#o#", "###")
	_, err := NewState(3, m, 10)
	var mal *MalformedMapError
	require.True(t, errors.As(err, &mal))
	assert.Equal(t, 3, mal.World)
}

func TestAdvance(t *testing.T) {
	m := mustMap(t,
		"#####",
		"#x@o#",
		"##o##",
		"#####",
	)

	t.Run("wall keeps position", func(t *testing.T) {
		s, err := NewState(0, m, 10)
		require.NoError(t, err)
		s.Advance(m, Up)
		assert.Equal(t, Pos{1, 2}, s.Pos)
		assert.Equal(t, 1, s.Turn)
		assert.Equal(t, 0, s.Score)
	})

	t.Run("new cell scores once", func(t *testing.T) {
		s, err := NewState(0, m, 10)
		require.NoError(t, err)
		s.Advance(m, Right)
		assert.Equal(t, 1, s.Score)
		s.Advance(m, Left)
		s.Advance(m, Right)
		assert.Equal(t, 1, s.Score)
		assert.Equal(t, 3, s.Turn)
		assert.Equal(t, Pos{1, 3}, s.Pos)
	})

	t.Run("trap terminates", func(t *testing.T) {
		s, err := NewState(0, m, 10)
		require.NoError(t, err)
		s.Advance(m, Left)
		assert.True(t, s.Terminated)
		assert.True(t, s.IsDone())
		assert.Equal(t, 10, s.Turn)
		assert.Equal(t, Pos{1, 1}, s.Pos)
		assert.Equal(t, 0, s.Score)

		before := s.Clone()
		for _, d := range Directions {
			s.Advance(m, d)
		}
		assert.Equal(t, before, s)
	})

	t.Run("budget ends world", func(t *testing.T) {
		s, err := NewState(0, m, 2)
		require.NoError(t, err)
		s.Advance(m, Down)
		s.Advance(m, Up)
		require.True(t, s.IsDone())
		s.Advance(m, Right)
		assert.Equal(t, Pos{1, 2}, s.Pos)
		assert.Equal(t, 1, s.Score)
	})
}

func TestScoreMatchesVisited(t *testing.T) {
	m := mustMap(t,
		"######",
		"#oooo#",
		"#o@#o#",
		"#oooo#",
		"######",
	)
	s, err := NewState(0, m, 100)
	require.NoError(t, err)
	moves, err := ParsePlan("LURRRDDLLLUURDDD")
	require.NoError(t, err)
	for _, d := range moves {
		s.Advance(m, d)
		assert.Equal(t, s.VisitedCount()-1, s.Score)
	}
	assert.Equal(t, len(moves), s.Turn)
}

func TestClone_Independent(t *testing.T) {
	m := mustMap(t, "####", "#@o#", "####")
	s, err := NewState(0, m, 5)
	require.NoError(t, err)
	c := s.Clone()
	c.Advance(m, Right)
	assert.Equal(t, 1, c.Score)
	assert.Equal(t, 0, s.Score)
	assert.False(t, s.Seen(m, Pos{1, 2}))
}

func TestParsePlan(t *testing.T) {
	moves, err := ParsePlan("LRUD")
	require.NoError(t, err)
	assert.Equal(t, []Direction{Left, Right, Up, Down}, moves)
	assert.Equal(t, "LRUD", FormatPlan(moves))

	_, err = ParsePlan("LX")
	assert.Error(t, err)
}
