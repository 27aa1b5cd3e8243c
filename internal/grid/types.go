package grid

import (
	"errors"
	"fmt"
	"strings"
)

type Cell uint8

const (
	Wall Cell = iota
	Open
	Trap
	Start // 起点，之后按 Open 处理
)

var (
	ErrEmptyMap    = errors.New("map has no cells")
	ErrRaggedMap   = errors.New("map rows differ in length")
	ErrUnknownCell = errors.New("unknown cell symbol")
)

// MalformedMapError reports a world that cannot be simulated at all.
type MalformedMapError struct {
	World  int
	Reason string
}

func (e *MalformedMapError) Error() string {
	return fmt.Sprintf("malformed map %d: %s", e.World, e.Reason)
}

func ParseCell(b byte) (Cell, error) {
	switch b {
	case '#':
		return Wall, nil
	case 'o', '.':
		return Open, nil
	case 'x':
		return Trap, nil
	case '@':
		return Start, nil
	}
	return Wall, fmt.Errorf("%w %q", ErrUnknownCell, b)
}

func (c Cell) Byte() byte {
	switch c {
	case Open:
		return 'o'
	case Trap:
		return 'x'
	case Start:
		return '@'
	}
	return '#'
}

// Map is the immutable layout of one world.
type Map struct {
	Rows, Cols int
	cells      []Cell
}

func NewMap(rows []string) (*Map, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMap
	}
	m := &Map{Rows: len(rows), Cols: len(rows[0])}
	m.cells = make([]Cell, 0, m.Rows*m.Cols)
	for i, row := range rows {
		if len(row) != m.Cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedMap, i, len(row), m.Cols)
		}
		for j := 0; j < len(row); j++ {
			c, err := ParseCell(row[j])
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", i, j, err)
			}
			m.cells = append(m.cells, c)
		}
	}
	return m, nil
}

func (m *Map) In(p Pos) bool {
	return 0 <= p.Row && p.Row < m.Rows && 0 <= p.Col && p.Col < m.Cols
}

// At treats every off-grid position as a wall.
func (m *Map) At(p Pos) Cell {
	if !m.In(p) {
		return Wall
	}
	return m.cells[m.index(p)]
}

func (m *Map) index(p Pos) int { return p.Row*m.Cols + p.Col }

// Start returns the first start cell in row-major order.
func (m *Map) Start() (Pos, bool) {
	for i, c := range m.cells {
		if c == Start {
			return Pos{Row: i / m.Cols, Col: i % m.Cols}, true
		}
	}
	return Pos{}, false
}

// Walled reports whether every border cell is a wall.
func (m *Map) Walled() bool {
	for j := 0; j < m.Cols; j++ {
		if m.At(Pos{0, j}) != Wall || m.At(Pos{m.Rows - 1, j}) != Wall {
			return false
		}
	}
	for i := 0; i < m.Rows; i++ {
		if m.At(Pos{i, 0}) != Wall || m.At(Pos{i, m.Cols - 1}) != Wall {
			return false
		}
	}
	return true
}

func (m *Map) String() string {
	var sb strings.Builder
	for i := 0; i < m.Rows; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j := 0; j < m.Cols; j++ {
			sb.WriteByte(m.cells[i*m.Cols+j].Byte())
		}
	}
	return sb.String()
}
