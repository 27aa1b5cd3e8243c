package grid

import "fmt"

type Pos struct{ Row, Col int }

func (a Pos) Add(b Pos) Pos { return Pos{a.Row + b.Row, a.Col + b.Col} }

func (a Pos) String() string { return fmt.Sprintf("(%d,%d)", a.Row, a.Col) }

// Direction is one of the four moves. The numeric order is the canonical
// tie-break order used by the selector.
type Direction uint8

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Directions lists every move in canonical order.
var Directions = [...]Direction{Left, Right, Up, Down}

var deltas = [...]Pos{
	Left:  {0, -1},
	Right: {0, 1},
	Up:    {-1, 0},
	Down:  {1, 0},
}

var symbols = [...]byte{Left: 'L', Right: 'R', Up: 'U', Down: 'D'}

func (d Direction) Delta() Pos   { return deltas[d] }
func (d Direction) Symbol() byte { return symbols[d] }
func (d Direction) String() string {
	if int(d) >= len(symbols) {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return string(symbols[d])
}

func ParseDirection(b byte) (Direction, error) {
	for _, d := range Directions {
		if symbols[d] == b {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown direction symbol %q", b)
}

// ParsePlan decodes a move string such as "LRRD".
func ParsePlan(s string) ([]Direction, error) {
	out := make([]Direction, 0, len(s))
	for i := 0; i < len(s); i++ {
		d, err := ParseDirection(s[i])
		if err != nil {
			return nil, fmt.Errorf("plan[%d]: %w", i, err)
		}
		out = append(out, d)
	}
	return out, nil
}

// FormatPlan is the inverse of ParsePlan.
func FormatPlan(moves []Direction) string {
	b := make([]byte, len(moves))
	for i, d := range moves {
		b[i] = d.Symbol()
	}
	return string(b)
}
