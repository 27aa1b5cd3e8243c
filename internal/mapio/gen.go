package mapio

import (
	"fmt"
	"math/rand/v2"

	"gridplan/internal/config"
	"gridplan/internal/grid"
)

// GenOptions tunes random pool generation. Rates are per inner cell.
type GenOptions struct {
	WallRate float64
	TrapRate float64
}

// Generate builds a pool of walled maps, each with one start cell.
func Generate(rng *rand.Rand, p config.Problem, opt GenOptions) (*Pool, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.Rows < 3 || p.Cols < 3 {
		return nil, fmt.Errorf("%w: generated maps need at least 3x3", ErrBadInput)
	}
	pool := &Pool{Problem: p, Maps: make([]*grid.Map, 0, p.Worlds)}
	buf := make([][]byte, p.Rows)
	for i := range buf {
		buf[i] = make([]byte, p.Cols)
	}
	rows := make([]string, p.Rows)
	for k := 0; k < p.Worlds; k++ {
		for i := range buf {
			for j := range buf[i] {
				border := i == 0 || j == 0 || i == p.Rows-1 || j == p.Cols-1
				x := rng.Float64()
				switch {
				case border || x < opt.WallRate:
					buf[i][j] = '#'
				case x < opt.WallRate+opt.TrapRate:
					buf[i][j] = 'x'
				default:
					buf[i][j] = 'o'
				}
			}
		}
		buf[1+rng.IntN(p.Rows-2)][1+rng.IntN(p.Cols-2)] = '@'
		for i := range buf {
			rows[i] = string(buf[i])
		}
		m, err := grid.NewMap(rows)
		if err != nil {
			return nil, err
		}
		pool.Maps = append(pool.Maps, m)
	}
	return pool, nil
}
