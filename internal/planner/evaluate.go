package planner

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"gridplan/internal/grid"
)

// Evaluation scores one plan against every world in a pool. The hidden
// evaluation world is one of them, so the mean is the expected score.
type Evaluation struct {
	Scores []int   `json:"scores"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    int     `json:"min"`
	Max    int     `json:"max"`
	Traps  int     `json:"traps"`
}

// Evaluate replays moves on a fresh state of every world.
func Evaluate(pool []*grid.Map, moves []grid.Direction, maxTurns int) (Evaluation, error) {
	if len(pool) == 0 {
		return Evaluation{}, fmt.Errorf("%w: empty pool", ErrPoolSize)
	}
	ev := Evaluation{Scores: make([]int, len(pool))}
	xs := make([]float64, len(pool))
	for id, m := range pool {
		st, err := grid.NewState(id, m, maxTurns)
		if err != nil {
			return Evaluation{}, err
		}
		for _, d := range moves {
			if st.IsDone() {
				break
			}
			st.Advance(m, d)
		}
		if st.Terminated {
			ev.Traps++
		}
		ev.Scores[id] = st.Score
		xs[id] = float64(st.Score)
		if id == 0 || st.Score < ev.Min {
			ev.Min = st.Score
		}
		if id == 0 || st.Score > ev.Max {
			ev.Max = st.Score
		}
	}
	if len(xs) == 1 {
		ev.Mean = xs[0]
		return ev, nil
	}
	ev.Mean, ev.StdDev = stat.MeanStdDev(xs, nil)
	return ev, nil
}
