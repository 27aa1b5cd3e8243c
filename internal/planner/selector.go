package planner

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"gridplan/internal/grid"
)

// Scores holds the committee total for each direction, in canonical order.
type Scores [len(grid.Directions)]int

// Choice is the outcome of one selector call. OK is false when every
// committee world has already finished.
type Choice struct {
	Move   grid.Direction
	Scores Scores
	OK     bool
}

// Selector picks the move that maximizes the summed evaluation over the
// committee after one step. It only reads the states it is given.
type Selector struct {
	// Parallel evaluates the four directions on separate goroutines. The
	// result is identical to the sequential path.
	Parallel bool
}

func (s Selector) Select(ctx context.Context, pool []*grid.Map, committee []grid.State) (Choice, error) {
	active := false
	for i := range committee {
		if !committee[i].IsDone() {
			active = true
			break
		}
	}
	if !active {
		return Choice{}, nil
	}

	var scores Scores
	if s.Parallel {
		g, ctx := errgroup.WithContext(ctx)
		for i, d := range grid.Directions {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				scores[i] = evaluateMove(pool, committee, d)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return Choice{}, err
		}
	} else {
		for i, d := range grid.Directions {
			scores[i] = evaluateMove(pool, committee, d)
		}
	}

	best := Choice{Scores: scores, OK: true}
	bestScore := math.MinInt
	for i, d := range grid.Directions {
		// strict: ties keep the earlier direction
		if scores[i] > bestScore {
			bestScore = scores[i]
			best.Move = d
		}
	}
	return best, nil
}

func evaluateMove(pool []*grid.Map, committee []grid.State, d grid.Direction) int {
	total := 0
	for i := range committee {
		if committee[i].IsDone() {
			continue
		}
		c := committee[i].Clone()
		c.Advance(pool[c.ID], d)
		total += c.Evaluate()
	}
	return total
}
