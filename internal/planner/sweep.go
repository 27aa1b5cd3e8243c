package planner

import (
	"context"
	"log/slog"
	"sync"

	"gridplan/internal/logging"
	"gridplan/internal/util"
)

type SweepRun struct {
	Seed   uint64 `json:"seed"`
	Result Result `json:"result"`
}

// Sweep runs the planner once per seed on a pool of workers, each run with
// its own deadline, and evaluates every plan on the full pool. It returns the
// runs in seed order and the index of the run with the best mean score.
func (p *Planner) Sweep(ctx context.Context, seeds []uint64, workers int, newDeadline func() Deadline) ([]SweepRun, int, error) {
	if workers <= 0 {
		workers = 1
	}
	runs := make([]SweepRun, len(seeds))

	var (
		mu       sync.Mutex
		firstErr error
	)
	wg := sync.WaitGroup{}
	jobs := make(chan int, len(seeds))
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				q := *p
				q.Deadline = newDeadline()
				q.Logger = p.logger().With("seed", seeds[i])
				res, err := q.Run(ctx, util.NewRng(seeds[i]))
				if err == nil {
					var ev Evaluation
					ev, err = Evaluate(p.Pool, res.Moves, p.Problem.Turns)
					res.Eval = &ev
				}

				mu.Lock()
				if err != nil && firstErr == nil {
					firstErr = err
				}
				runs[i] = SweepRun{Seed: seeds[i], Result: res}
				mu.Unlock()
			}
		}()
	}
	for i := range seeds {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, -1, firstErr
	}
	best := -1
	for i, r := range runs {
		if best < 0 || r.Result.Eval.Mean > runs[best].Result.Eval.Mean {
			best = i
		}
	}
	return runs, best, nil
}

func (p *Planner) logger() *slog.Logger {
	if p.Logger == nil {
		return logging.Discard()
	}
	return p.Logger
}
