package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"gridplan/internal/config"
	"gridplan/internal/grid"
)

var ErrPoolSize = errors.New("map pool does not match problem")

// Planner runs the committee greedy loop over a fixed map pool.
type Planner struct {
	Pool     []*grid.Map
	Problem  config.Problem
	Selector Selector
	Deadline Deadline
	Logger   *slog.Logger
	// Record keeps a per-turn event log in the result.
	Record   bool
}

// Run samples a committee with rng and plays greedy moves until the deadline
// expires, the turn budget is used up, or every committee world is finished.
// The plan built so far is always returned with a nil error on those stops.
func (p *Planner) Run(ctx context.Context, rng *rand.Rand) (Result, error) {
	if err := p.Problem.Validate(); err != nil {
		return Result{}, err
	}
	if len(p.Pool) != p.Problem.Worlds {
		return Result{}, fmt.Errorf("%w: %d maps, %d worlds", ErrPoolSize, len(p.Pool), p.Problem.Worlds)
	}
	if p.Deadline == nil {
		return Result{}, errors.New("planner: nil deadline")
	}
	logger := p.logger()

	for i, m := range p.Pool {
		if m.Rows != p.Problem.Rows || m.Cols != p.Problem.Cols {
			return Result{}, fmt.Errorf("%w: map %d is %dx%d, want %dx%d",
				ErrPoolSize, i, m.Rows, m.Cols, p.Problem.Rows, p.Problem.Cols)
		}
	}

	committee, err := SampleCommittee(len(p.Pool), p.Problem.Committee, rng)
	if err != nil {
		return Result{}, err
	}
	states := make([]grid.State, len(committee))
	for i, id := range committee {
		st, err := grid.NewState(id, p.Pool[id], p.Problem.Turns)
		if err != nil {
			return Result{}, err
		}
		states[i] = st
	}
	logger.Info("planning started", "committee", committee, "turns", p.Problem.Turns, "parallel", p.Selector.Parallel)

	var events []Event
	emit := func(ev Event) {
		if p.Record {
			events = append(events, ev)
		}
	}

	res := Result{Committee: committee}
	moves := make([]grid.Direction, 0, p.Problem.Turns)
	for {
		if p.Deadline.Expired() || ctx.Err() != nil {
			res.Stop = StopDeadline
			break
		}
		if len(moves) == p.Problem.Turns {
			res.Stop = StopBudget
			break
		}
		res.Iterations++

		choice, err := p.Selector.Select(ctx, p.Pool, states)
		if err != nil {
			if ctx.Err() != nil {
				res.Stop = StopDeadline
				break
			}
			return Result{}, err
		}
		if !choice.OK {
			res.Stop = StopExhausted
			break
		}

		turn := len(moves)
		moves = append(moves, choice.Move)
		for i := range states {
			wasDone := states[i].IsDone()
			states[i].Advance(p.Pool[states[i].ID], choice.Move)
			if !wasDone && states[i].Terminated {
				emit(Event{Turn: turn, Type: "Trapped", Payload: map[string]any{
					"world": states[i].ID, "row": states[i].Pos.Row, "col": states[i].Pos.Col,
				}})
			}
		}
		emit(Event{Turn: turn, Type: "Move", Payload: map[string]any{
			"move": choice.Move.String(), "scores": choice.Scores,
		}})
		logger.Debug("turn", "turn", turn, "move", choice.Move.String(), "scores", choice.Scores)
	}

	res.Moves = moves
	res.Plan = grid.FormatPlan(moves)
	res.Elapsed = p.Deadline.Elapsed()
	res.ElapsedMs = res.Elapsed.Milliseconds()
	res.CommitteeScores = make([]int, len(states))
	for i := range states {
		res.CommitteeScores[i] = states[i].Score
	}
	res.Events = events
	logger.Info("planning finished",
		"stop", res.Stop, "moves", len(moves), "iterations", res.Iterations,
		"elapsed_ms", res.ElapsedMs, "committee_scores", res.CommitteeScores)
	return res, nil
}
