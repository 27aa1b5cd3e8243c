package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gridplan/internal/archive"
	"gridplan/internal/mapio"
	"gridplan/internal/planner"
	"gridplan/internal/util"
)

func newSweepCmd(o *options) *cobra.Command {
	var runs, workers int
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Plan with consecutive seeds and keep the plan with the best pool mean",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := o.load(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("runs") {
				cfg.Sweep.Runs = runs
			}
			if cmd.Flags().Changed("workers") {
				cfg.Sweep.Workers = workers
			}
			if cfg.Sweep.Runs <= 0 {
				return fmt.Errorf("sweep needs at least one run")
			}
			pool, err := mapio.Open(o.input)
			if err != nil {
				return err
			}
			problem, err := cfg.Apply(pool.Problem)
			if err != nil {
				return err
			}

			seeds := make([]uint64, cfg.Sweep.Runs)
			for i := range seeds {
				seeds[i] = cfg.Seed + uint64(i)
			}
			p := &planner.Planner{
				Pool:     pool.Maps,
				Problem:  problem,
				Selector: planner.Selector{Parallel: cfg.Parallel},
				Logger:   logger,
				Record:   cfg.Record,
			}
			newDeadline := func() planner.Deadline { return util.NewTimer(cfg.Budget()) }
			results, best, err := p.Sweep(cmd.Context(), seeds, cfg.Sweep.Workers, newDeadline)
			if err != nil {
				return err
			}
			for _, r := range results {
				logger.Info("sweep run", "seed", r.Seed, "mean", r.Result.Eval.Mean,
					"std_dev", r.Result.Eval.StdDev, "stop", r.Result.Stop, "moves", len(r.Result.Moves))
			}

			if cfg.Archive != "" {
				rows := make([]archive.Run, len(results))
				for i, r := range results {
					rows[i] = archiveRun(r.Seed, r.Result)
				}
				if err := archiveRuns(cmd.Context(), cfg.Archive, rows); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if o.json {
				summary := map[string]any{
					"runs": results,
					"best": results[best].Seed,
				}
				_, err := out.Write(append(planner.MarshalPretty(summary), '\n'))
				return err
			}
			logger.Info("best seed", "seed", results[best].Seed, "mean", results[best].Result.Eval.Mean)
			return mapio.WritePlan(out, results[best].Result.Committee, results[best].Result.Plan)
		},
	}
	cmd.Flags().IntVar(&runs, "runs", 0, "number of seeds to try (default from config)")
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent planning runs (default from config)")
	return cmd
}
