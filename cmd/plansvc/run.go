package main

import (
	"github.com/spf13/cobra"

	"gridplan/internal/archive"
	"gridplan/internal/mapio"
	"gridplan/internal/planner"
	"gridplan/internal/util"
)

func newRunCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Plan once and print the committee and the move string",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := o.load(cmd)
			if err != nil {
				return err
			}
			pool, err := mapio.Open(o.input)
			if err != nil {
				return err
			}
			problem, err := cfg.Apply(pool.Problem)
			if err != nil {
				return err
			}
			for i, m := range pool.Maps {
				if !m.Walled() {
					logger.Debug("map border is not fully walled", "world", i)
				}
			}

			p := &planner.Planner{
				Pool:     pool.Maps,
				Problem:  problem,
				Selector: planner.Selector{Parallel: cfg.Parallel},
				Deadline: util.NewTimer(cfg.Budget()),
				Logger:   logger,
				Record:   cfg.Record,
			}
			res, err := p.Run(cmd.Context(), util.NewRng(cfg.Seed))
			if err != nil {
				return err
			}
			ev, err := planner.Evaluate(pool.Maps, res.Moves, problem.Turns)
			if err != nil {
				return err
			}
			res.Eval = &ev
			logger.Info("plan evaluated on pool", "mean", ev.Mean, "std_dev", ev.StdDev, "traps", ev.Traps)

			if cfg.Archive != "" {
				if err := archiveRuns(cmd.Context(), cfg.Archive, []archive.Run{archiveRun(cfg.Seed, res)}); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if o.json {
				_, err := out.Write(append(planner.MarshalPretty(res), '\n'))
				return err
			}
			if err := mapio.WritePlan(out, res.Committee, res.Plan); err != nil {
				return err
			}
			logger.Info("done", "elapsed_ms", res.ElapsedMs)
			return nil
		},
	}
}
