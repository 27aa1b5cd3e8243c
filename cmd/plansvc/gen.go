package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"gridplan/internal/config"
	"gridplan/internal/mapio"
	"gridplan/internal/util"
)

func newGenCmd(o *options) *cobra.Command {
	var (
		p   config.Problem
		opt mapio.GenOptions
		out string
	)
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a random walled map pool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := o.load(cmd)
			if err != nil {
				return err
			}
			pool, err := mapio.Generate(util.NewRng(cfg.Seed), p, opt)
			if err != nil {
				return err
			}
			if out == "" || out == "-" {
				return mapio.Write(cmd.OutOrStdout(), pool)
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			write := mapio.Write
			if strings.HasSuffix(out, ".zst") {
				write = mapio.WriteCompressed
			}
			if err := write(f, pool); err != nil {
				_ = f.Close()
				return err
			}
			logger.Info("pool written", "path", out, "worlds", p.Worlds)
			return f.Close()
		},
	}
	fl := cmd.Flags()
	fl.IntVar(&p.Worlds, "worlds", 100, "pool size N")
	fl.IntVar(&p.Committee, "k", 8, "committee size K written to the header")
	fl.IntVar(&p.Rows, "rows", 50, "grid height H")
	fl.IntVar(&p.Cols, "cols", 50, "grid width W")
	fl.IntVar(&p.Turns, "t", 2500, "turn budget T")
	fl.Float64Var(&opt.WallRate, "wall-rate", 0.15, "share of inner walls")
	fl.Float64Var(&opt.TrapRate, "trap-rate", 0.03, "share of inner traps")
	fl.StringVar(&out, "out", "-", "output file, .zst suffix compresses")
	return cmd
}
