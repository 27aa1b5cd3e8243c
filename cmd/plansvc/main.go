package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"gridplan/internal/archive"
	"gridplan/internal/config"
	"gridplan/internal/logging"
	"gridplan/internal/planner"
)

type options struct {
	configPath string
	input      string
	logLevel   string
	seed       uint64
	timeLimit  float64
	committee  int
	turns      int
	parallel   bool
	record     bool
	archive    string
	json       bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:          "plansvc",
		Short:        "Committee greedy planner for multi-map grid traversal",
		SilenceUsage: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&o.configPath, "config", "", "YAML config file")
	pf.StringVar(&o.input, "input", "-", "map pool file, - for stdin (zstd accepted)")
	pf.StringVar(&o.logLevel, "log-level", "", "debug|info|warn|error")
	pf.Uint64Var(&o.seed, "seed", 0, "committee sampling seed")
	pf.Float64Var(&o.timeLimit, "time-limit", 0, "planning budget in seconds")
	pf.IntVar(&o.committee, "committee", 0, "committee size (0: header value)")
	pf.IntVar(&o.turns, "turns", 0, "turn budget (0: header value)")
	pf.BoolVar(&o.parallel, "parallel", false, "evaluate the four directions concurrently")
	pf.BoolVar(&o.record, "record", false, "keep a per-turn event log (json output)")
	pf.StringVar(&o.archive, "archive", "", "sqlite file to archive runs into")
	pf.BoolVar(&o.json, "json", false, "print the full result as JSON")

	root.AddCommand(newRunCmd(o), newSweepCmd(o), newGenCmd(o))
	return root
}

// load layers defaults, the config file and explicitly set flags.
func (o *options) load(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return cfg, nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("seed") {
		cfg.Seed = o.seed
	}
	if flags.Changed("time-limit") {
		cfg.TimeLimit = o.timeLimit
	}
	if flags.Changed("committee") {
		cfg.CommitteeSize = o.committee
	}
	if flags.Changed("turns") {
		cfg.Turns = o.turns
	}
	if flags.Changed("parallel") {
		cfg.Parallel = o.parallel
	}
	if flags.Changed("record") {
		cfg.Record = o.record
	}
	if flags.Changed("archive") {
		cfg.Archive = o.archive
	}
	if err := cfg.Validate(); err != nil {
		return cfg, nil, err
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, logging.New(cmd.ErrOrStderr(), level, "plansvc"), nil
}

func archiveRuns(ctx context.Context, path string, runs []archive.Run) error {
	a, err := archive.OpenSQLite(path)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	defer a.Close()
	for _, r := range runs {
		if _, err := a.Record(ctx, r); err != nil {
			return fmt.Errorf("archive run: %w", err)
		}
	}
	return nil
}

func archiveRun(seed uint64, res planner.Result) archive.Run {
	r := archive.Run{
		Seed:      seed,
		Committee: res.Committee,
		Plan:      res.Plan,
		Stop:      string(res.Stop),
		ElapsedMs: res.ElapsedMs,
	}
	if res.Eval != nil {
		r.Mean = res.Eval.Mean
		r.StdDev = res.Eval.StdDev
	}
	return r
}
