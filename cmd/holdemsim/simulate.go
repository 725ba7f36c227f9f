package main

import (
	"fmt"
	"os"
	"time"

	"github.com/lox/holdemsim/internal/config"
	"github.com/lox/holdemsim/internal/report"
	"github.com/lox/holdemsim/internal/simulator"
)

// SimulateCmd runs a batch of showdown trials. Flags override the
// configuration file and environment.
type SimulateCmd struct {
	Trials      *int    `short:"n" help:"Number of trials"`
	Players     *int    `short:"p" help:"Players dealt into each trial (2-10)"`
	Workers     *int    `short:"w" help:"Parallel workers"`
	Seed        *int64  `help:"RNG seed (0 for time-based)"`
	SampleEvery *int    `help:"Describe every Nth trial (0 disables)"`
	Output      *string `short:"o" help:"Write the report to this TOML file"`
	Top         *int    `help:"Starting hands to list (0 for all)"`
	NoColor     bool    `help:"Disable coloured output"`
}

func (c *SimulateCmd) apply(cfg *config.Config) {
	if c.Trials != nil {
		cfg.Simulation.Trials = *c.Trials
	}
	if c.Players != nil {
		cfg.Simulation.Players = *c.Players
	}
	if c.Workers != nil {
		cfg.Simulation.Workers = *c.Workers
	}
	if c.Seed != nil {
		cfg.Simulation.Seed = *c.Seed
	}
	if c.SampleEvery != nil {
		cfg.Simulation.SampleEvery = *c.SampleEvery
	}
	if c.Output != nil {
		cfg.Report.Output = *c.Output
	}
	if c.Top != nil {
		cfg.Report.Top = *c.Top
	}
	if c.NoColor {
		cfg.Report.NoColor = true
	}
}

func (c *SimulateCmd) Run(g *Globals) error {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return err
	}
	c.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := setupLogger(cfg.LogLevel, g.Debug)
	if err != nil {
		return err
	}
	interval, err := cfg.Simulation.Interval()
	if err != nil {
		return err
	}

	renderer := report.NewRenderer(os.Stdout, cfg.Report.NoColor)
	sim, err := simulator.New(simulator.Config{
		Trials:           cfg.Simulation.Trials,
		Players:          cfg.Simulation.Players,
		Workers:          cfg.Simulation.Workers,
		Seed:             cfg.Simulation.Seed,
		SampleEvery:      cfg.Simulation.SampleEvery,
		ProgressInterval: interval,
		Logger:           logger,
		Observer:         renderer.Outcome,
	})
	if err != nil {
		return err
	}

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	result, err := sim.Run(ctx)
	if err != nil {
		return err
	}

	summary, err := report.NewSummary(result, time.Now())
	if err != nil {
		return err
	}
	fmt.Println()
	if err := renderer.Summary(summary, cfg.Report.Top); err != nil {
		return err
	}

	if cfg.Report.Output != "" {
		if err := report.Export(cfg.Report.Output, summary); err != nil {
			return err
		}
		logger.Info("Wrote report", "path", cfg.Report.Output)
	}
	return nil
}
