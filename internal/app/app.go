package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"example.com/scoreboard/internal/config"
	"example.com/scoreboard/internal/perf"
	"example.com/scoreboard/internal/scoreboard"
)

type App struct {
	cfg config.Config
	log *slog.Logger

	newBoard func() scoreboard.Board
}

func New(cfg config.Config, log *slog.Logger) (*App, error) {
	if log == nil {
		log = slog.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	a := &App{cfg: cfg, log: log}
	a.newBoard = func() scoreboard.Board { return scoreboard.New() }
	if cfg.Perf.Locked {
		a.newBoard = func() scoreboard.Board {
			return scoreboard.NewService(scoreboard.New(), log.With("component", "scoreboard"))
		}
	}
	return a, nil
}

// Run executes the perf phases on every worker and logs the timings.
func (a *App) Run(ctx context.Context) error {
	opts := perf.Options{
		Matches:      a.cfg.Perf.Matches,
		SummaryCalls: a.cfg.Perf.SummaryCalls,
		MaxScore:     a.cfg.Perf.MaxScore,
		Seed:         a.cfg.Perf.Seed,
	}

	a.log.Info("perftest starting",
		"env", a.cfg.Env,
		"workers", a.cfg.Perf.Workers,
		"matches", opts.Matches,
		"summary_calls", opts.SummaryCalls,
		"locked", a.cfg.Perf.Locked,
	)

	started := time.Now()
	reports, err := perf.RunParallel(ctx, a.cfg.Perf.Workers, a.newBoard, opts)
	if err != nil {
		return fmt.Errorf("perftest: %w", err)
	}

	for _, r := range reports {
		a.log.Info("worker finished", "report", r)
	}
	a.log.Info("perftest done", "workers", len(reports), "elapsed", time.Since(started))
	return nil
}
