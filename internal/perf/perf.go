package perf

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"example.com/scoreboard/internal/scoreboard"
	"golang.org/x/sync/errgroup"
)

type Options struct {
	Matches      int
	SummaryCalls int
	MaxScore     int   // scores are drawn from [0, MaxScore)
	Seed         int64 // 0 picks a time based seed
}

// Report holds the wall time of each phase.
type Report struct {
	Worker  int
	Matches int
	Start   time.Duration
	Update  time.Duration
	Summary time.Duration
	Finish  time.Duration
	Total   time.Duration // all four phases, finish included
}

func (r Report) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("worker", r.Worker),
		slog.Int("matches", r.Matches),
		slog.Duration("start", r.Start),
		slog.Duration("update", r.Update),
		slog.Duration("summary", r.Summary),
		slog.Duration("finish", r.Finish),
		slog.Duration("total", r.Total),
	)
}

func (o Options) validate() error {
	if o.Matches <= 0 {
		return errors.New("matches must be positive")
	}
	if o.SummaryCalls <= 0 {
		return errors.New("summary calls must be positive")
	}
	if o.MaxScore <= 0 {
		return errors.New("max score must be positive")
	}
	return nil
}

// ctxCheckEvery bounds how many operations run between context checks.
const ctxCheckEvery = 1024

// Run drives one board through all four phases. The board must be empty
// and must not be touched by anyone else while Run is in progress.
func Run(ctx context.Context, board scoreboard.Board, opts Options) (Report, error) {
	if err := opts.validate(); err != nil {
		return Report{}, err
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1))

	names := make([]string, 2*opts.Matches)
	for i := range names {
		names[i] = TeamName()
	}

	rep := Report{Matches: opts.Matches}
	begin := time.Now()

	for i := 0; i < opts.Matches; i++ {
		if err := checkCtx(ctx, i); err != nil {
			return rep, err
		}
		if _, err := board.StartNewMatch(names[2*i], names[2*i+1]); err != nil {
			return rep, fmt.Errorf("start match %d: %w", i, err)
		}
	}
	afterStart := time.Now()
	rep.Start = afterStart.Sub(begin)

	live := board.Summary()
	for i, m := range live {
		if err := checkCtx(ctx, i); err != nil {
			return rep, err
		}
		err := board.UpdateMatchScore(m.HomeTeamName, m.AwayTeamName, rng.IntN(opts.MaxScore), rng.IntN(opts.MaxScore))
		if err != nil {
			return rep, fmt.Errorf("update match %d: %w", i, err)
		}
	}
	afterUpdate := time.Now()
	rep.Update = afterUpdate.Sub(afterStart)

	for i := 0; i < opts.SummaryCalls; i++ {
		if err := checkCtx(ctx, i); err != nil {
			return rep, err
		}
		_ = board.Summary()
	}
	afterSummary := time.Now()
	rep.Summary = afterSummary.Sub(afterUpdate)

	for i, m := range live {
		if err := checkCtx(ctx, i); err != nil {
			return rep, err
		}
		if err := board.FinishMatch(m.HomeTeamName, m.AwayTeamName); err != nil {
			return rep, fmt.Errorf("finish match %d: %w", i, err)
		}
	}
	end := time.Now()
	rep.Finish = end.Sub(afterSummary)
	rep.Total = end.Sub(begin)

	if n := board.Len(); n != 0 {
		return rep, fmt.Errorf("%d matches left on the board after finishing all", n)
	}
	return rep, nil
}

// RunParallel runs workers independent Run calls, each on a fresh board
// from newBoard. Worker i uses Seed+i when Seed is set.
func RunParallel(ctx context.Context, workers int, newBoard func() scoreboard.Board, opts Options) ([]Report, error) {
	if workers < 1 {
		return nil, errors.New("workers must be at least 1")
	}

	reports := make([]Report, workers)
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		wopts := opts
		if opts.Seed != 0 {
			wopts.Seed = opts.Seed + int64(w)
		}
		g.Go(func() error {
			rep, err := Run(gctx, newBoard(), wopts)
			rep.Worker = w
			reports[w] = rep
			if err != nil {
				return fmt.Errorf("worker %d: %w", w, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return reports, err
	}
	return reports, nil
}

func checkCtx(ctx context.Context, i int) error {
	if i%ctxCheckEvery != 0 {
		return nil
	}
	return ctx.Err()
}
