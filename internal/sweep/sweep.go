// Package sweep runs many independently seeded Life grids to completion in
// parallel and reports how each one settled.
package sweep

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"lifegrid/internal/life"
)

// Outcome classifies how a run ended.
type Outcome string

const (
	OutcomeExtinct    Outcome = "extinct"
	OutcomeStill      Outcome = "still"
	OutcomeOscillator Outcome = "oscillator"
	OutcomeRunning    Outcome = "running"
)

// Options controls a sweep.
type Options struct {
	Config      life.Config
	FirstSeed   int64
	Seeds       int
	Generations int
	Workers     int
}

// Result describes a single seeded run.
type Result struct {
	Seed        int64
	Outcome     Outcome
	Period      int
	SettledAt   int
	Population  int
	PeakPop     int
	InitialPop  int
	Generations int
}

func (r Result) String() string {
	return fmt.Sprintf("seed=%d outcome=%s period=%d settled=%d pop=%d peak=%d initial=%d",
		r.Seed, r.Outcome, r.Period, r.SettledAt, r.Population, r.PeakPop, r.InitialPop)
}

// Run simulates Seeds grids starting at FirstSeed. Each worker owns its
// engine; results are returned sorted by seed.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if opts.Seeds <= 0 {
		return nil, nil
	}
	results := make([]Result, opts.Seeds)

	g, ctx := errgroup.WithContext(ctx)
	if opts.Workers > 0 {
		g.SetLimit(opts.Workers)
	}
	for i := 0; i < opts.Seeds; i++ {
		g.Go(func() error {
			res, err := runSeed(ctx, opts.Config, opts.FirstSeed+int64(i), opts.Generations)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Seed < results[j].Seed })
	return results, nil
}

func runSeed(ctx context.Context, cfg life.Config, seed int64, generations int) (Result, error) {
	cfg.Seed = seed
	l := life.NewWithConfig(cfg)
	l.Reset(seed)

	res := Result{Seed: seed, Outcome: OutcomeRunning, InitialPop: l.Population()}
	res.PeakPop = res.InitialPop
	history := life.NewHistory()
	history.Observe(0, l.Cells())

	for step := 0; step < generations; step++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		l.Step()
		pop := l.Population()
		res.PeakPop = max(res.PeakPop, pop)
		if period, ok := history.Observe(l.Generation(), l.Cells()); ok {
			res.Period = period
			res.SettledAt = l.Generation() - period
			switch {
			case pop == 0:
				res.Outcome = OutcomeExtinct
			case period == 1:
				res.Outcome = OutcomeStill
			default:
				res.Outcome = OutcomeOscillator
			}
			break
		}
	}
	res.Population = l.Population()
	res.Generations = l.Generation()
	return res, nil
}

// Summary counts outcomes across results.
func Summary(results []Result) map[Outcome]int {
	out := map[Outcome]int{}
	for _, r := range results {
		out[r.Outcome]++
	}
	return out
}
