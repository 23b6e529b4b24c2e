package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"runtime"
	"sort"
	"syscall"
	"time"

	"lifegrid/internal/app"
	"lifegrid/internal/sweep"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	seeds := flag.Int("seeds", 64, "number of consecutive seeds to simulate")
	generations := flag.Int("generations", 1000, "maximum generations per seed")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 5, "longest-lived runs to print")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Sweeping %d seeds on a %dx%d grid at %.1f%% alive (%d workers, %d generations)\n",
		*seeds, cfg.Cells, cfg.Cells, cfg.Percent, *workers, *generations)

	start := time.Now()
	results, err := sweep.Run(ctx, sweep.Options{
		Config:      cfg.LifeConfig(),
		FirstSeed:   cfg.Seed,
		Seeds:       *seeds,
		Generations: *generations,
		Workers:     *workers,
	})
	if err != nil {
		log.Fatalf("sweep: %v", err)
	}
	elapsed := time.Since(start)

	summary := sweep.Summary(results)
	fmt.Printf("\nOutcomes (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for _, o := range []sweep.Outcome{sweep.OutcomeExtinct, sweep.OutcomeStill, sweep.OutcomeOscillator, sweep.OutcomeRunning} {
		fmt.Printf("  %-10s %d\n", o, summary[o])
	}

	longest := append([]sweep.Result(nil), results...)
	sortBySettle(longest)
	fmt.Printf("\nTop %d longest-lived:\n", min(*top, len(longest)))
	for i := 0; i < len(longest) && i < *top; i++ {
		fmt.Printf("%2d) %s\n", i+1, longest[i])
	}
}

// sortBySettle orders results so that runs that never settled come first,
// then by the generation at which they settled.
func sortBySettle(results []sweep.Result) {
	key := func(r sweep.Result) int {
		if r.Outcome == sweep.OutcomeRunning {
			return r.Generations + 1
		}
		return r.SettledAt
	}
	sort.SliceStable(results, func(i, j int) bool { return key(results[i]) > key(results[j]) })
}
