package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"lifegrid/internal/app"
	"lifegrid/internal/core"
	"lifegrid/internal/life"
	"lifegrid/internal/term"
)

var errQuit = errors.New("quit requested")

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	generations := flag.Int("generations", 0, "stop after this many generations (0 runs until quit)")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	palette, err := cfg.Palette()
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}
	var fini sync.Once
	closeScreen := func() { fini.Do(screen.Fini) }
	defer closeScreen()
	screen.Clear()

	l := life.NewWithConfig(cfg.LifeConfig())
	l.Attach(term.NewScreen(screen, cfg.Cells,
		term.Color(app.RGB(palette.Alive)),
		term.Color(app.RGB(palette.Dead))))
	if err := cfg.SeedWorld(l); err != nil {
		closeScreen()
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			key, ok := ev.(*tcell.EventKey)
			if !ok {
				continue
			}
			if key.Key() == tcell.KeyEscape || key.Key() == tcell.KeyCtrlC || key.Rune() == 'q' {
				return errQuit
			}
		}
	})

	g.Go(func() error {
		// Closing the screen unblocks PollEvent above.
		defer closeScreen()
		return core.Run(ctx, cfg.UpdateTime, func() error {
			l.Step()
			if *generations > 0 && l.Generation() >= *generations {
				return core.ErrStopClock
			}
			return nil
		})
	})

	err = g.Wait()
	closeScreen()
	switch {
	case err == nil, errors.Is(err, errQuit), errors.Is(err, context.Canceled):
	default:
		log.Fatal(err)
	}
	log.Printf("stopped at generation %d with %d live cells", l.Generation(), l.Population())
}
