package core

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestRunTicksImmediately(t *testing.T) {
	start := time.Now()
	var first time.Duration
	err := Run(context.Background(), time.Hour, func() error {
		first = time.Since(start)
		return ErrStopClock
	})
	if err != nil {
		t.Fatalf("Run returned %v, expected clean stop", err)
	}
	if first > time.Second {
		t.Fatalf("first tick after %v, expected time zero", first)
	}
}

func TestRunStopsAfterTicks(t *testing.T) {
	for _, interval := range []time.Duration{0, time.Millisecond} {
		var ticks int
		err := Run(context.Background(), interval, func() error {
			ticks++
			if ticks == 5 {
				return ErrStopClock
			}
			return nil
		})
		if err != nil {
			t.Fatalf("interval %v: %v", interval, err)
		}
		if ticks != 5 {
			t.Fatalf("interval %v: ticks = %d, expected 5", interval, ticks)
		}
	}
}

func TestRunPropagatesTickError(t *testing.T) {
	boom := errors.New("boom")
	err := Run(context.Background(), time.Millisecond, func() error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("Run returned %v, expected %v", err, boom)
	}
}

func TestRunHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var ticks int
	err := Run(ctx, time.Millisecond, func() error {
		ticks++
		if ticks == 3 {
			cancel()
		}
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run returned %v, expected context.Canceled", err)
	}
	if ticks != 3 {
		t.Fatalf("ticks = %d, expected no tick after cancel", ticks)
	}

	if err := Run(ctx, time.Millisecond, func() error {
		t.Fatal("tick ran on a cancelled context")
		return nil
	}); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run returned %v on cancelled context", err)
	}
}

func TestRunNeverOverlaps(t *testing.T) {
	var inFlight, ticks atomic.Int32
	err := Run(context.Background(), time.Millisecond, func() error {
		if inFlight.Add(1) != 1 {
			t.Error("tick started while another was running")
		}
		time.Sleep(3 * time.Millisecond)
		inFlight.Add(-1)
		if ticks.Add(1) == 4 {
			return ErrStopClock
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}
