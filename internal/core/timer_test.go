package core

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestFixedStep(interval time.Duration) (*FixedStep, *fakeClock) {
	clk := &fakeClock{t: time.Unix(1000, 0)}
	fs := NewFixedStep(interval)
	fs.now = clk.now
	return fs, clk
}

func TestFixedStepFirstTickImmediate(t *testing.T) {
	fs, _ := newTestFixedStep(time.Second)
	if !fs.ShouldStep() {
		t.Fatal("first ShouldStep should fire at time zero")
	}
	if fs.ShouldStep() {
		t.Fatal("second ShouldStep without elapsed time should not fire")
	}
}

func TestFixedStepInterval(t *testing.T) {
	fs, clk := newTestFixedStep(100 * time.Millisecond)
	fs.ShouldStep()

	fired := 0
	for i := 0; i < 10; i++ {
		clk.advance(50 * time.Millisecond)
		if fs.ShouldStep() {
			fired++
		}
	}
	if fired != 5 {
		t.Fatalf("fired %d times over 500ms at 100ms, expected 5", fired)
	}
}

func TestFixedStepDropsBacklog(t *testing.T) {
	fs, clk := newTestFixedStep(10 * time.Millisecond)
	fs.ShouldStep()
	clk.advance(time.Second)

	fired := 0
	for i := 0; i < 10; i++ {
		if fs.ShouldStep() {
			fired++
		}
	}
	if fired > 2 {
		t.Fatalf("fired %d times after a stall, expected the backlog to be dropped", fired)
	}
}

func TestFixedStepZeroIntervalStepsEveryFrame(t *testing.T) {
	fs, _ := newTestFixedStep(0)
	for i := 0; i < 3; i++ {
		if !fs.ShouldStep() {
			t.Fatalf("frame %d did not step with zero interval", i)
		}
	}
	fs.SetInterval(-time.Second)
	if fs.Interval() != 0 {
		t.Fatalf("negative interval stored as %v", fs.Interval())
	}
}
