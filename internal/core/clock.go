package core

import (
	"context"
	"errors"
	"time"
)

// ErrStopClock may be returned by a tick function to stop Run without error.
var ErrStopClock = errors.New("core: stop clock")

// Run calls tick immediately and then once per interval until ctx is done or
// tick returns an error. Ticks are strictly serial: a tick that overruns the
// interval delays the next one and missed ticks are dropped, never queued.
// A zero interval runs ticks back to back.
func Run(ctx context.Context, interval time.Duration, tick func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := tick(); err != nil {
		return stopErr(err)
	}

	if interval <= 0 {
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			if err := tick(); err != nil {
				return stopErr(err)
			}
		}
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := tick(); err != nil {
				return stopErr(err)
			}
		}
	}
}

func stopErr(err error) error {
	if errors.Is(err, ErrStopClock) {
		return nil
	}
	return err
}
