// Package countdown runs the cosmetic wait-time countdown shown on the
// confirmation view.
package countdown

import (
	"context"
	"time"
)

// Tick is one observation of a running countdown.
type Tick struct {
	Remaining int       `json:"remainingMinutes"`
	Progress  float64   `json:"progress"`
	ArrivalBy time.Time `json:"arrivalBy"`
}

// Countdown decrements a minute counter once per interval until it reaches
// zero. Each tick stands for one minute of waiting.
type Countdown struct {
	total    int
	interval time.Duration
	now      func() time.Time
}

// New creates a countdown over minutes. Negative totals count as zero.
func New(minutes int, interval time.Duration) *Countdown {
	if minutes < 0 {
		minutes = 0
	}
	return &Countdown{total: minutes, interval: interval, now: time.Now}
}

// Start runs the countdown in its own goroutine. The first tick carries the
// full wait; the channel is closed after the zero tick or once ctx is done,
// and the underlying ticker is released either way.
func (c *Countdown) Start(ctx context.Context) <-chan Tick {
	ticks := make(chan Tick)

	go func() {
		defer close(ticks)

		remaining := c.total
		progress := 100.0
		if !c.send(ctx, ticks, remaining, progress) || remaining == 0 {
			return
		}

		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		step := 100.0 / float64(c.total)
		for remaining > 0 {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}

			remaining--
			progress -= step
			if progress < 0 || remaining == 0 {
				progress = 0
			}
			if !c.send(ctx, ticks, remaining, progress) {
				return
			}
		}
	}()

	return ticks
}

func (c *Countdown) send(ctx context.Context, ticks chan<- Tick, remaining int, progress float64) bool {
	tick := Tick{
		Remaining: remaining,
		Progress:  progress,
		ArrivalBy: c.now().Add(time.Duration(remaining) * time.Minute).Truncate(time.Minute),
	}
	select {
	case ticks <- tick:
		return true
	case <-ctx.Done():
		return false
	}
}
