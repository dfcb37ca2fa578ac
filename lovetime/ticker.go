package lovetime

import (
	"context"
	"time"
)

// DefaultTickInterval is how often a live counter refreshes.
const DefaultTickInterval = time.Second

// Ticker recomputes a Calculator's breakdown on a fixed interval.
type Ticker struct {
	calc     *Calculator
	interval time.Duration
}

// NewTicker returns a ticker for calc. A non-positive interval uses
// DefaultTickInterval.
func NewTicker(calc *Calculator, interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Ticker{calc: calc, interval: interval}
}

// Interval returns the refresh interval.
func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// Run calls fn with a fresh breakdown immediately and then once per interval
// until ctx is done. It returns ctx.Err().
func (t *Ticker) Run(ctx context.Context, fn func(Breakdown)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fn(t.calc.Now())

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := ctx.Err(); err != nil {
				return err
			}
			fn(t.calc.Now())
		}
	}
}
