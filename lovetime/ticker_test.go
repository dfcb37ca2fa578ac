package lovetime

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// steppingClock advances by one second on every read.
type steppingClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *steppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

func TestTickerRunStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	reference := at(2022, 11, 29, 22, 6, 0)
	calc, err := NewCalculatorWithClock(reference, &steppingClock{now: reference})
	require.NoError(t, err)

	ticker := NewTicker(calc, 5*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	var got []Breakdown
	err = ticker.Run(ctx, func(b Breakdown) {
		got = append(got, b)
		if len(got) == 3 {
			cancel()
		}
	})

	assert.True(t, errors.Is(err, context.Canceled))
	require.Len(t, got, 3)
	assert.Equal(t, Breakdown{Seconds: 1}, got[0])
	assert.Equal(t, Breakdown{Seconds: 2}, got[1])
	assert.Equal(t, Breakdown{Seconds: 3}, got[2])
}

func TestTickerRunCancelledContext(t *testing.T) {
	calc, err := NewCalculator(at(2022, 11, 29, 22, 6, 0))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err = NewTicker(calc, time.Second).Run(ctx, func(Breakdown) { called = true })
	assert.True(t, errors.Is(err, context.Canceled))
	assert.False(t, called)
}

func TestNewTickerDefaultInterval(t *testing.T) {
	calc, err := NewCalculator(at(2022, 11, 29, 22, 6, 0))
	require.NoError(t, err)

	assert.Equal(t, DefaultTickInterval, NewTicker(calc, 0).Interval())
	assert.Equal(t, 2*time.Second, NewTicker(calc, 2*time.Second).Interval())
}
