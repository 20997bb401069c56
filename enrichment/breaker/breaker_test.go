package breaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var errUpstream = errors.New("upstream exploded")

func failing(ctx context.Context) error { return errUpstream }
func succeeding(ctx context.Context) error { return nil }

func newTestBreaker(now *time.Time) *Breaker {
	b := New("test")
	b.now = func() time.Time { return *now }
	return b
}

func TestBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	b := newTestBreaker(&now)
	ctx := context.Background()

	for i := 0; i < failureThreshold-1; i++ {
		assert.ErrorIs(t, b.Call(ctx, failing), errUpstream)
	}

	// Still closed one failure short of the threshold.
	assert.NoError(t, b.Call(ctx, succeeding))

	// A success resets the count, so five more failures are needed.
	for i := 0; i < failureThreshold; i++ {
		assert.ErrorIs(t, b.Call(ctx, failing), errUpstream)
	}
	assert.ErrorIs(t, b.Call(ctx, failing), ErrOpen)
}

func TestBreakerShortCircuitsWithoutCalling(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	b := newTestBreaker(&now)
	ctx := context.Background()

	for i := 0; i < failureThreshold; i++ {
		_ = b.Call(ctx, failing)
	}

	called := false
	err := b.Call(ctx, func(ctx context.Context) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrOpen)
	assert.False(t, called)
}

func TestBreakerProbeSuccessCloses(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	b := newTestBreaker(&now)
	ctx := context.Background()

	for i := 0; i < failureThreshold; i++ {
		_ = b.Call(ctx, failing)
	}
	assert.ErrorIs(t, b.Call(ctx, failing), ErrOpen)

	// First open window is 10s.
	now = now.Add(11 * time.Second)
	assert.NoError(t, b.Call(ctx, succeeding))

	// Closed again: calls flow normally.
	assert.NoError(t, b.Call(ctx, succeeding))
}

func TestBreakerProbeFailureEscalatesWindow(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	b := newTestBreaker(&now)
	ctx := context.Background()

	for i := 0; i < failureThreshold; i++ {
		_ = b.Call(ctx, failing)
	}

	// Probe after the first 10s window fails; the window doubles to 20s.
	now = now.Add(11 * time.Second)
	assert.ErrorIs(t, b.Call(ctx, failing), errUpstream)

	now = now.Add(15 * time.Second)
	assert.ErrorIs(t, b.Call(ctx, failing), ErrOpen)

	now = now.Add(6 * time.Second)
	assert.ErrorIs(t, b.Call(ctx, failing), errUpstream)
}

func TestBreakerSuccessResetsBackoffSchedule(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	b := newTestBreaker(&now)
	ctx := context.Background()

	for i := 0; i < failureThreshold; i++ {
		_ = b.Call(ctx, failing)
	}
	now = now.Add(11 * time.Second)
	assert.NoError(t, b.Call(ctx, succeeding))

	// After recovery the schedule starts over at 10s.
	for i := 0; i < failureThreshold; i++ {
		_ = b.Call(ctx, failing)
	}
	now = now.Add(11 * time.Second)
	assert.ErrorIs(t, b.Call(ctx, failing), errUpstream)
}
