// Package breaker wraps fallible outbound calls with a failure-counting
// circuit breaker so a struggling upstream is given room to recover instead
// of being hammered by every background task at once.
package breaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"

	"encore.dev/rlog"
)

// ErrOpen is returned when a call is short-circuited without being attempted.
var ErrOpen = errors.New("circuit breaker open: call rejected")

const failureThreshold = 5

type state int

const (
	stateClosed state = iota
	stateOpen
	stateHalfOpen
)

// Breaker is a closed/open/half-open circuit breaker. It opens after five
// consecutive failures and probes recovery after an exponential backoff
// window starting at 10s and capped at 60s. Callers classify outcomes:
// transport errors and non-2xx responses are failures, an application-level
// "not found" is a success.
type Breaker struct {
	name string

	mu        sync.Mutex
	state     state
	failures  int
	openUntil time.Time
	schedule  *backoff.ExponentialBackOff

	now func() time.Time
}

func New(name string) *Breaker {
	schedule := backoff.NewExponentialBackOff()
	schedule.InitialInterval = 10 * time.Second
	schedule.MaxInterval = 60 * time.Second
	schedule.Multiplier = 2
	schedule.RandomizationFactor = 0
	schedule.MaxElapsedTime = 0
	schedule.Reset()

	return &Breaker{
		name:     name,
		schedule: schedule,
		now:      time.Now,
	}
}

// Call runs op unless the breaker is open, recording the outcome.
func (b *Breaker) Call(ctx context.Context, op func(ctx context.Context) error) error {
	if !b.allow() {
		rlog.Warn("circuit breaker rejected call", "breaker", b.name)
		return ErrOpen
	}

	err := op(ctx)
	b.record(err == nil)
	return err
}

// allow reports whether a call may proceed. The first caller after the open
// window elapses becomes the half-open probe; everyone else is rejected until
// the probe settles.
func (b *Breaker) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case stateClosed:
		return true
	case stateOpen:
		if b.now().Before(b.openUntil) {
			return false
		}
		b.state = stateHalfOpen
		return true
	default: // probe in flight
		return false
	}
}

func (b *Breaker) record(success bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if success {
		if b.state != stateClosed {
			rlog.Info("circuit breaker closed after successful probe", "breaker", b.name)
		}
		b.state = stateClosed
		b.failures = 0
		b.schedule.Reset()
		return
	}

	if b.state == stateHalfOpen {
		b.trip()
		return
	}

	b.failures++
	if b.failures >= failureThreshold {
		b.trip()
	}
}

func (b *Breaker) trip() {
	window := b.schedule.NextBackOff()
	b.state = stateOpen
	b.openUntil = b.now().Add(window)
	rlog.Warn("circuit breaker opened", "breaker", b.name, "retry_after", window)
}
