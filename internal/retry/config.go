// Package retry resends requests that fail for transient reasons, backing
// off exponentially between attempts.
package retry

import (
	"math"
	"math/rand"
	"time"
)

// Config controls how a call is retried.
type Config struct {
	// MaxAttempts counts the first try. Values below 1 mean a single try.
	MaxAttempts int

	// InitialDelay is the wait after the first failed attempt.
	InitialDelay time.Duration

	// MaxDelay caps the computed wait. Zero means no cap.
	MaxDelay time.Duration

	// Multiplier grows the wait after every further failure.
	Multiplier float64

	// Jitter spreads waits by up to this fraction either way (0.1 = ±10%).
	Jitter float64

	// ShouldRetry overrides IsTransient when set.
	ShouldRetry func(error) bool
}

// DefaultConfig backs off from one second to thirty over five attempts,
// with 10% jitter.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:  5,
		InitialDelay: time.Second,
		MaxDelay:     30 * time.Second,
		Multiplier:   2,
		Jitter:       0.1,
	}
}

// Disabled allows exactly one attempt.
func Disabled() Config {
	return Config{MaxAttempts: 1}
}

// Enabled reports whether a failed call may be tried again.
func (c Config) Enabled() bool {
	return c.MaxAttempts > 1
}

// Delay is the wait after the given failed attempt (0-indexed):
// min(MaxDelay, InitialDelay * Multiplier^attempt), then jittered.
func (c Config) Delay(attempt int) time.Duration {
	attempt = max(attempt, 0)

	wait := float64(c.InitialDelay) * math.Pow(c.Multiplier, float64(attempt))
	if c.MaxDelay > 0 {
		wait = math.Min(wait, float64(c.MaxDelay))
	}
	if c.Jitter > 0 {
		wait *= 1 + c.Jitter*(2*rand.Float64()-1)
	}
	return time.Duration(wait)
}

func (c Config) attempts() int {
	return max(c.MaxAttempts, 1)
}

func (c Config) retryable(err error) bool {
	if c.ShouldRetry != nil {
		return c.ShouldRetry(err)
	}
	return IsTransient(err)
}
