package core

import (
	"context"
	"time"
)

// TimeProvider abstracts the clock so transaction dates and latencies can be pinned in tests
type TimeProvider interface {
	// Now returns the current time in UTC
	Now() time.Time
	// Since returns the time elapsed since t
	Since(t time.Time) time.Duration
	// WithTimeout derives a context that is canceled after timeout
	WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}
