package seedui

import "context"
import "time"

// Time source for animations. Tests replace it to step scrollers
// without waiting.
type Clock interface {
	Now() time.Time

	// Blocks for the given duration or until the context is done,
	// in which case the context error is returned.
	Sleep(ctx context.Context, duration time.Duration) error
}

// The real clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

func (SystemClock) Sleep(ctx context.Context, duration time.Duration) error {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
