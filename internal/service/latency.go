package service

import (
	"context"
	"time"
)

// simulateLatency sleeps for d to model the network delay of a remote
// backend. Purely cosmetic for UI spinners; no retry or timeout wraps it.
func simulateLatency(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
