package seeder

import (
	"context"
	"time"

	"github.com/fatih/color"

	"github.com/taskloom/taskseed/internal/store"
)

const probeAttempts = 3

var probeDelay = 2 * time.Second

// probeConnection verifies the store is reachable before any destructive
// work starts. Partial deletes against a flaky store are unrecoverable, so
// the pipeline never proceeds past an unconfirmed connection.
func probeConnection(ctx context.Context, st store.Store) error {
	var lastErr error
	for attempt := 1; attempt <= probeAttempts; attempt++ {
		err := st.Ping(ctx)
		if err == nil {
			color.Green("🔌 Database connection verified")
			return nil
		}
		lastErr = err
		color.Yellow("⚠️  Connection attempt %d/%d failed: %v", attempt, probeAttempts, err)

		if attempt < probeAttempts {
			select {
			case <-time.After(probeDelay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return &ConnectivityError{Attempts: probeAttempts, Err: lastErr}
}
