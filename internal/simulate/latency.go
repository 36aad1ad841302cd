// Package simulate provides the deferred-timer stand-in for real network
// I/O used by the token issuer and the catalog provider.
package simulate

import (
	"context"
	"time"
)

// Latency blocks for d or until ctx is cancelled, whichever comes first.
// A cancelled context returns its error so callers can abandon the
// in-flight operation without producing a result.
func Latency(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
