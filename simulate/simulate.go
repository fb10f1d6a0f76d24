// Package simulate stands in for remote calls the storefront does not make.
package simulate

import (
	"context"
	"time"
)

// Wait blocks for d, the latency of the call being simulated, or until ctx
// is done. It returns ctx.Err() when cut short.
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
