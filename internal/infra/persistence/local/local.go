// Package local implements every repository interface over the client's own
// durable storage. It is the persistence backend of mock mode: a fixed seed
// plus overlays in localstore, no network anywhere. IDs come from a
// persisted monotonic counter so rapid successive creates can never collide.
package local

import (
	"context"
	"time"
)

// Storage document names. Fixed: changing them would orphan existing local
// state.
const (
	projectsDoc    = "starfund_projects"
	investmentsDoc = "starfund_investments"
	usersDoc       = "starfund_users"
)

// wait simulates processing latency so loading states behave like the remote
// path. A zero delay returns immediately.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
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
