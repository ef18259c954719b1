// Package delivery defines the contract every transport front of the
// application fulfils.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, terminal UI) started by
// the application container.
type Delivery interface {
	Serve(ctx context.Context) error
}
