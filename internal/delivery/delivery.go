// Package delivery defines the entrypoints through which the application
// serves its callers.
package delivery

import "context"

// Delivery is a long-running serving surface (HTTP server, background worker).
// Serve blocks until the surface stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
