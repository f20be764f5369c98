// Package delivery defines the contract every server-like process component
// implements, regardless of transport.
package delivery

import "context"

// Delivery is a long-running serving component (HTTP API, batch worker).
// Serve blocks until the component stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
