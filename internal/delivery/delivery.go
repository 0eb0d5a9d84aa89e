// Package delivery defines the contract every transport front end satisfies.
package delivery

import "context"

// Delivery is a long-running request entry point (HTTP server and the like).
// Serve blocks until the delivery stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
