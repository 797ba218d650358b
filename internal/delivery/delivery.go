// Package delivery defines the contract every transport server fulfills.
package delivery

import "context"

// Delivery is a transport-facing server that can be started by the runtime.
type Delivery interface {
	// Serve blocks running the server until it stops or fails.
	Serve(ctx context.Context) error
}
