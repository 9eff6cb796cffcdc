// Package delivery defines the contract every transport (HTTP, worker, ...) satisfies.
package delivery

import "context"

// Delivery is a long-running transport serving requests until ctx is done
// or the fx lifecycle stops it.
type Delivery interface {
	Serve(ctx context.Context) error
}
