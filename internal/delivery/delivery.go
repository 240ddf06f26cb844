// Package delivery defines the contract every transport adapter fulfills.
package delivery

import "context"

// Delivery is a long-running transport (e.g. an HTTP server) managed by the
// application lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
