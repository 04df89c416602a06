// Package delivery defines the contract every transport entrypoint satisfies.
package delivery

import "context"

// Delivery is a serve-until-stopped transport (HTTP today).
// Implementations register their own shutdown through the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
