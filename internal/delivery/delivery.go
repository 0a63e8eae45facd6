// Package delivery defines the shared contract for transport servers.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, worker endpoint) started
// by the application entrypoint. Implementations register their shutdown via
// fx lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
