// Package delivery defines the transport-facing surface of the application.
package delivery

import "context"

// Delivery is a long-running transport server (HTTP API, worker push
// endpoint). Serve blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
