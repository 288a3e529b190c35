// Package delivery holds the outer surfaces of the application.
package delivery

import "context"

// Delivery is a long-running server started by the main package.
type Delivery interface {
	Serve(ctx context.Context) error
}
