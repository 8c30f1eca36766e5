package server

import "context"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
type Server interface {
	// Run starts serving and blocks until ctx is cancelled or serving fails.
	// Cancelling ctx shuts the server down gracefully.
	Run(ctx context.Context) error
}
