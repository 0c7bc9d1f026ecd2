// Package workers provides abstractions for managing and running
// background workers and bounded CPU pools in the application.
// It defines the Worker interface, a Workers aggregate that runs several
// workers in a unified way, and a semaphore-backed Pool.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
// Run blocks until ctx is cancelled.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}
