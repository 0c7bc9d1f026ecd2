// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"

	"golang.org/x/sync/semaphore"
)

// Pool bounds the number of concurrently running CPU-heavy jobs, such as
// password hashing. Callers wait for a free slot or for ctx to end.
type Pool struct {
	sem *semaphore.Weighted
}

// NewPool creates a Pool with the given number of slots. A size below one is
// treated as one.
func NewPool(size int) *Pool {
	if size < 1 {
		size = 1
	}
	return &Pool{sem: semaphore.NewWeighted(int64(size))}
}

// Do runs fn once a slot is available. It returns ctx.Err() if the context
// ends before a slot frees up; fn is not run in that case.
func (p *Pool) Do(ctx context.Context, fn func()) error {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("waiting for a worker slot: %w", err)
	}
	defer p.sem.Release(1)

	fn()
	return nil
}
