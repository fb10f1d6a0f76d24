// Package background runs fire-and-forget work outside the request that
// triggered it, and lets the server wait for it before exiting.
package background

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

var ErrShuttingDown = errors.New("background: shutting down")

type Background struct {
	log logrus.FieldLogger
	wg  sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

func New(log logrus.FieldLogger) *Background {
	return &Background{log: log}
}

// Go runs fn on its own goroutine. Panics are recovered and logged. After
// Shutdown has been called no new work is accepted.
func (b *Background) Go(name string, fn func()) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrShuttingDown
	}

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		defer func() {
			if rec := recover(); rec != nil {
				b.log.WithFields(logrus.Fields{
					"task":  name,
					"panic": fmt.Sprint(rec),
				}).Error("background task panicked")
			}
		}()

		fn()
	}()

	return nil
}

// Shutdown stops accepting work and waits for running tasks to finish or for
// ctx to end, whichever comes first.
func (b *Background) Shutdown(ctx context.Context) error {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()

	done := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for background tasks: %w", ctx.Err())
	}
}
