// Package notify runs fire-and-forget tasks such as transactional email
// outside the request lifecycle.
package notify

import (
	"cleanlyquote/internal/usecase/interfaces"
	"context"
	"sync"
	"time"

	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/panics"
	"go.uber.org/zap"
)

const DefaultTaskTimeout = 30 * time.Second

// Dispatcher implements INotifier. Tasks run on a detached context with a
// timeout; their errors and panics are logged, never returned.
type Dispatcher struct {
	wg      conc.WaitGroup
	timeout time.Duration
	log     *zap.SugaredLogger

	mu     sync.RWMutex
	closed bool
}

var _ interfaces.INotifier = (*Dispatcher)(nil)

func NewDispatcher(timeout time.Duration, log *zap.SugaredLogger) *Dispatcher {
	if timeout <= 0 {
		timeout = DefaultTaskTimeout
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Dispatcher{timeout: timeout, log: log}
}

func (d *Dispatcher) Dispatch(name string, task func(ctx context.Context) error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		d.log.Warnw("[notify][dispatcher] task dropped after shutdown", "task", name)
		return
	}

	d.wg.Go(func() {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		var catcher panics.Catcher
		catcher.Try(func() {
			if err := task(ctx); err != nil {
				d.log.Warnw("[notify][dispatcher] task failed", "task", name, "error", err)
			}
		})
		if r := catcher.Recovered(); r != nil {
			d.log.Errorw("[notify][dispatcher] task panicked", "task", name, "panic", r.Value, "stack", string(r.Stack))
		}
	})
}

// Wait stops accepting tasks and blocks until running ones finish or ctx ends.
func (d *Dispatcher) Wait(ctx context.Context) error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
