package background

import (
	"context"
	"time"
)

// Enqueuer sends a named task to the workers
type Enqueuer interface {
	Enqueue(name string) error
}

// Schedule enqueues every task once per interval until ctx is done. A
// failed send is logged and retried on the next tick.
func Schedule(ctx context.Context, e Enqueuer, interval time.Duration, names ...string) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, name := range names {
				if err := e.Enqueue(name); err != nil {
					log.WithError(err).WithField("task", name).Error("enqueue periodic task")
				}
			}
		}
	}
}
