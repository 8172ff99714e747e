package operator

import (
	"context"
	"sync"

	"github.com/altamira-networks/expense-server/internal/operator/actions"
	"github.com/altamira-networks/expense-server/internal/storage"
)

// OperatorDelegator fans incoming actions out to a pool of Operator workers.
// All writes to storage go through here so that each action runs in its own
// transaction.
type OperatorDelegator struct {
	queue      chan ActionItem
	numWorkers int
	wg         sync.WaitGroup
	stopOnce   sync.Once
}

func NewOperatorDelegator(numWorkers int) *OperatorDelegator {
	return &OperatorDelegator{
		queue:      make(chan ActionItem, numWorkers*2),
		numWorkers: numWorkers,
	}
}

// Start spins up the worker pool. Must be called before Process.
func (d *OperatorDelegator) Start(s *storage.Storage) {
	for i := 0; i < d.numWorkers; i++ {
		worker := NewOperator(s, d.queue)
		d.wg.Add(1)
		go func() {
			defer d.wg.Done()
			worker.Run()
		}()
	}
}

// Stop closes the queue and waits for in-flight actions to finish.
func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		close(d.queue)
	})
	d.wg.Wait()
}

// Process enqueues the action and blocks until a worker has performed it or
// the context is cancelled.
func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) error {
	respCh := make(chan ActionItemResponse, 1)

	item := ActionItem{
		ctx:      ctx,
		action:   action,
		response: respCh,
	}

	select {
	case d.queue <- item:
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case resp := <-respCh:
		return resp.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
