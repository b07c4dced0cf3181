package rescache

import (
	"sync"

	"go.trai.ch/rescache/internal/core/domain"
)

// updateQueue is the multi-producer, single-consumer queue of reports.
type updateQueue struct {
	mu    sync.Mutex
	items []domain.ResourceUpdate
}

func (q *updateQueue) push(u domain.ResourceUpdate) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, u)
}

// drain removes and returns every queued update in push order.
func (q *updateQueue) drain() []domain.ResourceUpdate {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.items
	q.items = nil
	return out
}
