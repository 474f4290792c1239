// internal/event/queue.go
package event

// Queue is a per-tick FIFO of typed messages between systems.
// Pushing while a consumer is draining lands in the next Drain.
type Queue[T any] struct {
	items []T
}

func (q *Queue[T]) Push(items ...T) {
	q.items = append(q.items, items...)
}

// Drain returns every pending message and empties the queue.
func (q *Queue[T]) Drain() []T {
	items := q.items
	q.items = nil
	return items
}

func (q *Queue[T]) Len() int { return len(q.items) }

// Queues are the message channels of one game world.
type Queues struct {
	Apply   Queue[TryApplyStatus]
	Damage  Queue[TryDamageToEnemy]
	Applied Queue[StatusAppliedData]
	Removed Queue[StatusRemovedData]
	Fired   Queue[TowerFiredData]
}

func NewQueues() *Queues {
	return &Queues{}
}
