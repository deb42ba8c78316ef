// Package search drives the proof engine: a generic best-first
// priority-queue driver, the proof search model over partial
// solutions, goal refinement, the finaliser, and the end-to-end
// FindTerm pipeline.
package search

import (
	"container/heap"
	"errors"

	"github.com/hashicorp/go-hclog"
)

// SearchModel abstracts the state space explored by SearchControl.
type SearchModel[T any] interface {
	// Done reports whether the state is a solution.
	Done(x T) bool
	// Next returns the successors of a state, in exploration order.
	Next(x T) []T
	// Weight is the queue priority; higher is better.
	Weight(x T) int
	// Finalize post-processes an accepted solution.
	Finalize(x T) (T, error)
	// Key is the de-duplication hash of a state.
	Key(x T) string
	// Equal resolves key collisions: states with equal keys are only
	// merged when structurally equal.
	Equal(a, b T) bool
}

// SearchControl is a best-first driver with stable FIFO ordering among
// equal priorities.
type SearchControl[T any] struct {
	Model  SearchModel[T]
	Logger hclog.Logger
}

type queueItem[T any] struct {
	state  T
	weight int
	seq    int
}

type searchQueue[T any] []queueItem[T]

func (q searchQueue[T]) Len() int { return len(q) }

func (q searchQueue[T]) Less(i, j int) bool {
	if q[i].weight != q[j].weight {
		return q[i].weight > q[j].weight
	}
	return q[i].seq < q[j].seq
}

func (q searchQueue[T]) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *searchQueue[T]) Push(x any) { *q = append(*q, x.(queueItem[T])) }

func (q *searchQueue[T]) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// Search explores the state space from start until a successor
// satisfies Done, returning its finalised form. It fails when the
// queue empties.
func (c SearchControl[T]) Search(start T) (T, error) {
	logger := c.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	queue := &searchQueue[T]{}
	heap.Init(queue)
	seen := map[string][]T{}
	seq := 0

	push := func(x T) {
		key := c.Model.Key(x)
		for _, prev := range seen[key] {
			if c.Model.Equal(prev, x) {
				return
			}
		}
		seen[key] = append(seen[key], x)
		heap.Push(queue, queueItem[T]{state: x, weight: c.Model.Weight(x), seq: seq})
		seq++
	}
	push(start)

	for queue.Len() > 0 {
		current := heap.Pop(queue).(queueItem[T])
		logger.Debug("expanding state", "weight", current.weight, "queued", queue.Len())
		next := c.Model.Next(current.state)
		for _, x := range next {
			if c.Model.Done(x) {
				logger.Debug("solution found", "explored", seq)
				return c.Model.Finalize(x)
			}
		}
		for _, x := range next {
			push(x)
		}
	}
	var zero T
	return zero, errors.New("Exhausted all search options.")
}
