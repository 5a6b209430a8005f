package combine

import "sync"

// Composite collects batch results in completion order.
//
// Unlike the other combiners, Composite is written to by units concurrently.
// It backs unordered select/collect, where a finished batch publishes its
// part as soon as it completes instead of waiting for its slot.
type Composite[T any] struct {
	mu    sync.Mutex
	parts [][]T
	size  int
}

// NewComposite creates a composite expecting up to batches parts.
func NewComposite[T any](batches int) *Composite[T] {
	return &Composite[T]{parts: make([][]T, 0, batches)}
}

// Add publishes a finished part. Empty parts are dropped.
func (c *Composite[T]) Add(part []T) {
	if len(part) == 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.parts = append(c.parts, part)
	c.size += len(part)
}

// Len returns the number of elements published so far.
func (c *Composite[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.size
}

// Parts returns the published parts in completion order.
func (c *Composite[T]) Parts() [][]T {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([][]T, len(c.parts))
	copy(out, c.parts)

	return out
}

// Flatten returns every published element, part by part in completion order.
func (c *Composite[T]) Flatten() []T {
	return Concat(c.Parts())
}
