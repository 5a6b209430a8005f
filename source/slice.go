package source

import "github.com/Overruler/gs-collections/types"

// Slice implements a source backed by a Go slice.
//
// Slice is also a types.Appender, so it can serve as the target of the
// *Into operations. It must not be appended to while an operation reads it.
type Slice[T any] struct {
	items []T
}

var (
	_ types.RangeSource[int] = (*Slice[int])(nil)
	_ types.Appender[int]    = (*Slice[int])(nil)
)

// NewSlice creates a new slice source.
//
// The source wraps items without copying.
//
// Parameters:
//   - items: Backing elements
//
// Returns:
//   - *Slice[T]: Initialized slice source
//
// Example:
//
//	src := source.NewSlice([]string{"ab", "ba", "cd"})
//	evens, err := parallel.Select(ctx, src, isEven)
func NewSlice[T any](items []T) *Slice[T] {
	return &Slice[T]{items: items}
}

// Of creates a slice source from its arguments.
func Of[T any](items ...T) *Slice[T] {
	return NewSlice(items)
}

// Len returns the number of elements.
func (s *Slice[T]) Len() int {
	return len(s.items)
}

// At returns the element at index i.
func (s *Slice[T]) At(i int) T {
	return s.items[i]
}

// Range calls yield for each element in [start, end) until yield returns false.
func (s *Slice[T]) Range(start, end int, yield func(T) bool) {
	for _, item := range s.items[start:end] {
		if !yield(item) {
			return
		}
	}
}

// AppendAll appends items to the source.
func (s *Slice[T]) AppendAll(items []T) {
	s.items = append(s.items, items...)
}

// Items returns the backing slice.
func (s *Slice[T]) Items() []T {
	return s.items
}
