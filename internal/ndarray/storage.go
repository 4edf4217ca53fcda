package ndarray

import (
	"iter"
	"slices"
)

// Storage is the linear memory backing an array, addressed by offsets in
// [0, Len()).
type Storage[T any] interface {
	// Len returns the number of elements available.
	Len() int
	// Get returns the element at offset.
	Get(offset int) (T, error)
	// GetMut returns a pointer to the element at offset. Read-only
	// variants fail with ErrNotWritable.
	GetMut(offset int) (*T, error)
	// View returns a read-only view of all elements in offset order.
	View() View[T]
}

// View is a read-only window over a storage buffer, for bulk reads that
// should not pay for a call per element.
type View[T any] struct {
	data []T
}

// Len returns the number of elements in the view.
func (v View[T]) Len() int { return len(v.data) }

// At returns the element at offset i. It panics if i is out of range,
// like a slice index.
func (v View[T]) At(i int) T { return v.data[i] }

// All yields every (offset, element) pair in offset order.
func (v View[T]) All() iter.Seq2[int, T] { return slices.All(v.data) }

// Values yields every element in offset order.
func (v View[T]) Values() iter.Seq[T] { return slices.Values(v.data) }

// Clone copies the viewed elements into a new slice.
func (v View[T]) Clone() []T { return slices.Clone(v.data) }
