package ndarray

import "fmt"

// Owned is storage that exclusively holds its buffer. The buffer lives
// exactly as long as the Owned value does.
type Owned[T any] struct {
	data []T
}

// NewOwned allocates n elements, each set to value. A negative count
// allocates an empty buffer.
func NewOwned[T any](n int, value T) *Owned[T] {
	data := make([]T, max(n, 0))
	for i := range data {
		data[i] = value
	}
	return &Owned[T]{data: data}
}

// OwnedFrom allocates n elements and copies values into them. It fails
// with ErrShapeMismatch unless len(values) == n.
func OwnedFrom[T any](n int, values []T) (*Owned[T], error) {
	if len(values) != n {
		return nil, fmt.Errorf("%w: %d elements required, got %d", ErrShapeMismatch, n, len(values))
	}
	data := make([]T, n)
	copy(data, values)
	return &Owned[T]{data: data}, nil
}

// OwnedFunc allocates n elements, setting element i to f(i).
func OwnedFunc[T any](n int, f func(offset int) T) *Owned[T] {
	data := make([]T, max(n, 0))
	for i := range data {
		data[i] = f(i)
	}
	return &Owned[T]{data: data}
}

// Len implements Storage.
func (o *Owned[T]) Len() int { return len(o.data) }

// Get implements Storage.
func (o *Owned[T]) Get(offset int) (T, error) {
	if offset < 0 || offset >= len(o.data) {
		var zero T
		return zero, offsetError(offset, len(o.data))
	}
	return o.data[offset], nil
}

// GetMut implements Storage.
func (o *Owned[T]) GetMut(offset int) (*T, error) {
	if offset < 0 || offset >= len(o.data) {
		return nil, offsetError(offset, len(o.data))
	}
	return &o.data[offset], nil
}

// View implements Storage.
func (o *Owned[T]) View() View[T] { return View[T]{data: o.data} }
