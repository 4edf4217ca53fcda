package ndarray

import "sync/atomic"

// Shared is a read-only view into a buffer owned elsewhere. Any number of
// Shared views may coexist over one buffer.
type Shared[T any] struct {
	data     []T
	released atomic.Bool
	release  func()
}

// Share wraps buf as read-only storage. The length is fixed at wrap time.
// Share performs no alias tracking; use Buffer.Share for that.
func Share[T any](buf []T) *Shared[T] {
	return &Shared[T]{data: buf[:len(buf):len(buf)]}
}

// Len implements Storage.
func (s *Shared[T]) Len() int { return len(s.data) }

// Get implements Storage.
func (s *Shared[T]) Get(offset int) (T, error) {
	var zero T
	if s.released.Load() {
		return zero, ErrReleased
	}
	if offset < 0 || offset >= len(s.data) {
		return zero, offsetError(offset, len(s.data))
	}
	return s.data[offset], nil
}

// GetMut implements Storage. Shared views are never writable.
func (s *Shared[T]) GetMut(int) (*T, error) {
	return nil, ErrNotWritable
}

// View implements Storage. A released view is empty.
func (s *Shared[T]) View() View[T] {
	if s.released.Load() {
		return View[T]{}
	}
	return View[T]{data: s.data}
}

// Release ends the borrow. Views created by Buffer.Share must be released
// before the buffer can be lent exclusively. Release is idempotent.
func (s *Shared[T]) Release() {
	if s.released.Swap(true) {
		return
	}
	if s.release != nil {
		s.release()
	}
}

// Exclusive is a writable view into a buffer owned elsewhere. While it
// exists no other view may alias the buffer.
type Exclusive[T any] struct {
	data     []T
	released atomic.Bool
	release  func()
}

// Lend wraps buf as writable storage. The length is fixed at wrap time.
// The caller guarantees nothing else aliases buf; Buffer.Lend (or
// BorrowMut for a whole array) is the checked path.
func Lend[T any](buf []T) *Exclusive[T] {
	return &Exclusive[T]{data: buf[:len(buf):len(buf)]}
}

// Len implements Storage.
func (e *Exclusive[T]) Len() int { return len(e.data) }

// Get implements Storage.
func (e *Exclusive[T]) Get(offset int) (T, error) {
	var zero T
	if e.released.Load() {
		return zero, ErrReleased
	}
	if offset < 0 || offset >= len(e.data) {
		return zero, offsetError(offset, len(e.data))
	}
	return e.data[offset], nil
}

// GetMut implements Storage.
func (e *Exclusive[T]) GetMut(offset int) (*T, error) {
	if e.released.Load() {
		return nil, ErrReleased
	}
	if offset < 0 || offset >= len(e.data) {
		return nil, offsetError(offset, len(e.data))
	}
	return &e.data[offset], nil
}

// View implements Storage. A released view is empty.
func (e *Exclusive[T]) View() View[T] {
	if e.released.Load() {
		return View[T]{}
	}
	return View[T]{data: e.data}
}

// Release ends the borrow. Release is idempotent.
func (e *Exclusive[T]) Release() {
	if e.released.Swap(true) {
		return
	}
	if e.release != nil {
		e.release()
	}
}
