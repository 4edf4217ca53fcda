package ndarray

import (
	"fmt"
	"sync"
)

// Buffer lends views over a slice it holds and enforces single-writer,
// multiple-reader access: shared views may coexist with each other but
// never with an exclusive one.
//
// Buffer is safe for concurrent use.
type Buffer[T any] struct {
	data []T

	mu      sync.Mutex
	readers int
	writer  bool
}

// NewBuffer takes data as the lent buffer. The caller must not touch data
// directly while views are outstanding.
func NewBuffer[T any](data []T) *Buffer[T] {
	return &Buffer[T]{data: data}
}

// Len returns the number of elements in the buffer.
func (b *Buffer[T]) Len() int { return len(b.data) }

// Share returns a read-only view. It fails with ErrBorrowed while an
// exclusive view is outstanding.
func (b *Buffer[T]) Share() (*Shared[T], error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.writer {
		return nil, fmt.Errorf("%w: exclusive view outstanding", ErrBorrowed)
	}
	b.readers++

	s := Share(b.data)
	s.release = b.releaseReader
	return s, nil
}

// Lend returns a writable view. It fails with ErrBorrowed while any other
// view is outstanding.
func (b *Buffer[T]) Lend() (*Exclusive[T], error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.writer {
		return nil, fmt.Errorf("%w: exclusive view outstanding", ErrBorrowed)
	}
	if b.readers > 0 {
		return nil, fmt.Errorf("%w: %d shared views outstanding", ErrBorrowed, b.readers)
	}
	b.writer = true

	e := Lend(b.data)
	e.release = b.releaseWriter
	return e, nil
}

// Borrowed reports the number of outstanding shared views and whether an
// exclusive view is outstanding.
func (b *Buffer[T]) Borrowed() (readers int, writer bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.readers, b.writer
}

func (b *Buffer[T]) releaseReader() {
	b.mu.Lock()
	b.readers--
	b.mu.Unlock()
}

func (b *Buffer[T]) releaseWriter() {
	b.mu.Lock()
	b.writer = false
	b.mu.Unlock()
}
