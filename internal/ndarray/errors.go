package ndarray

import (
	"errors"
	"fmt"
)

// Error kinds. Every fallible operation wraps one of these, so callers
// classify failures with errors.Is.
var (
	ErrOutOfBounds   = errors.New("index out of bounds")
	ErrShapeMismatch = errors.New("shape mismatch")
	ErrNotWritable   = errors.New("storage is not writable")
	ErrInvalidShape  = errors.New("invalid shape")
	ErrBorrowed      = errors.New("buffer is already borrowed")
	ErrReleased      = errors.New("view has been released")
)

func rankError(got, want int) error {
	return fmt.Errorf("%w: expected %d indices, got %d", ErrOutOfBounds, want, got)
}

func axisError(axis, index int, a Axis) error {
	return fmt.Errorf("%w: index %d on axis %d (valid range [%d, %d))",
		ErrOutOfBounds, index, axis, a.Lower(), a.Lower()+a.Len())
}

func overflowError(index []int) error {
	return fmt.Errorf("%w: index %v on a shape whose element count overflows int", ErrOutOfBounds, index)
}

func offsetError(offset, length int) error {
	return fmt.Errorf("%w: offset %d for storage of length %d", ErrOutOfBounds, offset, length)
}

func lengthError(length, total int) error {
	return fmt.Errorf("%w: storage holds %d elements, dimensions require %d", ErrShapeMismatch, length, total)
}
