// Package ndarray implements a multi-dimensional array container that is
// generic over its element storage and over its dimensions.
//
// An ArrayBase pairs a Storage (owned, shared or exclusive memory) with a
// Dimensions descriptor (shape and index arithmetic). Every element access
// resolves the multi-dimensional index to a linear offset through the
// Dimensions, then reads or writes that offset through the Storage.
package ndarray

import (
	"fmt"
	"math"
	"slices"
)

// Dimensions describes the shape of an array and converts
// multi-dimensional indices into linear row-major offsets.
//
// OffsetOf is the only place indices are validated.
type Dimensions interface {
	// Rank returns the number of axes.
	Rank() int
	// Extents returns the size along each axis, axis 0 first.
	Extents() []int
	// Origin returns the lowest valid index along each axis.
	Origin() []int
	// TotalLen returns the number of elements: the product of the
	// extents, 0 if any extent is 0, and 1 for rank 0.
	TotalLen() int
	// Strides returns the row-major stride of every axis.
	Strides() []int
	// OffsetOf returns the linear offset of index, or ErrOutOfBounds if
	// the index has the wrong rank or falls outside any axis.
	OffsetOf(index []int) (int, error)
}

// Shape is a dynamic-rank descriptor with zero-based axes.
// Shape{} is a scalar, Shape{2, 3} a 2x3 matrix.
type Shape []int

// NewShape returns a validated shape with the given extents.
func NewShape(extents ...int) (Shape, error) {
	s := Shape(slices.Clone(extents))
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks that no extent is negative and that the element count
// fits in an int.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("%w: dimension %d has extent %d (must be >= 0)", ErrInvalidShape, i, dim)
		}
	}
	// Walking from the last axis checks every stride, not just the total.
	n := 1
	for i := len(s) - 1; i >= 0; i-- {
		var ok bool
		if n, ok = mulInt(n, s[i]); !ok {
			return fmt.Errorf("%w: element count of %v overflows int", ErrInvalidShape, []int(s))
		}
	}
	return nil
}

// Rank implements Dimensions.
func (s Shape) Rank() int { return len(s) }

// Extents implements Dimensions.
func (s Shape) Extents() []int {
	ext := make([]int, len(s))
	for i, dim := range s {
		ext[i] = max(dim, 0)
	}
	return ext
}

// Origin implements Dimensions.
func (s Shape) Origin() []int { return make([]int, len(s)) }

// TotalLen implements Dimensions. A shape whose element count overflows
// int is empty, like one with a negative extent.
func (s Shape) TotalLen() int {
	n := 1
	for _, dim := range s {
		if dim <= 0 {
			return 0
		}
		var ok bool
		if n, ok = mulInt(n, dim); !ok {
			return 0
		}
	}
	return n
}

// Strides implements Dimensions.
func (s Shape) Strides() []int { return rowMajorStrides(s.Extents()) }

// OffsetOf implements Dimensions.
func (s Shape) OffsetOf(index []int) (int, error) {
	if len(index) != len(s) {
		return 0, rankError(len(index), len(s))
	}
	offset, stride := 0, 1
	for k := len(s) - 1; k >= 0; k-- {
		if index[k] < 0 || index[k] >= s[k] {
			return 0, axisError(k, index[k], Extent(s[k]))
		}
		offset += index[k] * stride
		var ok bool
		if stride, ok = mulInt(stride, s[k]); !ok {
			return 0, overflowError(index)
		}
	}
	return offset, nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	return slices.Equal(s, other)
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	return slices.Clone(s)
}

// mulInt multiplies two non-negative ints, reporting false on overflow.
func mulInt(a, b int) (int, bool) {
	if a != 0 && b > math.MaxInt/a {
		return 0, false
	}
	return a * b, true
}

// freeze returns dims detached from any memory the caller still holds.
// Shape is the only descriptor backed by a slice.
func freeze[D Dimensions](dims D) D {
	if s, ok := any(dims).(Shape); ok {
		if frozen, ok := any(s.Clone()).(D); ok {
			return frozen
		}
	}
	return dims
}

// rowMajorStrides calculates strides for extents: stride[k] is the
// product of all extents after k.
func rowMajorStrides(extents []int) []int {
	strides := make([]int, len(extents))
	if len(extents) == 0 {
		return strides
	}

	strides[len(extents)-1] = 1
	for i := len(extents) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * extents[i+1]
	}
	return strides
}

// unravel converts a linear offset back into the multi-dimensional index
// it came from, writing into idx.
func unravel(offset int, extents, origin, idx []int) {
	for k := len(extents) - 1; k >= 0; k-- {
		idx[k] = origin[k] + offset%extents[k]
		offset /= extents[k]
	}
}

// sameLayout reports whether two descriptors accept the same indices.
func sameLayout(a, b Dimensions) bool {
	return slices.Equal(a.Extents(), b.Extents()) && slices.Equal(a.Origin(), b.Origin())
}
