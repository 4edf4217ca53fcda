// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"github.com/born-ml/ndarray/internal/ndarray"
)

// Error kinds.
var (
	ErrOutOfBounds   = ndarray.ErrOutOfBounds
	ErrShapeMismatch = ndarray.ErrShapeMismatch
	ErrNotWritable   = ndarray.ErrNotWritable
	ErrInvalidShape  = ndarray.ErrInvalidShape
	ErrBorrowed      = ndarray.ErrBorrowed
	ErrReleased      = ndarray.ErrReleased
)

// Dimensions describes an array's shape and maps indices to row-major
// linear offsets.
type Dimensions = ndarray.Dimensions

// Shape is a dynamic-rank descriptor with zero-based axes.
// Example: Shape{2, 3, 4} represents a 2x3x4 array.
type Shape = ndarray.Shape

// Axis describes one axis of a fixed-rank descriptor.
type Axis = ndarray.Axis

// Extent is a zero-based axis of the given length.
type Extent = ndarray.Extent

// Span is an axis over the half-open index range [Lo, Hi).
type Span = ndarray.Span

// Fixed-rank descriptors.
type (
	Dim0               = ndarray.Dim0
	Dim1[A Axis]       = ndarray.Dim1[A]
	Dim2[A, B Axis]    = ndarray.Dim2[A, B]
	Dim3[A, B, C Axis] = ndarray.Dim3[A, B, C]
)

// Storage is the linear memory backing an array.
type Storage[T any] = ndarray.Storage[T]

// View is a read-only view of a storage buffer.
type View[T any] = ndarray.View[T]

// Storage variants.
type (
	Owned[T any]     = ndarray.Owned[T]
	Shared[T any]    = ndarray.Shared[T]
	Exclusive[T any] = ndarray.Exclusive[T]
)

// Buffer lends shared and exclusive views over a slice, enforcing
// single-writer, multiple-reader access.
type Buffer[T any] = ndarray.Buffer[T]

// ArrayBase is a multi-dimensional array over storage S with shape D.
type ArrayBase[T any, S Storage[T], D Dimensions] = ndarray.ArrayBase[T, S, D]

// Array is an array with owned storage.
type Array[T any, D Dimensions] = ndarray.Array[T, D]

// Dimension constructors

// NewShape returns a validated dynamic-rank shape.
func NewShape(extents ...int) (Shape, error) { return ndarray.NewShape(extents...) }

// NewSpan returns the axis [lo, hi).
func NewSpan(lo, hi int) (Span, error) { return ndarray.NewSpan(lo, hi) }

// D1 returns a rank-1 descriptor.
func D1[A Axis](x A) Dim1[A] { return ndarray.D1(x) }

// D2 returns a rank-2 descriptor.
func D2[A, B Axis](x A, y B) Dim2[A, B] { return ndarray.D2(x, y) }

// D3 returns a rank-3 descriptor.
func D3[A, B, C Axis](x A, y B, z C) Dim3[A, B, C] { return ndarray.D3(x, y, z) }

// Ix1 returns a zero-based vector descriptor.
func Ix1(n int) Dim1[Extent] { return ndarray.Ix1(n) }

// Ix2 returns a zero-based matrix descriptor.
func Ix2(rows, cols int) Dim2[Extent, Extent] { return ndarray.Ix2(rows, cols) }

// Ix3 returns a zero-based rank-3 descriptor.
func Ix3(x, y, z int) Dim3[Extent, Extent, Extent] { return ndarray.Ix3(x, y, z) }

// Storage constructors

// NewOwned allocates n elements set to value.
func NewOwned[T any](n int, value T) *Owned[T] { return ndarray.NewOwned(n, value) }

// OwnedFrom allocates n elements copied from values.
func OwnedFrom[T any](n int, values []T) (*Owned[T], error) { return ndarray.OwnedFrom(n, values) }

// OwnedFunc allocates n elements, element i set to f(i).
func OwnedFunc[T any](n int, f func(offset int) T) *Owned[T] { return ndarray.OwnedFunc(n, f) }

// Share wraps buf as read-only storage without alias tracking.
func Share[T any](buf []T) *Shared[T] { return ndarray.Share(buf) }

// Lend wraps buf as writable storage without alias tracking.
func Lend[T any](buf []T) *Exclusive[T] { return ndarray.Lend(buf) }

// NewBuffer creates a lender over data.
func NewBuffer[T any](data []T) *Buffer[T] { return ndarray.NewBuffer(data) }

// Array constructors

// New pairs storage with dimensions, failing with ErrShapeMismatch if
// their lengths differ.
//
// Example:
//
//	a, err := ndarray.New[int](ndarray.Share(buf), ndarray.Shape{4})
func New[T any, S Storage[T], D Dimensions](data S, dims D) (*ArrayBase[T, S, D], error) {
	return ndarray.New[T](data, dims)
}

// FromElem creates an owned array filled with value.
//
// Example:
//
//	a := ndarray.FromElem(ndarray.Ix2(2, 6), 42)
func FromElem[T any, D Dimensions](dims D, value T) *Array[T, D] {
	return ndarray.FromElem(dims, value)
}

// Zeros creates an owned array of zero values.
func Zeros[T any, D Dimensions](dims D) *Array[T, D] { return ndarray.Zeros[T](dims) }

// FromSlice creates an owned array from row-major values.
//
// Example:
//
//	a, err := ndarray.FromSlice(ndarray.Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6})
func FromSlice[T any, D Dimensions](dims D, values []T) (*Array[T, D], error) {
	return ndarray.FromSlice(dims, values)
}

// FromFunc creates an owned array with each element computed from its index.
func FromFunc[T any, D Dimensions](dims D, f func(index []int) T) *Array[T, D] {
	return ndarray.FromFunc(dims, f)
}

// ViewOf wraps buf as a read-only array.
func ViewOf[T any, D Dimensions](dims D, buf []T) (*ArrayBase[T, *Shared[T], D], error) {
	return ndarray.ViewOf(dims, buf)
}

// ViewMutOf wraps buf as a writable array. Aliasing is not checked; see
// BorrowMut.
func ViewMutOf[T any, D Dimensions](dims D, buf []T) (*ArrayBase[T, *Exclusive[T], D], error) {
	return ndarray.ViewMutOf(dims, buf)
}

// Borrow returns a read-only array over a shared view of b.
func Borrow[T any, D Dimensions](b *Buffer[T], dims D) (*ArrayBase[T, *Shared[T], D], error) {
	return ndarray.Borrow(b, dims)
}

// BorrowMut returns a writable array over an exclusive view of b, failing
// with ErrBorrowed while any other view is outstanding.
func BorrowMut[T any, D Dimensions](b *Buffer[T], dims D) (*ArrayBase[T, *Exclusive[T], D], error) {
	return ndarray.BorrowMut(b, dims)
}

// Equal reports whether two arrays have the same layout and elements.
func Equal[T comparable, S1 Storage[T], S2 Storage[T], DA, DB Dimensions](a *ArrayBase[T, S1, DA], b *ArrayBase[T, S2, DB]) bool {
	return ndarray.Equal(a, b)
}

// Literals

// Vector builds a rank-1 array from values.
func Vector[T any](values ...T) *Array[T, Dim1[Extent]] { return ndarray.Vector(values...) }

// Matrix builds a rank-2 array from rows of equal width.
func Matrix[T any](rows [][]T) (*Array[T, Dim2[Extent, Extent]], error) { return ndarray.Matrix(rows) }

// Cube builds a rank-3 array from planes of equal-width rows.
func Cube[T any](planes [][][]T) (*Array[T, Dim3[Extent, Extent, Extent]], error) {
	return ndarray.Cube(planes)
}
