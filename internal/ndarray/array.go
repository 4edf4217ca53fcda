package ndarray

import (
	"fmt"
	"iter"
	"slices"
)

// ArrayBase is a multi-dimensional array over storage S with shape D.
//
// The storage length always equals dims.TotalLen(); New is the only place
// that pairing is checked, and nothing afterwards can change either side's
// length. A Shape is copied on the way in and on the way out, so the
// caller never shares the array's extents.
//
// Type Parameters:
//   - T: element type
//   - S: memory backing (*Owned[T], *Shared[T], *Exclusive[T], ...)
//   - D: shape descriptor (Shape, Dim2[Extent, Extent], ...)
//
// Aliasing is not checked: an ArrayBase over an Exclusive view assumes
// the caller (or a Buffer) guarantees no other view exists.
type ArrayBase[T any, S Storage[T], D Dimensions] struct {
	data S
	dims D
}

// Array is an array with owned storage.
type Array[T any, D Dimensions] = ArrayBase[T, *Owned[T], D]

// New pairs data with dims. It fails with ErrShapeMismatch if
// data.Len() != dims.TotalLen().
//
// Example:
//
//	a, err := ndarray.New[int](ndarray.Share(buf), ndarray.Ix1(4))
func New[T any, S Storage[T], D Dimensions](data S, dims D) (*ArrayBase[T, S, D], error) {
	dims = freeze(dims)
	if data.Len() != dims.TotalLen() {
		return nil, lengthError(data.Len(), dims.TotalLen())
	}
	return &ArrayBase[T, S, D]{data: data, dims: dims}, nil
}

// Get returns the element at index.
//
// Example:
//
//	a, _ := ndarray.FromSlice(ndarray.Shape{2, 3}, []int{1, 2, 3, 4, 5, 6})
//	v, _ := a.Get(1, 2) // 6
func (a *ArrayBase[T, S, D]) Get(index ...int) (T, error) {
	offset, err := a.dims.OffsetOf(index)
	if err != nil {
		var zero T
		return zero, err
	}
	return a.data.Get(offset)
}

// Ref returns a pointer to the element at index for in-place updates.
// It fails with ErrNotWritable on read-only storage.
func (a *ArrayBase[T, S, D]) Ref(index ...int) (*T, error) {
	offset, err := a.dims.OffsetOf(index)
	if err != nil {
		return nil, err
	}
	return a.data.GetMut(offset)
}

// Set stores value at index.
func (a *ArrayBase[T, S, D]) Set(value T, index ...int) error {
	p, err := a.Ref(index...)
	if err != nil {
		return err
	}
	*p = value
	return nil
}

// Shape returns the extent of every axis.
func (a *ArrayBase[T, S, D]) Shape() []int { return a.dims.Extents() }

// Dims returns a copy of the shape descriptor.
func (a *ArrayBase[T, S, D]) Dims() D { return freeze(a.dims) }

// Storage returns the memory backing.
func (a *ArrayBase[T, S, D]) Storage() S { return a.data }

// Rank returns the number of axes.
func (a *ArrayBase[T, S, D]) Rank() int { return a.dims.Rank() }

// Len returns the total number of elements.
func (a *ArrayBase[T, S, D]) Len() int { return a.dims.TotalLen() }

// Strides returns the row-major stride of every axis.
func (a *ArrayBase[T, S, D]) Strides() []int { return a.dims.Strides() }

// All yields every valid index with its element in row-major order (the
// last axis varies fastest). Each call starts a fresh enumeration. The
// yielded index slice belongs to the caller.
//
// Iteration stops early if the storage refuses a read, for example after
// a borrowed view is released.
func (a *ArrayBase[T, S, D]) All() iter.Seq2[[]int, T] {
	return func(yield func([]int, T) bool) {
		n := a.dims.TotalLen()
		if n == 0 {
			return
		}
		extents := a.dims.Extents()
		origin := a.dims.Origin()
		idx := slices.Clone(origin)

		for range n {
			v, err := a.Get(idx...)
			if err != nil {
				return
			}
			if !yield(slices.Clone(idx), v) {
				return
			}
			for k := len(idx) - 1; k >= 0; k-- {
				idx[k]++
				if idx[k] < origin[k]+extents[k] {
					break
				}
				idx[k] = origin[k]
			}
		}
	}
}

// Values yields every element in storage order, which for the row-major
// layout is the same order as All.
func (a *ArrayBase[T, S, D]) Values() iter.Seq[T] {
	return a.data.View().Values()
}

// ToOwned copies the array into owned storage with the same dimensions.
// It fails if the storage no longer exposes its elements, for example a
// released view.
func (a *ArrayBase[T, S, D]) ToOwned() (*Array[T, D], error) {
	view := a.data.View()
	if view.Len() != a.dims.TotalLen() {
		if _, err := a.data.Get(0); err != nil {
			return nil, err
		}
		return nil, lengthError(view.Len(), a.dims.TotalLen())
	}
	return &Array[T, D]{
		data: &Owned[T]{data: view.Clone()},
		dims: freeze(a.dims),
	}, nil
}

// String returns a short description of the array.
func (a *ArrayBase[T, S, D]) String() string {
	var zero T
	return fmt.Sprintf("Array[%T]%v", zero, a.dims.Extents())
}

// Equal reports whether a and b accept the same indices and hold equal
// elements at each of them, regardless of how either is stored.
func Equal[T comparable, S1 Storage[T], S2 Storage[T], DA, DB Dimensions](a *ArrayBase[T, S1, DA], b *ArrayBase[T, S2, DB]) bool {
	if !sameLayout(a.dims, b.dims) {
		return false
	}
	va, vb := a.data.View(), b.data.View()
	if va.Len() != vb.Len() {
		return false
	}
	for i := range va.Len() {
		if va.At(i) != vb.At(i) {
			return false
		}
	}
	return true
}
