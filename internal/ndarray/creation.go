package ndarray

// FromElem creates an owned array with every element set to value.
//
// Example:
//
//	a := ndarray.FromElem(ndarray.Ix2(2, 6), 42)
func FromElem[T any, D Dimensions](dims D, value T) *Array[T, D] {
	dims = freeze(dims)
	return &Array[T, D]{data: NewOwned(dims.TotalLen(), value), dims: dims}
}

// Zeros creates an owned array of zero values.
func Zeros[T any, D Dimensions](dims D) *Array[T, D] {
	var zero T
	return FromElem(dims, zero)
}

// FromSlice creates an owned array from values laid out in row-major
// order. The slice is copied. It fails with ErrShapeMismatch if
// len(values) != dims.TotalLen().
//
// Example:
//
//	a, err := ndarray.FromSlice(ndarray.Shape{2, 2}, []int{1, 2, 3, 4})
func FromSlice[T any, D Dimensions](dims D, values []T) (*Array[T, D], error) {
	dims = freeze(dims)
	data, err := OwnedFrom(dims.TotalLen(), values)
	if err != nil {
		return nil, err
	}
	return &Array[T, D]{data: data, dims: dims}, nil
}

// FromFunc creates an owned array with the element at each index set to
// f(index). The index slice passed to f is reused between calls.
//
// Example:
//
//	a := ndarray.FromFunc(ndarray.Ix3(5, 2, 9), func(i []int) float64 {
//	    return float64(i[0] + i[1] + i[2])
//	})
func FromFunc[T any, D Dimensions](dims D, f func(index []int) T) *Array[T, D] {
	dims = freeze(dims)
	extents := dims.Extents()
	origin := dims.Origin()
	idx := make([]int, len(extents))
	data := OwnedFunc(dims.TotalLen(), func(offset int) T {
		unravel(offset, extents, origin, idx)
		return f(idx)
	})
	return &Array[T, D]{data: data, dims: dims}
}

// ViewOf wraps buf as a read-only array. It fails with ErrShapeMismatch if
// len(buf) != dims.TotalLen().
func ViewOf[T any, D Dimensions](dims D, buf []T) (*ArrayBase[T, *Shared[T], D], error) {
	return New[T](Share(buf), dims)
}

// ViewMutOf wraps buf as a writable array. Writes go straight to buf. It
// fails with ErrShapeMismatch if len(buf) != dims.TotalLen().
//
// Nothing checks that buf has no other alias; BorrowMut is the checked
// equivalent.
func ViewMutOf[T any, D Dimensions](dims D, buf []T) (*ArrayBase[T, *Exclusive[T], D], error) {
	return New[T](Lend(buf), dims)
}

// Borrow returns a read-only array over a shared view of b. It fails with
// ErrBorrowed while b is lent exclusively. Release the view through
// Storage().Release() when done.
func Borrow[T any, D Dimensions](b *Buffer[T], dims D) (*ArrayBase[T, *Shared[T], D], error) {
	view, err := b.Share()
	if err != nil {
		return nil, err
	}
	a, err := New[T](view, dims)
	if err != nil {
		view.Release()
		return nil, err
	}
	return a, nil
}

// BorrowMut returns a writable array over an exclusive view of b. It fails
// with ErrBorrowed while any other view of b is outstanding. Release the
// view through Storage().Release() when done.
//
// Example:
//
//	a, err := ndarray.BorrowMut(buf, ndarray.Ix2(rows, cols))
//	if err != nil {
//	    return err
//	}
//	defer a.Storage().Release()
func BorrowMut[T any, D Dimensions](b *Buffer[T], dims D) (*ArrayBase[T, *Exclusive[T], D], error) {
	view, err := b.Lend()
	if err != nil {
		return nil, err
	}
	a, err := New[T](view, dims)
	if err != nil {
		view.Release()
		return nil, err
	}
	return a, nil
}
