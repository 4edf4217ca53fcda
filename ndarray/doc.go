// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides multi-dimensional arrays that are generic over
// how their elements are stored and over their dimensions.
//
// # Overview
//
// An ArrayBase[T, S, D] pairs a Storage S with a Dimensions descriptor D:
//   - Storage: Owned (the array holds the buffer), Shared (read-only view
//     into someone else's buffer) or Exclusive (writable view)
//   - Dimensions: Shape (dynamic rank) or Dim0..Dim3 (fixed rank, built
//     from Extent and Span axes)
//
// Array[T, D] is the owned case and what most code wants.
//
// # Basic Usage
//
//	a, err := ndarray.FromSlice(ndarray.Shape{2, 3}, []int{1, 2, 3, 4, 5, 6})
//	if err != nil {
//	    return err
//	}
//	v, _ := a.Get(1, 2) // 6
//	_ = a.Set(42, 0, 0)
//
//	for idx, v := range a.All() { // row-major, last axis fastest
//	    fmt.Println(idx, v)
//	}
//
// # Literals
//
//	m, err := ndarray.Matrix([][]float64{
//	    {3, 4, 5},
//	    {6, 7, 8},
//	})
//
// # Custom Index Ranges
//
// A Span axis accepts any half-open index range, including negative ones:
//
//	a := ndarray.FromElem(ndarray.D1(ndarray.Span{Lo: -42, Hi: 42}), 0.0)
//	v, _ := a.Get(-12)
//
// # Borrowed Memory
//
// ViewOf and ViewMutOf wrap an existing slice without copying. The caller
// guarantees that an exclusive view is the only alias of its buffer. A
// Buffer checks that guarantee at runtime instead:
//
//	buf := ndarray.NewBuffer(data)
//	a, err := ndarray.BorrowMut(buf, ndarray.Ix2(rows, cols)) // ErrBorrowed while any view is outstanding
//	if err != nil {
//	    return err
//	}
//	defer a.Storage().Release()
//
// # Errors
//
// Failures wrap ErrOutOfBounds, ErrShapeMismatch, ErrNotWritable,
// ErrInvalidShape, ErrBorrowed or ErrReleased; test with errors.Is.
package ndarray
