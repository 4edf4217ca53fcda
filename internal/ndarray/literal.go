package ndarray

import "fmt"

// Vector builds a rank-1 array from a literal list of values.
//
//	v := ndarray.Vector(3, 4, 5)
func Vector[T any](values ...T) *Array[T, Dim1[Extent]] {
	a, _ := FromSlice(Ix1(len(values)), values) // length always matches
	return a
}

// Matrix builds a rank-2 array from literal rows. Every row must have the
// same width, otherwise it fails with ErrShapeMismatch.
//
//	m, err := ndarray.Matrix([][]int{
//	    {3, 4, 5},
//	    {6, 7, 8},
//	})
func Matrix[T any](rows [][]T) (*Array[T, Dim2[Extent, Extent]], error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	flat := make([]T, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d elements, expected %d", ErrShapeMismatch, i, len(row), cols)
		}
		flat = append(flat, row...)
	}
	return FromSlice(Ix2(len(rows), cols), flat)
}

// Cube builds a rank-3 array from literal planes of rows. All planes must
// have the same number of rows and all rows the same width.
func Cube[T any](planes [][][]T) (*Array[T, Dim3[Extent, Extent, Extent]], error) {
	rows, cols := 0, 0
	if len(planes) > 0 {
		rows = len(planes[0])
		if rows > 0 {
			cols = len(planes[0][0])
		}
	}
	flat := make([]T, 0, len(planes)*rows*cols)
	for i, plane := range planes {
		if len(plane) != rows {
			return nil, fmt.Errorf("%w: plane %d has %d rows, expected %d", ErrShapeMismatch, i, len(plane), rows)
		}
		for j, row := range plane {
			if len(row) != cols {
				return nil, fmt.Errorf("%w: row %d of plane %d has %d elements, expected %d",
					ErrShapeMismatch, j, i, len(row), cols)
			}
			flat = append(flat, row...)
		}
	}
	return FromSlice(Ix3(len(planes), rows, cols), flat)
}
