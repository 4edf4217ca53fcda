package ndarray

import "fmt"

// Dim0 is the rank-0 (scalar) descriptor. It accepts only the empty index.
type Dim0 struct{}

// Dim1 is a rank-1 descriptor over one axis.
type Dim1[A Axis] struct {
	X A
}

// Dim2 is a rank-2 descriptor; Y varies fastest.
type Dim2[A, B Axis] struct {
	X A
	Y B
}

// Dim3 is a rank-3 descriptor; Z varies fastest.
type Dim3[A, B, C Axis] struct {
	X A
	Y B
	Z C
}

// D1 returns a rank-1 descriptor over x.
func D1[A Axis](x A) Dim1[A] { return Dim1[A]{X: x} }

// D2 returns a rank-2 descriptor over x and y.
//
// Example:
//
//	d := ndarray.D2(ndarray.Extent(7), ndarray.Span{Lo: 7, Hi: 10})
func D2[A, B Axis](x A, y B) Dim2[A, B] { return Dim2[A, B]{X: x, Y: y} }

// D3 returns a rank-3 descriptor over x, y and z.
func D3[A, B, C Axis](x A, y B, z C) Dim3[A, B, C] { return Dim3[A, B, C]{X: x, Y: y, Z: z} }

// Ix1 returns a zero-based vector descriptor of length n.
func Ix1(n int) Dim1[Extent] { return D1(Extent(n)) }

// Ix2 returns a zero-based rows x cols descriptor.
func Ix2(rows, cols int) Dim2[Extent, Extent] { return D2(Extent(rows), Extent(cols)) }

// Ix3 returns a zero-based x*y*z descriptor.
func Ix3(x, y, z int) Dim3[Extent, Extent, Extent] { return D3(Extent(x), Extent(y), Extent(z)) }

// Rank implements Dimensions.
func (Dim0) Rank() int { return 0 }

// Extents implements Dimensions.
func (Dim0) Extents() []int { return []int{} }

// Origin implements Dimensions.
func (Dim0) Origin() []int { return []int{} }

// TotalLen implements Dimensions.
func (Dim0) TotalLen() int { return 1 }

// Strides implements Dimensions.
func (Dim0) Strides() []int { return []int{} }

// OffsetOf implements Dimensions.
func (Dim0) OffsetOf(index []int) (int, error) {
	if len(index) != 0 {
		return 0, rankError(len(index), 0)
	}
	return 0, nil
}

func (Dim0) String() string { return "()" }

// Rank implements Dimensions.
func (d Dim1[A]) Rank() int { return 1 }

// Extents implements Dimensions.
func (d Dim1[A]) Extents() []int { return []int{d.X.Len()} }

// Origin implements Dimensions.
func (d Dim1[A]) Origin() []int { return []int{d.X.Lower()} }

// TotalLen implements Dimensions.
func (d Dim1[A]) TotalLen() int { return d.X.Len() }

// Strides implements Dimensions.
func (d Dim1[A]) Strides() []int { return []int{1} }

// OffsetOf implements Dimensions.
func (d Dim1[A]) OffsetOf(index []int) (int, error) {
	if len(index) != 1 {
		return 0, rankError(len(index), 1)
	}
	p, ok := d.X.Position(index[0])
	if !ok {
		return 0, axisError(0, index[0], d.X)
	}
	return p, nil
}

func (d Dim1[A]) String() string { return fmt.Sprintf("(%v)", d.X) }

// Rank implements Dimensions.
func (d Dim2[A, B]) Rank() int { return 2 }

// Extents implements Dimensions.
func (d Dim2[A, B]) Extents() []int { return []int{d.X.Len(), d.Y.Len()} }

// Origin implements Dimensions.
func (d Dim2[A, B]) Origin() []int { return []int{d.X.Lower(), d.Y.Lower()} }

// TotalLen implements Dimensions. A descriptor whose element count
// overflows int is empty.
func (d Dim2[A, B]) TotalLen() int {
	n, _ := d.count()
	return n
}

func (d Dim2[A, B]) count() (int, bool) {
	return mulInt(d.X.Len(), d.Y.Len())
}

// Strides implements Dimensions.
func (d Dim2[A, B]) Strides() []int { return []int{d.Y.Len(), 1} }

// OffsetOf implements Dimensions.
func (d Dim2[A, B]) OffsetOf(index []int) (int, error) {
	if len(index) != 2 {
		return 0, rankError(len(index), 2)
	}
	if _, ok := d.count(); !ok {
		return 0, overflowError(index)
	}
	p0, ok := d.X.Position(index[0])
	if !ok {
		return 0, axisError(0, index[0], d.X)
	}
	p1, ok := d.Y.Position(index[1])
	if !ok {
		return 0, axisError(1, index[1], d.Y)
	}
	return p0*d.Y.Len() + p1, nil
}

func (d Dim2[A, B]) String() string { return fmt.Sprintf("(%v, %v)", d.X, d.Y) }

// Rank implements Dimensions.
func (d Dim3[A, B, C]) Rank() int { return 3 }

// Extents implements Dimensions.
func (d Dim3[A, B, C]) Extents() []int { return []int{d.X.Len(), d.Y.Len(), d.Z.Len()} }

// Origin implements Dimensions.
func (d Dim3[A, B, C]) Origin() []int { return []int{d.X.Lower(), d.Y.Lower(), d.Z.Lower()} }

// TotalLen implements Dimensions. A descriptor whose element count
// overflows int is empty.
func (d Dim3[A, B, C]) TotalLen() int {
	n, _ := d.count()
	return n
}

func (d Dim3[A, B, C]) count() (int, bool) {
	yz, ok := mulInt(d.Y.Len(), d.Z.Len())
	if !ok {
		return 0, false
	}
	return mulInt(d.X.Len(), yz)
}

// Strides implements Dimensions.
func (d Dim3[A, B, C]) Strides() []int { return []int{d.Y.Len() * d.Z.Len(), d.Z.Len(), 1} }

// OffsetOf implements Dimensions.
func (d Dim3[A, B, C]) OffsetOf(index []int) (int, error) {
	if len(index) != 3 {
		return 0, rankError(len(index), 3)
	}
	if _, ok := d.count(); !ok {
		return 0, overflowError(index)
	}
	p0, ok := d.X.Position(index[0])
	if !ok {
		return 0, axisError(0, index[0], d.X)
	}
	p1, ok := d.Y.Position(index[1])
	if !ok {
		return 0, axisError(1, index[1], d.Y)
	}
	p2, ok := d.Z.Position(index[2])
	if !ok {
		return 0, axisError(2, index[2], d.Z)
	}
	return (p0*d.Y.Len()+p1)*d.Z.Len() + p2, nil
}

func (d Dim3[A, B, C]) String() string { return fmt.Sprintf("(%v, %v, %v)", d.X, d.Y, d.Z) }
