package ndarray

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferSharedViewsCoexist(t *testing.T) {
	b := NewBuffer([]int{1, 2, 3})

	s1, err := b.Share()
	require.NoError(t, err)
	s2, err := b.Share()
	require.NoError(t, err)

	readers, writer := b.Borrowed()
	assert.Equal(t, 2, readers)
	assert.False(t, writer)

	_, err = b.Lend()
	assert.ErrorIs(t, err, ErrBorrowed)

	s1.Release()
	_, err = b.Lend()
	assert.ErrorIs(t, err, ErrBorrowed, "one shared view still outstanding")

	s2.Release()
	e, err := b.Lend()
	require.NoError(t, err)
	e.Release()
}

func TestBufferExclusiveExcludesAll(t *testing.T) {
	b := NewBuffer([]int{1, 2, 3})

	e, err := b.Lend()
	require.NoError(t, err)

	_, err = b.Share()
	assert.ErrorIs(t, err, ErrBorrowed)
	_, err = b.Lend()
	assert.ErrorIs(t, err, ErrBorrowed)

	p, err := e.GetMut(0)
	require.NoError(t, err)
	*p = 42

	e.Release()
	e.Release()

	readers, writer := b.Borrowed()
	assert.Zero(t, readers)
	assert.False(t, writer)

	s, err := b.Share()
	require.NoError(t, err)
	v, err := s.Get(0)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	s.Release()
}

func TestBufferDoubleReleaseCountsOnce(t *testing.T) {
	b := NewBuffer([]int{1})
	s1, err := b.Share()
	require.NoError(t, err)
	s2, err := b.Share()
	require.NoError(t, err)

	s1.Release()
	s1.Release()

	readers, _ := b.Borrowed()
	assert.Equal(t, 1, readers)
	s2.Release()
}

func TestBufferConcurrentReaders(t *testing.T) {
	b := NewBuffer([]int{1, 2, 3, 4})

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := b.Share()
			if err != nil {
				t.Error(err)
				return
			}
			defer s.Release()
			a, err := New[int](s, Ix2(2, 2))
			if err != nil {
				t.Error(err)
				return
			}
			if v, err := a.Get(1, 1); err != nil || v != 4 {
				t.Errorf("Get(1, 1) = %d, %v", v, err)
			}
		}()
	}
	wg.Wait()

	readers, writer := b.Borrowed()
	assert.Zero(t, readers)
	assert.False(t, writer)
	assert.Equal(t, 4, b.Len())
}

func TestBorrowMut(t *testing.T) {
	b := NewBuffer([]int{1, 2, 3, 4, 5, 6})

	a, err := BorrowMut(b, Ix2(2, 3))
	require.NoError(t, err)

	_, err = Borrow(b, Shape{6})
	assert.ErrorIs(t, err, ErrBorrowed)
	_, err = BorrowMut(b, Shape{6})
	assert.ErrorIs(t, err, ErrBorrowed)
	_, err = ViewMutOf(Shape{6}, b.data)
	require.NoError(t, err, "the unchecked wrapper does not consult the lender")

	require.NoError(t, a.Set(9, 1, 2))
	a.Storage().Release()

	r, err := Borrow(b, Shape{6})
	require.NoError(t, err)
	defer r.Storage().Release()
	v, err := r.Get(5)
	require.NoError(t, err)
	assert.Equal(t, 9, v)

	_, err = BorrowMut(b, Shape{6})
	assert.ErrorIs(t, err, ErrBorrowed, "shared array still outstanding")
}

func TestBorrowShapeMismatchReleasesView(t *testing.T) {
	b := NewBuffer(make([]int, 4))

	_, err := BorrowMut(b, Ix2(2, 3))
	assert.ErrorIs(t, err, ErrShapeMismatch)
	readers, writer := b.Borrowed()
	assert.Zero(t, readers)
	assert.False(t, writer)

	_, err = Borrow(b, Shape{5})
	assert.ErrorIs(t, err, ErrShapeMismatch)
	readers, writer = b.Borrowed()
	assert.Zero(t, readers)
	assert.False(t, writer)
}
