package ndarray

import "fmt"

// Axis describes a single axis of a fixed-rank descriptor: how many
// positions it has and how an axis-local index maps to a position.
type Axis interface {
	// Len returns the number of valid indices along the axis.
	Len() int
	// Lower returns the smallest valid index.
	Lower() int
	// Position maps an index to its zero-based position along the axis.
	// The second result is false when the index is outside the axis.
	Position(i int) (int, bool)
}

// Extent is a zero-based axis accepting indices [0, n).
type Extent int

// Len implements Axis. A negative extent is empty.
func (e Extent) Len() int { return max(int(e), 0) }

// Lower implements Axis.
func (e Extent) Lower() int { return 0 }

// Position implements Axis.
func (e Extent) Position(i int) (int, bool) {
	return i, i >= 0 && i < int(e)
}

// Span is an axis accepting indices [Lo, Hi). Lo may be negative, which
// gives Fortran-style indexing: Span{-3, 3} accepts -3 through 2.
type Span struct {
	Lo, Hi int
}

// NewSpan returns the axis [lo, hi).
func NewSpan(lo, hi int) (Span, error) {
	if hi < lo {
		return Span{}, fmt.Errorf("%w: span [%d, %d) ends before it starts", ErrInvalidShape, lo, hi)
	}
	s := Span{Lo: lo, Hi: hi}
	if _, ok := s.width(); !ok {
		return Span{}, fmt.Errorf("%w: span [%d, %d) is wider than an int can count", ErrInvalidShape, lo, hi)
	}
	return s, nil
}

// width returns Hi-Lo, reporting false when the subtraction overflows.
func (s Span) width() (int, bool) {
	if s.Hi <= s.Lo {
		return 0, true
	}
	w := s.Hi - s.Lo
	return w, w > 0
}

// Len implements Axis. A reversed span, or one too wide to count, is
// empty.
func (s Span) Len() int {
	w, ok := s.width()
	if !ok {
		return 0
	}
	return w
}

// Lower implements Axis.
func (s Span) Lower() int { return s.Lo }

// Position implements Axis.
func (s Span) Position(i int) (int, bool) {
	if _, ok := s.width(); !ok {
		return 0, false
	}
	return i - s.Lo, i >= s.Lo && i < s.Hi
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Lo, s.Hi)
}
