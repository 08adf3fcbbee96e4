package interval

// Coord is the set of integer types usable as interval coordinates.
// Floating-point coordinates are excluded: both the per-node center
// computation and the width-1 point query rely on integer arithmetic.
type Coord interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// An Interval is a half-open coordinate range [Start, End): Start is
// covered, End is not.  An Interval with Start == End is empty.  Intervals
// are plain values; the index never mutates them.
type Interval[C Coord] struct {
	Start C
	End   C
}

// Point returns the width-1 interval covering exactly the coordinate p.
func Point[C Coord](p C) Interval[C] {
	return Interval[C]{Start: p, End: p + 1}
}

// Empty returns whether the interval covers no coordinates.
func (i Interval[C]) Empty() bool {
	return i.End <= i.Start
}

// Contains returns whether p lies inside the interval.
func (i Interval[C]) Contains(p C) bool {
	return i.Start <= p && p < i.End
}

// Before returns whether the interval lies entirely before p.  Under
// half-open semantics that is End <= p.
func (i Interval[C]) Before(p C) bool {
	return i.End <= p
}

// After returns whether the interval lies entirely after p.
func (i Interval[C]) After(p C) bool {
	return i.Start > p
}

// Overlaps returns whether i and b share at least one coordinate.  Empty
// intervals overlap nothing, themselves included.
func (i Interval[C]) Overlaps(b Interval[C]) bool {
	return !i.Empty() && !b.Empty() && i.Start < b.End && b.Start < i.End
}

// Span returns the smallest interval covering both a and b.
func Span[C Coord](a, b Interval[C]) Interval[C] {
	if b.Start < a.Start {
		a.Start = b.Start
	}
	if b.End > a.End {
		a.End = b.End
	}
	return a
}

// StartLess orders intervals ascending by Start.  Intervals with equal
// Start compare equal; use a stable sort where tie order matters.
func StartLess[C Coord](a, b Interval[C]) bool {
	return a.Start < b.Start
}

// EndGreater orders intervals descending by End.
func EndGreater[C Coord](a, b Interval[C]) bool {
	return a.End > b.End
}

// center returns the partition coordinate for a nonempty span: the
// midpoint, computed without overflow.  The result is always inside the
// span, and the computation is deterministic so a rebuilt tree picks the
// same centers.
func center[C Coord](span Interval[C]) C {
	return span.Start + (span.End-span.Start)/2
}
