package interval

// An Operation is a function that operates on an Entry during a matching
// traversal.  If done is returned true, the traversal stops and no further
// entries are visited.
type Operation[C Coord, V any] func(Entry[C, V]) (done bool)

// An Index answers overlap queries over a fixed collection of entries.
// DoMatching is the one required primitive; the rest of the query surface
// (Intersect, Count, Query, Contains, Intersects, ...) is provided by the
// package-level functions below, so an implementation only supplies a
// counted, restartable matching traversal.
type Index[C Coord, V any] interface {
	// Len returns the number of entries stored, duplicates included.
	Len() int
	// DoMatching performs fn on each stored entry whose interval overlaps
	// q, stopping early if fn returns true.  A boolean is returned
	// indicating whether the traversal was interrupted.  Each call is an
	// independent traversal with no shared cursor.
	DoMatching(fn Operation[C, V], q Interval[C]) bool
}

// IsEmpty returns whether x stores no entries.
func IsEmpty[C Coord, V any](x Index[C, V]) bool {
	return x.Len() == 0
}

// Intersect returns every stored entry whose interval overlaps q.  Result
// order is implementation-defined.
func Intersect[C Coord, V any](x Index[C, V], q Interval[C]) []Entry[C, V] {
	var o []Entry[C, V]
	x.DoMatching(func(e Entry[C, V]) (done bool) { o = append(o, e); return }, q)
	return o
}

// Count returns the number of stored entries overlapping q.  Cost is
// proportional to the result size, not constant.
func Count[C Coord, V any](x Index[C, V], q Interval[C]) int {
	n := 0
	x.DoMatching(func(Entry[C, V]) (done bool) { n++; return }, q)
	return n
}

// Intersects returns whether at least one stored entry overlaps q.  It
// stops at the first match rather than materializing the result.
func Intersects[C Coord, V any](x Index[C, V], q Interval[C]) bool {
	return x.DoMatching(func(Entry[C, V]) (done bool) { return true }, q)
}

// IntersectsAny returns whether any interval in qs overlaps a stored
// entry, stopping at the first hit across both qs and each traversal.
func IntersectsAny[C Coord, V any](x Index[C, V], qs []Interval[C]) bool {
	for _, q := range qs {
		if Intersects(x, q) {
			return true
		}
	}
	return false
}

// Query returns every stored entry whose interval contains the point p.
func Query[C Coord, V any](x Index[C, V], p C) []Entry[C, V] {
	return Intersect(x, Point(p))
}

// CountAt returns the number of stored entries containing the point p.
func CountAt[C Coord, V any](x Index[C, V], p C) int {
	return Count(x, Point(p))
}

// Contains returns whether any stored entry contains the point p.
func Contains[C Coord, V any](x Index[C, V], p C) bool {
	return Intersects(x, Point(p))
}
