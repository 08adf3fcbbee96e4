package interval

// An Entry pairs an interval with an opaque value.  Entries are created by
// the caller, typically one per parsed record, and are never mutated by an
// index.  Two entries are equal when both fields are equal (ordinary Go
// struct comparison, for comparable V).
type Entry[C Coord, V any] struct {
	Interval Interval[C]
	Value    V
}
