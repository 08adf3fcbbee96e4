package interval

import (
	"sort"

	"github.com/grailbio/base/log"
	"github.com/pkg/errors"
)

// ErrInvertedInterval is returned by the CenteredTree constructors if an
// input interval has End < Start.
var ErrInvertedInterval = errors.New("interval: inverted interval")

// A CenteredTree indexes a fixed batch of entries for overlap queries.
// Construction recursively partitions the entries around the center of
// their common span: entries entirely before the center go to the left
// subtree, entries entirely after it to the right, and entries straddling
// it stay at the node in two sort orders (ascending by Start, descending
// by End) so matching scans can terminate early.
//
// A CenteredTree never changes after its constructor returns, so any
// number of goroutines may query it concurrently without synchronization.
// There is no rebalancing; a batch of identical intervals degrades to a
// single node scanned linearly.
type CenteredTree[C Coord, V any] struct {
	root  *centeredNode[C, V]
	count int
}

var _ Index[int, string] = (*CenteredTree[int, string])(nil)

// A centeredNode holds the entries straddling its center coordinate.
// byStart and byEnd hold the same entries, ascending by Start and
// descending by End respectively.  Nodes are exclusively owned by their
// parent and never shared between trees.
type centeredNode[C Coord, V any] struct {
	center  C
	left    *centeredNode[C, V]
	right   *centeredNode[C, V]
	byStart []Entry[C, V]
	byEnd   []Entry[C, V]
}

// NewCenteredTree builds a tree over entries.  It returns
// ErrInvertedInterval, and builds nothing, if any entry's interval has
// End < Start.  A nil or empty slice yields a legal empty tree; entries
// with empty intervals count toward Len but can never match a query.  The
// tree retains no reference to the entries slice.
func NewCenteredTree[C Coord, V any](entries []Entry[C, V]) (*CenteredTree[C, V], error) {
	for _, e := range entries {
		if e.Interval.End < e.Interval.Start {
			return nil, errors.Wrapf(ErrInvertedInterval, "[%v, %v)", e.Interval.Start, e.Interval.End)
		}
	}
	t := &CenteredTree[C, V]{
		root:  buildCentered(entries),
		count: len(entries),
	}
	if log.At(log.Debug) {
		log.Debug.Printf("interval: built centered tree: %d entries, %d nodes, depth %d",
			t.count, t.root.nodes(), t.root.depth())
	}
	return t, nil
}

// NewCenteredTreeFromSlices builds a tree from parallel slices, pairing
// intervals[i] with values[i].  The slices must have equal length.
func NewCenteredTreeFromSlices[C Coord, V any](intervals []Interval[C], values []V) (*CenteredTree[C, V], error) {
	if len(intervals) != len(values) {
		return nil, errors.Errorf("interval: mismatched slice lengths: %d intervals, %d values",
			len(intervals), len(values))
	}
	entries := make([]Entry[C, V], len(intervals))
	for i, iv := range intervals {
		entries[i] = Entry[C, V]{Interval: iv, Value: values[i]}
	}
	return NewCenteredTree(entries)
}

// buildCentered builds the subtree over entries, which it only reads.
// Straddle lists are stably sorted, so entries with tied bounds keep their
// input order.
func buildCentered[C Coord, V any](entries []Entry[C, V]) *centeredNode[C, V] {
	if len(entries) == 0 {
		return nil
	}
	span := entries[0].Interval
	for _, e := range entries[1:] {
		span = Span(span, e.Interval)
	}
	if span.Empty() {
		// Every interval in this batch is empty; no query can match.
		return nil
	}
	c := center(span)
	var before, after, straddle []Entry[C, V]
	for _, e := range entries {
		switch {
		case e.Interval.Before(c):
			before = append(before, e)
		case e.Interval.After(c):
			after = append(after, e)
		default:
			straddle = append(straddle, e)
		}
	}
	// c is inside the nonempty span, so the entry reaching span.End always
	// lands outside before, and the entry at span.Start outside after;
	// both recursions shrink.
	n := &centeredNode[C, V]{
		center:  c,
		left:    buildCentered(before),
		right:   buildCentered(after),
		byStart: straddle,
		byEnd:   append([]Entry[C, V](nil), straddle...),
	}
	sort.SliceStable(n.byStart, func(i, j int) bool {
		return StartLess(n.byStart[i].Interval, n.byStart[j].Interval)
	})
	sort.SliceStable(n.byEnd, func(i, j int) bool {
		return EndGreater(n.byEnd[i].Interval, n.byEnd[j].Interval)
	})
	return n
}

// Len returns the number of entries supplied at construction, duplicates
// included.  The count is cached at build time, never recomputed.
func (t *CenteredTree[C, V]) Len() int {
	return t.count
}

// DoMatching performs fn on each stored entry whose interval overlaps q,
// stopping early if fn returns true.  A boolean is returned indicating
// whether the traversal was interrupted.  Each call walks the tree afresh
// with its own local state, so calls may run concurrently.
func (t *CenteredTree[C, V]) DoMatching(fn Operation[C, V], q Interval[C]) bool {
	if t.root == nil || q.Empty() {
		return false
	}
	// The visited set guards against revisiting nodes; a well-formed tree
	// never triggers it.
	visited := make(map[*centeredNode[C, V]]bool)
	return t.root.doMatch(fn, q, visited)
}

func (n *centeredNode[C, V]) doMatch(fn Operation[C, V], q Interval[C], visited map[*centeredNode[C, V]]bool) (done bool) {
	if visited[n] {
		return
	}
	switch {
	case q.Before(n.center):
		if n.left != nil {
			done = n.left.doMatch(fn, q, visited)
			if done {
				return
			}
		}
		// Ascending-Start scan: once q ends at or before an entry's Start,
		// no later entry can overlap q either.
		for _, e := range n.byStart {
			if q.Before(e.Interval.Start) {
				break
			}
			if e.Interval.Overlaps(q) {
				done = fn(e)
				if done {
					return
				}
			}
		}
	case q.After(n.center):
		if n.right != nil {
			done = n.right.doMatch(fn, q, visited)
			if done {
				return
			}
		}
		// Descending-End scan: once q starts beyond an entry's End, no
		// later entry can overlap q either.
		for _, e := range n.byEnd {
			if q.After(e.Interval.End) {
				break
			}
			if e.Interval.Overlaps(q) {
				done = fn(e)
				if done {
					return
				}
			}
		}
	default:
		// q straddles or touches the center, and so does every entry held
		// here, so all of them share the center coordinate with q.
		for _, e := range n.byStart {
			done = fn(e)
			if done {
				return
			}
		}
	}
	visited[n] = true
	return
}

func (n *centeredNode[C, V]) nodes() int {
	if n == nil {
		return 0
	}
	return 1 + n.left.nodes() + n.right.nodes()
}

func (n *centeredNode[C, V]) depth() int {
	if n == nil {
		return 0
	}
	d := n.left.depth()
	if r := n.right.depth(); r > d {
		d = r
	}
	return d + 1
}
