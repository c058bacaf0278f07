package patterns

import (
	"iter"

	"tapestry/pkg/core"
)

// FaultRule picks the comparison that decides when a line steps along its
// minor axis. The two rules produce mirror-image step patterns on lines that
// are neither axis-aligned nor diagonal; for example (0,0)-(4,1) spends three
// cells on y=0 under FaultStrict and two under FaultInclusive.
//
// The rules are each other's reverse: LineWith(b, a, FaultStrict) read
// backwards equals LineWith(a, b, FaultInclusive).
type FaultRule uint8

const (
	// FaultStrict steps the minor axis when the fault drops below zero.
	FaultStrict FaultRule = iota
	// FaultInclusive steps the minor axis when the fault reaches zero.
	FaultInclusive
)

func (r FaultRule) String() string {
	switch r {
	case FaultStrict:
		return "strict"
	case FaultInclusive:
		return "inclusive"
	default:
		return "unknown"
	}
}

// Line traces Bresenham's line from from to to, both inclusive, using
// FaultStrict. It yields max(|dx|, |dy|)+1 coordinates.
func Line(from, to core.Coord) iter.Seq[core.Coord] {
	return LineWith(from, to, FaultStrict)
}

// LineWith is Line with an explicit fault rule.
func LineWith(from, to core.Coord, rule FaultRule) iter.Seq[core.Coord] {
	return func(yield func(core.Coord) bool) {
		it := NewLineIter(from, to, rule)
		for c, ok := it.Next(); ok; c, ok = it.Next() {
			if !yield(c) {
				return
			}
		}
	}
}

// LineIter is a pull cursor over a Bresenham line. The zero value is an
// exhausted iterator.
//
// The fault term is kept doubled so the initial half-major value stays exact
// in integer arithmetic.
type LineIter struct {
	end  core.Coord
	next core.Coord

	// added every iteration
	majorStep core.Coord
	// added when the fault crosses the rule's threshold
	minorStep core.Coord

	fault      int
	majorFault int
	minorFault int
	rule       FaultRule

	remaining int
}

// NewLineIter returns a cursor positioned at from. The axis with the larger
// absolute delta is major; ties make X major.
func NewLineIter(from, to core.Coord, rule FaultRule) *LineIter {
	delta := to.Sub(from)
	sign := delta.Sign()
	span := delta.Abs()

	it := &LineIter{end: to, next: from, rule: rule}
	if span.X >= span.Y {
		it.majorStep = core.Coord{X: sign.X}
		it.minorStep = core.Coord{Y: sign.Y}
		it.majorFault, it.minorFault = 2*span.X, 2*span.Y
	} else {
		it.majorStep = core.Coord{Y: sign.Y}
		it.minorStep = core.Coord{X: sign.X}
		it.majorFault, it.minorFault = 2*span.Y, 2*span.X
	}
	it.fault = it.majorFault / 2
	it.remaining = max(span.X, span.Y) + 1
	return it
}

// Len returns how many coordinates are left.
func (it *LineIter) Len() int { return it.remaining }

// Next returns the next coordinate on the line, or false once the end point
// has been produced.
func (it *LineIter) Next() (core.Coord, bool) {
	if it.remaining == 0 {
		return core.Coord{}, false
	}
	if it.next == it.end {
		it.remaining = 0
		return it.end, true
	}
	it.remaining--

	out := it.next
	it.next = it.next.Add(it.majorStep)
	it.fault -= it.minorFault
	if it.fault < 0 || (it.rule == FaultInclusive && it.fault == 0) {
		it.fault += it.majorFault
		it.next = it.next.Add(it.minorStep)
	}
	return out, true
}

// Seq drains the cursor as an iter.Seq. Like the cursor itself it can be
// ranged over only once.
func (it *LineIter) Seq() iter.Seq[core.Coord] {
	return func(yield func(core.Coord) bool) {
		for c, ok := it.Next(); ok; c, ok = it.Next() {
			if !yield(c) {
				return
			}
		}
	}
}
