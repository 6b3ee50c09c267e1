package pinch

import "sort"

// Thread is a fixed-length linear interval, partitioned end to end by its
// segments, which are kept sorted by Start.
type Thread struct {
	NameHash uint64
	Length   int64

	segments []*Segment
}

// Segments returns the thread's segments in ascending Start order. The
// returned slice aliases the thread's internal state; do not mutate it.
func (t *Thread) Segments() []*Segment { return t.segments }

// indexAt returns the index of the segment containing pos, or the index
// where it would be if pos == t.Length.
func (t *Thread) indexAt(pos int64) int {
	return sort.Search(len(t.segments), func(i int) bool { return t.segments[i].End > pos })
}

// splitAt ensures a segment boundary exists at pos, splitting the segment
// that currently straddles it. A no-op at the thread's own boundaries or
// at an existing boundary.
func (t *Thread) splitAt(pos int64) {
	if pos <= 0 || pos >= t.Length {
		return
	}
	i := t.indexAt(pos)
	seg := t.segments[i]
	if seg.Start == pos {
		return
	}
	left := &Segment{Start: seg.Start, End: pos, Orientation: seg.Orientation, Block: seg.Block, thread: t}
	right := &Segment{Start: pos, End: seg.End, Orientation: seg.Orientation, Block: seg.Block, thread: t}
	seg.Block.replace(seg, left, right)

	out := make([]*Segment, 0, len(t.segments)+1)
	out = append(out, t.segments[:i]...)
	out = append(out, left, right)
	out = append(out, t.segments[i+1:]...)
	t.segments = out
}

// segmentsBetween returns the segments covering [start, end), which must
// already fall on segment boundaries (callers split first).
func (t *Thread) segmentsBetween(start, end int64) []*Segment {
	i := t.indexAt(start)
	var out []*Segment
	for i < len(t.segments) && t.segments[i].Start < end {
		out = append(out, t.segments[i])
		i++
	}
	return out
}

// segmentExact returns the segment spanning exactly [start, end), which
// must already exist as a single segment (callers split first).
func (t *Thread) segmentExact(start, end int64) *Segment {
	i := t.indexAt(start)
	if i < len(t.segments) && t.segments[i].Start == start && t.segments[i].End == end {
		return t.segments[i]
	}
	return nil
}
