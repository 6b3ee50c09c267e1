package pinch

import "sort"

// joinTrivialBoundariesInterval bounds the pinch graph's segment count
// under heavy pinching (spec'd at roughly 5*10^7 pinches, §5/§9): the
// closure driver doesn't need to call JoinTrivialBoundaries itself on
// every pinch, so ThreadSet does it internally at this cadence.
const joinTrivialBoundariesInterval = 50_000_000

// ThreadSet holds every thread in a pinch graph, keyed by name hash.
type ThreadSet struct {
	threads map[uint64]*Thread
	blocks  []*Block // insertion order; dead blocks are skipped on read

	pinchCount int64
}

// NewThreadSet returns an empty ThreadSet.
func NewThreadSet() *ThreadSet {
	return &ThreadSet{threads: map[uint64]*Thread{}}
}

// AddThread returns the thread keyed by nameHash, creating one of the
// given length (as a single segment forming its own singleton block) if
// it does not already exist.
func (ts *ThreadSet) AddThread(nameHash uint64, length int64) *Thread {
	if t, ok := ts.threads[nameHash]; ok {
		return t
	}
	seg := &Segment{Start: 0, End: length, Orientation: true}
	block := &Block{segments: []*Segment{seg}}
	seg.Block = block
	t := &Thread{NameHash: nameHash, Length: length, segments: []*Segment{seg}}
	seg.thread = t
	ts.threads[nameHash] = t
	ts.blocks = append(ts.blocks, block)
	return t
}

// GetThread looks up a thread by name hash.
func (ts *ThreadSet) GetThread(nameHash uint64) (*Thread, bool) {
	t, ok := ts.threads[nameHash]
	return t, ok
}

// PinchCount returns the number of Pinch calls made so far.
func (ts *ThreadSet) PinchCount() int64 { return ts.pinchCount }

// Blocks returns every live block, in the order each was first created.
func (ts *ThreadSet) Blocks() []*Block {
	out := make([]*Block, 0, len(ts.blocks))
	for _, b := range ts.blocks {
		if !b.dead {
			out = append(out, b)
		}
	}
	return out
}

// Pinch declares that a's [offsetA, offsetA+length) and b's [offsetB,
// offsetB+length) are homologous, in the same orientation when
// sameStrand is true, reverse-complementary otherwise. Both threads are
// split at whatever boundaries this introduces, any existing blocks the
// implicated segments belong to are merged, and orientation is inverted
// on one side if the existing blocks disagree.
func (ts *ThreadSet) Pinch(a, b *Thread, offsetA, offsetB, length int64, sameStrand bool) {
	if length <= 0 {
		return
	}
	ts.pinchCount++

	a.splitAt(offsetA)
	a.splitAt(offsetA + length)
	b.splitAt(offsetB)
	b.splitAt(offsetB + length)

	// Collect every internal boundary either side already has within the
	// pinched range, expressed as an offset relative to offsetA, so both
	// threads end up split at the same set of relative positions.
	relSet := map[int64]bool{}
	for _, seg := range a.segmentsBetween(offsetA, offsetA+length) {
		if seg.Start > offsetA {
			relSet[seg.Start-offsetA] = true
		}
	}
	for _, seg := range b.segmentsBetween(offsetB, offsetB+length) {
		if seg.Start > offsetB {
			rel := seg.Start - offsetB
			if !sameStrand {
				rel = length - rel
			}
			relSet[rel] = true
		}
	}
	rels := make([]int64, 0, len(relSet))
	for rel := range relSet {
		rels = append(rels, rel)
	}
	sort.Slice(rels, func(i, j int) bool { return rels[i] < rels[j] })
	for _, rel := range rels {
		a.splitAt(offsetA + rel)
		if sameStrand {
			b.splitAt(offsetB + rel)
		} else {
			b.splitAt(offsetB + (length - rel))
		}
	}

	for _, segA := range a.segmentsBetween(offsetA, offsetA+length) {
		relStart := segA.Start - offsetA
		relEnd := segA.End - offsetA
		var bStart, bEnd int64
		if sameStrand {
			bStart, bEnd = offsetB+relStart, offsetB+relEnd
		} else {
			bStart, bEnd = offsetB+(length-relEnd), offsetB+(length-relStart)
		}
		segB := b.segmentExact(bStart, bEnd)
		ts.merge(segA, segB, sameStrand)
	}

	if ts.pinchCount%joinTrivialBoundariesInterval == 0 {
		ts.JoinTrivialBoundaries()
	}
}

// merge folds segB's block into segA's block, inverting segB's block's
// orientation first if it currently disagrees with the sameStrand
// relation Pinch was asked to establish between segA and segB.
func (ts *ThreadSet) merge(segA, segB *Segment, sameStrand bool) {
	if segA.Block == segB.Block {
		return
	}
	needFlip := (segA.Orientation == segB.Orientation) != sameStrand
	absorbed := segB.Block
	if needFlip {
		for _, s := range absorbed.segments {
			s.Orientation = !s.Orientation
		}
	}
	target := segA.Block
	for _, s := range absorbed.segments {
		s.Block = target
	}
	target.segments = append(target.segments, absorbed.segments...)
	absorbed.segments = nil
	absorbed.dead = true
}

// JoinTrivialBoundaries fuses every pair of adjacent, same-block,
// same-orientation segments on every thread. Idempotent: a second call
// with no intervening Pinch finds nothing left to fuse.
func (ts *ThreadSet) JoinTrivialBoundaries() {
	for _, t := range ts.sortedThreads() {
		out := make([]*Segment, 0, len(t.segments))
		for _, seg := range t.segments {
			if len(out) > 0 {
				prev := out[len(out)-1]
				if prev.Block == seg.Block && prev.Orientation == seg.Orientation && prev.End == seg.Start {
					prev.End = seg.End
					prev.Block.replace(seg)
					continue
				}
			}
			out = append(out, seg)
		}
		t.segments = out
	}
}

// sortedThreads returns every thread in ascending name-hash order, giving
// JoinTrivialBoundaries a deterministic traversal order.
func (ts *ThreadSet) sortedThreads() []*Thread {
	hashes := make([]uint64, 0, len(ts.threads))
	for h := range ts.threads {
		hashes = append(hashes, h)
	}
	sort.Slice(hashes, func(i, j int) bool { return hashes[i] < hashes[j] })
	out := make([]*Thread, len(hashes))
	for i, h := range hashes {
		out[i] = ts.threads[h]
	}
	return out
}
