package interval

import (
	"sort"

	"github.com/pkg/errors"
)

// ErrOverlappingInterval is returned when two intervals supplied for the
// same sequence overlap; a Set requires a strictly non-overlapping,
// per-sequence interval collection.
var ErrOverlappingInterval = errors.New("overlapping interval")

// Interval is a zero-based, half-open [Start, End) interval.
type Interval struct {
	Start, End int64
}

// Set maps sequence name to a sorted, non-overlapping collection of
// intervals. The zero value is not usable; construct with New,
// Builder.Build or LoadBED.
type Set struct {
	// endpoints[name] is a flattened, sorted sequence of 2N int64s: interval
	// k's start is at index 2k, its end at index 2k+1.
	endpoints map[string][]int64

	// Sequential-query cache, reused across repeated Contains calls against
	// the same sequence in nondecreasing position order.
	lastName      string
	lastIntervals []int64
	lastPosPlus1  int64
	lastIdx       int
	isSequential  bool
}

// New returns an empty Set; intervals are added with Builder.
func New() *Set {
	return &Set{endpoints: map[string][]int64{}}
}

// Builder accumulates raw intervals before a single sort-and-overlap-check
// pass builds an immutable Set.
type Builder struct {
	byName map[string][]Interval
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{byName: map[string][]Interval{}}
}

// Add records one interval for name. Overlap is checked at Build time, not
// here, so intervals may be added in any order.
func (b *Builder) Add(name string, start, end int64) {
	b.byName[name] = append(b.byName[name], Interval{Start: start, End: end})
}

// Build sorts each sequence's intervals and flattens them, failing with
// ErrOverlappingInterval if any two intervals for the same sequence
// overlap.
func (b *Builder) Build() (*Set, error) {
	s := New()
	for name, ivs := range b.byName {
		sort.Slice(ivs, func(i, j int) bool { return ivs[i].Start < ivs[j].Start })
		flat := make([]int64, 0, 2*len(ivs))
		var prevEnd int64 = -1
		for i, iv := range ivs {
			if iv.End <= iv.Start {
				continue
			}
			if i > 0 && iv.Start < prevEnd {
				return nil, errors.Wrapf(ErrOverlappingInterval, "%s: [%d,%d) overlaps preceding interval ending at %d", name, iv.Start, iv.End, prevEnd)
			}
			flat = append(flat, iv.Start, iv.End)
			prevEnd = iv.End
		}
		if len(flat) > 0 {
			s.endpoints[name] = flat
		}
	}
	return s, nil
}

// Contains reports whether pos falls inside one of name's intervals.
func (s *Set) Contains(name string, pos int64) bool {
	posPlus1 := pos + 1
	if name != s.lastName {
		s.lastName = name
		s.lastIntervals = s.endpoints[name]
		if s.lastIntervals == nil {
			s.isSequential = false
			return false
		}
		s.lastIdx = searchInt64(s.lastIntervals, posPlus1)
		s.lastPosPlus1 = posPlus1
		s.isSequential = true
		return s.lastIdx&1 == 1
	}
	if s.lastIntervals == nil {
		return false
	}
	if s.isSequential && posPlus1 >= s.lastPosPlus1 {
		s.lastIdx = fwdSearchInt64(s.lastIntervals, posPlus1, s.lastIdx)
		s.lastPosPlus1 = posPlus1
		return s.lastIdx&1 == 1
	}
	s.isSequential = false
	return searchInt64(s.lastIntervals, posPlus1)&1 == 1
}

// Sequences returns the names with at least one interval.
func (s *Set) Sequences() []string {
	names := make([]string, 0, len(s.endpoints))
	for name := range s.endpoints {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Intervals returns name's intervals in ascending order. Used to merge
// several Sets (e.g. multiple BED files) through a single Builder so
// overlap across files is still caught at Build time.
func (s *Set) Intervals(name string) []Interval {
	flat := s.endpoints[name]
	out := make([]Interval, 0, len(flat)/2)
	for i := 0; i < len(flat); i += 2 {
		out = append(out, Interval{Start: flat[i], End: flat[i+1]})
	}
	return out
}

// searchInt64 returns the index of x in a, or where it would be inserted.
func searchInt64(a []int64, x int64) int {
	return sort.Search(len(a), func(i int) bool { return a[i] >= x })
}

// fwdSearchInt64 is searchInt64 optimized for repeated nondecreasing
// queries: it probes forward in increasing strides from idx before falling
// back to binary search, avoiding the O(log n) cost of a cold search when
// the caller is sweeping a sequence in order.
func fwdSearchInt64(a []int64, x int64, idx int) int {
	nextIncr := 1
	startIdx := idx
	endIdx := len(a)
	for idx < endIdx {
		if a[idx] >= x {
			endIdx = idx
			break
		}
		startIdx = idx + 1
		idx += nextIncr
		nextIncr *= 2
	}
	for startIdx < endIdx {
		mid := int(uint(startIdx+endIdx) >> 1)
		if a[mid] >= x {
			endIdx = mid
		} else {
			startIdx = mid + 1
		}
	}
	return startIdx
}
