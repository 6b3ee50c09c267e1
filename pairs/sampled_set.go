package pairs

import "sort"

// SampledSet is a sorted, deduplicated collection of sampled pairs — the
// "AVL tree" of the original toolkit (§9 design note) reimagined as a
// sorted slice: construction here is insert-only and the only query
// patterns needed are ordered iteration and range lookup by species pair,
// so a sorted slice with binary-search insert is sufficient and simpler
// than a balanced tree.
type SampledSet struct {
	items []Pair
}

// NewSampledSet returns an empty SampledSet.
func NewSampledSet() *SampledSet { return &SampledSet{} }

// Insert adds p if not already present, maintaining sort order.
func (s *SampledSet) Insert(p Pair) {
	i := sort.Search(len(s.items), func(i int) bool { return !s.items[i].Less(p) })
	if i < len(s.items) && s.items[i] == p {
		return
	}
	s.items = append(s.items, Pair{})
	copy(s.items[i+1:], s.items[i:])
	s.items[i] = p
}

// Len returns the number of distinct sampled pairs.
func (s *SampledSet) Len() int { return len(s.items) }

// Pairs returns the sampled pairs in ascending (Seq1,Seq2,Pos1,Pos2) order.
func (s *SampledSet) Pairs() []Pair { return s.items }

// PairsDescending returns the sampled pairs in descending key order,
// matching the original toolkit's reverse-key enumeration (§9 design
// note).
func (s *SampledSet) PairsDescending() []Pair {
	out := make([]Pair, len(s.items))
	for i, p := range s.items {
		out[len(s.items)-1-i] = p
	}
	return out
}

// Contains reports whether p (already canonicalised) is in the set.
func (s *SampledSet) Contains(p Pair) bool {
	i := sort.Search(len(s.items), func(i int) bool { return !s.items[i].Less(p) })
	return i < len(s.items) && s.items[i] == p
}

// BySpeciesPair returns the contiguous, Pos1/Pos2-sorted slice of sampled
// pairs between seq1 and seq2 (seq1 <= seq2, as Canonicalize would order
// them). Used by the homology tester's near-slack search, which needs to
// scan nearby positions rather than look up one exact pair.
func (s *SampledSet) BySpeciesPair(seq1, seq2 string) []Pair {
	lo := sort.Search(len(s.items), func(i int) bool {
		return s.items[i].Seq1 > seq1 || (s.items[i].Seq1 == seq1 && s.items[i].Seq2 >= seq2)
	})
	hi := sort.Search(len(s.items), func(i int) bool {
		return s.items[i].Seq1 > seq1 || (s.items[i].Seq1 == seq1 && s.items[i].Seq2 > seq2)
	})
	return s.items[lo:hi]
}
