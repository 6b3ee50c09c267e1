package homology

import (
	"github.com/grailbio/maf/encoding/maf"
	"github.com/grailbio/maf/genomic/interval"
	"github.com/grailbio/maf/pairs"
)

// Test probes file b for every pair in sampled and returns the aggregated
// result set plus the set of sampled pairs that hit, for callers that also
// want wiggle output (§4.5). intervals may be nil, in which case every
// pair classifies as PartitionNeither and only the all-counters are
// meaningful.
//
// With near == 0 a sampled pair (s1:p1, s2:p2) hits if b contains that
// exact pair. With near == n > 0 it also hits if b contains a pair sharing
// one side exactly and differing by at most n on the other (§ distilled
// spec 4.4). Classification into the four interval partitions always uses
// the sampled pair's own coordinates — the row being probed — never a
// position found via near-slack in b (§9 open question, resolved this
// way: the "probed" row is the one under test from the sampled set, the
// "nearby" row is whatever satisfies it within slack in b).
func Test(sampled *pairs.SampledSet, b *maf.Reader, near int64, legit pairs.LegitFunc, intervals *interval.Set) (*ResultSet, map[pairs.Pair]bool, error) {
	index, err := pairs.BuildIndex(b, legit)
	if err != nil {
		return nil, nil, err
	}

	rs := newResultSet()
	hits := make(map[pairs.Pair]bool)

	for _, p := range sampled.Pairs() {
		hit := probe(index, p, near)
		hits[p] = hit
		partition := classify(intervals, p)
		rs.add(p.Seq1, p.Seq2, hit, partition)
	}
	return rs, hits, nil
}

// probe reports whether p is present in index, exactly when near == 0, or
// within near slack on one side when near > 0.
func probe(index *pairs.SampledSet, p pairs.Pair, near int64) bool {
	if near <= 0 {
		return index.Contains(p)
	}
	candidates := index.BySpeciesPair(p.Seq1, p.Seq2)
	for _, c := range candidates {
		if c.Pos1 == p.Pos1 && absInt64(c.Pos2-p.Pos2) <= near {
			return true
		}
		if c.Pos2 == p.Pos2 && absInt64(c.Pos1-p.Pos1) <= near {
			return true
		}
	}
	return false
}

// classify partitions p into {both, A, B, neither} using its own
// (Seq1,Pos1) and (Seq2,Pos2), irrespective of how it was matched.
func classify(intervals *interval.Set, p pairs.Pair) Partition {
	if intervals == nil {
		return PartitionNeither
	}
	in1 := intervals.Contains(p.Seq1, p.Pos1)
	in2 := intervals.Contains(p.Seq2, p.Pos2)
	switch {
	case in1 && in2:
		return PartitionBoth
	case in1:
		return PartitionA
	case in2:
		return PartitionB
	default:
		return PartitionNeither
	}
}

func absInt64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
