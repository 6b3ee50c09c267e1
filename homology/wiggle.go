package homology

import "github.com/grailbio/maf/pairs"

// WiggleBin tallies, for one bucket of a reference sequence, how many
// sampled pairs anchored in that bucket were present or absent in each
// comparison direction.
type WiggleBin struct {
	PresentAtoB, PresentBtoA int64
	AbsentAtoB, AbsentBtoA   int64
}

// Wiggle bins ref's sampled pairs against partner into ceil(refLen/bin)
// buckets keyed by ref's forward-strand position, mirroring the
// counting-bucket style of a duplicate-rate histogram: fixed-width
// buckets accumulated by simple increment, no interpolation.
func Wiggle(ref, partner string, sampled *pairs.SampledSet, hitsAtoB, hitsBtoA map[pairs.Pair]bool, refLen, bin int64) []WiggleBin {
	if bin <= 0 {
		bin = 1
	}
	nBins := (refLen + bin - 1) / bin
	bins := make([]WiggleBin, nBins)

	seq1, seq2 := ref, partner
	if seq2 < seq1 {
		seq1, seq2 = seq2, seq1
	}
	for _, p := range sampled.BySpeciesPair(seq1, seq2) {
		pos, ok := refPosition(p, ref)
		if !ok {
			continue
		}
		idx := pos / bin
		if idx < 0 || idx >= nBins {
			continue
		}
		if hitsAtoB[p] {
			bins[idx].PresentAtoB++
		} else {
			bins[idx].AbsentAtoB++
		}
		if hitsBtoA[p] {
			bins[idx].PresentBtoA++
		} else {
			bins[idx].AbsentBtoA++
		}
	}
	return bins
}

// refPosition returns the coordinate of ref's side of p.
func refPosition(p pairs.Pair, ref string) (int64, bool) {
	switch ref {
	case p.Seq1:
		return p.Pos1, true
	case p.Seq2:
		return p.Pos2, true
	default:
		return 0, false
	}
}
