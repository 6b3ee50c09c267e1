package pairs

import (
	"io"

	"github.com/grailbio/maf/encoding/maf"
)

// InsertAllPairs inserts every legitimate, non-gap pair in b's columns into
// dst, unconditionally (the p=1 special case of SampleBlock). It is the
// building block the homology tester uses to materialise the full set of
// in-column pairs on the probed side of a comparison (§4.4): rather than
// probing B column by column for each sampled pair individually, the tester
// builds this index once and then performs ordinary range lookups against
// it.
func InsertAllPairs(b *maf.Block, legit LegitFunc, dst *SampledSet) {
	names := b.Names()
	matrix := b.Matrix()
	fwd := b.ForwardPositions()
	legitRows := make([]int, 0, len(names))
	for i, name := range names {
		if legit == nil || legit(name) {
			legitRows = append(legitRows, i)
		}
	}
	cols := b.NumCols()
	colRows := make([]int, 0, len(legitRows))
	for c := 0; c < cols; c++ {
		colRows = colRows[:0]
		for _, r := range legitRows {
			if matrix[r][c] != '-' {
				colRows = append(colRows, r)
			}
		}
		for i := 0; i < len(colRows); i++ {
			for j := i + 1; j < len(colRows); j++ {
				r1, r2 := colRows[i], colRows[j]
				dst.Insert(Canonicalize(names[r1], fwd[r1][c], names[r2], fwd[r2][c]))
			}
		}
	}
}

// BuildIndex streams r and returns the full set of legitimate, non-gap
// pairs it contains, for use as the probe side of a homology test.
func BuildIndex(r *maf.Reader, legit LegitFunc) (*SampledSet, error) {
	dst := NewSampledSet()
	for {
		b, err := r.Next()
		if err == io.EOF {
			return dst, nil
		}
		if err != nil {
			return nil, err
		}
		InsertAllPairs(b, legit, dst)
	}
}
