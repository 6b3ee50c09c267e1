package closure

import (
	"sort"

	"github.com/grailbio/maf/encoding/maf"
)

// Fragment is one piece of a block's comparison order: RefRow's columns
// [Start, End) form a maximal non-gap run not yet covered by an earlier,
// denser reference row.
type Fragment struct {
	RefRow     int
	Start, End int
}

// comparisonOrder computes the minimal set of fragments covering every
// non-gap column of b exactly once, by greedily extending the row with
// fewest gaps across the columns it still has left to claim, then moving
// to the next-densest row for whatever remains (§4.8 step 2).
func comparisonOrder(b *maf.Block) []Fragment {
	cols := b.NumCols()
	matrix := b.Matrix()
	rows := len(b.Rows)

	gapCounts := make([]int, rows)
	for r, row := range matrix {
		for _, ch := range row {
			if ch == '-' {
				gapCounts[r]++
			}
		}
	}
	order := make([]int, rows)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return gapCounts[order[i]] < gapCounts[order[j]] })

	covered := make([]bool, cols)
	remaining := cols
	var fragments []Fragment
	for _, r := range order {
		if remaining == 0 {
			break
		}
		row := matrix[r]
		for c := 0; c < cols; {
			if covered[c] || row[c] == '-' {
				c++
				continue
			}
			start := c
			for c < cols && !covered[c] && row[c] != '-' {
				covered[c] = true
				remaining--
				c++
			}
			fragments = append(fragments, Fragment{RefRow: r, Start: start, End: c})
		}
	}
	return fragments
}
