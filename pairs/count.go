package pairs

import (
	"io"

	"github.com/grailbio/maf/encoding/maf"
)

const maxChooseTwoTable = 100

// chooseTwoTable precomputes C(k,2) for k in [0, maxChooseTwoTable], the
// accelerated path for the per-column inner loop of both the exact counter
// and the sampler.
var chooseTwoTable = func() [maxChooseTwoTable + 1]int64 {
	var t [maxChooseTwoTable + 1]int64
	for k := 0; k <= maxChooseTwoTable; k++ {
		t[k] = int64(k) * int64(k-1) / 2
	}
	return t
}()

// ChooseTwo returns C(k,2), the number of unordered pairs of k items.
func ChooseTwo(k int) int64 {
	if k <= 0 {
		return 0
	}
	if k <= maxChooseTwoTable {
		return chooseTwoTable[k]
	}
	kk := int64(k)
	return kk * (kk - 1) / 2
}

// LegitFunc reports whether a sequence name is eligible to participate in
// pair counting/sampling/testing: present in both files of a comparison.
type LegitFunc func(name string) bool

// legitimateCounts returns, per column, the number of legitimate rows
// whose base is non-gap at that column, using the block's Matrix/Names
// views.
func legitimateCounts(b *maf.Block, legit LegitFunc) []int {
	names := b.Names()
	matrix := b.Matrix()
	legitRows := make([]int, 0, len(names))
	for i, name := range names {
		if legit == nil || legit(name) {
			legitRows = append(legitRows, i)
		}
	}
	cols := b.NumCols()
	counts := make([]int, cols)
	for c := 0; c < cols; c++ {
		k := 0
		for _, r := range legitRows {
			if matrix[r][c] != '-' {
				k++
			}
		}
		counts[c] = k
	}
	return counts
}

// CountPairs returns the exact number of homology pairs in one block,
// restricted to rows legit accepts: sum over columns of C(k(c), 2).
func CountPairs(b *maf.Block, legit LegitFunc) int64 {
	var total int64
	for _, k := range legitimateCounts(b, legit) {
		total += ChooseTwo(k)
	}
	return total
}

// CountFile streams an entire MAF through CountPairs and returns the total
// pair count, the exact number of homology pairs the file contains subject
// to legit, irrespective of duplicate rows or reverse-complement encoding.
func CountFile(r *maf.Reader, legit LegitFunc) (int64, error) {
	var total int64
	for {
		b, err := r.Next()
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return 0, err
		}
		total += CountPairs(b, legit)
	}
}
