package pairs

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/grailbio/maf/encoding/maf"
)

// Sampler draws a uniform sample of homology pairs from a MAF file, given
// the file's exact pair count and a target sample size. It is seeded once
// and threaded through an entire comparator run so the run is reproducible
// from (MAF content, sample size, seed) alone (§5, §9).
type Sampler struct {
	p   float64
	rng *rand.Rand
}

// NewSampler returns a Sampler with per-pair acceptance probability
// p = targetSamples/totalPairs, clipped to [0,1]. totalPairs == 0 yields
// p == 0 (the EmptyComparison case, §7).
func NewSampler(totalPairs, targetSamples int64, seed uint64) *Sampler {
	var p float64
	if totalPairs > 0 {
		p = float64(targetSamples) / float64(totalPairs)
	}
	switch {
	case p < 0:
		p = 0
	case p > 1:
		p = 1
	}
	return &Sampler{p: p, rng: rand.New(rand.NewSource(seed))}
}

// P returns the per-pair acceptance probability in use.
func (s *Sampler) P() float64 { return s.p }

// SampleBlock draws pairs from one block's legitimate, non-gap columns
// into dst.
func (s *Sampler) SampleBlock(b *maf.Block, legit LegitFunc, dst *SampledSet) {
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
		s.sampleColumn(colRows, c, names, fwd, dst)
	}
}

// sampleColumn implements the algorithm of design §4.4: brute force for
// m <= 4, otherwise a single binomial draw for the sample count, with
// complement sampling when that count exceeds half the column's pairs.
func (s *Sampler) sampleColumn(rows []int, col int, names []string, fwd [][]int64, dst *SampledSet) {
	k := int64(len(rows))
	m := ChooseTwo(len(rows))
	if m == 0 {
		return
	}
	emit := func(i int64) {
		r, c := indexToPair(i, k)
		rowA, rowB := rows[r], rows[c]
		pair := Canonicalize(names[rowA], fwd[rowA][col], names[rowB], fwd[rowB][col])
		dst.Insert(pair)
	}
	if m <= 4 {
		for i := int64(0); i < m; i++ {
			if s.rng.Float64() < s.p {
				emit(i)
			}
		}
		return
	}
	n := s.drawBinomial(m)
	if n > m/2 {
		chosen := s.chooseDistinct(m-n, m)
		for i := int64(0); i < m; i++ {
			if _, excluded := chosen[i]; !excluded {
				emit(i)
			}
		}
		return
	}
	for i := range s.chooseDistinct(n, m) {
		emit(i)
	}
}

// drawBinomial draws one sample from Binomial(m, p). gonum's distuv is used
// here rather than a hand-rolled inverse-CDF loop: it gives a seedable,
// reproducible binomial draw for free.
func (s *Sampler) drawBinomial(m int64) int64 {
	b := distuv.Binomial{N: float64(m), P: s.p, Src: s.rng}
	return int64(math.Round(b.Rand()))
}

// chooseDistinct draws n distinct indices uniformly from [0, m) by
// rejection sampling into a set. The caller only ever asks for n <= m/2
// (sampling the complement otherwise), which keeps the expected number of
// rejected draws small.
func (s *Sampler) chooseDistinct(n, m int64) map[int64]struct{} {
	chosen := make(map[int64]struct{}, n)
	for int64(len(chosen)) < n {
		chosen[s.rng.Int63n(m)] = struct{}{}
	}
	return chosen
}

// indexToPair maps a linear pair index i in [0, C(k,2)) to the row pair
// (r, c), 0 <= r < c < k, it denotes, inverting
// offset(r) = r*k - r*(r+1)/2 (the index of the first pair whose smaller
// element is r) via the quadratic formula, then nudging r to correct for
// floating-point rounding at the boundary.
func indexToPair(i, k int64) (r, c int64) {
	kf := float64(k)
	disc := (2*kf - 1) * (2*kf - 1) - 8*float64(i)
	if disc < 0 {
		disc = 0
	}
	r = int64(math.Floor(((2*kf - 1) - math.Sqrt(disc)) / 2))
	for r > 0 && offset(r, k) > i {
		r--
	}
	for offset(r+1, k) <= i {
		r++
	}
	c = i - offset(r, k) + r + 1
	return r, c
}

// pairToIndex is the inverse of indexToPair, used by tests to check the
// mapping is an exact bijection.
func pairToIndex(r, c, k int64) int64 {
	return offset(r, k) + c - r - 1
}

func offset(r, k int64) int64 {
	return r*k - r*(r+1)/2
}
