// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package biosimd

// complementTable maps every byte that can legally appear in a MAF sequence
// field to its IUPAC complement: A<->T, C<->G, M<->K, R<->Y, W->W, S->S,
// V<->B, H<->D; N, X, '-' and anything unrecognized pass through unchanged.
// Lowercase bases map to their lowercase complement so soft-masking survives
// a reverse complement.
var complementTable = buildComplementTable()

func buildComplementTable() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = byte(i)
	}
	pairs := [][2]byte{
		{'A', 'T'}, {'C', 'G'}, {'M', 'K'}, {'R', 'Y'},
		{'V', 'B'}, {'H', 'D'},
	}
	same := []byte{'W', 'S', 'N', 'X'}
	for _, p := range pairs {
		set(&t, p[0], p[1])
		set(&t, p[1], p[0])
	}
	for _, b := range same {
		set(&t, b, b)
	}
	t['-'] = '-'
	return t
}

func set(t *[256]byte, upper, comp byte) {
	t[upper] = comp
	t[upper+('a'-'A')] = comp + ('a' - 'A')
}

// Complement returns the IUPAC complement of a single base, preserving case
// and passing gap/unknown characters through unchanged.
func Complement(b byte) byte {
	return complementTable[b]
}

// ReverseComplementInplace reverse-complements seq in place.
func ReverseComplementInplace(seq []byte) {
	n := len(seq)
	half := n >> 1
	for i, j := 0, n-1; i != half; i, j = i+1, j-1 {
		seq[i], seq[j] = complementTable[seq[j]], complementTable[seq[i]]
	}
	if n&1 == 1 {
		seq[half] = complementTable[seq[half]]
	}
}

// ReverseComplement writes the reverse complement of src to dst. It panics
// if len(dst) != len(src); dst and src may not overlap.
func ReverseComplement(dst, src []byte) {
	n := len(src)
	if len(dst) != n {
		panic("biosimd.ReverseComplement requires len(dst) == len(src)")
	}
	for i, j := 0, n-1; i != n; i, j = i+1, j-1 {
		dst[i] = complementTable[src[j]]
	}
}
