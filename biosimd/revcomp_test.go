// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package biosimd_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/grailbio/maf/biosimd"
)

func TestComplement(t *testing.T) {
	tests := []struct {
		in, want byte
	}{
		{'A', 'T'}, {'T', 'A'}, {'C', 'G'}, {'G', 'C'},
		{'a', 't'}, {'t', 'a'}, {'c', 'g'}, {'g', 'c'},
		{'M', 'K'}, {'K', 'M'}, {'R', 'Y'}, {'Y', 'R'},
		{'W', 'W'}, {'S', 'S'}, {'V', 'B'}, {'B', 'V'}, {'H', 'D'}, {'D', 'H'},
		{'N', 'N'}, {'X', 'X'}, {'-', '-'},
	}
	for _, tc := range tests {
		if got := biosimd.Complement(tc.in); got != tc.want {
			t.Errorf("Complement(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestReverseComplement(t *testing.T) {
	tests := []struct{ in, want string }{
		{"ACGT", "ACGT"},
		{"AACGT", "ACGTT"},
		{"AC-GT", "AC-GT"},
		{"NNNACGT", "ACGTNNN"},
		{"acgtN", "Nacgt"},
	}
	for _, tc := range tests {
		dst := make([]byte, len(tc.in))
		biosimd.ReverseComplement(dst, []byte(tc.in))
		if string(dst) != tc.want {
			t.Errorf("ReverseComplement(%q) = %q, want %q", tc.in, dst, tc.want)
		}
	}
}

func TestReverseComplementInplaceMatchesOutOfPlace(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	alphabet := []byte("ACGTNacgtnMKRYWSVBHD-")
	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(40)
		seq := make([]byte, n)
		for i := range seq {
			seq[i] = alphabet[rng.Intn(len(alphabet))]
		}
		want := make([]byte, n)
		biosimd.ReverseComplement(want, seq)
		got := append([]byte(nil), seq...)
		biosimd.ReverseComplementInplace(got)
		if !bytes.Equal(got, want) {
			t.Fatalf("inplace/out-of-place mismatch for %q: got %q want %q", seq, got, want)
		}
	}
}

func TestReverseComplementInvolution(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	alphabet := []byte("ACGTNacgtnMKRYWSVBHD-")
	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(50)
		seq := make([]byte, n)
		for i := range seq {
			seq[i] = alphabet[rng.Intn(len(alphabet))]
		}
		once := append([]byte(nil), seq...)
		biosimd.ReverseComplementInplace(once)
		twice := append([]byte(nil), once...)
		biosimd.ReverseComplementInplace(twice)
		if !bytes.Equal(twice, seq) {
			t.Fatalf("reverse complement is not an involution for %q", seq)
		}
	}
}

func TestReverseComplementPanicsOnLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on length mismatch")
		}
	}()
	biosimd.ReverseComplement(make([]byte, 2), make([]byte, 3))
}
