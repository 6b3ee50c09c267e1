package unionfind_test

import (
	"math/rand"
	"testing"

	"github.com/grailbio/maf/unionfind"
)

func TestUnionFindBasic(t *testing.T) {
	f := unionfind.New(5)
	for i := int32(0); i < 5; i++ {
		if !f.Same(i, i) {
			t.Errorf("element %d not same as itself", i)
		}
	}
	f.Union(0, 1)
	f.Union(1, 2)
	if !f.Same(0, 2) {
		t.Error("0 and 2 should be joined transitively via 1")
	}
	if f.Same(0, 3) {
		t.Error("0 and 3 should not be joined")
	}
	f.Union(3, 4)
	if f.Same(2, 3) {
		t.Error("2 and 3 should still be separate")
	}
	f.Union(2, 3)
	if !f.Same(0, 4) {
		t.Error("all five elements should now be joined")
	}
}

// TestUnionFindAgreesWithReferenceModel checks, after a random sequence of
// unions, that Same agrees with the equivalence classes induced by a naive
// reference implementation built from the same union sequence.
func TestUnionFindAgreesWithReferenceModel(t *testing.T) {
	const n = 200
	rng := rand.New(rand.NewSource(7))
	f := unionfind.New(n)
	group := make([]int, n)
	for i := range group {
		group[i] = i
	}
	mergeGroups := func(a, b int) {
		ga, gb := group[a], group[b]
		if ga == gb {
			return
		}
		for i := range group {
			if group[i] == gb {
				group[i] = ga
			}
		}
	}
	for trial := 0; trial < 500; trial++ {
		x, y := int32(rng.Intn(n)), int32(rng.Intn(n))
		f.Union(x, y)
		mergeGroups(int(x), int(y))
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := group[i] == group[j]
			if got := f.Same(int32(i), int32(j)); got != want {
				t.Fatalf("Same(%d, %d) = %v, want %v", i, j, got, want)
			}
		}
	}
}

func TestForestGrow(t *testing.T) {
	f := unionfind.New(2)
	f.Union(0, 1)
	f.Grow(5)
	if f.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", f.Len())
	}
	if !f.Same(0, 1) {
		t.Error("growing should preserve existing unions")
	}
	if f.Same(2, 3) {
		t.Error("new elements should start as singletons")
	}
}
