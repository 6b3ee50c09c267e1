package homology

import (
	"testing"

	"github.com/grailbio/maf/pairs"
)

func TestWiggleBinning(t *testing.T) {
	sampled := pairs.NewSampledSet()
	p1 := pairs.Canonicalize("ref", 3, "partner", 100)
	p2 := pairs.Canonicalize("ref", 12, "partner", 200)
	sampled.Insert(p1)
	sampled.Insert(p2)

	hitsAtoB := map[pairs.Pair]bool{p1: true, p2: false}
	hitsBtoA := map[pairs.Pair]bool{p1: false, p2: true}

	bins := Wiggle("ref", "partner", sampled, hitsAtoB, hitsBtoA, 20, 10)
	if len(bins) != 2 {
		t.Fatalf("len(bins) = %d, want 2", len(bins))
	}
	if bins[0].PresentAtoB != 1 || bins[0].AbsentBtoA != 1 {
		t.Errorf("bin 0 = %+v, want PresentAtoB=1 AbsentBtoA=1", bins[0])
	}
	if bins[1].AbsentAtoB != 1 || bins[1].PresentBtoA != 1 {
		t.Errorf("bin 1 = %+v, want AbsentAtoB=1 PresentBtoA=1", bins[1])
	}
}

func TestWiggleOutOfRangePositionIgnored(t *testing.T) {
	sampled := pairs.NewSampledSet()
	p := pairs.Canonicalize("ref", 50, "partner", 1)
	sampled.Insert(p)
	bins := Wiggle("ref", "partner", sampled, map[pairs.Pair]bool{p: true}, map[pairs.Pair]bool{}, 20, 10)
	for i, b := range bins {
		if b != (WiggleBin{}) {
			t.Errorf("bin %d = %+v, want zero (position 50 is out of a 20bp reference)", i, b)
		}
	}
}
