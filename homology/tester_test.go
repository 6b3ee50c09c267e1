package homology

import (
	"strings"
	"testing"

	"github.com/grailbio/maf/encoding/maf"
	"github.com/grailbio/maf/pairs"
)

func legitAll(string) bool { return true }

// TestTestSelfComparisonIsPerfect is scenario S2: testing a sample against
// the exact file it was drawn from must hit every sampled pair.
func TestTestSelfComparisonIsPerfect(t *testing.T) {
	const block = "a\n" +
		"s spA 0 5 + 10 ACGTA\n" +
		"s spB 0 5 + 10 ACGTA\n" +
		"s spC 0 4 + 10 ACGT-\n"

	rdA := maf.NewReader(strings.NewReader(block))
	bA, err := rdA.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	sampled := pairs.NewSampledSet()
	pairs.InsertAllPairs(bA, legitAll, sampled)

	rdB := maf.NewReader(strings.NewReader(block))
	rs, hits, err := Test(sampled, rdB, 0, legitAll, nil)
	if err != nil {
		t.Fatalf("Test: %v", err)
	}
	if len(hits) != sampled.Len() {
		t.Fatalf("hits has %d entries, want %d", len(hits), sampled.Len())
	}
	for p, hit := range hits {
		if !hit {
			t.Errorf("pair %+v missed in self-comparison", p)
		}
	}
	var total, inAll int64
	for _, r := range rs.PairResults {
		total += r.Total
		inAll += r.InAll
	}
	if total != inAll {
		t.Errorf("total=%d inAll=%d, want equal for a perfect self-comparison", total, inAll)
	}
}

// TestTestNearSlack is scenario S3: A contains (X:10,Y:20); B aligns X:10
// to Y:22. near=0 must miss, near=2 must hit.
func TestTestNearSlack(t *testing.T) {
	sampled := pairs.NewSampledSet()
	sampled.Insert(pairs.Canonicalize("X", 10, "Y", 20))

	const blockB = "a\n" +
		"s X 10 1 + 20 A\n" +
		"s Y 22 1 + 30 A\n"

	rd := maf.NewReader(strings.NewReader(blockB))
	_, hits, err := Test(sampled, rd, 0, legitAll, nil)
	if err != nil {
		t.Fatalf("Test near=0: %v", err)
	}
	p := pairs.Canonicalize("X", 10, "Y", 20)
	if hits[p] {
		t.Errorf("near=0: pair reported true, want false")
	}

	rd = maf.NewReader(strings.NewReader(blockB))
	_, hits, err = Test(sampled, rd, 2, legitAll, nil)
	if err != nil {
		t.Fatalf("Test near=2: %v", err)
	}
	if !hits[p] {
		t.Errorf("near=2: pair reported false, want true")
	}
}

func TestTestEmptySampledSet(t *testing.T) {
	sampled := pairs.NewSampledSet()
	rd := maf.NewReader(strings.NewReader("a\ns X 0 1 + 1 A\n"))
	rs, hits, err := Test(sampled, rd, 0, legitAll, nil)
	if err != nil {
		t.Fatalf("Test: %v", err)
	}
	if len(hits) != 0 {
		t.Errorf("hits = %v, want empty", hits)
	}
	if len(rs.PairResults) != 0 {
		t.Errorf("PairResults = %v, want empty", rs.PairResults)
	}
}
