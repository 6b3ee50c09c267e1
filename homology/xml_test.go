package homology

import (
	"encoding/xml"
	"strings"
	"testing"
)

func TestBuildReportDescendingOrderAndPartitions(t *testing.T) {
	rs := newResultSet()
	rs.add("hg19", "mm10", true, PartitionBoth)
	rs.add("hg19", "rn6", false, PartitionA)
	rs.add("bosTau", "mm10", true, PartitionNeither)

	empty := newResultSet()
	report := BuildReport(ReportOptions{
		NumberOfSamples:     3,
		Near:                0,
		Seed:                42,
		Maf1:                "a.maf",
		Maf2:                "b.maf",
		NumberOfPairsInMaf1: 100,
		NumberOfPairsInMaf2: 100,
		WithPartitions:      true,
	}, rs, empty)

	if len(report.HomologyTests) != 2 {
		t.Fatalf("len(HomologyTests) = %d, want 2", len(report.HomologyTests))
	}
	pairTests := report.HomologyTests[0].HomologyPairTests
	if len(pairTests) != 3 {
		t.Fatalf("len(HomologyPairTests) = %d, want 3", len(pairTests))
	}
	for i := 1; i < len(pairTests); i++ {
		prev, cur := pairTests[i-1], pairTests[i]
		if prev.Species1 < cur.Species1 || (prev.Species1 == cur.Species1 && prev.Species2 < cur.Species2) {
			t.Errorf("pair tests not in descending order at %d: %+v then %+v", i, prev, cur)
		}
	}
	if pairTests[0].TotalBoth == nil {
		t.Errorf("partitions requested but TotalBoth is nil")
	}

	body, err := report.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.HasPrefix(string(body), xml.Header) {
		t.Errorf("Marshal output missing XML header")
	}
	var roundTrip Report
	if err := xml.Unmarshal(body, &roundTrip); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if roundTrip.Seed != 42 || roundTrip.Maf1 != "a.maf" {
		t.Errorf("round trip lost attributes: %+v", roundTrip)
	}
}

func TestBuildReportWithoutPartitionsOmitsFields(t *testing.T) {
	rs := newResultSet()
	rs.add("hg19", "mm10", true, PartitionNeither)
	empty := newResultSet()
	report := BuildReport(ReportOptions{WithPartitions: false}, rs, empty)
	body, err := report.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if strings.Contains(string(body), "totalBoth") {
		t.Errorf("partitions not requested but totalBoth appeared in output:\n%s", body)
	}
}
