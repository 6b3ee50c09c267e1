package homology

import (
	"encoding/xml"
	"sort"
)

// Report is the root of a comparison's XML output. Marshaling uses the
// standard library's encoding/xml rather than a corpus dependency: no
// example in the retrieval pack marshals XML, so there is nothing to
// ground a third-party choice on.
type Report struct {
	XMLName xml.Name `xml:"alignmentComparisons"`

	NumberOfSamples     int64  `xml:"numberOfSamples,attr"`
	Near                int64  `xml:"near,attr"`
	Seed                uint64 `xml:"seed,attr"`
	Maf1                string `xml:"maf1,attr"`
	Maf2                string `xml:"maf2,attr"`
	NumberOfPairsInMaf1 int64  `xml:"numberOfPairsInMaf1,attr"`
	NumberOfPairsInMaf2 int64  `xml:"numberOfPairsInMaf2,attr"`
	BedFiles            string `xml:"bedFiles,attr,omitempty"`
	WigglePairs         string `xml:"wigglePairs,attr,omitempty"`
	WiggleBinLength     int64  `xml:"wiggleBinLength,attr,omitempty"`

	HomologyTests []homologyTestXML `xml:"homologyTests"`
}

type homologyTestXML struct {
	Direction         string              `xml:"direction,attr"`
	Self              resultXML           `xml:"aggregateResults>self"`
	Aggregate         []aggregateEntryXML `xml:"aggregateResults>species"`
	HomologyPairTests []pairTestXML       `xml:"homologyPairTests>homologyPairTest"`
}

type aggregateEntryXML struct {
	Name string `xml:"name,attr"`
	resultXML
}

type pairTestXML struct {
	Species1 string `xml:"species1,attr"`
	Species2 string `xml:"species2,attr"`
	resultXML
}

// resultXML mirrors Result. The four partitions are pointers so they can
// be omitted entirely when the comparison carried no interval set,
// leaving only the all-counters in the document.
type resultXML struct {
	Total int64 `xml:"total,attr"`
	InAll int64 `xml:"inAll,attr"`

	TotalBoth    *int64 `xml:"totalBoth,attr,omitempty"`
	TotalA       *int64 `xml:"totalA,attr,omitempty"`
	TotalB       *int64 `xml:"totalB,attr,omitempty"`
	TotalNeither *int64 `xml:"totalNeither,attr,omitempty"`
	InBoth       *int64 `xml:"inBoth,attr,omitempty"`
	InA          *int64 `xml:"inA,attr,omitempty"`
	InB          *int64 `xml:"inB,attr,omitempty"`
	InNeither    *int64 `xml:"inNeither,attr,omitempty"`
}

func toResultXML(r *Result, withPartitions bool) resultXML {
	x := resultXML{Total: r.Total, InAll: r.InAll}
	if withPartitions {
		x.TotalBoth = &r.TotalBoth
		x.TotalA = &r.TotalA
		x.TotalB = &r.TotalB
		x.TotalNeither = &r.TotalNeither
		x.InBoth = &r.InBoth
		x.InA = &r.InA
		x.InB = &r.InB
		x.InNeither = &r.InNeither
	}
	return x
}

// ReportOptions carries the run parameters that appear as attributes on
// the report root, independent of either direction's ResultSet.
type ReportOptions struct {
	NumberOfSamples     int64
	Near                int64
	Seed                uint64
	Maf1, Maf2          string
	NumberOfPairsInMaf1 int64
	NumberOfPairsInMaf2 int64
	BedFiles            string
	WigglePairs         string
	WiggleBinLength     int64
	WithPartitions      bool
}

// BuildReport assembles the two-direction XML report. aToB/bToA are the
// result sets from testing A's samples against B and B's samples against
// A respectively.
func BuildReport(opts ReportOptions, aToB, bToA *ResultSet) *Report {
	return &Report{
		NumberOfSamples:     opts.NumberOfSamples,
		Near:                opts.Near,
		Seed:                opts.Seed,
		Maf1:                opts.Maf1,
		Maf2:                opts.Maf2,
		NumberOfPairsInMaf1: opts.NumberOfPairsInMaf1,
		NumberOfPairsInMaf2: opts.NumberOfPairsInMaf2,
		BedFiles:            opts.BedFiles,
		WigglePairs:         opts.WigglePairs,
		WiggleBinLength:     opts.WiggleBinLength,
		HomologyTests: []homologyTestXML{
			buildHomologyTest("AtoB", aToB, opts.WithPartitions),
			buildHomologyTest("BtoA", bToA, opts.WithPartitions),
		},
	}
}

// buildHomologyTest renders one direction's ResultSet, with
// homologyPairTests enumerated in descending (Species1,Species2) key
// order to match the original toolkit's reverse-key iteration.
func buildHomologyTest(direction string, rs *ResultSet, withPartitions bool) homologyTestXML {
	h := homologyTestXML{
		Direction: direction,
		Self:      toResultXML(rs.Self, withPartitions),
	}

	names := make([]string, 0, len(rs.Aggregate))
	for n := range rs.Aggregate {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		h.Aggregate = append(h.Aggregate, aggregateEntryXML{
			Name:      n,
			resultXML: toResultXML(rs.Aggregate[n], withPartitions),
		})
	}

	keys := make([]SpeciesPair, 0, len(rs.PairResults))
	for k := range rs.PairResults {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Species1 != keys[j].Species1 {
			return keys[i].Species1 > keys[j].Species1
		}
		return keys[i].Species2 > keys[j].Species2
	})
	for _, k := range keys {
		h.HomologyPairTests = append(h.HomologyPairTests, pairTestXML{
			Species1:  k.Species1,
			Species2:  k.Species2,
			resultXML: toResultXML(rs.PairResults[k], withPartitions),
		})
	}
	return h
}

// Marshal renders the report as indented XML with a standard header.
func (r *Report) Marshal() ([]byte, error) {
	body, err := xml.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(xml.Header)+len(body))
	out = append(out, xml.Header...)
	out = append(out, body...)
	return out, nil
}
