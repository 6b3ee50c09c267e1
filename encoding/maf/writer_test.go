package maf_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/grailbio/maf/encoding/maf"
)

func TestWriterRoundTrip(t *testing.T) {
	const in = "##maf version=1\n\na score=0.0\ns spA 0 5 + 10 ACGTA\ns spB 0 5 + 10 ACGTA\n\n"
	rd := maf.NewReader(strings.NewReader(in))
	header, err := rd.Header()
	if err != nil {
		t.Fatalf("Header: %v", err)
	}
	block, err := rd.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}

	var buf bytes.Buffer
	wr := maf.NewWriter(&buf)
	if err := wr.WriteHeader(header); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}
	if err := wr.WriteBlock(block); err != nil {
		t.Fatalf("WriteBlock: %v", err)
	}
	if err := wr.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	rd2 := maf.NewReader(&buf)
	header2, err := rd2.Header()
	if err != nil {
		t.Fatalf("Header (round trip): %v", err)
	}
	if len(header2) != 1 || header2[0] != "##maf version=1" {
		t.Errorf("header round trip = %v", header2)
	}
	block2, err := rd2.Next()
	if err != nil {
		t.Fatalf("Next (round trip): %v", err)
	}
	if len(block2.Rows) != len(block.Rows) {
		t.Fatalf("round trip row count = %d, want %d", len(block2.Rows), len(block.Rows))
	}
	for i := range block.Rows {
		if string(block2.Rows[i].Seq) != string(block.Rows[i].Seq) {
			t.Errorf("row %d seq = %q, want %q", i, block2.Rows[i].Seq, block.Rows[i].Seq)
		}
	}
}

func TestWriterDefaultHeader(t *testing.T) {
	var buf bytes.Buffer
	wr := maf.NewWriter(&buf)
	block := &maf.Block{Rows: []maf.Row{{Name: "spA", Start: 0, Length: 1, Strand: '+', SourceLength: 1, Seq: []byte("A")}}}
	if err := wr.WriteBlock(block); err != nil {
		t.Fatalf("WriteBlock: %v", err)
	}
	wr.Close()
	if !strings.HasPrefix(buf.String(), "##maf version=1\n") {
		t.Errorf("output = %q, want default header prefix", buf.String())
	}
}
