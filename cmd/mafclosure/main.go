// mafclosure computes the transitive closure of a MAF file's homology
// relation: every pair of aligned bases ends up in exactly one output
// alignment block, merging overlapping and chained alignments together.
//
// Usage: mafclosure input.maf output.maf
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/maf/closure"
	"github.com/grailbio/maf/encoding/maf"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s input.maf output.maf\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	shutdown := grail.Init()
	defer shutdown()

	if flag.NArg() != 2 {
		usage()
		os.Exit(2)
	}
	inPath, outPath := flag.Arg(0), flag.Arg(1)
	ctx := vcontext.Background()

	in, err := file.Open(ctx, inPath)
	if err != nil {
		log.Fatalf("mafclosure: %v", err)
	}
	defer in.Close(ctx) // nolint: errcheck

	out, err := file.Create(ctx, outPath)
	if err != nil {
		log.Fatalf("mafclosure: %v", err)
	}

	r := maf.NewReader(in.Reader(ctx))
	w := maf.NewWriter(out.Writer(ctx))
	if err := closure.Close(r, w); err != nil {
		out.Close(ctx) // nolint: errcheck
		log.Fatalf("mafclosure: %v", err)
	}
	if err := out.Close(ctx); err != nil {
		log.Fatalf("mafclosure: closing %s: %v", outPath, err)
	}
}
