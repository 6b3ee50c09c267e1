// mafcompare estimates the fraction of homologous base pairs two MAF
// alignments agree on, by sampling pairs from each file and probing for
// them in the other.
//
// Usage: mafcompare -maf1 a.maf -maf2 b.maf -out report.xml
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/maf/encoding/maf"
	"github.com/grailbio/maf/genomic/interval"
	"github.com/grailbio/maf/homology"
	"github.com/grailbio/maf/pairs"
)

var (
	maf1Path    = flag.String("maf1", "", "First input MAF path (required)")
	maf2Path    = flag.String("maf2", "", "Second input MAF path (required)")
	outPath     = flag.String("out", "", "Output XML report path; defaults to stdout")
	samples     = flag.Int64("samples", 1000000, "Target number of pairs to sample per direction")
	near        = flag.Int64("near", 0, "A sampled pair also hits if the partner file has a pair sharing one side exactly and differing by at most this many bases on the other")
	seed        = flag.Uint64("seed", 1, "Seed for the column sampler's RNG")
	bedFiles    = flag.String("bed", "", "Comma-separated list of BED files; pairs are also classified by which file(s) contain their endpoints")
	wigglePairs = flag.String("wiggle-pairs", "", "Comma-separated species1:species2 pairs to additionally emit a wiggle histogram for")
	wiggleBin   = flag.Int64("wiggle-bin", 1000, "Bin width, in bases, for -wiggle-pairs output")
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s -maf1 a.maf -maf2 b.maf [options]\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	shutdown := grail.Init()
	defer shutdown()

	if *maf1Path == "" || *maf2Path == "" {
		usage()
		os.Exit(2)
	}

	legit, err := commonSpecies(*maf1Path, *maf2Path)
	if err != nil {
		log.Fatalf("mafcompare: %v", err)
	}

	var intervals *interval.Set
	if *bedFiles != "" {
		intervals, err = loadBEDFiles(strings.Split(*bedFiles, ","))
		if err != nil {
			log.Fatalf("mafcompare: %v", err)
		}
	}

	totalA, sampledA, err := sampleFile(*maf1Path, legit)
	if err != nil {
		log.Fatalf("mafcompare: sampling %s: %v", *maf1Path, err)
	}
	totalB, sampledB, err := sampleFile(*maf2Path, legit)
	if err != nil {
		log.Fatalf("mafcompare: sampling %s: %v", *maf2Path, err)
	}

	r2, err := openMAF(*maf2Path)
	if err != nil {
		log.Fatalf("mafcompare: %v", err)
	}
	aToB, hitsAtoB, err := homology.Test(sampledA, r2, *near, legit, intervals)
	if err != nil {
		log.Fatalf("mafcompare: testing %s against %s: %v", *maf1Path, *maf2Path, err)
	}

	r1, err := openMAF(*maf1Path)
	if err != nil {
		log.Fatalf("mafcompare: %v", err)
	}
	bToA, hitsBtoA, err := homology.Test(sampledB, r1, *near, legit, intervals)
	if err != nil {
		log.Fatalf("mafcompare: testing %s against %s: %v", *maf2Path, *maf1Path, err)
	}

	report := homology.BuildReport(homology.ReportOptions{
		NumberOfSamples:     *samples,
		Near:                *near,
		Seed:                *seed,
		Maf1:                *maf1Path,
		Maf2:                *maf2Path,
		NumberOfPairsInMaf1: totalA,
		NumberOfPairsInMaf2: totalB,
		BedFiles:            *bedFiles,
		WigglePairs:         *wigglePairs,
		WiggleBinLength:     *wiggleBin,
		WithPartitions:      intervals != nil,
	}, aToB, bToA)

	body, err := report.Marshal()
	if err != nil {
		log.Fatalf("mafcompare: marshal report: %v", err)
	}

	if *outPath == "" {
		if _, err := os.Stdout.Write(body); err != nil {
			log.Fatalf("mafcompare: write report: %v", err)
		}
	} else {
		ctx := vcontext.Background()
		out, err := file.Create(ctx, *outPath)
		if err != nil {
			log.Fatalf("mafcompare: %v", err)
		}
		if _, err := out.Writer(ctx).Write(body); err != nil {
			log.Fatalf("mafcompare: write report: %v", err)
		}
		if err := out.Close(ctx); err != nil {
			log.Fatalf("mafcompare: closing %s: %v", *outPath, err)
		}
	}

	if *wigglePairs != "" {
		if err := writeWiggles(*wigglePairs, *wiggleBin, sampledA, sampledB, hitsAtoB, hitsBtoA); err != nil {
			log.Fatalf("mafcompare: wiggle output: %v", err)
		}
	}
}

func openMAF(path string) (*maf.Reader, error) {
	ctx := vcontext.Background()
	f, err := file.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	return maf.NewReader(f.Reader(ctx)), nil
}

// commonSpecies scans both files once to find the names legitimate for
// pairing: present in both. An UnknownSequenceRequested sampled pair can't
// arise downstream, since sampling never sees a name legit rejects.
func commonSpecies(path1, path2 string) (pairs.LegitFunc, error) {
	set1, err := speciesIn(path1)
	if err != nil {
		return nil, err
	}
	set2, err := speciesIn(path2)
	if err != nil {
		return nil, err
	}
	return func(name string) bool {
		return set1[name] && set2[name]
	}, nil
}

func speciesIn(path string) (map[string]bool, error) {
	r, err := openMAF(path)
	if err != nil {
		return nil, err
	}
	names := map[string]bool{}
	for {
		b, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		for _, n := range b.Names() {
			names[n] = true
		}
	}
	return names, nil
}

func sampleFile(path string, legit pairs.LegitFunc) (int64, *pairs.SampledSet, error) {
	r, err := openMAF(path)
	if err != nil {
		return 0, nil, err
	}
	total, err := pairs.CountFile(r, legit)
	if err != nil {
		return 0, nil, err
	}

	r2, err := openMAF(path)
	if err != nil {
		return 0, nil, err
	}
	sampler := pairs.NewSampler(total, *samples, *seed)
	dst := pairs.NewSampledSet()
	for {
		b, err := r2.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, nil, err
		}
		sampler.SampleBlock(b, legit, dst)
	}
	return total, dst, nil
}

func loadBEDFiles(paths []string) (*interval.Set, error) {
	b := interval.NewBuilder()
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		loaded, err := interval.LoadBEDFromPath(p)
		if err != nil {
			return nil, err
		}
		for _, name := range loaded.Sequences() {
			// Re-add through b so overlap across multiple BED files is
			// caught by a single Build() pass.
			for _, iv := range loaded.Intervals(name) {
				b.Add(name, iv.Start, iv.End)
			}
		}
	}
	return b.Build()
}

// writeWiggles emits one wig-style histogram per requested species1:species2
// pair to <species1>-<species2>.wig in the working directory. Wiggle wants
// one shared sampled set with both directions' hit maps keyed against it,
// so the two per-direction sampled sets are merged first; a pair missing
// from one direction's hit map (because it was only drawn in the other
// direction's sample) falls back to the map's zero value, "absent".
func writeWiggles(spec string, bin int64, sampledA, sampledB *pairs.SampledSet, hitsAtoB, hitsBtoA map[pairs.Pair]bool) error {
	merged := pairs.NewSampledSet()
	for _, p := range sampledA.Pairs() {
		merged.Insert(p)
	}
	for _, p := range sampledB.Pairs() {
		merged.Insert(p)
	}

	for _, pairSpec := range strings.Split(spec, ",") {
		pairSpec = strings.TrimSpace(pairSpec)
		if pairSpec == "" {
			continue
		}
		parts := strings.SplitN(pairSpec, ":", 2)
		if len(parts) != 2 {
			return fmt.Errorf("malformed -wiggle-pairs entry %q, want species1:species2", pairSpec)
		}
		ref, partner := parts[0], parts[1]

		bins := homology.Wiggle(ref, partner, merged, hitsAtoB, hitsBtoA, refLengthHint(merged, ref), bin)
		ctx := vcontext.Background()
		out, err := file.Create(ctx, ref+"-"+partner+".wig")
		if err != nil {
			return err
		}
		w := out.Writer(ctx)
		fmt.Fprintf(w, "track type=wiggle_0 name=\"%s vs %s\"\n", ref, partner)
		for i, b := range bins {
			fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\n", i*int(bin), b.PresentAtoB, b.AbsentAtoB, b.PresentBtoA, b.AbsentBtoA)
		}
		if err := out.Close(ctx); err != nil {
			return err
		}
	}
	return nil
}

// refLengthHint returns the largest position observed for ref across the
// sampled set, a safe upper bound for the wiggle histogram's bin count
// when the source MAF's true sequence length isn't separately tracked
// here.
func refLengthHint(sampled *pairs.SampledSet, ref string) int64 {
	var max int64
	for _, p := range sampled.Pairs() {
		if p.Seq1 == ref && p.Pos1 > max {
			max = p.Pos1
		}
		if p.Seq2 == ref && p.Pos2 > max {
			max = p.Pos2
		}
	}
	return max + 1
}
