package closure

import (
	"io"
	"io/ioutil"
	"os"
	"sort"
	"strconv"

	"github.com/grailbio/base/log"
	"github.com/grailbio/maf/biosimd"
	"github.com/grailbio/maf/encoding/maf"
	"github.com/grailbio/maf/pinch"
	"github.com/pkg/errors"
)

// Close computes the transitive closure of r's homology relation and
// writes the result to w: every pair of aligned bases ends up in exactly
// one pinch-graph block, and each block becomes one output alignment
// (§4.8).
//
// r is consumed twice (once to populate the reservoir, once to drive
// pinching), so pass 1 spools every block to a scratch file the way the
// teacher's shard-based passes do (e.g. pileup's per-job .rio spill
// files), rather than holding the whole MAF resident.
func Close(r *maf.Reader, w *maf.Writer) error {
	spool, err := ioutil.TempFile("", "mafclosure-*.maf")
	if err != nil {
		return errors.Wrap(err, "closure: create spool file")
	}
	spoolPath := spool.Name()
	defer func() {
		if rmErr := os.Remove(spoolPath); rmErr != nil {
			log.Error.Printf("closure: remove spool file %s: %v", spoolPath, rmErr)
		}
	}()

	ts := pinch.NewThreadSet()
	reservoir := NewReservoir()
	names := map[uint64]string{}
	lengths := map[uint64]int64{}

	spoolWriter := maf.NewWriter(spool)
	for {
		b, rerr := r.Next()
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			spool.Close() // nolint: errcheck
			return errors.Wrap(rerr, "closure pass 1: read")
		}
		if err := spoolWriter.WriteBlock(b); err != nil {
			spool.Close() // nolint: errcheck
			return errors.Wrap(err, "closure pass 1: spool")
		}
		if err := observeBlock(b, ts, reservoir, names, lengths); err != nil {
			spool.Close() // nolint: errcheck
			return err
		}
	}
	if err := spoolWriter.Close(); err != nil {
		spool.Close() // nolint: errcheck
		return errors.Wrap(err, "closure pass 1: flush spool")
	}
	if err := spool.Close(); err != nil {
		return errors.Wrap(err, "closure pass 1: close spool")
	}

	in, err := os.Open(spoolPath)
	if err != nil {
		return errors.Wrap(err, "closure pass 2: reopen spool")
	}
	defer in.Close() // nolint: errcheck

	rd2 := maf.NewReader(in)
	for {
		b, rerr := rd2.Next()
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return errors.Wrap(rerr, "closure pass 2: read")
		}
		pinchBlock(b, ts)
	}

	ts.JoinTrivialBoundaries()
	return emit(ts, reservoir, names, lengths, w)
}

// observeBlock registers every row's thread and copies its non-gap bases
// into the reservoir at their forward-strand offsets.
func observeBlock(b *maf.Block, ts *pinch.ThreadSet, reservoir *Reservoir, names map[uint64]string, lengths map[uint64]int64) error {
	fwd := b.ForwardPositions()
	for i := range b.Rows {
		row := &b.Rows[i]
		hash := pinch.NameHash(row.Name)
		ts.AddThread(hash, row.SourceLength)
		names[hash] = row.Name
		lengths[hash] = row.SourceLength

		for c, ch := range row.Seq {
			if ch == '-' {
				continue
			}
			base := ch
			if row.Strand == '-' {
				base = biosimd.Complement(ch)
			}
			if err := reservoir.Set(hash, fwd[i][c], row.SourceLength, base); err != nil {
				return errors.Wrapf(err, "sequence %s", row.Name)
			}
		}
	}
	return nil
}

// pinchBlock computes b's comparison order and queues a Pinch for every
// maximal simultaneous non-gap run between each fragment's reference row
// and every other row (§4.8 steps 2-4).
func pinchBlock(b *maf.Block, ts *pinch.ThreadSet) {
	fwd := b.ForwardPositions()
	matrix := b.Matrix()
	names := b.Names()
	strands := b.Strands()
	threads := make([]*pinch.Thread, len(b.Rows))
	for i := range b.Rows {
		threads[i], _ = ts.GetThread(pinch.NameHash(names[i]))
	}

	for _, frag := range comparisonOrder(b) {
		ref := frag.RefRow
		for other := range b.Rows {
			if other == ref {
				continue
			}
			c := frag.Start
			for c < frag.End {
				if matrix[ref][c] == '-' || matrix[other][c] == '-' {
					c++
					continue
				}
				start := c
				for c < frag.End && matrix[ref][c] != '-' && matrix[other][c] != '-' {
					c++
				}
				queuePinch(ts, threads[ref], threads[other], fwd[ref], fwd[other], strands[ref], strands[other], start, c)
			}
		}
	}
}

// queuePinch issues one Pinch for the run of columns [start, end), using
// each row's already-materialized forward-strand positions to find the
// run's offset on each thread.
func queuePinch(ts *pinch.ThreadSet, refThread, otherThread *pinch.Thread, fwdRef, fwdOther []int64, refStrand, otherStrand byte, start, end int) {
	refOffset := minInt64(fwdRef[start], fwdRef[end-1])
	otherOffset := minInt64(fwdOther[start], fwdOther[end-1])
	length := int64(end - start)
	sameStrand := refStrand == otherStrand
	ts.Pinch(refThread, otherThread, refOffset, otherOffset, length, sameStrand)
}

func minInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

// emit enumerates ts's blocks and writes one output alignment per block,
// one row per segment, reverse-complementing the reservoir's forward-
// strand bases when a segment's orientation within its block is negated.
func emit(ts *pinch.ThreadSet, reservoir *Reservoir, names map[uint64]string, lengths map[uint64]int64, w *maf.Writer) error {
	if err := w.WriteHeader(nil); err != nil {
		return errors.Wrap(err, "closure: write header")
	}
	for _, block := range ts.Blocks() {
		segs := append([]*pinch.Segment(nil), block.Segments()...)
		sort.Slice(segs, func(i, j int) bool {
			return names[segs[i].Thread().NameHash] < names[segs[j].Thread().NameHash]
		})

		out := &maf.Block{
			Annotation: []maf.KV{{Key: "degree", Value: strconv.Itoa(len(segs))}},
			Rows:       make([]maf.Row, len(segs)),
		}
		for i, seg := range segs {
			hash := seg.Thread().NameHash
			fwdBases := reservoir.Slice(hash, seg.Start, seg.End)
			srcLength := lengths[hash]
			strand := byte('+')
			start := seg.Start
			seq := make([]byte, len(fwdBases))
			copy(seq, fwdBases)
			if !seg.Orientation {
				strand = '-'
				start = srcLength - seg.Start - seg.Length()
				biosimd.ReverseComplementInplace(seq)
			}
			out.Rows[i] = maf.Row{
				Name:         names[hash],
				Start:        start,
				Length:       seg.Length(),
				Strand:       strand,
				SourceLength: srcLength,
				Seq:          seq,
			}
		}
		if err := w.WriteBlock(out); err != nil {
			return errors.Wrap(err, "closure: write block")
		}
	}
	return w.Close()
}
