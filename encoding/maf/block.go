package maf

import "strings"

// Row is one sequence line ("s ...") of an alignment block.
type Row struct {
	Name         string
	Start        int64
	Length       int64
	Strand       byte // '+' or '-'
	SourceLength int64
	Seq          []byte

	// Raw preserves the row's original text for pass-through serialization
	// when the caller hasn't touched the row.
	Raw string
}

// Species truncates a sequence name at its first '.', e.g.
// "hg19.chr7" -> "hg19". A name with no '.' is its own species.
func Species(name string) string {
	if i := strings.IndexByte(name, '.'); i >= 0 {
		return name[:i]
	}
	return name
}

// PosStart returns the row's forward-strand (positive-coordinate) offset of
// its first base: Start on '+', SourceLength-Start-Length on '-'.
func (r *Row) PosStart() int64 {
	if r.Strand == '-' {
		return r.SourceLength - r.Start - r.Length
	}
	return r.Start
}

// Block is one alignment block: a set of rows sharing a common column
// count, plus whatever annotation and pass-through lines accompanied it.
type Block struct {
	// Annotation holds the key=value pairs of the "a" line, in their
	// original order, so the writer can reproduce them byte for byte.
	Annotation []KV
	Rows       []Row

	// Pass holds any "i", "e", "q", "h" lines attached to the block,
	// verbatim, in file order. The core does not interpret them.
	Pass []string

	views blockViews
}

// KV is a single key=value annotation on a block's "a" line.
type KV struct {
	Key, Value string
}

// Annot looks up a single annotation value on the block's "a" line.
func (b *Block) Annot(key string) (string, bool) {
	for _, kv := range b.Annotation {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return "", false
}

// NumCols returns the block's column count (the length of every row's Seq).
// It returns 0 for an empty block.
func (b *Block) NumCols() int {
	if len(b.Rows) == 0 {
		return 0
	}
	return len(b.Rows[0].Seq)
}

type blockViews struct {
	built         bool
	matrix        [][]byte
	strands       []byte
	starts        []int64
	posStarts     []int64
	sourceLengths []int64
	names         []string
}

// Matrix returns a row-major view of the block's sequence characters. The
// returned slices alias the rows' Seq fields; do not mutate.
func (b *Block) Matrix() [][]byte {
	b.buildViews()
	return b.views.matrix
}

// Strands returns the per-row strand characters.
func (b *Block) Strands() []byte {
	b.buildViews()
	return b.views.strands
}

// Starts returns the per-row MAF "start" fields.
func (b *Block) Starts() []int64 {
	b.buildViews()
	return b.views.starts
}

// PosStarts returns the per-row forward-strand start offsets.
func (b *Block) PosStarts() []int64 {
	b.buildViews()
	return b.views.posStarts
}

// SourceLengths returns the per-row MAF "srcSize" fields.
func (b *Block) SourceLengths() []int64 {
	b.buildViews()
	return b.views.sourceLengths
}

// Names returns the per-row sequence names.
func (b *Block) Names() []string {
	b.buildViews()
	return b.views.names
}

// buildViews computes the block's derived column-wise arrays once and
// caches them on the block.
func (b *Block) buildViews() {
	if b.views.built {
		return
	}
	n := len(b.Rows)
	v := blockViews{
		built:         true,
		matrix:        make([][]byte, n),
		strands:       make([]byte, n),
		starts:        make([]int64, n),
		posStarts:     make([]int64, n),
		sourceLengths: make([]int64, n),
		names:         make([]string, n),
	}
	for i := range b.Rows {
		r := &b.Rows[i]
		v.matrix[i] = r.Seq
		v.strands[i] = r.Strand
		v.starts[i] = r.Start
		v.posStarts[i] = r.PosStart()
		v.sourceLengths[i] = r.SourceLength
		v.names[i] = r.Name
	}
	b.views = v
}

// InvalidateViews forces the next view accessor to recompute its cache.
// Callers that mutate Rows after the views have already been read must call
// this before reading the views again.
func (b *Block) InvalidateViews() {
	b.views = blockViews{}
}

// ForwardPositions returns, for every row and column, the forward-strand
// (positive-coordinate) position of that column's base, or -1 if the
// column is a gap in that row. On a '+' row the position increases by one
// at each non-gap column starting from PosStart; on a '-' row the row's
// text is already the reverse complement of the forward strand, so the
// position decreases by one at each non-gap column starting from
// PosStart+Length-1.
func (b *Block) ForwardPositions() [][]int64 {
	cols := b.NumCols()
	out := make([][]int64, len(b.Rows))
	for i := range b.Rows {
		r := &b.Rows[i]
		row := make([]int64, cols)
		pos := r.PosStart()
		if r.Strand == '-' {
			pos += r.Length - 1
		}
		for c := 0; c < cols; c++ {
			if r.Seq[c] == '-' {
				row[c] = -1
				continue
			}
			row[c] = pos
			if r.Strand == '-' {
				pos--
			} else {
				pos++
			}
		}
		out[i] = row
	}
	return out
}
