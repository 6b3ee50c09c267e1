package maf

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	mib                 = 1 << 20
	readerBufferInitial = 16 * mib
	readerBufferMax     = 512 * mib
)

// Reader is a pull-style, block-at-a-time MAF parser. Each call to Next
// returns one alignment block; Header returns the lines that preceded the
// first block, reading them first if Next has not yet been called.
//
// Reader is not safe for concurrent use.
type Reader struct {
	sc         *bufio.Scanner
	header     []string
	headerDone bool

	pending   string
	hasLine   bool
	atEOF     bool
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, readerBufferInitial), readerBufferMax)
	return &Reader{sc: sc}
}

// Header returns the header lines (track/##maf/# comment lines) that
// preceded the first alignment block, populating them on first call if
// necessary.
func (rd *Reader) Header() ([]string, error) {
	if err := rd.ensureHeader(); err != nil {
		return nil, err
	}
	return rd.header, nil
}

// Next returns the next alignment block, or io.EOF once the file is
// exhausted.
func (rd *Reader) Next() (*Block, error) {
	if err := rd.ensureHeader(); err != nil {
		return nil, err
	}
	// Skip any run of blank lines between blocks.
	for {
		line, ok, err := rd.peek()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, io.EOF
		}
		if strings.TrimSpace(line) == "" {
			rd.consume()
			continue
		}
		break
	}
	line, _, err := rd.peek()
	if err != nil {
		return nil, err
	}
	if !(line == "a" || strings.HasPrefix(line, "a ") || strings.HasPrefix(line, "a\t")) {
		return nil, errors.Wrapf(ErrMalformedMAF, "expected 'a' line, got %q", line)
	}
	rd.consume()
	block := &Block{Annotation: parseAnnotation(line)}

	for {
		ln, ok, err := rd.peek()
		if err != nil {
			return nil, err
		}
		if !ok {
			// EOF terminates the block.
			break
		}
		if strings.TrimSpace(ln) == "" {
			rd.consume()
			break
		}
		rd.consume()
		switch {
		case strings.HasPrefix(ln, "s "), strings.HasPrefix(ln, "s\t"):
			row, err := parseRow(ln)
			if err != nil {
				return nil, err
			}
			block.Rows = append(block.Rows, row)
		case hasLineType(ln, 'i'), hasLineType(ln, 'e'), hasLineType(ln, 'q'), hasLineType(ln, 'h'):
			block.Pass = append(block.Pass, ln)
		default:
			return nil, errors.Wrapf(ErrMalformedMAF, "unrecognized line in block: %q", ln)
		}
	}
	if len(block.Rows) > 0 {
		cols := len(block.Rows[0].Seq)
		for i := range block.Rows {
			if len(block.Rows[i].Seq) != cols {
				return nil, errors.Wrapf(ErrMalformedMAF, "row %d has %d columns, want %d", i, len(block.Rows[i].Seq), cols)
			}
		}
	}
	return block, nil
}

func hasLineType(line string, b byte) bool {
	return len(line) > 0 && line[0] == b && (len(line) == 1 || line[1] == ' ' || line[1] == '\t')
}

// ensureHeader consumes leading track/##maf/# lines into rd.header.
func (rd *Reader) ensureHeader() error {
	if rd.headerDone {
		return nil
	}
	for {
		line, ok, err := rd.peek()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			rd.consume()
			continue
		}
		if strings.HasPrefix(trimmed, "track") || strings.HasPrefix(trimmed, "##maf") || strings.HasPrefix(trimmed, "#") {
			rd.header = append(rd.header, line)
			rd.consume()
			continue
		}
		break
	}
	rd.headerDone = true
	return nil
}

// peek returns the next line without consuming it.
func (rd *Reader) peek() (string, bool, error) {
	if rd.hasLine {
		return rd.pending, true, nil
	}
	if rd.atEOF {
		return "", false, nil
	}
	if !rd.sc.Scan() {
		rd.atEOF = true
		if err := rd.sc.Err(); err != nil {
			return "", false, errors.Wrap(ErrMalformedMAF, err.Error())
		}
		return "", false, nil
	}
	rd.pending = rd.sc.Text()
	rd.hasLine = true
	return rd.pending, true, nil
}

func (rd *Reader) consume() {
	rd.hasLine = false
}

// parseAnnotation parses the "a key=value ..." line into ordered KV pairs.
func parseAnnotation(line string) []KV {
	fields := strings.Fields(line)
	if len(fields) <= 1 {
		return nil
	}
	kvs := make([]KV, 0, len(fields)-1)
	for _, f := range fields[1:] {
		if i := strings.IndexByte(f, '='); i >= 0 {
			kvs = append(kvs, KV{Key: f[:i], Value: f[i+1:]})
		} else {
			kvs = append(kvs, KV{Key: f})
		}
	}
	return kvs
}

// parseRow parses a single "s name start length strand srcSize seq" line.
func parseRow(line string) (Row, error) {
	fields := strings.Fields(line)
	if len(fields) != 7 {
		return Row{}, errors.Wrapf(ErrMalformedMAF, "'s' line has %d fields, want 7: %q", len(fields), line)
	}
	start, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return Row{}, errors.Wrapf(ErrMalformedMAF, "bad start in %q", line)
	}
	length, err := strconv.ParseInt(fields[3], 10, 64)
	if err != nil {
		return Row{}, errors.Wrapf(ErrMalformedMAF, "bad length in %q", line)
	}
	if fields[4] != "+" && fields[4] != "-" {
		return Row{}, errors.Wrapf(ErrMalformedMAF, "bad strand %q in %q", fields[4], line)
	}
	srcLen, err := strconv.ParseInt(fields[5], 10, 64)
	if err != nil {
		return Row{}, errors.Wrapf(ErrMalformedMAF, "bad srcSize in %q", line)
	}
	row := Row{
		Name:         fields[1],
		Start:        start,
		Length:       length,
		Strand:       fields[4][0],
		SourceLength: srcLen,
		Seq:          []byte(fields[6]),
		Raw:          line,
	}
	nonGap := int64(0)
	for _, c := range row.Seq {
		if c != '-' {
			nonGap++
		}
	}
	if nonGap != row.Length {
		return Row{}, errors.Wrapf(ErrMalformedMAF, "row %s: %d non-gap bases, length field says %d", row.Name, nonGap, row.Length)
	}
	if row.Start+row.Length > row.SourceLength {
		return Row{}, errors.Wrapf(ErrMalformedMAF, "row %s: start+length exceeds srcSize", row.Name)
	}
	return row, nil
}
