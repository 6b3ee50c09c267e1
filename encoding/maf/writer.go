package maf

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Writer reserialises MAF blocks, inserting a blank line between blocks and
// emitting a default "##maf version=1" header when none is passed through.
type Writer struct {
	w             *bufio.Writer
	headerWritten bool
	err           error
}

// NewWriter returns a Writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// WriteHeader writes the given header lines verbatim, or a default
// "##maf version=1" line if lines is empty. It is a no-op after the first
// call, and is called automatically by WriteBlock if not called explicitly.
func (wr *Writer) WriteHeader(lines []string) error {
	if wr.headerWritten || wr.err != nil {
		return wr.err
	}
	if len(lines) == 0 {
		wr.println("##maf version=1")
	} else {
		for _, l := range lines {
			wr.println(l)
		}
	}
	wr.headerWritten = true
	return wr.err
}

// WriteBlock reserialises one alignment block.
func (wr *Writer) WriteBlock(b *Block) error {
	if wr.err != nil {
		return wr.err
	}
	if !wr.headerWritten {
		if err := wr.WriteHeader(nil); err != nil {
			return err
		}
	}
	if len(b.Annotation) == 0 {
		wr.println("a")
	} else {
		parts := make([]string, len(b.Annotation))
		for i, kv := range b.Annotation {
			if kv.Value == "" {
				parts[i] = kv.Key
			} else {
				parts[i] = kv.Key + "=" + kv.Value
			}
		}
		wr.println("a " + strings.Join(parts, " "))
	}
	for i := range b.Rows {
		r := &b.Rows[i]
		wr.printf("s %s %d %d %c %d %s\n", r.Name, r.Start, r.Length, r.Strand, r.SourceLength, r.Seq)
	}
	for _, p := range b.Pass {
		wr.println(p)
	}
	wr.println("")
	return wr.err
}

// Close flushes any buffered output.
func (wr *Writer) Close() error {
	if wr.err != nil {
		return wr.err
	}
	return wr.w.Flush()
}

func (wr *Writer) println(s string) {
	if wr.err != nil {
		return
	}
	_, wr.err = fmt.Fprintln(wr.w, s)
}

func (wr *Writer) printf(format string, args ...interface{}) {
	if wr.err != nil {
		return
	}
	_, wr.err = fmt.Fprintf(wr.w, format, args...)
}
