// Package maf contains a streaming, block-at-a-time reader and writer for
// MAF (Multiple Alignment Format) files, plus the derived column-wise views
// (base matrix, strand/start/source-length arrays, forward-strand anchors)
// that the rest of the toolkit builds on.
//
// A MAF file is a header followed by zero or more alignment blocks. Each
// block is an "a" line carrying free-form key=value annotations, followed
// by one "s" line per aligned row:
//
//	a score=0.0
//	s hg19.chr7   27578828 38 + 159138663 AAA-GGGCCAAATATTAAAATCTCTTGCTTTCTTTC
//	s panTro1.chr6 28741416 38 + 161576975 AAAAGGGCCAAATATTAAAATCTCTTGCTTTCTTTC
//
// See http://genome.ucsc.edu/FAQ/FAQformat.html#format5 for the full format.
package maf
