package interval

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/base/vcontext"
	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

// LoadBED reads a minimal 3-column BED ("name start end", zero-based
// half-open, one interval per line; blank lines and "#"/"track"/"browser"
// lines are ignored) and builds a Set. Full BED-format support (additional
// columns, strand, score) is out of scope for this toolkit; this loader
// only extracts what the homology tester and wiggle binner need.
func LoadBED(r io.Reader) (*Set, error) {
	b := NewBuilder()
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "track") || strings.HasPrefix(line, "browser") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, errors.Errorf("malformed BED line: %q", line)
		}
		start, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "malformed BED start in %q", line)
		}
		end, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "malformed BED end in %q", line)
		}
		b.Add(fields[0], start, end)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading BED")
	}
	return b.Build()
}

// LoadBEDFromPath opens path (a local or blob-backed path, anything
// file.Open understands) and loads it as BED, transparently decompressing
// when the extension indicates gzip.
func LoadBEDFromPath(path string) (set *Set, err error) {
	ctx := vcontext.Background()
	var in file.File
	if in, err = file.Open(ctx, path); err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer func() {
		if cerr := in.Close(ctx); cerr != nil && err == nil {
			err = cerr
		}
	}()

	r := io.Reader(in.Reader(ctx))
	if fileio.DetermineType(path) == fileio.Gzip {
		gz, gzErr := gzip.NewReader(r)
		if gzErr != nil {
			return nil, errors.Wrapf(gzErr, "opening gzip reader for %s", path)
		}
		defer gz.Close() // nolint: errcheck
		r = gz
	}
	return LoadBED(r)
}
