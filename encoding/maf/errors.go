package maf

import "github.com/pkg/errors"

// ErrMalformedMAF is the sentinel cause wrapped by every parse error the
// reader returns: an unparsable line, a wrong field count, an unrecognized
// strand character, or a read error from the underlying reader. End of file
// ends the current block and is not itself an error.
var ErrMalformedMAF = errors.New("malformed MAF")
