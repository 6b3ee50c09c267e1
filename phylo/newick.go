package phylo

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidTree is returned by ParseNewick when s is not a well-formed
// Newick tree: unbalanced parentheses, a missing terminating ';', or a
// node with no children and no label.
var ErrInvalidTree = errors.New("phylo: invalid newick tree")

// Node is one node of a parsed Newick tree. Leaves have a non-empty Label
// and no Children; internal nodes may carry a Label (most don't) and have
// two or more Children, since Newick permits multifurcations even though
// the trees this toolkit classifies trios against are usually bifurcating.
type Node struct {
	Label    string
	Children []*Node

	// PostOrder is this node's index in a post-order traversal of the
	// tree, assigned by LCAMatrix. It is the row/column index into the
	// matrix LCAMatrix returns.
	PostOrder int32
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// scanner is a minimal hand-rolled tokenizer over a Newick string: Newick
// grammar only needs single-character delimiters plus runs of label text,
// so there's no call for a generic lexer here, just a cursor and a handful
// of character-class checks.
type scanner struct {
	s   string
	pos int
}

func (sc *scanner) peek() byte {
	if sc.pos >= len(sc.s) {
		return 0
	}
	return sc.s[sc.pos]
}

func (sc *scanner) advance() byte {
	b := sc.peek()
	sc.pos++
	return b
}

func isLabelByte(b byte) bool {
	switch b {
	case 0, '(', ')', ',', ';', ':':
		return false
	default:
		return true
	}
}

// label scans a run of label bytes, stopping at the next delimiter. A
// branch length suffix ("A:0.5") is recognized and discarded: this
// toolkit only classifies topology, so branch lengths carry no signal.
func (sc *scanner) label() string {
	start := sc.pos
	for isLabelByte(sc.peek()) {
		sc.pos++
	}
	text := sc.s[start:sc.pos]
	if sc.peek() == ':' {
		sc.advance()
		for isLabelByte(sc.peek()) || sc.peek() == '.' || sc.peek() == '-' || sc.peek() == '+' || sc.peek() == 'e' || sc.peek() == 'E' {
			sc.pos++
		}
	}
	return text
}

// ParseNewick parses a single Newick tree from s, ignoring branch lengths.
// s may be wrapped in a single matching pair of '\'' or '"' quotes, the
// form a MAF a-line's tree= key actually carries them in.
func ParseNewick(s string) (*Node, error) {
	sc := &scanner{s: unquote(strings.TrimSpace(s))}
	root, err := sc.parseNode()
	if err != nil {
		return nil, err
	}
	sc.skipSpace()
	if sc.peek() != ';' {
		return nil, errors.Wrap(ErrInvalidTree, "missing terminating ';'")
	}
	sc.advance()
	sc.skipSpace()
	if sc.pos != len(sc.s) {
		return nil, errors.Wrap(ErrInvalidTree, "trailing garbage after ';'")
	}
	return root, nil
}

// unquote strips a single matching leading/trailing quote pair ('\'' or
// '"'). The tree= value on a MAF a-line is written quoted, e.g.
// tree="(A,B)R;", and the quotes are stripped before the Newick grammar
// itself ever sees the string rather than taught to the scanner.
func unquote(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '\'' || first == '"') && first == last {
			return s[1 : len(s)-1]
		}
	}
	return s
}

func (sc *scanner) skipSpace() {
	for sc.peek() == ' ' || sc.peek() == '\t' || sc.peek() == '\n' || sc.peek() == '\r' {
		sc.pos++
	}
}

func (sc *scanner) parseNode() (*Node, error) {
	sc.skipSpace()
	if sc.peek() == '(' {
		sc.advance()
		n := &Node{}
		for {
			sc.skipSpace()
			child, err := sc.parseNode()
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, child)
			sc.skipSpace()
			switch sc.peek() {
			case ',':
				sc.advance()
				continue
			case ')':
				sc.advance()
			default:
				return nil, errors.Wrapf(ErrInvalidTree, "unexpected byte %q at offset %d", sc.peek(), sc.pos)
			}
			break
		}
		if len(n.Children) < 2 {
			return nil, errors.Wrap(ErrInvalidTree, "internal node with fewer than two children")
		}
		sc.skipSpace()
		n.Label = sc.label()
		return n, nil
	}
	label := sc.label()
	if label == "" {
		return nil, errors.Wrap(ErrInvalidTree, "empty leaf label")
	}
	return &Node{Label: label}, nil
}
