// Package sexpr implements a minimal LISP-like notation: parenthesized lists
// of whitespace-separated atoms, where atoms are T/F booleans, signed decimal
// numbers, or bare strings. It provides the Value tree, an incremental
// Builder, the tokenizing parser and a recursive arithmetic evaluator for
// operator-headed lists.
package sexpr

import (
	"bytes"
	"io"
)

type Reader struct {
	r io.Reader
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

func (r *Reader) Parse() (*Value, error) {
	in, err := io.ReadAll(r.r)
	if err != nil {
		return nil, err
	}
	return parse(in)
}

// Parse builds a Value tree from the input document. A document holding a
// single expression parses to that expression itself (the Builder's symmetric
// top-level wrapper is normalized away); a document holding several
// expressions parses to a list of them.
func Parse(in []byte) (*Value, error) {
	r := NewReader(bytes.NewReader(in))
	return r.Parse()
}

// ParseString is Parse for a string input.
func ParseString(in string) (*Value, error) {
	return parse([]byte(in))
}
