package sexpr

import (
	"strconv"
)

// parse tokenizes the input and drives a Builder: words are classified and
// pushed, parentheses map to Open/Close. The first failure aborts the whole
// parse; there is no error-tolerant recovery.
func parse(in []byte) (*Value, error) {
	tokens, err := tokenize(in)
	if err != nil {
		return nil, err
	}

	b := NewBuilder()
	for i := range tokens {
		switch tokens[i].tt {
		case tokenWhitespace:
			// separator only

		case tokenOpenExpression:
			b.Open()

		case tokenCloseExpression:
			if err := b.Close(); err != nil {
				return nil, err
			}

		case tokenWord:
			v, err := classifyWord(tokens[i].val)
			if err != nil {
				return nil, err
			}
			b.push(v)

		case tokenEOF:
			// natural end of input
		}
	}

	root, err := b.Value()
	if err != nil {
		return nil, err
	}
	return unwrapRoot(root), nil
}

// unwrapRoot normalizes the Builder's symmetric top-level wrapper away: a
// single-expression document comes back as the expression itself rather than
// a one-element list around it. Multi-expression documents (and the empty
// document) keep the wrapping list.
func unwrapRoot(root *Value) *Value {
	if items := root.List(); len(items) == 1 {
		return items[0]
	}
	return root
}

// classifyWord applies the token classification policy, in order:
//
//  1. the literal T or F is a boolean;
//  2. a word starting with an ASCII digit or '-' must parse as a float64,
//     anything short of that is a NumberParse error carrying the strconv
//     cause (note that this makes a lone "-" a malformed number, exactly
//     like "-x");
//  3. everything else is a string, taken verbatim.
func classifyWord(word string) (*Value, error) {
	switch word {
	case "T":
		return True, nil
	case "F":
		return False, nil
	}

	if first := word[0]; (first >= '0' && first <= '9') || first == '-' {
		n, err := strconv.ParseFloat(word, 64)
		if err != nil {
			return nil, wrapError(ErrorKindNumberParse, err, "invalid number %q: %v", word, err)
		}
		return NewNumberValue(n), nil
	}

	return NewStringValue(word), nil
}
