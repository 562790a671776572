package sexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLexerTokenize(t *testing.T) {
	testCases := []struct {
		In  string
		Out []tokenType
	}{
		{
			`1`,
			[]tokenType{
				tokenWord,
				tokenEOF,
			},
		},
		{
			`(+ 1 2)`,
			[]tokenType{
				tokenOpenExpression,
				tokenWord,
				tokenWhitespace,
				tokenWord,
				tokenWhitespace,
				tokenWord,
				tokenCloseExpression,
				tokenEOF,
			},
		},
		{
			"(foo\n\t(bar))",
			[]tokenType{
				tokenOpenExpression,
				tokenWord,
				tokenWhitespace,
				tokenOpenExpression,
				tokenWord,
				tokenCloseExpression,
				tokenCloseExpression,
				tokenEOF,
			},
		},
		{
			// punctuation other than parens and whitespace stays in the word
			`a-b.c,d "e"`,
			[]tokenType{
				tokenWord,
				tokenWhitespace,
				tokenWord,
				tokenEOF,
			},
		},
		{
			``,
			[]tokenType{
				tokenEOF,
			},
		},
	}

	getTokenTypes := func(tokens []token) []tokenType {
		tt := make([]tokenType, 0, len(tokens))
		for i := range tokens {
			tt = append(tt, tokens[i].tt)
		}
		return tt
	}

	for i := range testCases {
		tokens, err := tokenize([]byte(testCases[i].In))

		assert.NotNil(t, tokens)
		assert.NoError(t, err)

		assert.Equal(t, testCases[i].Out, getTokenTypes(tokens))
	}
}

func TestLexerTokenText(t *testing.T) {
	tokens, err := tokenize([]byte("(+ 12 x-y)"))
	assert.NoError(t, err)

	words := []string{}
	for i := range tokens {
		if tokens[i].tt == tokenWord {
			words = append(words, tokens[i].val)
		}
	}

	assert.Equal(t, []string{"+", "12", "x-y"}, words)
}

func TestLexerColumnAndLines(t *testing.T) {
	testCases := []struct {
		In  string
		Pos [][2]uint64
	}{
		{
			"",
			[][2]uint64{
				{1, 1},
			},
		},
		{
			"1",
			[][2]uint64{
				{1, 1}, {1, 2},
			},
		},
		{
			"(ab\ncd)",
			[][2]uint64{
				{1, 1}, // (
				{1, 2}, // ab
				{1, 4}, // newline
				{2, 1}, // cd
				{2, 3}, // )
				{2, 4}, // EOF
			},
		},
	}

	getTokenPositions := func(tokens []token) [][2]uint64 {
		ret := make([][2]uint64, 0, len(tokens))
		for i := range tokens {
			ret = append(ret, [2]uint64{tokens[i].line, tokens[i].col})
		}
		return ret
	}

	for i := range testCases {
		tokens, err := tokenize([]byte(testCases[i].In))

		assert.NotNil(t, tokens)
		assert.NoError(t, err)

		assert.Equal(t, testCases[i].Pos, getTokenPositions(tokens))
	}
}
