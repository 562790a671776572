package sexpr

import (
	"bytes"
	"fmt"
	"io"
	"text/scanner"
)

type token struct {
	tt  tokenType
	val string

	col  uint64
	line uint64
	pos  uint64
}

func (t token) String() string {
	return fmt.Sprintf("%q", t.val)
}

type lexState func(*lexer) lexState

type tokenType uint8

const (
	tokenInvalid tokenType = iota

	tokenOpenExpression
	tokenCloseExpression
	tokenWhitespace
	tokenWord

	tokenEOF
)

var tokenValues = map[tokenType][]rune{
	tokenOpenExpression:  {'('},
	tokenCloseExpression: {')'},
	tokenWhitespace:      {' ', '\r', '\t', '\f', '\v', '\n'},
}

var tokenNames = map[tokenType]string{
	tokenOpenExpression:  "[open expr]",
	tokenCloseExpression: "[close expr]",
	tokenWhitespace:      "[whitespace]",
	tokenWord:            "[word]",

	tokenEOF:     "[EOF]",
	tokenInvalid: "[invalid]",
}

func tokenName(tt tokenType) string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[tokenInvalid]
}

func isTokenType(tt tokenType) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range tokenValues[tt] {
			if v == r {
				return true
			}
		}
		return false
	}
}

var (
	isOpenExpression  = isTokenType(tokenOpenExpression)
	isCloseExpression = isTokenType(tokenCloseExpression)
	isWhitespace      = isTokenType(tokenWhitespace)
)

// A word runs until whitespace, a parenthesis or the end of input. Every
// other character, punctuation included, belongs to the word.
func isWordBreak(r rune) bool {
	if r == scanner.EOF {
		return true
	}
	return isOpenExpression(r) || isCloseExpression(r) || isWhitespace(r)
}

func newLexer(r io.Reader) *lexer {
	s := &scanner.Scanner{}

	return &lexer{
		in:     s.Init(r),
		tokens: make(chan token),
		buf:    []rune{},
		col:    1,
		line:   1,
	}
}

type lexer struct {
	in *scanner.Scanner

	tokens chan token

	buf []rune

	col  uint64
	line uint64
	pos  uint64

	startCol  uint64
	startLine uint64
}

func (lx *lexer) run() error {
	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}

	lx.emit(tokenEOF)
	close(lx.tokens)

	return nil
}

// emit sends the buffered token; its position is that of the token's first
// rune (current position for the empty EOF token).
func (lx *lexer) emit(tt tokenType) {
	col, line := lx.col, lx.line
	if len(lx.buf) > 0 {
		col, line = lx.startCol, lx.startLine
	}
	lx.tokens <- token{
		val:  string(lx.buf),
		tt:   tt,
		col:  col,
		line: line,
		pos:  lx.pos,
	}
	lx.buf = []rune{}
}

func (lx *lexer) peek() rune {
	return lx.in.Peek()
}

func (lx *lexer) next() (rune, error) {
	r := lx.in.Next()
	if r == scanner.EOF {
		return rune(0), io.EOF
	}
	if len(lx.buf) == 0 {
		lx.startCol, lx.startLine = lx.col, lx.line
	}
	lx.buf = append(lx.buf, r)

	lx.pos++
	if r == '\n' {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}
	return r, nil
}

func lexDefaultState(lx *lexer) lexState {
	r, err := lx.next()
	if err != nil {
		return lexStateError(err)
	}

	switch {
	case isOpenExpression(r):
		return lexOpenExpressionState
	case isCloseExpression(r):
		return lexCloseExpressionState
	case isWhitespace(r):
		return lexWhitespaceState
	default:
		return lexWordState
	}
}

func lexOpenExpressionState(lx *lexer) lexState {
	lx.emit(tokenOpenExpression)
	return lexDefaultState
}

func lexCloseExpressionState(lx *lexer) lexState {
	lx.emit(tokenCloseExpression)
	return lexDefaultState
}

func lexWhitespaceState(lx *lexer) lexState {
	for isWhitespace(lx.peek()) {
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
	}
	lx.emit(tokenWhitespace)
	return lexDefaultState
}

func lexWordState(lx *lexer) lexState {
	for !isWordBreak(lx.peek()) {
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
	}
	lx.emit(tokenWord)
	return lexDefaultState
}

// The rune source fails only with EOF, which ends the state loop.
func lexStateError(err error) lexState {
	return nil
}

func tokenize(in []byte) ([]token, error) {
	tokens := []token{}
	errCh := make(chan error)

	lx := newLexer(bytes.NewReader(in))
	go func() {
		errCh <- lx.run()
	}()

	for tok := range lx.tokens {
		tokens = append(tokens, tok)
	}

	err := <-errCh
	if err != nil {
		return nil, err
	}

	return tokens, nil
}
