package sexpr

import "fmt"

type ErrorKind uint8

const (
	ErrorKindStackUnderflow ErrorKind = iota
	ErrorKindUnbalancedParentheses
	ErrorKindNumberParse
	ErrorKindNonNumericOperand
	ErrorKindOperatorMustBeString
	ErrorKindUnknownOperator
	ErrorKindDepthExceeded
)

var errorKinds = map[ErrorKind]string{
	ErrorKindStackUnderflow:        "stack underflow",
	ErrorKindUnbalancedParentheses: "unbalanced parentheses",
	ErrorKindNumberParse:           "number parse",
	ErrorKindNonNumericOperand:     "non-numeric operand",
	ErrorKindOperatorMustBeString:  "operator must be string",
	ErrorKindUnknownOperator:       "unknown operator",
	ErrorKindDepthExceeded:         "depth exceeded",
}

func (k ErrorKind) String() string {
	return errorKinds[k]
}

// Error is the failure value returned by the builder, the parser and the
// evaluator. Every expected failure mode carries one of the ErrorKind
// constants; none of them panics.
type Error struct {
	Kind ErrorKind

	msg   string
	cause error
}

func (e *Error) Error() string {
	return e.msg
}

// Unwrap exposes the lower-level cause, if any (e.g. the strconv failure
// behind a NumberParse error).
func (e *Error) Unwrap() error {
	return e.cause
}

func newError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...)}
}

func wrapError(kind ErrorKind, cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...), cause: cause}
}
