package sexpr

import (
	"strings"
)

// maxEvalDepth bounds the recursive walk. Nesting depth is input-controlled,
// so pathological documents report DepthExceeded instead of exhausting the
// stack.
const maxEvalDepth = 4096

// Eval computes the numeric result of a tree. Numbers evaluate to
// themselves; a list of more than two items headed by an operator string
// dispatches to that operator; every other shape is a NonNumericOperand
// error.
func Eval(v *Value) (float64, error) {
	return eval(v, 0)
}

func eval(v *Value, depth int) (float64, error) {
	if depth > maxEvalDepth {
		return 0, newError(ErrorKindDepthExceeded, "expression nesting exceeds %d levels", maxEvalDepth)
	}

	switch v.Type {
	case ValueTypeNumber:
		return v.Float64(), nil

	case ValueTypeList:
		if items := v.List(); len(items) > 2 {
			return evalOp(items, depth)
		}
	}

	return 0, newError(ErrorKindNonNumericOperand, "cannot convert %s to a number", render(v))
}

func evalOp(items []*Value, depth int) (float64, error) {
	head := items[0]
	if head.Type != ValueTypeString {
		return 0, newError(ErrorKindOperatorMustBeString, "operator must be a string, got %s", render(head))
	}

	switch op := head.Str(); op {
	case "+", "*":
		// variadic left fold; the first failing operand wins
		res := 0.0
		if op == "*" {
			res = 1.0
		}
		for _, item := range items[1:] {
			n, err := eval(item, depth+1)
			if err != nil {
				return 0, err
			}
			if op == "+" {
				res += n
			} else {
				res *= n
			}
		}
		return res, nil

	case "-", "/":
		// binary only; operands past the second are ignored
		x, err := eval(items[1], depth+1)
		if err != nil {
			return 0, err
		}
		y, err := eval(items[2], depth+1)
		if err != nil {
			return 0, err
		}
		if op == "-" {
			return x - y, nil
		}
		// division by zero keeps the IEEE-754 Inf/NaN semantics of float64
		return x / y, nil

	default:
		return 0, newError(ErrorKindUnknownOperator, "unknown operator %q", op)
	}
}

// render is the compact form without its trailing space, for error messages.
func render(v *Value) string {
	return strings.TrimSpace(v.String())
}
