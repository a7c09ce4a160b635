// Package expr implements a safe arithmetic expression evaluator.
//
// Input is parsed with a self-contained grammar covering exactly numeric
// literals, parentheses, unary +/- and the binary operators + - * / //
// % **. Evaluation walks the resulting tree against a whitelist of node
// tags, so no construct outside that closed set can ever execute. The
// package is pure: no I/O, no shared state, safe for concurrent use.
package expr

import (
	"fmt"
	"math"
	"strings"
)

// MaxLen is the maximum accepted length of a trimmed expression.
const MaxLen = 100

// Evaluate parses text as a single arithmetic expression and computes
// its value. Errors are classified by the package sentinels: ErrTooLong,
// ErrParse (via *SyntaxError), ErrUnsupportedSyntax, ErrDivisionByZero
// and ErrDomain.
//
// Numeric policy: non-finite results (overflow to infinity, NaN, and
// invalid powers such as a negative base with a fractional exponent)
// are rejected with ErrDomain rather than returned.
func Evaluate(text string) (float64, error) {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) > MaxLen {
		return 0, ErrTooLong
	}
	root, err := parse(trimmed)
	if err != nil {
		return 0, err
	}
	return evalNode(root)
}

// evalNode computes the value of a tree node depth-first. The default
// branch rejects unknown tags even though the parser cannot currently
// produce them.
func evalNode(n node) (float64, error) {
	switch n := n.(type) {
	case *numberLit:
		return n.value, nil

	case *unaryExpr:
		operand, err := evalNode(n.operand)
		if err != nil {
			return 0, err
		}
		switch n.op {
		case unaryIdentity:
			return operand, nil
		case unaryNegate:
			return -operand, nil
		default:
			return 0, fmt.Errorf("%w: unknown unary operator", ErrUnsupportedSyntax)
		}

	case *binaryExpr:
		left, err := evalNode(n.left)
		if err != nil {
			return 0, err
		}
		right, err := evalNode(n.right)
		if err != nil {
			return 0, err
		}
		return applyBinary(n.op, left, right)

	default:
		return 0, fmt.Errorf("%w: unknown expression node", ErrUnsupportedSyntax)
	}
}

func applyBinary(op binaryKind, left, right float64) (float64, error) {
	var result float64
	switch op {
	case binAdd:
		result = left + right
	case binSub:
		result = left - right
	case binMul:
		result = left * right
	case binDiv:
		if right == 0 {
			return 0, ErrDivisionByZero
		}
		result = left / right
	case binFloorDiv:
		if right == 0 {
			return 0, ErrDivisionByZero
		}
		result = math.Floor(left / right)
	case binMod:
		if right == 0 {
			return 0, ErrDivisionByZero
		}
		result = floorMod(left, right)
	case binPow:
		result = math.Pow(left, right)
	default:
		return 0, fmt.Errorf("%w: unknown binary operator", ErrUnsupportedSyntax)
	}

	if math.IsInf(result, 0) || math.IsNaN(result) {
		return 0, fmt.Errorf("%w: result is not a finite number", ErrDomain)
	}
	return result, nil
}

// floorMod computes the remainder with the sign following the divisor,
// the floor-mod convention: -7 % 3 is 2 and 7 % -3 is -2.
func floorMod(a, b float64) float64 {
	r := math.Mod(a, b)
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r
}
