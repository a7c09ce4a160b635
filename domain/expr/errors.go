package expr

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Evaluate. Callers classify with errors.Is.
var (
	// ErrTooLong is returned when the trimmed input exceeds MaxLen.
	ErrTooLong = errors.New("expression too long")

	// ErrParse is returned for input that is malformed under the
	// arithmetic grammar. Concrete failures are *SyntaxError values
	// that wrap this sentinel.
	ErrParse = errors.New("malformed expression")

	// ErrUnsupportedSyntax is returned for input containing anything
	// outside the arithmetic whitelist: names, calls, strings,
	// comparisons, assignment and so on.
	ErrUnsupportedSyntax = errors.New("unsupported syntax")

	// ErrDivisionByZero is returned when /, // or % has a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrDomain is returned for invalid power operations and any
	// non-finite result (overflow to infinity, NaN).
	ErrDomain = errors.New("domain error")
)

// SyntaxError reports where parsing failed.
type SyntaxError struct {
	Pos int    // byte offset into the trimmed input
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("malformed expression at position %d: %s", e.Pos, e.Msg)
}

// Unwrap makes errors.Is(err, ErrParse) hold for syntax errors.
func (e *SyntaxError) Unwrap() error {
	return ErrParse
}

func syntaxErrorf(pos int, format string, args ...any) error {
	return &SyntaxError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
