package expr

import (
	"fmt"
	"strconv"
)

// tokenKind enumerates the tokens of the arithmetic grammar.
type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokPlus
	tokMinus
	tokStar
	tokStarStar
	tokSlash
	tokSlashSlash
	tokPercent
	tokLParen
	tokRParen
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of expression"
	case tokNumber:
		return "number"
	case tokPlus:
		return "'+'"
	case tokMinus:
		return "'-'"
	case tokStar:
		return "'*'"
	case tokStarStar:
		return "'**'"
	case tokSlash:
		return "'/'"
	case tokSlashSlash:
		return "'//'"
	case tokPercent:
		return "'%'"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	}
	return "unknown token"
}

// token is a single lexeme with its byte offset in the input.
type token struct {
	kind  tokenKind
	value float64 // set for tokNumber
	pos   int
}

// lex splits the trimmed input into tokens. Any character outside the
// arithmetic alphabet (digits, '.', operators, parentheses, whitespace)
// is rejected as unsupported syntax rather than a mere parse error, so
// identifiers and call syntax never reach the parser.
func lex(input string) ([]token, error) {
	tokens := make([]token, 0, 16)
	i := 0
	for i < len(input) {
		c := input[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c >= '0' && c <= '9' || c == '.':
			tok, next, err := lexNumber(input, i)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
			i = next
		case c == '+':
			tokens = append(tokens, token{kind: tokPlus, pos: i})
			i++
		case c == '-':
			tokens = append(tokens, token{kind: tokMinus, pos: i})
			i++
		case c == '*':
			if i+1 < len(input) && input[i+1] == '*' {
				tokens = append(tokens, token{kind: tokStarStar, pos: i})
				i += 2
			} else {
				tokens = append(tokens, token{kind: tokStar, pos: i})
				i++
			}
		case c == '/':
			if i+1 < len(input) && input[i+1] == '/' {
				tokens = append(tokens, token{kind: tokSlashSlash, pos: i})
				i += 2
			} else {
				tokens = append(tokens, token{kind: tokSlash, pos: i})
				i++
			}
		case c == '%':
			tokens = append(tokens, token{kind: tokPercent, pos: i})
			i++
		case c == '(':
			tokens = append(tokens, token{kind: tokLParen, pos: i})
			i++
		case c == ')':
			tokens = append(tokens, token{kind: tokRParen, pos: i})
			i++
		default:
			return nil, fmt.Errorf("%w: unexpected character %q at position %d",
				ErrUnsupportedSyntax, string(c), i)
		}
	}
	tokens = append(tokens, token{kind: tokEOF, pos: len(input)})
	return tokens, nil
}

// lexNumber scans an integer or floating-point literal with an optional
// exponent part (1, 2.5, .5, 1e3, 2.5e-2).
func lexNumber(input string, start int) (token, int, error) {
	i := start
	for i < len(input) && input[i] >= '0' && input[i] <= '9' {
		i++
	}
	if i < len(input) && input[i] == '.' {
		i++
		for i < len(input) && input[i] >= '0' && input[i] <= '9' {
			i++
		}
	}
	if i < len(input) && (input[i] == 'e' || input[i] == 'E') {
		j := i + 1
		if j < len(input) && (input[j] == '+' || input[j] == '-') {
			j++
		}
		if j < len(input) && input[j] >= '0' && input[j] <= '9' {
			for j < len(input) && input[j] >= '0' && input[j] <= '9' {
				j++
			}
			i = j
		}
	}

	text := input[start:i]
	if text == "." {
		return token{}, 0, syntaxErrorf(start, "invalid number %q", text)
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			// Literal overflows float64; the non-finite policy rejects it.
			return token{}, 0, fmt.Errorf("%w: literal %q out of range", ErrDomain, text)
		}
		return token{}, 0, syntaxErrorf(start, "invalid number %q", text)
	}
	return token{kind: tokNumber, value: value, pos: start}, i, nil
}
