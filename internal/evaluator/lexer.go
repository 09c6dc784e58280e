// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package evaluator

import (
	"fmt"
	"strconv"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokCaret
	tokLParen
	tokRParen
	tokComma
	tokPi
	tokE
	tokSqrt
	tokPow
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokNumber:
		return "number"
	case tokPlus:
		return "'+'"
	case tokMinus:
		return "'-'"
	case tokStar:
		return "'*'"
	case tokSlash:
		return "'/'"
	case tokCaret:
		return "'^'"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	case tokComma:
		return "','"
	case tokPi:
		return "pi"
	case tokE:
		return "e"
	case tokSqrt:
		return "sqrt"
	case tokPow:
		return "pow"
	}
	return "unknown"
}

type token struct {
	kind  tokenKind
	value float64
	pos   int
}

// identifiers is the closed set of names the grammar accepts.
var identifiers = map[string]tokenKind{
	"pi":   tokPi,
	"e":    tokE,
	"sqrt": tokSqrt,
	"pow":  tokPow,
}

// lex splits a canonical ASCII arithmetic expression into tokens. Any byte
// outside the grammar, including every non-ASCII byte, is rejected.
func lex(src string) ([]token, error) {
	var toks []token
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case isDigit(c) || c == '.':
			end, err := scanNumber(src, i)
			if err != nil {
				return nil, err
			}
			v, err := strconv.ParseFloat(src[i:end], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: malformed number %q at %d", ErrSyntax, src[i:end], i)
			}
			toks = append(toks, token{kind: tokNumber, value: v, pos: i})
			i = end
		case isLetter(c):
			end := i
			for end < len(src) && isLetter(src[end]) {
				end++
			}
			kind, ok := identifiers[src[i:end]]
			if !ok {
				return nil, fmt.Errorf("%w: identifier %q at %d", ErrRejected, src[i:end], i)
			}
			toks = append(toks, token{kind: kind, pos: i})
			i = end
		default:
			kind, ok := punctuation[c]
			if !ok {
				return nil, fmt.Errorf("%w: character %q at %d", ErrRejected, rune(c), i)
			}
			toks = append(toks, token{kind: kind, pos: i})
			i++
		}
	}
	return append(toks, token{kind: tokEOF, pos: len(src)}), nil
}

var punctuation = map[byte]tokenKind{
	'+': tokPlus,
	'-': tokMinus,
	'*': tokStar,
	'/': tokSlash,
	'^': tokCaret,
	'(': tokLParen,
	')': tokRParen,
	',': tokComma,
}

// scanNumber returns the end offset of the decimal literal starting at i:
// digits with an optional fraction and an optional exponent ("1.6e-19").
// An "e" that is not followed by a digit (after an optional sign) is left
// for the lexer, where it names Euler's number.
func scanNumber(src string, i int) (int, error) {
	end := i
	digits := 0
	for end < len(src) && isDigit(src[end]) {
		end++
		digits++
	}
	if end < len(src) && src[end] == '.' {
		end++
		for end < len(src) && isDigit(src[end]) {
			end++
			digits++
		}
	}
	if digits == 0 {
		return 0, fmt.Errorf("%w: lone '.' at %d", ErrSyntax, i)
	}
	if end < len(src) && (src[end] == 'e' || src[end] == 'E') {
		j := end + 1
		if j < len(src) && (src[j] == '+' || src[j] == '-') {
			j++
		}
		if j < len(src) && isDigit(src[j]) {
			for j < len(src) && isDigit(src[j]) {
				j++
			}
			end = j
		}
	}
	return end, nil
}

func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isLetter(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_' }
