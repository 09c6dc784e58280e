// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package evaluator implements the restricted-grammar arithmetic
// interpreter. It accepts decimal numbers, + - * / ^, parentheses, sqrt,
// pow and the constants pi and e, and rejects everything else before any
// evaluation happens. Expressions are parsed into a small tree by a
// recursive-descent parser and interpreted directly.
package evaluator

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/pdiddy/gift-translator/pkg/types"
)

// Evaluation errors. All of them mean the expression was rejected; callers
// fall back to symbolic output.
var (
	ErrRejected  = errors.New("disallowed token")
	ErrSyntax    = errors.New("syntax error")
	ErrNonFinite = errors.New("non-finite result")
	ErrTooDeep   = errors.New("expression nested too deeply")
	ErrTooLong   = errors.New("expression too long")
)

// IsRejection reports whether err is one of the evaluation errors above.
func IsRejection(err error) bool {
	return errors.Is(err, ErrRejected) || errors.Is(err, ErrSyntax) ||
		errors.Is(err, ErrNonFinite) || errors.Is(err, ErrTooDeep) ||
		errors.Is(err, ErrTooLong)
}

const (
	defaultMaxDepth  = 200
	defaultMaxLength = 4096
)

// Evaluator evaluates canonical arithmetic expressions within fixed limits.
// It holds no mutable state and is safe for concurrent use.
type Evaluator struct {
	maxDepth  int
	maxLength int
}

// New returns an Evaluator. Zero or negative limits use the defaults
// (depth 200, length 4096 bytes).
func New(cfg types.EvaluatorConfig) *Evaluator {
	e := &Evaluator{maxDepth: cfg.MaxDepth, maxLength: cfg.MaxLength}
	if e.maxDepth <= 0 {
		e.maxDepth = defaultMaxDepth
	}
	if e.maxLength <= 0 {
		e.maxLength = defaultMaxLength
	}
	return e
}

// Eval parses and evaluates a canonical ASCII expression (see Canonicalize).
func (e *Evaluator) Eval(expr string) (float64, error) {
	if len(expr) > e.maxLength {
		return 0, fmt.Errorf("%w: %d bytes exceeds %d", ErrTooLong, len(expr), e.maxLength)
	}
	toks, err := lex(expr)
	if err != nil {
		return 0, err
	}
	p := &parser{toks: toks, maxDepth: e.maxDepth}
	tree, err := p.parse()
	if err != nil {
		return 0, err
	}
	v := tree.eval()
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %v", ErrNonFinite, v)
	}
	return v, nil
}

// EvalNotation canonicalizes a notational expression and evaluates it.
func (e *Evaluator) EvalNotation(expr string) (float64, error) {
	return e.Eval(Canonicalize(expr))
}

var notationReplacer = strings.NewReplacer(
	"π", "pi",
	"√", "sqrt",
	"×", "*",
	"·", "*",
	"÷", "/",
	"−", "-",
	"**", "^",
	"⁻¹", "^-1",
	"²", "^2",
	"³", "^3",
)

// unitPattern matches a unit that stands as its own word after whitespace,
// a number or a closing parenthesis. Units are not part of the arithmetic.
var unitPattern = regexp.MustCompile(`(^|[\s0-9.)])(?:km/s/Mpc|MeV|GeV|eV|kg|J|m|s)\b`)

// Canonicalize rewrites notation into the evaluator's ASCII grammar:
// π → pi, √ → sqrt, × and · → *, ÷ → /, − → -, ** → ^, the superscripts
// ², ³ and ⁻¹ → ^n, and strips unit suffixes. Symbols outside the grammar are left in place so that Eval
// rejects them.
func Canonicalize(expr string) string {
	s := notationReplacer.Replace(expr)
	s = unitPattern.ReplaceAllString(s, "$1")
	return strings.TrimSpace(s)
}
