// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package translate is the single entry point of the translator. It tries
// the pattern catalog, then constant substitution with numeric evaluation,
// then direct symbol rewriting, and returns the first result.
package translate

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/gift-translator/internal/catalog"
	"github.com/pdiddy/gift-translator/internal/constants"
	"github.com/pdiddy/gift-translator/internal/evaluator"
	"github.com/pdiddy/gift-translator/internal/rewrite"
	"github.com/pdiddy/gift-translator/pkg/types"
)

// ErrMalformedInput reports input that no stage can process.
var ErrMalformedInput = errors.New("malformed input")

const defaultMaxInputLength = 8192

// Translator holds the read-only tables of all strategies. It is built once
// and shared; Translate is safe for concurrent use.
type Translator struct {
	table    *constants.Table
	catalog  *catalog.Catalog
	eval     *evaluator.Evaluator
	rewriter *rewrite.Rewriter
	maxInput int
}

// New builds a Translator from cfg. Zero values select the defaults.
func New(cfg types.TranslatorConfig) (*Translator, error) {
	rw, err := rewrite.New(cfg.Rewrite)
	if err != nil {
		return nil, fmt.Errorf("configuring symbol rewriter: %w", err)
	}
	table := constants.New()
	t := &Translator{
		table:    table,
		catalog:  catalog.New(table),
		eval:     evaluator.New(cfg.Evaluator),
		rewriter: rw,
		maxInput: cfg.MaxInputLength,
	}
	if t.maxInput <= 0 {
		t.maxInput = defaultMaxInputLength
	}
	return t, nil
}

// Translate renders expr in the notation selected by d. It never panics
// and never returns an error: failures come back as a result with
// Success false and zero confidence.
func (t *Translator) Translate(expr string, d types.Direction) (res types.TranslationResult) {
	defer func() {
		if r := recover(); r != nil {
			res = types.Failed(fmt.Sprintf("%v: internal error: %v", ErrMalformedInput, r))
		}
	}()

	expr, err := t.clean(expr)
	if err != nil {
		return types.Failed(err.Error())
	}
	if matched, ok := t.catalog.Match(expr, d); ok {
		return matched
	}
	if evaluated, ok := t.evaluate(expr, d); ok {
		return evaluated
	}
	return t.rewriter.Rewrite(expr, d)
}

func (t *Translator) clean(expr string) (string, error) {
	if !utf8.ValidString(expr) {
		return "", fmt.Errorf("%w: invalid UTF-8", ErrMalformedInput)
	}
	if len(expr) > t.maxInput {
		return "", fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrMalformedInput, len(expr), t.maxInput)
	}
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return "", fmt.Errorf("%w: empty expression", ErrMalformedInput)
	}
	return expr, nil
}

// LookupConstant returns the constant with the given symbol or alias.
func (t *Translator) LookupConstant(symbol string) (types.Constant, bool) {
	return t.table.Lookup(symbol)
}

// ListConstants returns every constant in table order.
func (t *Translator) ListConstants() []types.Constant {
	return t.table.List()
}

// ListEquationTemplates returns name and derivation of every template in
// catalog order.
func (t *Translator) ListEquationTemplates() []types.TemplateInfo {
	return t.catalog.List()
}

// Examples returns the canonical Lagrangian examples.
func (t *Translator) Examples() []types.Example {
	return t.catalog.Examples()
}
