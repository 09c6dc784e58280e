// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rewrite implements the last-resort translation strategy: direct
// substitution of domain symbols with their GIFT-tagged counterparts (and
// back), plus the optional fraction heuristics.
package rewrite

import (
	"fmt"
	"strings"

	"github.com/pdiddy/gift-translator/internal/notation"
	"github.com/pdiddy/gift-translator/pkg/types"
)

// correspondences pairs Standard-Model symbols with their GIFT tags. When
// several SM spellings share a tag, the first one is used for GIFT→SM.
var correspondences = []notation.Replacement{
	{From: "α", To: "α_gift"},
	{From: "α_s", To: "α_s_gift"},
	{From: "θ_W", To: "θ_W_gift"},
	{From: "Λ_QCD", To: "Λ_QCD_gift"},
	{From: "m_H", To: "m_H_gift"},
	{From: "H₀", To: "H_0_gift"},
	{From: "H_0", To: "H_0_gift"},
	{From: "Ω_Λ", To: "Ω_DE_gift"},
	{From: "Ω_m", To: "Ω_m_gift"},
	{From: "f_π", To: "f_π_gift"},
	{From: "G_F", To: "G_F_gift"},
	{From: "η_B", To: "η_B_gift"},
}

// Correspondences returns the SM→GIFT symbol table.
func Correspondences() []notation.Replacement {
	return append([]notation.Replacement(nil), correspondences...)
}

func inverse(table []notation.Replacement) []notation.Replacement {
	out := make([]notation.Replacement, 0, len(table))
	seen := make(map[string]bool, len(table))
	for _, r := range table {
		if seen[r.To] {
			continue
		}
		seen[r.To] = true
		out = append(out, notation.Replacement{From: r.To, To: r.From})
	}
	return out
}

// Rewriter is immutable after New and safe for concurrent use.
type Rewriter struct {
	forward   *notation.Replacer
	backward  *notation.Replacer
	fractions []fractionRule
}

// New builds a Rewriter. Fraction heuristics are compiled only when
// cfg.Fractions is set; cfg.FractionRules replaces the defaults when given.
func New(cfg types.RewriteConfig) (*Rewriter, error) {
	r := &Rewriter{
		forward:  notation.NewReplacer(correspondences),
		backward: notation.NewReplacer(inverse(correspondences)),
	}
	if !cfg.Fractions {
		return r, nil
	}
	rules := cfg.FractionRules
	if len(rules) == 0 {
		rules = DefaultFractionRules()
	}
	compiled, err := compileFractionRules(rules)
	if err != nil {
		return nil, err
	}
	r.fractions = compiled
	return r, nil
}

// Rewrite substitutes symbols in direction d. It always succeeds; when
// nothing matches the expression comes back unchanged. Applying Rewrite to
// its own output in the same direction changes nothing.
func (r *Rewriter) Rewrite(expr string, d types.Direction) types.TranslationResult {
	out := expr
	var tags []string
	if d == types.SourceToTarget && r.fractions != nil {
		out, tags = r.applyFractions(out)
	}
	if d == types.TargetToSource {
		out = r.backward.Replace(out)
	} else {
		out = r.forward.Replace(out)
	}

	explanation := fmt.Sprintf("Direct symbol substitution (%s)", d.Label())
	if len(tags) > 0 {
		explanation += fmt.Sprintf("; approximate fraction conventions applied: %s", strings.Join(tags, ", "))
	}
	return types.TranslationResult{
		Success:     true,
		Translated:  out,
		Explanation: explanation,
		Confidence:  types.ConfidenceSymbolicReplacement,
		Method:      types.MethodSymbolicReplacement,
	}
}

// Symbols returns the symbols of the table, in the notation direction d
// starts from, that occur in expr.
func (r *Rewriter) Symbols(expr string, d types.Direction) []string {
	if d == types.TargetToSource {
		return r.backward.Find(expr)
	}
	return r.forward.Find(expr)
}
