// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog holds the ordered set of known equation templates and
// matches expressions against them. Templates are built once from the
// constant table and are read-only afterwards.
package catalog

import (
	"fmt"
	"math"

	"github.com/pdiddy/gift-translator/internal/constants"
	"github.com/pdiddy/gift-translator/internal/notation"
	"github.com/pdiddy/gift-translator/pkg/types"
)

// Catalog is the immutable, ordered template set.
type Catalog struct {
	templates []Template
	examples  []types.Example
}

// New builds the catalog. Numeric renderings are computed from the values
// in table.
func New(table *constants.Table) *Catalog {
	return &Catalog{
		templates: builtin(table),
		examples:  builtinExamples(),
	}
}

func builtin(table *constants.Table) []Template {
	zeta2 := table.MustLookup("ζ₂").Value
	zeta3 := table.MustLookup("ζ₃").Value
	xi := table.MustLookup("ξ").Value
	tau := table.MustLookup("τ").Value
	beta0 := table.MustLookup("β₀").Value
	k := table.MustLookup("k").Value
	c := table.MustLookup("c").Value

	return []Template{
		{
			Kind:       FineStructure,
			Derivation: "GIFT derives α⁻¹ from geometric reduction: α⁻¹ = ζ₃ × 114, where ζ₃ = 1.202... (Apéry's constant)",
			recognizers: recognizers(
				`^α=e\^?2/\(4π\*?ε_?0\*?ℏ\*?c\)`,
				`^α\^-1=.*ζ(_?3|\(3\))\*114`,
			),
			source: static("α = e²/(4πε₀ℏc)"),
			target: static(fmt.Sprintf("α⁻¹ = %.6f (GIFT: α⁻¹ = ζ₃ × 114)", zeta3*114)),
		},
		{
			Kind:       WeinbergAngle,
			Derivation: "GIFT derives the Weinberg angle from a geometric constraint: sin²θ_W = ζ₂ - √2, where ζ₂ = π²/6",
			recognizers: recognizers(
				`^sin\^?2θ_?w=g'\^?2/\(g\^?2\+g'\^?2\)`,
				`^sin\^?2θ_?w=.*ζ(_?2|\(2\))-√\(?2\)?`,
			),
			source: static("sin²θ_W = g'²/(g² + g'²)"),
			target: static(fmt.Sprintf("sin²θ_W = %.6f (GIFT: sin²θ_W = ζ₂ - √2)", zeta2-math.Sqrt2)),
		},
		{
			Kind:       MassEnergy,
			Derivation: "GIFT adds geometric corrections: E = ξ×τ × mc², where ξ = 5π/16, τ = 8γ^(5π/12)",
			recognizers: recognizers(
				`^e=(?P<m>\d+(?:\.\d+)?)?\*?m\*?c\^?2`,
				`^e=(?:(?P<m>\d+(?:\.\d+)?)\*)?ξ\*?τ\*?m?\*?c\^?2`,
			),
			source: func(p Params) string {
				m := p.Get("m", 1)
				if m == 1 {
					return "E = mc²"
				}
				return fmt.Sprintf("E = %gmc²", m)
			},
			target: func(p Params) string {
				m := p.Get("m", 1)
				energy := m * xi * tau * c * c
				if m == 1 {
					return fmt.Sprintf("E = ξ×τ × mc² = %.3e J (GIFT geometric correction)", energy)
				}
				return fmt.Sprintf("E = %g × ξ×τ × mc² = %.3e J (GIFT geometric correction)", m, energy)
			},
		},
		{
			Kind:       StrongCoupling,
			Derivation: "GIFT derives the strong coupling from a geometric constraint: α_s = √2/12",
			recognizers: recognizers(
				`^α_?s(\(m_?z\))?=g_?s\^?2/\(?4π\)?`,
				`^α_?s(\(m_?z\))?=.*√\(?2\)?/12`,
			),
			source: static("α_s(M_Z) = g_s²/(4π)"),
			target: static(fmt.Sprintf("α_s(M_Z) = %.6f (GIFT: α_s = √2/12)", math.Sqrt2/12)),
		},
		{
			Kind:       HubbleConstant,
			Derivation: "GIFT resolves the Hubble tension: H₀ = 67.36 × (ζ₃/ξ)^β₀, giving 72.93 km/s/Mpc",
			recognizers: recognizers(
				`^h_?0=.*67\.36\*\(ζ(_?3|\(3\))/ξ\)\^\(?β_?0\)?`,
				`^h_?0=67\.36(km/s/mpc)?$`,
			),
			source: static("H₀ = 67.36 × (ζ₃/ξ)^β₀ km/s/Mpc"),
			target: static(fmt.Sprintf("H₀ = %.2f km/s/Mpc (GIFT: H₀ = 67.36 × (ζ₃/ξ)^β₀)",
				67.36*math.Pow(zeta3/xi, beta0))),
		},
		{
			Kind:       QCDScale,
			Derivation: "GIFT derives the QCD scale from the family factor: Λ_QCD = k × 8.38 MeV, where k = 26.464...",
			recognizers: recognizers(
				`^(λ|lambda)_?qcd=.*k\*8\.38`,
			),
			source: static("Λ_QCD = k × 8.38 MeV"),
			target: static(fmt.Sprintf("Λ_QCD = %.2f MeV (GIFT: Λ_QCD = k × 8.38)", k*8.38)),
		},
		{
			Kind:       PionDecay,
			Derivation: "GIFT derives the pion decay constant from a geometric factor: f_π = 48 × e MeV",
			recognizers: recognizers(
				`^f_?(π|pi)=.*48\*e`,
			),
			source: static("f_π = 48 × e MeV"),
			target: static(fmt.Sprintf("f_π = %.2f MeV (GIFT: f_π = 48 × e)", 48*math.E)),
		},
		{
			Kind:       KoideRelation,
			Derivation: "GIFT fixes the Koide ratio geometrically: Q = √5/6, against the measured 0.373038",
			recognizers: recognizers(
				`^q=\(m_?e\+m_?(μ|mu)\+m_?(τ|tau)\)/\(√m_?e\+√m_?(μ|mu)\+√m_?(τ|tau)\)\^?2`,
				`^q=\(√m_?e\+√m_?(μ|mu)\+√m_?(τ|tau)\)\^?2/\(m_?e\+m_?(μ|mu)\+m_?(τ|tau)\)`,
				`^q=.*√\(?5\)?/6`,
			),
			source: static("Q = (m_e + m_μ + m_τ)/(√m_e + √m_μ + √m_τ)²"),
			target: static(fmt.Sprintf("Q = %.6f (GIFT: Q = √5/6)", math.Sqrt(5)/6)),
		},
	}
}

// Match scans the templates in declaration order and returns the first
// one that recognizes expr and can render the requested direction. A
// template lacking the required rendering is skipped and scanning goes on.
func (c *Catalog) Match(expr string, d types.Direction) (types.TranslationResult, bool) {
	canonical := notation.Canonical(expr)
	for _, t := range c.templates {
		params, ok := t.Recognize(canonical)
		if !ok {
			continue
		}
		rendered, ok := t.Render(d, params)
		if !ok {
			continue
		}
		return types.TranslationResult{
			Success:      true,
			Translated:   rendered,
			Explanation:  t.Derivation,
			Confidence:   types.ConfidencePatternMatching,
			Method:       types.MethodPatternMatching,
			EquationType: t.Name(),
		}, true
	}
	return types.TranslationResult{}, false
}

// Templates returns the templates in declaration order.
func (c *Catalog) Templates() []Template {
	return append([]Template(nil), c.templates...)
}

// Lookup returns the template with the given name.
func (c *Catalog) Lookup(name string) (Template, bool) {
	for _, t := range c.templates {
		if t.Name() == name {
			return t, true
		}
	}
	return Template{}, false
}

// List returns name and derivation of every template in declaration order.
func (c *Catalog) List() []types.TemplateInfo {
	out := make([]types.TemplateInfo, len(c.templates))
	for i, t := range c.templates {
		out[i] = types.TemplateInfo{
			Name:          t.Name(),
			Derivation:    t.Derivation,
			Bidirectional: t.Bidirectional(),
		}
	}
	return out
}

// Examples returns the canonical Lagrangian examples.
func (c *Catalog) Examples() []types.Example {
	return append([]types.Example(nil), c.examples...)
}
