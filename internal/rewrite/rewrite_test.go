// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/gift-translator/pkg/types"
)

func newRewriter(t *testing.T, cfg types.RewriteConfig) *Rewriter {
	t.Helper()
	r, err := New(cfg)
	require.NoError(t, err)
	return r
}

func TestRewriteSymbols(t *testing.T) {
	tests := []struct {
		name string
		in   string
		dir  types.Direction
		want string
	}{
		{"fine structure", "α + 1", types.SourceToTarget, "α_gift + 1"},
		{"longest key first", "α_s + α", types.SourceToTarget, "α_s_gift + α_gift"},
		{"weak angle", "sin²θ_W", types.SourceToTarget, "sin²θ_W_gift"},
		{"alias", "H_0 ≈ H₀", types.SourceToTarget, "H_0_gift ≈ H_0_gift"},
		{"dark energy", "Ω_Λ + Ω_m", types.SourceToTarget, "Ω_DE_gift + Ω_m_gift"},
		{"identifier prefix untouched", "m_Higgs", types.SourceToTarget, "m_Higgs"},
		{"inverse", "α_s_gift / α_gift", types.TargetToSource, "α_s / α"},
		{"inverse alias", "H_0_gift", types.TargetToSource, "H₀"},
		{"inverse dark energy", "Ω_DE_gift", types.TargetToSource, "Ω_Λ"},
		{"no symbols", "x + y", types.SourceToTarget, "x + y"},
		{"empty", "", types.TargetToSource, ""},
	}
	r := newRewriter(t, types.RewriteConfig{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := r.Rewrite(tt.in, tt.dir)
			assert.True(t, res.Success)
			assert.Equal(t, types.MethodSymbolicReplacement, res.Method)
			assert.Equal(t, types.ConfidenceSymbolicReplacement, res.Confidence)
			assert.Equal(t, tt.want, res.Translated)
		})
	}
}

func TestRewriteIdempotent(t *testing.T) {
	inputs := []string{
		"α = e²/(4πε₀ℏc)",
		"α_s(M_Z) + sin²θ_W",
		"Λ_QCD ≈ 200 MeV, m_H = 125 GeV",
		"H₀ = 70 km/s/Mpc, Ω_Λ = 0.69",
		"-(1/4) F_μν F^μν + (2/12) ψ + (3/8) φ + (1/3) χ",
		"f_π_gift + α_gift",
	}
	for _, fractions := range []bool{false, true} {
		r := newRewriter(t, types.RewriteConfig{Fractions: fractions})
		for _, in := range inputs {
			for _, dir := range []types.Direction{types.SourceToTarget, types.TargetToSource} {
				once := r.Rewrite(in, dir).Translated
				twice := r.Rewrite(once, dir).Translated
				assert.Equal(t, once, twice, "fractions=%v %s %q", fractions, dir, in)
			}
		}
	}
}

func TestFractionsDisabledByDefault(t *testing.T) {
	r := newRewriter(t, types.RewriteConfig{})
	res := r.Rewrite("-(1/4) F_μν F^μν", types.SourceToTarget)
	assert.Equal(t, "-(1/4) F_μν F^μν", res.Translated)
	assert.NotContains(t, res.Explanation, "fraction")
}

func TestFractionRules(t *testing.T) {
	tests := []struct {
		in   string
		want string
		tags string
	}{
		{"-(1/4) F_μν F^μν", "-(ζ(3) × 114 × 1/4) F_μν F^μν", "fine-structure"},
		{"(2/12) g", "(√2/12 × 2) g", "strong-coupling"},
		{"3/8 x", "(π/8 × 3) x", "dimensional-anomaly"},
		{"(1/2) m²", "(ζ(3) × 114 × 0.5) m²", "fine-structure-scaled"},
		{"(1/4 + x)", "((ζ(3) × 114 × 1/4) + x)", "fine-structure"},
		{"√2/12", "√2/12", ""},
		{"0.5/4", "0.5/4", ""},
		{"2 × 1/4", "2 × 1/4", ""},
		{"1/0", "1/0", ""},
	}
	r := newRewriter(t, types.RewriteConfig{Fractions: true})
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			res := r.Rewrite(tt.in, types.SourceToTarget)
			assert.Equal(t, tt.want, res.Translated)
			if tt.tags == "" {
				assert.NotContains(t, res.Explanation, "fraction")
			} else {
				assert.Contains(t, res.Explanation, tt.tags)
			}
		})
	}
}

func TestFractionsOnlySourceToTarget(t *testing.T) {
	r := newRewriter(t, types.RewriteConfig{Fractions: true})
	res := r.Rewrite("(1/4) α_gift", types.TargetToSource)
	assert.Equal(t, "(1/4) α", res.Translated)
}

func TestCustomFractionRules(t *testing.T) {
	r := newRewriter(t, types.RewriteConfig{
		Fractions: true,
		FractionRules: []types.FractionRuleConfig{
			{Tag: "half", Denominator: 2, Format: "[{n} over {d} = {v}]"},
		},
	})
	assert.Equal(t, "[1 over 2 = 0.5] x + 1/3", r.Rewrite("1/2 x + 1/3", types.SourceToTarget).Translated)
}

func TestNewRejectsBadRules(t *testing.T) {
	_, err := New(types.RewriteConfig{Fractions: true, FractionRules: []types.FractionRuleConfig{{Tag: "x", Denominator: -1, Format: "y"}}})
	assert.Error(t, err)

	_, err = New(types.RewriteConfig{Fractions: true, FractionRules: []types.FractionRuleConfig{{Tag: "x", Denominator: 2}}})
	assert.Error(t, err)

	_, err = New(types.RewriteConfig{FractionRules: []types.FractionRuleConfig{{Denominator: -1}}})
	assert.NoError(t, err, "rules are not compiled while fractions are disabled")
}

func TestNewRejectsFormatsThatRematch(t *testing.T) {
	tests := []struct {
		name   string
		format string
		den    int
	}{
		{"bare fraction", "x {n}/{d}", 4},
		{"parenthesized", "({n}/{d})", 4},
		{"any denominator", "k + {n}/{d}", 0},
		{"fixed text", "({v} + 1/2)", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(types.RewriteConfig{
				Fractions:     true,
				FractionRules: []types.FractionRuleConfig{{Tag: "custom", Denominator: tt.den, Format: tt.format}},
			})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "custom")
		})
	}
}

func TestCustomGuardedFormatIsIdempotent(t *testing.T) {
	r := newRewriter(t, types.RewriteConfig{
		Fractions: true,
		FractionRules: []types.FractionRuleConfig{
			{Tag: "quarter", Denominator: 4, Format: "(x × {n}/{d})"},
		},
	})
	once := r.Rewrite("a + 3/4", types.SourceToTarget).Translated
	assert.Equal(t, "a + (x × 3/4)", once)
	assert.Equal(t, once, r.Rewrite(once, types.SourceToTarget).Translated)
}

func TestSymbols(t *testing.T) {
	r := newRewriter(t, types.RewriteConfig{})
	assert.Equal(t, []string{"α_s", "θ_W"}, r.Symbols("α_s + sin²θ_W + α_s", types.SourceToTarget))
	assert.Equal(t, []string{"G_F_gift"}, r.Symbols("G_F_gift", types.TargetToSource))
	assert.Len(t, Correspondences(), 12)
}
