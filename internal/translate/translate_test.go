// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package translate

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/gift-translator/pkg/types"
)

func newTranslator(t *testing.T) *Translator {
	t.Helper()
	tr, err := New(types.TranslatorConfig{})
	require.NoError(t, err)
	return tr
}

var bothDirections = []types.Direction{types.SourceToTarget, types.TargetToSource}

func TestTranslateFineStructure(t *testing.T) {
	res := newTranslator(t).Translate("α = e^2 / (4π ε₀ ℏ c)", types.SourceToTarget)
	assert.True(t, res.Success)
	assert.Equal(t, types.MethodPatternMatching, res.Method)
	assert.Equal(t, 0.95, res.Confidence)
	assert.Equal(t, "fine_structure", res.EquationType)
	assert.Contains(t, res.Translated, "ζ₃ × 114")
	assert.Contains(t, res.Translated, "137.034")
}

func TestTranslateWeinbergAngle(t *testing.T) {
	res := newTranslator(t).Translate("sin²θ_W = g'²/(g²+g'²)", types.SourceToTarget)
	assert.Equal(t, "weinberg_angle", res.EquationType)
	assert.Contains(t, res.Translated, "0.230")
}

func TestTranslateGIFTConstantsToNumbers(t *testing.T) {
	res := newTranslator(t).Translate("ξ × τ", types.TargetToSource)
	assert.True(t, res.Success)
	assert.Equal(t, types.MethodMathematicalEvaluation, res.Method)
	assert.Equal(t, 0.85, res.Confidence)
	assert.Equal(t, "(0.981748) × (3.896568) = 3.825447", res.Translated)
	require.NotNil(t, res.CalculatedValue)
	assert.InDelta(t, 3.825, *res.CalculatedValue, 1e-3)
	assert.Contains(t, res.Explanation, "ξ = 0.981748")
}

func TestTranslateKeepsSymbolsTowardGIFT(t *testing.T) {
	res := newTranslator(t).Translate("ξ × τ", types.SourceToTarget)
	assert.Equal(t, types.MethodMathematicalEvaluation, res.Method)
	assert.Equal(t, "ξ × τ = 3.825447", res.Translated)
}

func TestTranslatePureNumeric(t *testing.T) {
	tr := newTranslator(t)
	for _, expr := range []string{"x = 2 + 3 * 4", "2 + 3", "(1.5 - 0.5) / 4", "12", "-3 ^ 2", "= 7", "1/0"} {
		for _, d := range bothDirections {
			res := tr.Translate("  "+expr+" ", d)
			assert.Equal(t, types.MethodNoTranslationNeeded, res.Method, expr)
			assert.Equal(t, 0.5, res.Confidence, expr)
			assert.Equal(t, expr, res.Translated, expr)
			assert.Nil(t, res.CalculatedValue, expr)
		}
	}
}

func TestTranslateInjectionNeverEvaluates(t *testing.T) {
	tr := newTranslator(t)
	for _, expr := range []string{
		"ξ; process.exit()",
		"τ + require('child_process')",
		"ζ₃ * constructor",
		"ξ × Math.PI",
	} {
		for _, d := range bothDirections {
			res := tr.Translate(expr, d)
			assert.True(t, res.Success, expr)
			assert.Nil(t, res.CalculatedValue, expr)
			assert.Equal(t, 0.70, res.Confidence, expr)
			assert.Equal(t, types.MethodMathematicalEvaluation, res.Method, expr)
		}
	}

	res := tr.Translate("ξ; process.exit()", types.TargetToSource)
	assert.Equal(t, "(0.981748); process.exit()", res.Translated)
}

func TestTranslateArithmeticWithoutConstants(t *testing.T) {
	res := newTranslator(t).Translate("√2/12", types.SourceToTarget)
	assert.Equal(t, types.MethodMathematicalEvaluation, res.Method)
	assert.Equal(t, "√2/12 = 0.117851", res.Translated)
}

func TestTranslateEvaluatesRightHandSide(t *testing.T) {
	res := newTranslator(t).Translate("y = 2 × ξ", types.TargetToSource)
	assert.Equal(t, "y = 2 × (0.981748) = 1.963495", res.Translated)
}

func TestTranslateNonFiniteFallsBackToSymbolic(t *testing.T) {
	res := newTranslator(t).Translate("ζ₃ / 0", types.TargetToSource)
	assert.True(t, res.Success)
	assert.Equal(t, 0.70, res.Confidence)
	assert.Nil(t, res.CalculatedValue)
	assert.Equal(t, "(1.202057) / 0", res.Translated)
}

func TestTranslateFallsBackToSymbolRewriter(t *testing.T) {
	tr := newTranslator(t)
	tests := []struct {
		expr string
		dir  types.Direction
		want string
	}{
		{"α + 1", types.SourceToTarget, "α_gift + 1"},
		{"α_s_gift", types.TargetToSource, "α_s"},
		{"a = b", types.SourceToTarget, "a = b"},
		{"Ω_Λ", types.SourceToTarget, "Ω_DE_gift"},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			res := tr.Translate(tt.expr, tt.dir)
			assert.True(t, res.Success)
			assert.Equal(t, types.MethodSymbolicReplacement, res.Method)
			assert.Equal(t, 0.60, res.Confidence)
			assert.Equal(t, tt.want, res.Translated)
		})
	}
}

func TestTranslateFractionHeuristics(t *testing.T) {
	tr, err := New(types.TranslatorConfig{Rewrite: types.RewriteConfig{Fractions: true}})
	require.NoError(t, err)

	res := tr.Translate("-(1/4) F_μν F^μν", types.SourceToTarget)
	assert.Equal(t, types.MethodSymbolicReplacement, res.Method)
	assert.Equal(t, "-(ζ(3) × 114 × 1/4) F_μν F^μν", res.Translated)
}

func TestTranslateMalformedInput(t *testing.T) {
	tr, err := New(types.TranslatorConfig{MaxInputLength: 32})
	require.NoError(t, err)

	for _, expr := range []string{"", "   \t", "\xff\xfe", strings.Repeat("1+", 40)} {
		res := tr.Translate(expr, types.SourceToTarget)
		assert.False(t, res.Success, "%q", expr)
		assert.Equal(t, 0.0, res.Confidence)
		assert.Contains(t, res.Error, "malformed input")
		assert.Empty(t, res.Translated)
	}
}

func TestTranslateRecoversFromPanics(t *testing.T) {
	tr := &Translator{maxInput: 100}
	res := tr.Translate("α = 1", types.SourceToTarget)
	assert.False(t, res.Success)
	assert.Equal(t, 0.0, res.Confidence)
	assert.Contains(t, res.Error, "internal error")
}

func TestNewRejectsBadRewriteConfig(t *testing.T) {
	_, err := New(types.TranslatorConfig{Rewrite: types.RewriteConfig{
		Fractions:     true,
		FractionRules: []types.FractionRuleConfig{{Tag: "bad"}},
	}})
	assert.Error(t, err)
}

func TestEvaluateAlwaysSucceeds(t *testing.T) {
	tr := newTranslator(t)
	res := tr.Evaluate("foo", types.SourceToTarget)
	assert.True(t, res.Success)
	assert.Equal(t, "foo", res.Translated)
	assert.Equal(t, 0.70, res.Confidence)
	assert.Equal(t, types.MethodMathematicalEvaluation, res.Method)

	// Without constants the stage keeps its 0.70 record to itself and
	// Translate reaches the rewriter.
	res = tr.Evaluate("α + 1", types.SourceToTarget)
	assert.Equal(t, 0.70, res.Confidence)
	assert.Nil(t, res.CalculatedValue)
	assert.Equal(t, types.MethodSymbolicReplacement, tr.Translate("α + 1", types.SourceToTarget).Method)
}

func TestAccessors(t *testing.T) {
	tr := newTranslator(t)

	c, ok := tr.LookupConstant("ζ₃")
	require.True(t, ok)
	assert.InDelta(t, 1.2020569, c.Value, 1e-7)

	_, ok = tr.LookupConstant("nope")
	assert.False(t, ok)

	assert.Equal(t, "ξ", tr.ListConstants()[0].Symbol)
	assert.Equal(t, "fine_structure", tr.ListEquationTemplates()[0].Name)
	assert.Len(t, tr.Examples(), 10)
}

func TestTranslateConcurrent(t *testing.T) {
	tr := newTranslator(t)
	inputs := []string{"ξ × τ", "E = mc²", "x = 1 + 1", "α + 1", "H₀ = 67.36 km/s/Mpc"}
	want := make([]types.TranslationResult, len(inputs))
	for i, in := range inputs {
		want[i] = tr.Translate(in, types.TargetToSource)
	}

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, in := range inputs {
				assert.Equal(t, want[i], tr.Translate(in, types.TargetToSource))
			}
		}()
	}
	wg.Wait()
}
