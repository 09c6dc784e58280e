// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package translate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/gift-translator/pkg/types"
)

// pureNumeric matches "[identifier =] arithmetic" where the arithmetic part
// holds only digits, decimal points, operators, parentheses and spaces.
var pureNumeric = regexp.MustCompile(`^(?:[A-Za-z_]\w*\s*=\s*|=\s*)?[\d.\s+\-*/^()]+$`)

const operators = "+-*/^×÷−·√"

// Evaluate runs the constant-substitution stage on its own. It always
// succeeds: when nothing can be evaluated the symbolic text comes back with
// the lower confidence.
func (t *Translator) Evaluate(expr string, d types.Direction) types.TranslationResult {
	res, _ := t.evaluate(strings.TrimSpace(expr), d)
	return res
}

// evaluate reports ok=false when the stage found nothing to do: no
// constants, no numeric value and not a pure numeric expression. The
// orchestrator then hands the expression to the symbol rewriter. The
// symbolic 0.70 result is deliberately withheld in that case: it is the
// only path on which the rewriter is reached, so "α + 1" comes back as a
// 0.60 symbol substitution. Evaluate still returns the 0.70 record.
func (t *Translator) evaluate(expr string, d types.Direction) (types.TranslationResult, bool) {
	found := t.table.Find(expr)

	if len(found) == 0 && pureNumeric.MatchString(expr) {
		return types.TranslationResult{
			Success:     true,
			Translated:  expr,
			Explanation: "Pure numeric expression; no constant substitution needed",
			Confidence:  types.ConfidenceNoTranslationNeeded,
			Method:      types.MethodNoTranslationNeeded,
		}, true
	}

	out := expr
	if d == types.TargetToSource && len(found) > 0 {
		out = t.table.Substitute(expr, func(c types.Constant) string {
			return fmt.Sprintf("(%.6f)", c.Value)
		})
	}

	var evalErr error
	if len(found) > 0 || strings.ContainsAny(expr, operators) {
		// The value is computed from a full-precision substitution, not
		// from the rendered text.
		numeric := t.table.Substitute(expr, func(c types.Constant) string {
			return "(" + strconv.FormatFloat(c.Value, 'g', -1, 64) + ")"
		})
		v, err := t.eval.EvalNotation(rightHandSide(numeric))
		if err == nil {
			return types.TranslationResult{
				Success:         true,
				Translated:      fmt.Sprintf("%s = %.6f", out, v),
				Explanation:     evaluatedExplanation(found),
				Confidence:      types.ConfidenceEvaluated,
				Method:          types.MethodMathematicalEvaluation,
				CalculatedValue: &v,
			}, true
		}
		evalErr = err
	}

	explanation := "Symbolic form with GIFT constants substituted"
	if len(found) == 0 {
		explanation = "Symbolic form; no GIFT constants found"
	}
	if evalErr != nil {
		explanation += fmt.Sprintf("; numeric evaluation not possible (%v)", evalErr)
	}
	return types.TranslationResult{
		Success:     true,
		Translated:  out,
		Explanation: explanation,
		Confidence:  types.ConfidenceSymbolicEvaluation,
		Method:      types.MethodMathematicalEvaluation,
	}, len(found) > 0
}

// rightHandSide returns the text after a single "=", or the whole
// expression when it has none or more than one.
func rightHandSide(expr string) string {
	if strings.Count(expr, "=") != 1 {
		return expr
	}
	return expr[strings.Index(expr, "=")+1:]
}

func evaluatedExplanation(found []types.Constant) string {
	if len(found) == 0 {
		return "Evaluated arithmetic expression"
	}
	parts := make([]string, len(found))
	for i, c := range found {
		parts[i] = fmt.Sprintf("%s = %.6f", c.Symbol, c.Value)
	}
	return "Evaluated with GIFT constants: " + strings.Join(parts, ", ")
}
