// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rewrite

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pdiddy/gift-translator/pkg/types"
)

// DefaultFractionRules returns the GIFT project's fraction conventions.
// They map coefficients onto geometric constants by denominator alone and
// are approximations, not derivations.
func DefaultFractionRules() []types.FractionRuleConfig {
	return []types.FractionRuleConfig{
		{Tag: "fine-structure", Denominator: 4, Format: "(ζ(3) × 114 × {n}/{d})"},
		{Tag: "strong-coupling", Denominator: 12, Format: "(√2/12 × {n})"},
		{Tag: "dimensional-anomaly", Denominator: 8, Format: "(π/8 × {n})"},
		{Tag: "fine-structure-scaled", Denominator: 0, Format: "(ζ(3) × 114 × {v})"},
	}
}

type fractionRule struct {
	tag         string
	denominator int
	format      string
}

func compileFractionRules(rules []types.FractionRuleConfig) ([]fractionRule, error) {
	out := make([]fractionRule, 0, len(rules))
	for i, r := range rules {
		if r.Denominator < 0 {
			return nil, fmt.Errorf("fraction rule %d (%s): negative denominator %d", i, r.Tag, r.Denominator)
		}
		if strings.TrimSpace(r.Format) == "" {
			return nil, fmt.Errorf("fraction rule %d (%s): empty format", i, r.Tag)
		}
		tag := r.Tag
		if tag == "" {
			tag = fmt.Sprintf("rule-%d", i)
		}
		rule := fractionRule{tag: tag, denominator: r.Denominator, format: r.Format}
		if err := rule.checkIdempotent(); err != nil {
			return nil, fmt.Errorf("fraction rule %d (%s): %w", i, tag, err)
		}
		out = append(out, rule)
	}
	return out, nil
}

// checkIdempotent rejects formats whose rendering contains a fraction the
// rewriter would pick up again on a second pass.
func (r fractionRule) checkIdempotent() error {
	den := r.denominator
	if den == 0 {
		den = 7
	}
	rendered := r.render(3, den)
	if spans := fractionSpans(rendered); len(spans) > 0 {
		s := spans[0]
		return fmt.Errorf("format %q renders the bare fraction %q; place fractions after √, × or a digit",
			r.format, rendered[s.start:s.end])
	}
	return nil
}

func (r fractionRule) render(num, den int) string {
	return strings.NewReplacer(
		"{n}", strconv.Itoa(num),
		"{d}", strconv.Itoa(den),
		"{v}", strconv.FormatFloat(float64(num)/float64(den), 'g', -1, 64),
	).Replace(r.format)
}

var fractionPattern = regexp.MustCompile(`\(?(\d+)/(\d+)\)?`)

type fractionSpan struct {
	start, end int
	num, den   int
}

// fractionSpans finds the integer fractions in expr that stand on their
// own. A fraction directly after √, a digit, a decimal point or a
// multiplication sign is part of a larger term and is skipped, as is a zero
// denominator.
func fractionSpans(expr string) []fractionSpan {
	var out []fractionSpan
	for _, m := range fractionPattern.FindAllStringSubmatchIndex(expr, -1) {
		start, end := m[0], m[1]
		open := expr[start] == '('
		closed := expr[end-1] == ')'
		if open != closed {
			if open {
				start++
			} else {
				end--
			}
		}
		if guarded(expr[:start]) {
			continue
		}
		num, err1 := strconv.Atoi(expr[m[2]:m[3]])
		den, err2 := strconv.Atoi(expr[m[4]:m[5]])
		if err1 != nil || err2 != nil || den == 0 {
			continue
		}
		out = append(out, fractionSpan{start: start, end: end, num: num, den: den})
	}
	return out
}

// applyFractions rewrites integer fractions with the first rule whose
// denominator matches (zero matches any). Rule formats never render a
// fraction fractionSpans would report, which keeps the rewrite idempotent.
func (r *Rewriter) applyFractions(expr string) (string, []string) {
	var b strings.Builder
	var tags []string
	seen := map[string]bool{}
	last := 0
	for _, f := range fractionSpans(expr) {
		rule, ok := r.ruleFor(f.den)
		if !ok {
			continue
		}
		b.WriteString(expr[last:f.start])
		b.WriteString(rule.render(f.num, f.den))
		last = f.end
		if !seen[rule.tag] {
			seen[rule.tag] = true
			tags = append(tags, rule.tag)
		}
	}
	b.WriteString(expr[last:])
	return b.String(), tags
}

func (r *Rewriter) ruleFor(den int) (fractionRule, bool) {
	for _, rule := range r.fractions {
		if rule.denominator == 0 || rule.denominator == den {
			return rule, true
		}
	}
	return fractionRule{}, false
}

// guarded reports whether the text before a fraction ends in a context
// that makes the fraction part of a larger term.
func guarded(before string) bool {
	before = strings.TrimRightFunc(before, func(r rune) bool { return r == ' ' })
	prev, _ := utf8.DecodeLastRuneInString(before)
	switch {
	case prev == utf8.RuneError:
		return false
	case prev == '√', prev == '.', prev == '×', prev == '*', unicode.IsDigit(prev):
		return true
	}
	return false
}
