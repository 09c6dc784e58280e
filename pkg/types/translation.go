// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"strings"
)

// Direction selects which notation an expression is rendered into.
type Direction int

const (
	// SourceToTarget renders Standard-Model notation as GIFT geometric form.
	SourceToTarget Direction = iota
	// TargetToSource renders GIFT geometric form as Standard-Model notation.
	TargetToSource
)

// String returns the CLI spelling of the direction.
func (d Direction) String() string {
	switch d {
	case SourceToTarget:
		return "sm-to-gift"
	case TargetToSource:
		return "gift-to-sm"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Label returns the domain label shown to users ("SM→GIFT" or "GIFT→SM").
func (d Direction) Label() string {
	if d == TargetToSource {
		return "GIFT→SM"
	}
	return "SM→GIFT"
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == TargetToSource {
		return SourceToTarget
	}
	return TargetToSource
}

// MarshalText encodes the direction with its CLI spelling.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText accepts any spelling understood by ParseDirection.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDirection converts a user-supplied direction string. Accepted forms
// include "sm-to-gift", "sm2gift", "SM→GIFT", "SM->GIFT", "source-to-target"
// and their reverses. Matching ignores case and surrounding whitespace.
func ParseDirection(s string) (Direction, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, sep := range []string{"→", "->", "2", "_to_", "-to-", " to ", "_", "-"} {
		key = strings.ReplaceAll(key, sep, ">")
	}
	switch key {
	case "sm>gift", "source>target", "forward":
		return SourceToTarget, nil
	case "gift>sm", "target>source", "reverse":
		return TargetToSource, nil
	}
	return SourceToTarget, fmt.Errorf("unknown direction %q: use sm-to-gift or gift-to-sm", s)
}

// Method identifies which strategy produced a TranslationResult.
type Method string

const (
	MethodPatternMatching        Method = "pattern_matching"
	MethodMathematicalEvaluation Method = "mathematical_evaluation"
	MethodSymbolicReplacement    Method = "symbolic_replacement"
	MethodNoTranslationNeeded    Method = "no_translation_needed"
)

// Confidence values are fixed per method. They describe how direct the
// derivation is, not a statistical estimate.
const (
	ConfidencePatternMatching     = 0.95
	ConfidenceEvaluated           = 0.85
	ConfidenceSymbolicEvaluation  = 0.70
	ConfidenceSymbolicReplacement = 0.60
	ConfidenceNoTranslationNeeded = 0.50
	ConfidenceFailed              = 0.0
)

// TranslationResult is the single output record of a translation call.
// It is created fresh per call and owned by the caller.
type TranslationResult struct {
	// Success is false only when the input could not be processed at all.
	Success bool `json:"success" yaml:"success"`

	// Translated is the rendered expression. Empty on failure.
	Translated string `json:"translated,omitempty" yaml:"translated,omitempty"`

	// Explanation is the derivation note or a short description of the method.
	Explanation string `json:"explanation,omitempty" yaml:"explanation,omitempty"`

	// Confidence is fixed per Method, in [0, 1].
	Confidence float64 `json:"confidence" yaml:"confidence"`

	// Method names the strategy that produced the result.
	Method Method `json:"method,omitempty" yaml:"method,omitempty"`

	// EquationType is the template name for pattern matches.
	EquationType string `json:"equation_type,omitempty" yaml:"equation_type,omitempty"`

	// CalculatedValue holds the numeric result of a successful evaluation.
	CalculatedValue *float64 `json:"calculated_value,omitempty" yaml:"calculated_value,omitempty"`

	// Error carries the failure message when Success is false.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Failed builds a failure record with zero confidence.
func Failed(msg string) TranslationResult {
	return TranslationResult{
		Success:    false,
		Confidence: ConfidenceFailed,
		Error:      msg,
	}
}
