// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConstantCategory groups constants for display and for deciding which
// symbols the evaluation stage may substitute.
type ConstantCategory string

const (
	CategoryGeometric    ConstantCategory = "geometric"
	CategoryMathematical ConstantCategory = "mathematical"
	CategoryDerived      ConstantCategory = "derived"
	CategoryPhysical     ConstantCategory = "physical"
	CategoryUnit         ConstantCategory = "unit"
)

// Substitutable reports whether constants of this category are replaced by
// their numeric value when rendering GIFT form as Standard-Model form.
func (c ConstantCategory) Substitutable() bool {
	switch c {
	case CategoryGeometric, CategoryMathematical, CategoryDerived:
		return true
	}
	return false
}

// Constant is a named value from the constant table. Constants are defined
// once at startup and never mutated.
type Constant struct {
	// Symbol is the notation used in expressions (e.g. "ξ", "ζ₃", "F_α").
	Symbol string `json:"symbol" yaml:"symbol"`

	// Name is the ASCII alias accepted by lookups (e.g. "xi", "zeta_3").
	Name string `json:"name" yaml:"name"`

	// Value is the numeric value in SI units for physical constants.
	Value float64 `json:"value" yaml:"value"`

	// Expression is the closed form the value is derived from, if any.
	Expression string `json:"expression,omitempty" yaml:"expression,omitempty"`

	// Description is a short human-readable note.
	Description string `json:"description" yaml:"description"`

	Category ConstantCategory `json:"category" yaml:"category"`
}

// TemplateInfo describes a Pattern Catalog entry for help and picker lists.
type TemplateInfo struct {
	Name       string `json:"name" yaml:"name"`
	Derivation string `json:"derivation" yaml:"derivation"`

	// Bidirectional is false when the template renders only one notation.
	Bidirectional bool `json:"bidirectional" yaml:"bidirectional"`
}

// Example is a canonical formula rendered in both notations.
type Example struct {
	Name string `json:"name" yaml:"name"`
	SM   string `json:"sm" yaml:"sm"`
	GIFT string `json:"gift" yaml:"gift"`
}

// For returns the rendering of the example in the notation a translation in
// direction d starts from.
func (e Example) For(d Direction) string {
	if d == TargetToSource {
		return e.GIFT
	}
	return e.SM
}
