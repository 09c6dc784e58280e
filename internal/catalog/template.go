// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"regexp"
	"strconv"

	"github.com/pdiddy/gift-translator/pkg/types"
)

// Kind identifies one equation template. Templates are iterated in Kind
// order, which is also their declaration order.
type Kind int

const (
	FineStructure Kind = iota
	WeinbergAngle
	MassEnergy
	StrongCoupling
	HubbleConstant
	QCDScale
	PionDecay
	KoideRelation
)

var kindNames = [...]string{
	FineStructure:  "fine_structure",
	WeinbergAngle:  "weinberg_angle",
	MassEnergy:     "einstein",
	StrongCoupling: "strong_coupling",
	HubbleConstant: "hubble_constant",
	QCDScale:       "qcd_scale",
	PionDecay:      "pion_decay",
	KoideRelation:  "koide_relation",
}

// String returns the template name reported as the equation type.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Params holds the named numeric parameters a recognizer captured.
type Params map[string]float64

// Get returns the named parameter, or def when it was not captured.
func (p Params) Get(name string, def float64) float64 {
	if v, ok := p[name]; ok {
		return v
	}
	return def
}

// Renderer produces one notation of a template from captured parameters.
// Renderers are pure.
type Renderer func(Params) string

// Template is a recognizable equation shape with its two renderings.
type Template struct {
	Kind       Kind
	Derivation string

	recognizers []*regexp.Regexp

	// source renders Standard-Model form, target renders GIFT form.
	// A nil renderer makes the template one-directional.
	source Renderer
	target Renderer
}

// Name returns the template's unique name.
func (t Template) Name() string { return t.Kind.String() }

// Bidirectional reports whether both renderings are defined.
func (t Template) Bidirectional() bool { return t.source != nil && t.target != nil }

// Recognize matches the canonical form of an expression against the
// template's recognizers in order. Named groups of the first matching
// recognizer that parse as numbers are returned as parameters.
func (t Template) Recognize(canonical string) (Params, bool) {
	for _, re := range t.recognizers {
		m := re.FindStringSubmatch(canonical)
		if m == nil {
			continue
		}
		params := Params{}
		for i, name := range re.SubexpNames() {
			if name == "" || m[i] == "" {
				continue
			}
			if v, err := strconv.ParseFloat(m[i], 64); err == nil {
				params[name] = v
			}
		}
		return params, true
	}
	return nil, false
}

// Render returns the rendering a translation in direction d produces:
// GIFT form for SourceToTarget, Standard-Model form for TargetToSource.
func (t Template) Render(d types.Direction, p Params) (string, bool) {
	r := t.target
	if d == types.TargetToSource {
		r = t.source
	}
	if r == nil {
		return "", false
	}
	return r(p), true
}

// recognizers compiles case-insensitive patterns over canonical notation.
func recognizers(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile("(?i)" + p)
	}
	return out
}

func static(s string) Renderer {
	return func(Params) string { return s }
}
