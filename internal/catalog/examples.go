// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import "github.com/pdiddy/gift-translator/pkg/types"

// builtinExamples lists the canonical Lagrangians shown in help and
// picker lists, each written in both notations.
func builtinExamples() []types.Example {
	return []types.Example{
		{
			Name: "maxwell",
			SM:   "-(1/4) F_μν F^μν - A_μ J^μ",
			GIFT: "-(ζ(3) × 114) F_μν F^μν - A_μ J^μ",
		},
		{
			Name: "qcd",
			SM:   "-(1/4) F^a_μν F^{aμν} + ψ̄(iγ^μ D_μ - m)ψ",
			GIFT: "-(√2/12) F^a_μν F^{aμν} + ψ̄(iγ^μ D_μ - m)ψ",
		},
		{
			Name: "electroweak",
			SM:   "-(1/4) W^i_μν W^{iμν} - (1/4) B_μν B^μν + |D_μ Φ|² - V(Φ)",
			GIFT: "-(ζ(3) × 114) W^i_μν W^{iμν} - (ζ(3) × 114) B_μν B^μν + |D_μ Φ|² - V(Φ)",
		},
		{
			Name: "higgs",
			SM:   "|D_μ H|² - μ²|H|² - λ|H|⁴",
			GIFT: "|D_μ H|² - μ²|H|² - (√17/32)|H|⁴",
		},
		{
			Name: "yukawa",
			SM:   "-Y_u ū_L H u_R - Y_d d̄_L H* d_R - Y_e ē_L H* e_R + h.c.",
			GIFT: "-(8γ^(5π/12)) ū_L H u_R - (8γ^(5π/12)) d̄_L H* d_R - (8γ^(5π/12)) ē_L H* e_R + h.c.",
		},
		{
			Name: "kinetic",
			SM:   "iψ̄_L γ^μ D_μ ψ_L + iψ̄_R γ^μ D_μ ψ_R",
			GIFT: "iψ̄_L γ^μ D_μ ψ_L + iψ̄_R γ^μ D_μ ψ_R",
		},
		{
			Name: "dirac",
			SM:   "ψ̄(iγ^μ ∂_μ - m)ψ",
			GIFT: "ψ̄(iγ^μ ∂_μ - m)ψ",
		},
		{
			Name: "yang_mills",
			SM:   "-(1/4) F^A_μν F^{Aμν} + ψ̄(iγ^μ D_μ - m)ψ",
			GIFT: "-(ζ(3) × 114) F^A_μν F^{Aμν} + ψ̄(iγ^μ D_μ - m)ψ",
		},
		{
			Name: "scalar",
			SM:   "(1/2) ∂_μ φ ∂^μ φ - (1/2) m² φ² - (λ/4!) φ⁴",
			GIFT: "(1/2) ∂_μ φ ∂^μ φ - (1/2) m² φ² - (ζ(3) × 114/4!) φ⁴",
		},
		{
			Name: "proca",
			SM:   "-(1/4) F_μν F^μν + (1/2) m² A_μ A^μ",
			GIFT: "-(ζ(3) × 114) F_μν F^μν + (1/2) m² A_μ A^μ",
		},
	}
}
