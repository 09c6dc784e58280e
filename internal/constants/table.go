// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package constants holds the fixed table of GIFT geometric parameters,
// mathematical constants, physical constants and unit conversions.
// The table is built once and is read-only afterwards.
package constants

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mathext"

	"github.com/pdiddy/gift-translator/internal/notation"
	"github.com/pdiddy/gift-translator/pkg/types"
)

// EulerGamma is the Euler–Mascheroni constant at the precision the GIFT
// derivations use.
const EulerGamma = 0.5772156649

// Geometric and derived parameter values.
var (
	Xi     = 5 * math.Pi / 16
	Tau    = 8 * math.Pow(EulerGamma, 5*math.Pi/12)
	Beta0  = math.Pi / 8
	Delta  = 2 * math.Pi / 25
	Zeta2  = mathext.Zeta(2, 1)
	Zeta3  = mathext.Zeta(3, 1)
	Phi    = (1 + math.Sqrt(5)) / 2
	K      = 27 - EulerGamma + 1.0/24
	FAlpha = 99 - 0.001
	FBeta  = 99 + 0.734
)

// SpeedOfLight is c in m/s.
const SpeedOfLight = 299792458.0

// entry is a table row plus the alternative spellings recognized in
// expressions (e.g. "ζ(3)" for "ζ₃").
type entry struct {
	types.Constant
	variants []string
}

func builtin() []entry {
	return []entry{
		// Geometric parameters from the E₈×E₈ reduction.
		{Constant: types.Constant{Symbol: "ξ", Name: "xi", Value: Xi, Expression: "5π/16",
			Description: "Projection efficiency", Category: types.CategoryGeometric}},
		{Constant: types.Constant{Symbol: "τ", Name: "tau", Value: Tau, Expression: "8γ^(5π/12)",
			Description: "Mass hierarchy generator", Category: types.CategoryGeometric}},
		{Constant: types.Constant{Symbol: "β₀", Name: "beta_0", Value: Beta0, Expression: "π/8",
			Description: "Dimensional anomaly parameter", Category: types.CategoryGeometric},
			variants: []string{"β_0"}},
		{Constant: types.Constant{Symbol: "δ", Name: "delta", Value: Delta, Expression: "2π/25",
			Description: "Koide relation parameter", Category: types.CategoryGeometric}},

		{Constant: types.Constant{Symbol: "ζ₂", Name: "zeta_2", Value: Zeta2, Expression: "π²/6",
			Description: "Basel constant", Category: types.CategoryMathematical},
			variants: []string{"ζ(2)", "ζ_2"}},
		{Constant: types.Constant{Symbol: "ζ₃", Name: "zeta_3", Value: Zeta3, Expression: "ζ(3)",
			Description: "Apéry's constant", Category: types.CategoryMathematical},
			variants: []string{"ζ(3)", "ζ_3"}},
		{Constant: types.Constant{Symbol: "γ", Name: "gamma", Value: EulerGamma,
			Description: "Euler-Mascheroni constant", Category: types.CategoryMathematical}},
		{Constant: types.Constant{Symbol: "φ", Name: "phi", Value: Phi, Expression: "(1+√5)/2",
			Description: "Golden ratio", Category: types.CategoryMathematical}},

		{Constant: types.Constant{Symbol: "k", Name: "k", Value: K, Expression: "27 - γ + 1/24",
			Description: "Family factor", Category: types.CategoryDerived}},
		{Constant: types.Constant{Symbol: "F_α", Name: "F_alpha", Value: FAlpha, Expression: "99 - 0.001",
			Description: "Single-sector correction", Category: types.CategoryDerived}},
		{Constant: types.Constant{Symbol: "F_β", Name: "F_beta", Value: FBeta, Expression: "99 + 0.734",
			Description: "Multi-sector correction", Category: types.CategoryDerived}},

		{Constant: types.Constant{Symbol: "c", Name: "c", Value: SpeedOfLight,
			Description: "Speed of light (m/s)", Category: types.CategoryPhysical}},
		{Constant: types.Constant{Symbol: "ℏ", Name: "hbar", Value: 1.054571817e-34,
			Description: "Reduced Planck constant (J·s)", Category: types.CategoryPhysical}},
		{Constant: types.Constant{Symbol: "e", Name: "e_charge", Value: 1.602176634e-19,
			Description: "Elementary charge (C)", Category: types.CategoryPhysical}},
		{Constant: types.Constant{Symbol: "ε₀", Name: "epsilon_0", Value: 8.8541878128e-12,
			Description: "Vacuum permittivity (F/m)", Category: types.CategoryPhysical}},
		{Constant: types.Constant{Symbol: "μ₀", Name: "mu_0", Value: 4 * math.Pi * 1e-7, Expression: "4π × 10⁻⁷",
			Description: "Vacuum permeability (H/m)", Category: types.CategoryPhysical}},
		{Constant: types.Constant{Symbol: "G", Name: "G", Value: 6.67430e-11,
			Description: "Gravitational constant (m³/kg/s²)", Category: types.CategoryPhysical}},
		{Constant: types.Constant{Symbol: "m_e", Name: "m_e", Value: 9.1093837015e-31,
			Description: "Electron mass (kg)", Category: types.CategoryPhysical}},
		{Constant: types.Constant{Symbol: "m_p", Name: "m_p", Value: 1.67262192369e-27,
			Description: "Proton mass (kg)", Category: types.CategoryPhysical}},
		{Constant: types.Constant{Symbol: "α₀", Name: "alpha_0", Value: 1 / 137.035999139, Expression: "1/137.035999139",
			Description: "Fine structure constant (experimental)", Category: types.CategoryPhysical}},
		{Constant: types.Constant{Symbol: "M_Z", Name: "M_Z", Value: 91.1876e9,
			Description: "Z boson mass (eV)", Category: types.CategoryPhysical}},
		{Constant: types.Constant{Symbol: "M_W", Name: "M_W", Value: 80.379e9,
			Description: "W boson mass (eV)", Category: types.CategoryPhysical}},

		{Constant: types.Constant{Symbol: "eV→J", Name: "eV_to_J", Value: 1.602176634e-19,
			Description: "Electronvolt to joule", Category: types.CategoryUnit}},
		{Constant: types.Constant{Symbol: "MeV→J", Name: "MeV_to_J", Value: 1.602176634e-13,
			Description: "Megaelectronvolt to joule", Category: types.CategoryUnit}},
		{Constant: types.Constant{Symbol: "GeV→J", Name: "GeV_to_J", Value: 1.602176634e-10,
			Description: "Gigaelectronvolt to joule", Category: types.CategoryUnit}},
		{Constant: types.Constant{Symbol: "km/s/Mpc→1/s", Name: "km_s_Mpc_to_s", Value: 3.240779289e-20,
			Description: "Hubble unit to inverse seconds", Category: types.CategoryUnit}},
	}
}

// Table is the immutable constant table.
type Table struct {
	entries []entry
	index   map[string]int

	// spellings maps every substitutable spelling to its constant.
	spellings map[string]int
	finder    *notation.Replacer
}

// New builds the constant table.
func New() *Table {
	entries := builtin()
	t := &Table{
		entries:   entries,
		index:     make(map[string]int, 2*len(entries)),
		spellings: make(map[string]int),
	}

	var finds []notation.Replacement
	for i, e := range entries {
		t.index[e.Symbol] = i
		t.index[e.Name] = i
		for _, v := range e.variants {
			t.index[v] = i
		}
		if !e.Category.Substitutable() {
			continue
		}
		for _, s := range append([]string{e.Symbol}, e.variants...) {
			t.spellings[s] = i
			finds = append(finds, notation.Replacement{From: s})
		}
	}
	t.finder = notation.NewReplacer(finds)
	return t
}

// Lookup returns the constant with the given symbol, ASCII name or
// alternative spelling.
func (t *Table) Lookup(symbol string) (types.Constant, bool) {
	i, ok := t.index[strings.TrimSpace(symbol)]
	if !ok {
		return types.Constant{}, false
	}
	return t.entries[i].Constant, true
}

// MustLookup is Lookup for symbols known to exist. It panics otherwise.
func (t *Table) MustLookup(symbol string) types.Constant {
	c, ok := t.Lookup(symbol)
	if !ok {
		panic(fmt.Sprintf("constants: unknown symbol %q", symbol))
	}
	return c
}

// List returns all constants in declaration order.
func (t *Table) List() []types.Constant {
	out := make([]types.Constant, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Constant
	}
	return out
}

// ByCategory returns the constants of one category in declaration order.
func (t *Table) ByCategory(cat types.ConstantCategory) []types.Constant {
	var out []types.Constant
	for _, e := range t.entries {
		if e.Category == cat {
			out = append(out, e.Constant)
		}
	}
	return out
}

// Substitutable returns the constants that the evaluation stage replaces
// with numeric values.
func (t *Table) Substitutable() []types.Constant {
	var out []types.Constant
	for _, e := range t.entries {
		if e.Category.Substitutable() {
			out = append(out, e.Constant)
		}
	}
	return out
}

// Find returns the substitutable constants that occur in expr as whole
// tokens, in order of first occurrence.
func (t *Table) Find(expr string) []types.Constant {
	var out []types.Constant
	seen := make(map[int]bool)
	for _, s := range t.finder.Find(expr) {
		i := t.spellings[s]
		if seen[i] {
			continue
		}
		seen[i] = true
		out = append(out, t.entries[i].Constant)
	}
	return out
}

// Substitute replaces every whole-token occurrence of a substitutable
// constant with render(constant).
func (t *Table) Substitute(expr string, render func(types.Constant) string) string {
	table := make([]notation.Replacement, 0, len(t.spellings))
	for s, i := range t.spellings {
		table = append(table, notation.Replacement{From: s, To: render(t.entries[i].Constant)})
	}
	return notation.NewReplacer(table).Replace(expr)
}
