// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package constants

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/gift-translator/pkg/types"
)

func TestValues(t *testing.T) {
	tests := []struct {
		symbol string
		want   float64
		tol    float64
	}{
		{"ξ", 0.981748, 1e-6},
		{"τ", 3.896568, 1e-6},
		{"β₀", 0.392699, 1e-6},
		{"δ", 0.251327, 1e-6},
		{"ζ₂", math.Pi * math.Pi / 6, 1e-12},
		{"ζ₃", 1.2020569031595942, 1e-12},
		{"γ", 0.5772156649, 0},
		{"φ", 1.618034, 1e-6},
		{"k", 26.464451, 1e-6},
		{"F_α", 98.999, 1e-9},
		{"F_β", 99.734, 1e-9},
		{"c", 299792458, 0},
	}
	table := New()
	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			c, ok := table.Lookup(tt.symbol)
			require.True(t, ok)
			assert.InDelta(t, tt.want, c.Value, tt.tol)
		})
	}
}

func TestLookupAliases(t *testing.T) {
	table := New()
	for _, alias := range []string{"zeta_3", "ζ(3)", "ζ_3", " ζ₃ "} {
		c, ok := table.Lookup(alias)
		require.True(t, ok, alias)
		assert.Equal(t, "ζ₃", c.Symbol)
	}

	_, ok := table.Lookup("not-a-constant")
	assert.False(t, ok)
}

func TestMustLookupPanicsOnUnknown(t *testing.T) {
	assert.Panics(t, func() { New().MustLookup("ω") })
}

func TestListOrderAndUniqueness(t *testing.T) {
	list := New().List()
	require.NotEmpty(t, list)
	assert.Equal(t, "ξ", list[0].Symbol)

	seen := map[string]bool{}
	for _, c := range list {
		assert.False(t, seen[c.Symbol], "duplicate symbol %s", c.Symbol)
		seen[c.Symbol] = true
		assert.NotEmpty(t, c.Description)
		assert.False(t, math.IsNaN(c.Value) || math.IsInf(c.Value, 0), c.Symbol)
	}
}

func TestListReturnsCopy(t *testing.T) {
	table := New()
	list := table.List()
	list[0].Value = -1

	c, _ := table.Lookup("ξ")
	assert.InDelta(t, Xi, c.Value, 0)
}

func TestByCategory(t *testing.T) {
	table := New()
	assert.Len(t, table.ByCategory(types.CategoryGeometric), 4)
	assert.Len(t, table.ByCategory(types.CategoryMathematical), 4)
	assert.Len(t, table.ByCategory(types.CategoryDerived), 3)
	assert.Len(t, table.ByCategory(types.CategoryUnit), 4)
	assert.Len(t, table.Substitutable(), 11)
}

func TestFind(t *testing.T) {
	table := New()

	tests := []struct {
		name string
		expr string
		want []string
	}{
		{"product", "ξ × τ", []string{"ξ", "τ"}},
		{"variant spelling", "ζ(3) × 114", []string{"ζ₃"}},
		{"subscript symbol", "67.36 × (ζ₃/ξ)^β₀", []string{"ζ₃", "ξ", "β₀"}},
		{"physical constants ignored", "E = m c^2", nil},
		{"identifier containing k", "speak = 2 + 3", nil},
		{"tau lepton mass", "m_τ + m_μ", nil},
		{"family factor", "Λ_QCD = k × 8.38", []string{"k"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, c := range table.Find(tt.expr) {
				got = append(got, c.Symbol)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSubstitute(t *testing.T) {
	table := New()
	got := table.Substitute("ξ × τ + ζ(3)", func(c types.Constant) string {
		return fmt.Sprintf("(%.6f)", c.Value)
	})
	assert.Equal(t, "(0.981748) × (3.896568) + (1.202057)", got)
}
