// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"α = e^2 / (4π ε₀ ℏ c)", "α=e^2/(4πε_0ℏc)"},
		{"sin²θ_W = g'²/(g²+g'²)", "sin^2θ_W=g'^2/(g^2+g'^2)"},
		{"α⁻¹ = ζ₃ × 114", "α^-1=ζ_3*114"},
		{"E = m·c**2", "E=m*c^2"},
		{"α_s = sqrt(2)/12", "α_s=√(2)/12"},
		{"x ÷ y − z", "x/y-z"},
		{"g′²", "g'^2"},
		{"10¹²", "10^12"},
		{"H₁₀", "H_10"},
		{"h = hbar", "h=ℏ"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Canonical(tt.in))
		})
	}
}

func TestReplacerLongestMatchFirst(t *testing.T) {
	r := NewReplacer([]Replacement{
		{From: "α", To: "α_gift"},
		{From: "α_s", To: "α_s_gift"},
	})
	assert.Equal(t, "α_gift + α_s_gift", r.Replace("α + α_s"))
}

func TestReplacerWholeTokens(t *testing.T) {
	r := NewReplacer([]Replacement{
		{From: "k", To: "K"},
		{From: "τ", To: "T"},
		{From: "δ", To: "D"},
	})

	tests := []struct {
		name, in, want string
	}{
		{"standalone", "k * 2", "K * 2"},
		{"inside identifier", "speak = 2", "speak = 2"},
		{"unit suffix", "5 kg", "5 kg"},
		{"after digit", "2k", "2K"},
		{"subscripted lepton mass", "m_τ", "m_τ"},
		{"greek juxtaposition", "kτ", "KT"},
		{"underscore suffix", "δ_CP + δ", "δ_CP + D"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Replace(tt.in))
		})
	}
}

func TestReplacerSinglePass(t *testing.T) {
	r := NewReplacer([]Replacement{{From: "a", To: "a a"}})
	once := r.Replace("a")
	assert.Equal(t, "a a", once)
}

func TestReplacerFind(t *testing.T) {
	r := NewReplacer([]Replacement{
		{From: "ξ", To: "x"},
		{From: "τ", To: "t"},
		{From: "ζ₃", To: "z"},
	})
	assert.Equal(t, []string{"τ", "ξ"}, r.Find("τ × ξ × τ"))
	assert.Empty(t, r.Find("ζ₂ + 1"))
	assert.True(t, r.Contains("(ζ₃/ξ)"))
}
