// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package notation normalizes the surface variants of physics notation and
// performs whole-token symbol replacement. It is shared by the pattern
// catalog, the constant table and the symbol rewriter.
package notation

import (
	"strings"
	"unicode"
)

var subscriptDigits = map[rune]rune{
	'₀': '0', '₁': '1', '₂': '2', '₃': '3', '₄': '4',
	'₅': '5', '₆': '6', '₇': '7', '₈': '8', '₉': '9',
}

var superscripts = map[rune]rune{
	'⁰': '0', '¹': '1', '²': '2', '³': '3', '⁴': '4',
	'⁵': '5', '⁶': '6', '⁷': '7', '⁸': '8', '⁹': '9',
	'⁻': '-', '⁺': '+',
}

var runeAliases = map[rune]string{
	'×': "*", '·': "*", '∗': "*", '⋅': "*",
	'÷': "/", '−': "-", '–': "-",
	'′': "'", '’': "'", 'ʹ': "'",
}

var wordAliases = strings.NewReplacer(
	"**", "^",
	"sqrt", "√",
	"hbar", "ℏ",
)

// Canonical rewrites an expression into the compact form the recognizers
// match against: whitespace is removed, Unicode subscripts become "_n",
// superscripts become "^n" ("⁻¹" becomes "^-1"), and multiplication,
// division, minus and prime variants collapse to ASCII. Case is preserved;
// recognizers match case-insensitively.
func Canonical(s string) string {
	s = wordAliases.Replace(s)

	var b strings.Builder
	b.Grow(len(s))
	inSub, inSup := false, false
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		if d, ok := subscriptDigits[r]; ok {
			if !inSub {
				b.WriteByte('_')
			}
			b.WriteRune(d)
			inSub, inSup = true, false
			continue
		}
		if d, ok := superscripts[r]; ok {
			if !inSup {
				b.WriteByte('^')
			}
			b.WriteRune(d)
			inSub, inSup = false, true
			continue
		}
		inSub, inSup = false, false
		if alias, ok := runeAliases[r]; ok {
			b.WriteString(alias)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// IsSubscript reports whether r is a Unicode subscript digit.
func IsSubscript(r rune) bool {
	_, ok := subscriptDigits[r]
	return ok
}

// isASCIILetter reports whether r is in [A-Za-z].
func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// leftBoundary reports whether a symbol may start right after prev.
// Digits and Greek letters may precede a symbol (implicit products such as
// "8γ" or "ξτ"); ASCII letters and underscores may not, since they would
// make the symbol part of a longer identifier.
func leftBoundary(prev rune) bool {
	return prev != '_' && !isASCIILetter(prev)
}

// rightBoundary reports whether a symbol may end right before next.
func rightBoundary(next rune) bool {
	switch {
	case next == '_', isASCIILetter(next), next >= '0' && next <= '9':
		return false
	case IsSubscript(next), unicode.Is(unicode.Mn, next):
		return false
	}
	return true
}
