// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package notation

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Replacement maps one symbol spelling to its substitute.
type Replacement struct {
	From string
	To   string
}

// Replacer performs whole-token, longest-match-first substitution in a
// single left-to-right pass. Output is never re-scanned, so a replacement
// cannot match its own result. A Replacer is immutable and safe for
// concurrent use.
type Replacer struct {
	table []Replacement
}

// NewReplacer builds a Replacer. Entries with an empty From are dropped;
// for duplicate From spellings the first entry wins.
func NewReplacer(table []Replacement) *Replacer {
	seen := make(map[string]bool, len(table))
	sorted := make([]Replacement, 0, len(table))
	for _, r := range table {
		if r.From == "" || seen[r.From] {
			continue
		}
		seen[r.From] = true
		sorted = append(sorted, r)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return utf8.RuneCountInString(sorted[i].From) > utf8.RuneCountInString(sorted[j].From)
	})
	return &Replacer{table: sorted}
}

// Replace returns s with every whole-token occurrence of a From spelling
// replaced by its To value.
func (r *Replacer) Replace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	r.scan(s, func(match *Replacement, text string) {
		if match != nil {
			b.WriteString(match.To)
			return
		}
		b.WriteString(text)
	})
	return b.String()
}

// Find returns the From spellings that occur in s as whole tokens, in
// order of first occurrence and without duplicates.
func (r *Replacer) Find(s string) []string {
	var found []string
	seen := make(map[string]bool)
	r.scan(s, func(match *Replacement, _ string) {
		if match != nil && !seen[match.From] {
			seen[match.From] = true
			found = append(found, match.From)
		}
	})
	return found
}

// Contains reports whether any From spelling occurs in s.
func (r *Replacer) Contains(s string) bool {
	return len(r.Find(s)) > 0
}

// scan walks s, calling emit with either a matched entry or a run of
// unmatched text (one rune at a time).
func (r *Replacer) scan(s string, emit func(match *Replacement, text string)) {
	prev := rune(-1)
	for i := 0; i < len(s); {
		if prev < 0 || leftBoundary(prev) {
			if m := r.matchAt(s, i); m != nil {
				emit(m, "")
				i += len(m.From)
				prev = -1
				continue
			}
		}
		c, size := utf8.DecodeRuneInString(s[i:])
		emit(nil, s[i:i+size])
		prev = c
		i += size
	}
}

func (r *Replacer) matchAt(s string, i int) *Replacement {
	for k := range r.table {
		from := r.table[k].From
		if !strings.HasPrefix(s[i:], from) {
			continue
		}
		end := i + len(from)
		if end < len(s) {
			next, _ := utf8.DecodeRuneInString(s[end:])
			if !rightBoundary(next) {
				continue
			}
		}
		return &r.table[k]
	}
	return nil
}
