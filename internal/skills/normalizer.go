// Package skills canonicalizes skill names through an injected alias table.
package skills

import (
	"strings"

	"github.com/jonathan/resume-ats/internal/textutil"
)

// Normalizer maps skill variants to canonical names. It is immutable once built
// and safe to share between concurrent analyses.
type Normalizer struct {
	aliases    map[string]string
	vocabulary map[string]bool
}

// NewNormalizer builds a Normalizer from an alias table (variant -> canonical).
// Extra skills, such as the skills of a profile, are added to the known vocabulary.
func NewNormalizer(aliases map[string]string, extra ...string) *Normalizer {
	n := &Normalizer{
		aliases:    make(map[string]string, len(aliases)),
		vocabulary: DefaultVocabulary(),
	}
	for variant, canonical := range aliases {
		key := clean(variant)
		value := clean(canonical)
		if key == "" || value == "" {
			continue
		}
		n.aliases[key] = value
		n.vocabulary[value] = true
	}
	for _, s := range extra {
		if c := n.Canonical(s); c != "" {
			n.vocabulary[c] = true
		}
	}
	return n
}

// Canonical returns the canonical lowercase form of a skill token, or "" when
// nothing is left after cleanup.
func (n *Normalizer) Canonical(token string) string {
	c := clean(token)
	if c == "" {
		return ""
	}
	if canonical, ok := n.aliases[c]; ok {
		return canonical
	}
	return c
}

// Known reports whether the canonical form of token is a recognized skill.
func (n *Normalizer) Known(token string) bool {
	c := n.Canonical(token)
	return c != "" && n.vocabulary[c]
}

// CanonicalList canonicalizes every item and drops empties and duplicates, keeping first-seen order.
func (n *Normalizer) CanonicalList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, n.Canonical(item))
	}
	return textutil.Dedupe(out, strings.ToLower)
}

const (
	leadingJunk  = "-*•·▪◦>\"'([{ \t"
	trailingJunk = ".,;:!?\"')]} \t"
)

func clean(s string) string {
	s = strings.TrimLeft(s, leadingJunk)
	s = strings.TrimRight(s, trailingJunk)
	return textutil.Normalize(s)
}
