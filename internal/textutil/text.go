// Package textutil holds the pure text helpers shared by the parsers and scorers.
package textutil

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	tabColumns    = regexp.MustCompile(`\S\t+\S`)
	spaceColumns  = regexp.MustCompile(`\S {3,}\S`)
	dotRun        = regexp.MustCompile(`\.{2,}`)
)

// NormalizeWhitespace collapses every whitespace run to a single space and trims the result.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// Normalize lowercases s and collapses its whitespace.
func Normalize(s string) string {
	return strings.ToLower(NormalizeWhitespace(s))
}

// Lines splits s on any newline convention.
func Lines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(s, "\n")
}

// Tokenize lowercases s and splits it into word tokens.
// '+', '#' and '.' count as word characters so c++, c# and node.js survive.
// A run of two or more dots separates words; leading and trailing dots are dropped.
func Tokenize(s string) []string {
	var tokens []string
	var word strings.Builder
	flush := func() {
		for _, part := range dotRun.Split(word.String(), -1) {
			if w := strings.Trim(part, "."); w != "" {
				tokens = append(tokens, w)
			}
		}
		word.Reset()
	}
	for _, r := range strings.ToLower(s) {
		if isWordRune(r) {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.'
}

// CountFrequencies counts occurrences per token.
func CountFrequencies(tokens []string) map[string]int {
	freq := make(map[string]int, len(tokens))
	for _, t := range tokens {
		freq[t]++
	}
	return freq
}

// IsTableLine reports whether a line looks like a row of a table or a column layout.
func IsTableLine(line string) bool {
	if strings.Count(line, "|") >= 2 {
		return true
	}
	if tabColumns.MatchString(line) {
		return true
	}
	return spaceColumns.MatchString(strings.TrimSpace(line))
}

// DetectTableStructure is true when at least two lines look like table rows.
func DetectTableStructure(lines []string) bool {
	count := 0
	for _, line := range lines {
		if IsTableLine(line) {
			count++
			if count >= 2 {
				return true
			}
		}
	}
	return false
}
