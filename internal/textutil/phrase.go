package textutil

// ContainsPhrase reports whether phrase occurs as a contiguous run inside tokens.
func ContainsPhrase(tokens, phrase []string) bool {
	return indexPhrase(tokens, phrase, 0) >= 0
}

// CountPhrase counts non-overlapping occurrences of phrase inside tokens.
func CountPhrase(tokens, phrase []string) int {
	if len(phrase) == 0 {
		return 0
	}
	count := 0
	for i := indexPhrase(tokens, phrase, 0); i >= 0; i = indexPhrase(tokens, phrase, i+len(phrase)) {
		count++
	}
	return count
}

func indexPhrase(tokens, phrase []string, from int) int {
	if len(phrase) == 0 {
		return -1
	}
outer:
	for i := from; i+len(phrase) <= len(tokens); i++ {
		for j, p := range phrase {
			if tokens[i+j] != p {
				continue outer
			}
		}
		return i
	}
	return -1
}

// Dedupe keeps the first occurrence of each value, comparing case-insensitively
// through fold.
func Dedupe(values []string, fold func(string) string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		key := fold(v)
		if v == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, v)
	}
	return out
}
