package textutil

// stopWords filters common English words and job-posting filler that add noise to keyword matching.
var stopWords = map[string]bool{
	"a": true, "an": true, "and": true, "the": true, "for": true, "with": true,
	"you": true, "are": true, "have": true, "will": true, "this": true, "that": true,
	"from": true, "our": true, "your": true, "their": true, "they": true, "of": true,
	"to": true, "in": true, "on": true, "at": true, "by": true, "or": true, "as": true,
	"is": true, "be": true, "it": true, "we": true, "us": true, "i": true, "my": true,
	"me": true, "work": true, "team": true, "role": true, "job": true, "join": true,
	"about": true, "which": true, "what": true, "who": true, "how": true, "can": true,
	"not": true, "but": true, "all": true, "also": true, "more": true, "than": true,
	"into": true, "has": true, "its": true, "was": true, "were": true, "been": true,
	"each": true, "new": true, "use": true, "using": true, "used": true, "well": true,
	"high": true, "good": true, "able": true, "get": true, "set": true, "such": true,
	"must": true, "need": true, "needs": true, "required": true, "require": true,
	"requires": true, "requirements": true, "requirement": true, "preferred": true,
	"plus": true, "nice": true, "bonus": true, "years": true, "year": true, "yrs": true,
	"experience": true, "strong": true, "knowledge": true, "ability": true, "etc": true,
	"degree": true, "including": true, "other": true, "any": true, "if": true,
	"present": true, "current": true,
}

// IsStopWord reports whether a lowercase token carries no keyword signal.
func IsStopWord(token string) bool {
	return stopWords[token]
}

// KeywordTokens drops stop words, single characters and pure numbers from tokens,
// keeping the first occurrence of each remaining token.
func KeywordTokens(tokens []string) []string {
	seen := make(map[string]bool, len(tokens))
	var out []string
	for _, t := range tokens {
		if len(t) < 2 || stopWords[t] || isNumeric(t) || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

func isNumeric(t string) bool {
	for _, r := range t {
		if (r < '0' || r > '9') && r != '.' && r != '+' {
			return false
		}
	}
	return true
}
