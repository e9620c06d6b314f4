package enhance

import (
	"strings"

	"github.com/jonathan/resume-ats/internal/schemas"
)

// SuggestionsSchema is the response format for suggestion rewriting.
func SuggestionsSchema() *schemas.Schema {
	item := schemas.Object(map[string]*schemas.Schema{
		"text":       schemas.String().Describe("The rewritten suggestion, one concrete action"),
		"actionable": schemas.Boolean().Describe("False when the candidate cannot act on this suggestion"),
		"category":   schemas.String().Describe("Short topic such as skills, keywords, experience, education or formatting"),
	}, "text")
	return schemas.Object(map[string]*schemas.Schema{
		"suggestions": schemas.Array(item).Describe("Rewritten suggestions in priority order"),
	}, "suggestions")
}

// AdaptSuggestions extracts the suggestion texts from a payload validated
// against SuggestionsSchema. Entries marked actionable=false and empty texts
// are dropped; an empty result is an AdapterError.
func AdaptSuggestions(payload any) ([]string, error) {
	root, ok := payload.(map[string]any)
	if !ok {
		return nil, &AdapterError{Message: "payload is not an object"}
	}
	items, _ := root["suggestions"].([]any)

	var out []string
	seen := make(map[string]bool)
	for _, raw := range items {
		item, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if actionable, ok := item["actionable"].(bool); ok && !actionable {
			continue
		}
		text, _ := item["text"].(string)
		text = strings.TrimSpace(text)
		if text == "" || seen[strings.ToLower(text)] {
			continue
		}
		seen[strings.ToLower(text)] = true
		out = append(out, text)
	}

	if len(out) == 0 {
		return nil, &AdapterError{Message: "no actionable suggestions"}
	}
	return out, nil
}
