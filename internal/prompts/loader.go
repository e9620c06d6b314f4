// Package prompts holds the enhancement prompt set embedded in the binary.
package prompts

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

// Prompt keys in enhance.json
const (
	SuggestionsSystem = "suggestions-system"
	SuggestionsUser   = "suggestions-user"
	JSONOnly          = "json-only"
)

//go:embed enhance.json
var enhanceJSON []byte

// load parses the embedded set once per process.
var load = sync.OnceValues(func() (map[string]string, error) {
	return parse(enhanceJSON)
})

func parse(data []byte) (map[string]string, error) {
	var set map[string]string
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to parse prompt set: %w", err)
	}
	return set, nil
}

// Get returns the prompt stored under key.
func Get(key string) (string, error) {
	set, err := load()
	if err != nil {
		return "", err
	}
	prompt, ok := set[key]
	if !ok {
		return "", fmt.Errorf("prompt key %q not found", key)
	}
	return prompt, nil
}

// MustGet is Get for the keys declared in this package. It panics when the key is missing.
func MustGet(key string) string {
	prompt, err := Get(key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return prompt
}

// Render fills the prompt under key and fails if a placeholder is left unfilled.
func Render(key string, data map[string]string) (string, error) {
	template, err := Get(key)
	if err != nil {
		return "", err
	}
	out := Format(template, data)
	if unfilled := placeholders(template, data); len(unfilled) > 0 {
		return "", fmt.Errorf("prompt %q is missing values for %s", key, strings.Join(unfilled, ", "))
	}
	return out, nil
}

// Format replaces {{.Key}} placeholders with values from data in a single pass,
// so substituted values are never expanded again. Unknown placeholders stay.
func Format(template string, data map[string]string) string {
	pairs := make([]string, 0, len(data)*2)
	for key, value := range data {
		pairs = append(pairs, "{{."+key+"}}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// placeholders lists the {{.Key}} names in template that data does not cover, in order.
func placeholders(template string, data map[string]string) []string {
	var missing []string
	rest := template
	for {
		start := strings.Index(rest, "{{.")
		if start < 0 {
			return missing
		}
		end := strings.Index(rest[start:], "}}")
		if end < 0 {
			return missing
		}
		name := rest[start+3 : start+end]
		if _, ok := data[name]; !ok {
			missing = append(missing, name)
		}
		rest = rest[start+end+2:]
	}
}
