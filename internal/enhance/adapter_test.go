package enhance

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, s string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(s), &v))
	return v
}

func TestSuggestionsSchema(t *testing.T) {
	s := SuggestionsSchema()
	require.True(t, s.IsStructuredObject())

	assert.NoError(t, s.Validate(decode(t, `{"suggestions": [{"text": "a", "actionable": true, "category": "skills"}]}`)))
	assert.NoError(t, s.Validate(decode(t, `{"suggestions": []}`)))
	assert.Error(t, s.Validate(decode(t, `{}`)))
	assert.Error(t, s.Validate(decode(t, `{"suggestions": [{"actionable": true}]}`)))
	assert.Error(t, s.Validate(decode(t, `{"suggestions": [{"text": 3}]}`)))
}

func TestAdaptSuggestions(t *testing.T) {
	payload := decode(t, `{"suggestions": [
		{"text": "Add Kubernetes to your skills section", "actionable": true},
		{"text": "You cannot change your degree", "actionable": false},
		{"text": "  "},
		{"text": "Quantify the impact of your migration work"},
		{"text": "add kubernetes to your skills section"},
		"not an object"
	]}`)

	got, err := AdaptSuggestions(payload)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Add Kubernetes to your skills section",
		"Quantify the impact of your migration work",
	}, got)
}

func TestAdaptSuggestions_Empty(t *testing.T) {
	tests := map[string]any{
		"no entries":      decode(t, `{"suggestions": []}`),
		"none actionable": decode(t, `{"suggestions": [{"text": "x", "actionable": false}]}`),
		"not an object":   []any{},
		"missing list":    map[string]any{},
	}
	for name, payload := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := AdaptSuggestions(payload)
			var adaptErr *AdapterError
			require.ErrorAs(t, err, &adaptErr)
		})
	}
}
