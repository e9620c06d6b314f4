package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_DeclaredKeys(t *testing.T) {
	for _, key := range []string{SuggestionsSystem, SuggestionsUser, JSONOnly} {
		prompt, err := Get(key)
		require.NoError(t, err, key)
		assert.NotEmpty(t, prompt, key)
	}

	prompt, err := Get(SuggestionsSystem)
	require.NoError(t, err)
	assert.Contains(t, prompt, "resume coach")
}

func TestGet_InvalidKey(t *testing.T) {
	_, err := Get("nonexistent-key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMustGet_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("nonexistent-key")
	})
}

func TestParse_Malformed(t *testing.T) {
	_, err := parse([]byte(`{"a": 1}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse prompt set")
}

func TestRender_SuggestionsUser(t *testing.T) {
	prompt, err := Render(SuggestionsUser, map[string]string{
		"Score":       "72",
		"Suggestions": "- Add go",
		"Job":         "job text",
		"Resume":      "resume text",
	})
	require.NoError(t, err)

	assert.Contains(t, prompt, "scored the resume 72 out of 100")
	assert.Contains(t, prompt, "- Add go")
	assert.NotContains(t, prompt, "{{.")
}

func TestRender_MissingValue(t *testing.T) {
	_, err := Render(SuggestionsUser, map[string]string{"Score": "72"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Suggestions, Job, Resume")
}

func TestFormat(t *testing.T) {
	result := Format("Hello {{.Name}}, welcome to {{.Company}}!", map[string]string{
		"Name":    "Alice",
		"Company": "Acme Corp",
	})
	assert.Equal(t, "Hello Alice, welcome to Acme Corp!", result)
}

func TestFormat_ValuesAreNotExpanded(t *testing.T) {
	result := Format("{{.A}} {{.B}}", map[string]string{"A": "{{.B}}", "B": "b"})
	assert.Equal(t, "{{.B}} b", result)
}

func TestFormat_EmptyData(t *testing.T) {
	template := "Hello {{.Name}}"
	assert.Equal(t, template, Format(template, map[string]string{}))
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, []string{"B"}, placeholders("{{.A}} and {{.B}}", map[string]string{"A": "x"}))
	assert.Empty(t, placeholders("no placeholders {{", nil))
}
