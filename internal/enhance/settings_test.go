package enhance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-ats/internal/config"
)

func TestResolveSettings_Defaults(t *testing.T) {
	s, err := ResolveSettings(nil)
	require.NoError(t, err)

	assert.Equal(t, Limits{MaxCalls: 3, MaxTokensPerCall: 4000, MaxTotalTokens: 12000}, s.Limits)
	assert.Equal(t, "gemini-2.5-flash", s.Model)
	assert.Equal(t, 1024, s.MaxOutputTokens)
	assert.Equal(t, 30*time.Second, s.Timeout)
	assert.Equal(t, 250*time.Millisecond, s.DrainGrace)
	assert.True(t, s.Suggestions)
}

func TestResolveSettings_Overrides(t *testing.T) {
	s, err := ResolveSettings(&config.LLMSettings{
		MaxCalls:     1,
		TimeoutMS:    1500,
		DrainGraceMS: 5,
		Models:       config.ModelSettings{Suggestions: "gemini-2.5-pro"},
		Features:     config.FeatureToggles{Suggestions: config.Bool(false)},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, s.MaxCalls)
	assert.Equal(t, 4000, s.MaxTokensPerCall)
	assert.Equal(t, 1500*time.Millisecond, s.Timeout)
	assert.Equal(t, 5*time.Millisecond, s.DrainGrace)
	assert.Equal(t, "gemini-2.5-pro", s.Model)
	assert.False(t, s.Suggestions)
}

func TestResolveSettings_RejectsNegative(t *testing.T) {
	_, err := ResolveSettings(&config.LLMSettings{MaxTotalTokens: -1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MaxTotalTokens")

	_, err = ResolveSettings(&config.LLMSettings{TimeoutMS: -5})
	require.Error(t, err)
}

func TestWarning_AllStartWithPrefix(t *testing.T) {
	errs := []error{
		&BudgetError{Message: "m"},
		&SchemaError{Message: "m"},
		&TimeoutError{Timeout: "1s"},
		&TransportError{Cause: assert.AnError},
		&ResponseParseError{Cause: assert.AnError},
		&ValidationError{Cause: assert.AnError},
		&AdapterError{Message: "m"},
		assert.AnError,
	}
	for _, err := range errs {
		assert.Regexp(t, `^AI enhancement`, Warning(err))
	}
}
