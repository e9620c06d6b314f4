package enhance

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-ats/internal/config"
	"github.com/jonathan/resume-ats/internal/llm"
)

// Defaults for unset enhancement settings
const (
	DefaultMaxCalls         = 3
	DefaultMaxTokensPerCall = 4000
	DefaultMaxTotalTokens   = 12000
	DefaultMaxOutputTokens  = 1024
	DefaultTimeout          = 30 * time.Second
	DefaultDrainGrace       = 250 * time.Millisecond
)

// Options supplies the provider for an asynchronous analysis. Settings
// override ATSConfig.LLM when both are present.
type Options struct {
	Client   llm.Client
	Settings *config.LLMSettings
}

// Settings are fully defaulted enhancement settings
type Settings struct {
	Limits

	Model           string        `validate:"required"`
	MaxOutputTokens int           `validate:"gt=0"`
	Timeout         time.Duration `validate:"gt=0"`
	DrainGrace      time.Duration `validate:"gte=0"`
	Suggestions     bool
}

var validate = validator.New()

// ResolveSettings fills unset values with defaults and validates the result.
// Negative values are rejected rather than defaulted.
func ResolveSettings(in *config.LLMSettings) (Settings, error) {
	if in == nil {
		in = &config.LLMSettings{}
	}
	s := Settings{
		Limits: Limits{
			MaxCalls:         orDefault(in.MaxCalls, DefaultMaxCalls),
			MaxTokensPerCall: orDefault(in.MaxTokensPerCall, DefaultMaxTokensPerCall),
			MaxTotalTokens:   orDefault(in.MaxTotalTokens, DefaultMaxTotalTokens),
		},
		Model:           in.Models.Suggestions,
		MaxOutputTokens: orDefault(in.MaxOutputTokens, DefaultMaxOutputTokens),
		Timeout:         DefaultTimeout,
		DrainGrace:      DefaultDrainGrace,
		Suggestions:     in.Features.SuggestionsEnabled(),
	}
	if s.Model == "" {
		s.Model = llm.DefaultGeminiConfig().GetModel(llm.TierStandard)
	}
	if in.TimeoutMS != 0 {
		s.Timeout = time.Duration(in.TimeoutMS) * time.Millisecond
	}
	if in.DrainGraceMS != 0 {
		s.DrainGrace = time.Duration(in.DrainGraceMS) * time.Millisecond
	}

	if err := validate.Struct(s); err != nil {
		return s, fmt.Errorf("invalid enhancement settings: %w", err)
	}
	return s, nil
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
