// Package config provides the partial analysis configuration, its defaults and
// the file loader used by the CLI.
package config

import (
	"time"

	"github.com/jonathan/resume-ats/internal/types"
)

// ATSConfig is the caller-supplied configuration of one analysis.
// Every field is optional; unset values fall back to defaults during Resolve.
type ATSConfig struct {
	Weights          *WeightsInput            `json:"weights,omitempty" mapstructure:"weights"`
	Aliases          map[string]string        `json:"aliases,omitempty" mapstructure:"aliases"`
	Profile          *types.Profile           `json:"profile,omitempty" mapstructure:"profile"`
	ProfileName      string                   `json:"profile_name,omitempty" mapstructure:"profile_name"`
	Profiles         map[string]types.Profile `json:"profiles,omitempty" mapstructure:"profiles" validate:"omitempty,dive"`
	RuleSpecs        []RuleSpec               `json:"rules,omitempty" mapstructure:"rules" validate:"omitempty,dive"`
	Density          *DensityInput            `json:"density,omitempty" mapstructure:"density"`
	SectionPenalties *SectionPenaltiesInput   `json:"section_penalties,omitempty" mapstructure:"section_penalties"`
	PartialMatch     *bool                    `json:"partial_match,omitempty" mapstructure:"partial_match"`
	ReferenceDate    string                   `json:"reference_date,omitempty" mapstructure:"reference_date"`
	LLM              *LLMSettings             `json:"llm,omitempty" mapstructure:"llm"`

	// Rules are predicate rules supplied from code. They run before RuleSpecs.
	Rules []types.Rule `json:"-" mapstructure:"-"`

	// Now overrides ReferenceDate as the anchor for open-ended date ranges.
	Now func() time.Time `json:"-" mapstructure:"-"`
}

// WeightsInput overrides individual component weights
type WeightsInput struct {
	Skills     *float64 `json:"skills,omitempty" mapstructure:"skills" validate:"omitempty,gte=0"`
	Experience *float64 `json:"experience,omitempty" mapstructure:"experience" validate:"omitempty,gte=0"`
	Keywords   *float64 `json:"keywords,omitempty" mapstructure:"keywords" validate:"omitempty,gte=0"`
	Education  *float64 `json:"education,omitempty" mapstructure:"education" validate:"omitempty,gte=0"`
}

// DensityInput overrides the keyword density thresholds
type DensityInput struct {
	Min            *float64 `json:"min,omitempty" mapstructure:"min" validate:"omitempty,gte=0,lte=1"`
	Max            *float64 `json:"max,omitempty" mapstructure:"max" validate:"omitempty,gte=0,lte=1"`
	OverusePenalty *float64 `json:"overuse_penalty,omitempty" mapstructure:"overuse_penalty" validate:"omitempty,gte=0"`
}

// SectionPenaltiesInput overrides the missing-section penalties
type SectionPenaltiesInput struct {
	Summary    *float64 `json:"summary,omitempty" mapstructure:"summary" validate:"omitempty,gte=0"`
	Experience *float64 `json:"experience,omitempty" mapstructure:"experience" validate:"omitempty,gte=0"`
	Skills     *float64 `json:"skills,omitempty" mapstructure:"skills" validate:"omitempty,gte=0"`
	Education  *float64 `json:"education,omitempty" mapstructure:"education" validate:"omitempty,gte=0"`
}

// LLMSettings configures the optional suggestion enhancement.
// Zero values mean "use the default".
type LLMSettings struct {
	MaxCalls         int            `json:"max_calls,omitempty" mapstructure:"max_calls" validate:"gte=0"`
	MaxTokensPerCall int            `json:"max_tokens_per_call,omitempty" mapstructure:"max_tokens_per_call" validate:"gte=0"`
	MaxTotalTokens   int            `json:"max_total_tokens,omitempty" mapstructure:"max_total_tokens" validate:"gte=0"`
	MaxOutputTokens  int            `json:"max_output_tokens,omitempty" mapstructure:"max_output_tokens" validate:"gte=0"`
	TimeoutMS        int            `json:"timeout_ms,omitempty" mapstructure:"timeout_ms" validate:"gte=0"`
	DrainGraceMS     int            `json:"drain_grace_ms,omitempty" mapstructure:"drain_grace_ms" validate:"gte=0"`
	Models           ModelSettings  `json:"models,omitempty" mapstructure:"models"`
	Features         FeatureToggles `json:"features,omitempty" mapstructure:"features"`
}

// ModelSettings names the model used per enhancement feature
type ModelSettings struct {
	Suggestions string `json:"suggestions,omitempty" mapstructure:"suggestions"`
}

// FeatureToggles switches enhancement features on or off. Nil means enabled.
type FeatureToggles struct {
	Suggestions *bool `json:"suggestions,omitempty" mapstructure:"suggestions"`
}

// SuggestionsEnabled reports whether suggestion rewriting is switched on.
func (f FeatureToggles) SuggestionsEnabled() bool {
	return f.Suggestions == nil || *f.Suggestions
}

// Default values applied by Resolve
const (
	DefaultSkillsWeight     = 0.40
	DefaultExperienceWeight = 0.30
	DefaultKeywordsWeight   = 0.20
	DefaultEducationWeight  = 0.10

	DefaultMinDensity     = 0.01
	DefaultMaxDensity     = 0.05
	DefaultOverusePenalty = 5.0

	DefaultSummaryPenalty    = 4.0
	DefaultExperiencePenalty = 10.0
	DefaultSkillsPenalty     = 8.0
	DefaultEducationPenalty  = 6.0
)

// DefaultWeights returns the built-in component weights.
func DefaultWeights() types.Weights {
	return types.Weights{
		Skills:     DefaultSkillsWeight,
		Experience: DefaultExperienceWeight,
		Keywords:   DefaultKeywordsWeight,
		Education:  DefaultEducationWeight,
	}
}

// Float returns a pointer to v, for building partial configs in code.
func Float(v float64) *float64 { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }
