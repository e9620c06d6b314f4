package types

import "time"

// Weights are the per-component multipliers of the composite score
type Weights struct {
	Skills     float64 `json:"skills"`
	Experience float64 `json:"experience"`
	Keywords   float64 `json:"keywords"`
	Education  float64 `json:"education"`
}

// Sum returns the total of all four weights.
func (w Weights) Sum() float64 {
	return w.Skills + w.Experience + w.Keywords + w.Education
}

// DensityThresholds bound acceptable keyword density in a resume
type DensityThresholds struct {
	Min            float64 `json:"min"`
	Max            float64 `json:"max"`
	OverusePenalty float64 `json:"overuse_penalty"`
}

// SectionPenalties are the points deducted per missing required section
type SectionPenalties struct {
	Summary    float64 `json:"summary"`
	Experience float64 `json:"experience"`
	Skills     float64 `json:"skills"`
	Education  float64 `json:"education"`
}

// For returns the penalty for a section tag.
func (p SectionPenalties) For(section string) float64 {
	switch section {
	case SectionSummary:
		return p.Summary
	case SectionExperience:
		return p.Experience
	case SectionSkills:
		return p.Skills
	case SectionEducation:
		return p.Education
	default:
		return 0
	}
}

// Profile is a named bundle of requirements that augments a job description
type Profile struct {
	Name               string   `json:"name" mapstructure:"name"`
	MandatorySkills    []string `json:"mandatory_skills" mapstructure:"mandatory_skills"`
	OptionalSkills     []string `json:"optional_skills" mapstructure:"optional_skills"`
	MinExperienceYears *float64 `json:"min_experience_years,omitempty" mapstructure:"min_experience_years" validate:"omitempty,gte=0"`
}

// ResolvedATSConfig is the fully defaulted configuration of one analysis
type ResolvedATSConfig struct {
	Weights          Weights
	Aliases          map[string]string
	Profile          *Profile
	Rules            []Rule
	Density          DensityThresholds
	SectionPenalties SectionPenalties
	PartialMatch     bool
	Now              func() time.Time

	// Warnings collects problems found while resolving, such as an unknown profile name.
	Warnings []string
}
