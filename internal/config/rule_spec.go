package config

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-ats/internal/types"
)

// Declarative rule conditions
const (
	ConditionMissingSkill    = "missing_skill"
	ConditionMissingKeyword  = "missing_keyword"
	ConditionMissingSection  = "missing_section"
	ConditionComponentBelow  = "component_below"
	ConditionExperienceBelow = "experience_below"
	ConditionOverusedKeyword = "overused_keyword"
)

// RuleSpec is a user rule written in configuration rather than code
type RuleSpec struct {
	ID        string  `json:"id" mapstructure:"id" validate:"required"`
	Penalty   float64 `json:"penalty" mapstructure:"penalty" validate:"gte=0"`
	Warning   string  `json:"warning,omitempty" mapstructure:"warning"`
	Condition string  `json:"condition" mapstructure:"condition" validate:"required,oneof=missing_skill missing_keyword missing_section component_below experience_below overused_keyword"`
	Value     string  `json:"value,omitempty" mapstructure:"value"`
	Threshold float64 `json:"threshold,omitempty" mapstructure:"threshold"`
}

// Compile turns the spec into a predicate rule.
func (s RuleSpec) Compile() (types.Rule, error) {
	if strings.TrimSpace(s.ID) == "" {
		return types.Rule{}, fmt.Errorf("rule id is empty")
	}
	value := strings.ToLower(strings.TrimSpace(s.Value))

	var when func(types.RuleContext) bool
	switch s.Condition {
	case ConditionMissingSkill:
		if value == "" {
			return types.Rule{}, fmt.Errorf("condition %s needs a value", s.Condition)
		}
		when = func(ctx types.RuleContext) bool {
			return ctx.Resume == nil || !containsFold(ctx.Resume.Skills, value)
		}
	case ConditionMissingKeyword:
		if value == "" {
			return types.Rule{}, fmt.Errorf("condition %s needs a value", s.Condition)
		}
		when = func(ctx types.RuleContext) bool {
			return !containsFold(ctx.MatchedKeywords, value)
		}
	case ConditionMissingSection:
		if value == "" {
			return types.Rule{}, fmt.Errorf("condition %s needs a value", s.Condition)
		}
		when = func(ctx types.RuleContext) bool {
			return ctx.Resume == nil || !ctx.Resume.HasSection(value)
		}
	case ConditionComponentBelow:
		component, err := breakdownComponent(value)
		if err != nil {
			return types.Rule{}, err
		}
		threshold := s.Threshold
		when = func(ctx types.RuleContext) bool {
			return component(ctx.Breakdown) < threshold
		}
	case ConditionExperienceBelow:
		threshold := s.Threshold
		when = func(ctx types.RuleContext) bool {
			return ctx.Resume != nil && ctx.Resume.TotalYears < threshold
		}
	case ConditionOverusedKeyword:
		when = func(ctx types.RuleContext) bool {
			if value == "" {
				return len(ctx.OverusedKeywords) > 0
			}
			return containsFold(ctx.OverusedKeywords, value)
		}
	default:
		return types.Rule{}, fmt.Errorf("unknown condition %q", s.Condition)
	}

	return types.Rule{
		ID:      s.ID,
		Penalty: s.Penalty,
		Warning: s.Warning,
		When:    when,
	}, nil
}

func breakdownComponent(name string) (func(types.ATSBreakdown) float64, error) {
	switch name {
	case "skills":
		return func(b types.ATSBreakdown) float64 { return b.Skills }, nil
	case "experience":
		return func(b types.ATSBreakdown) float64 { return b.Experience }, nil
	case "keywords":
		return func(b types.ATSBreakdown) float64 { return b.Keywords }, nil
	case "education":
		return func(b types.ATSBreakdown) float64 { return b.Education }, nil
	default:
		return nil, fmt.Errorf("unknown score component %q", name)
	}
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}
