// Package suggestions turns scoring gaps into fixed-template recommendations.
package suggestions

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/resume-ats/internal/scoring"
	"github.com/jonathan/resume-ats/internal/types"
)

// List caps before truncation
const (
	MaxSkills   = 5
	MaxKeywords = 8
	MinVerbs    = 3
)

// Input gathers everything suggestions and warnings are derived from
type Input struct {
	Score  *scoring.Result
	Resume *types.ParsedResume

	RuleWarnings   []string
	ConfigWarnings []string
}

// Generate returns the ordered suggestion list and the forwarded warnings.
// The output depends only on the input.
func Generate(in Input) (suggestions, warnings []string) {
	s := in.Score
	suggestions = []string{}

	if len(s.MissingRequired) > 0 {
		suggestions = append(suggestions, "Add these required skills if you have them: "+truncate(s.MissingRequired, MaxSkills))
	}
	if len(s.MissingPreferred) > 0 {
		suggestions = append(suggestions, "Consider adding these preferred skills: "+truncate(s.MissingPreferred, MaxSkills))
	}
	if len(s.MissingKeywords) > 0 {
		suggestions = append(suggestions, "Work these job keywords into your resume: "+truncate(s.MissingKeywords, MaxKeywords))
	}
	if len(s.OverusedKeywords) > 0 {
		suggestions = append(suggestions, fmt.Sprintf("Reduce repetition of %s to avoid keyword stuffing", strings.Join(s.OverusedKeywords, ", ")))
	}
	if s.RequiredYears != nil && s.MissingYears > 0 {
		suggestions = append(suggestions, fmt.Sprintf(
			"The role asks for %s+ years of experience; make the dates of relevant roles explicit (about %s more years are expected)",
			formatNumber(*s.RequiredYears), formatNumber(s.MissingYears)))
	}
	if len(s.MissingEducation) > 0 {
		suggestions = append(suggestions, "List your education clearly; the job asks for: "+strings.Join(s.MissingEducation, ", "))
	}
	if in.Resume != nil && len(in.Resume.ActionVerbs) < MinVerbs {
		suggestions = append(suggestions, "Start more bullet points with strong action verbs such as led, built or delivered")
	}

	warnings = []string{}
	warnings = append(warnings, in.RuleWarnings...)
	if in.Resume != nil {
		warnings = append(warnings, in.Resume.Warnings...)
	}
	warnings = append(warnings, in.ConfigWarnings...)
	return suggestions, warnings
}

// truncate joins up to limit items and marks how many were left out.
func truncate(items []string, limit int) string {
	if len(items) <= limit {
		return strings.Join(items, ", ")
	}
	return fmt.Sprintf("%s… (+%d more)", strings.Join(items[:limit], ", "), len(items)-limit)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
