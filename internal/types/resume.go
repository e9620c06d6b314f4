// Package types provides type definitions for structured data used throughout the ATS analysis pipeline.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/jonathan/resume-ats/internal/dates"

// Section tags recognized in resumes
const (
	SectionSummary        = "summary"
	SectionExperience     = "experience"
	SectionSkills         = "skills"
	SectionEducation      = "education"
	SectionProjects       = "projects"
	SectionCertifications = "certifications"
)

// RequiredSections are the sections every resume is expected to carry, in warning order
var RequiredSections = []string{SectionSummary, SectionExperience, SectionSkills, SectionEducation}

// ParsedResume is the structured view of one resume. Built once per analysis and not modified afterwards.
type ParsedResume struct {
	RawText        string            `json:"raw_text"`
	NormalizedText string            `json:"normalized_text"`
	Tokens         []string          `json:"-"`
	Sections       []string          `json:"sections"`
	SectionContent map[string]string `json:"section_content"`
	Skills         []string          `json:"skills"`
	JobTitles      []string          `json:"job_titles"`
	ActionVerbs    []string          `json:"action_verbs"`
	EducationLines []string          `json:"education_lines"`
	Experience     []ExperienceEntry `json:"experience"`
	TotalYears     float64           `json:"total_years"`
	Keywords       []string          `json:"keywords"`
	HasTableLayout bool              `json:"has_table_layout"`
	Warnings       []string          `json:"warnings,omitempty"`
}

// ExperienceEntry is one role in the experience section
type ExperienceEntry struct {
	Title       string           `json:"title"`
	Company     string           `json:"company,omitempty"`
	Location    string           `json:"location,omitempty"`
	Dates       *dates.DateRange `json:"dates,omitempty"`
	Description string           `json:"description,omitempty"`
}

// HasSection reports whether the section tag was detected.
func (r *ParsedResume) HasSection(tag string) bool {
	for _, s := range r.Sections {
		if s == tag {
			return true
		}
	}
	return false
}

// MissingSections returns the required sections that were not detected, in warning order.
func (r *ParsedResume) MissingSections() []string {
	var missing []string
	for _, s := range RequiredSections {
		if !r.HasSection(s) {
			missing = append(missing, s)
		}
	}
	return missing
}

// Clone returns a deep copy of r.
func (r *ParsedResume) Clone() *ParsedResume {
	if r == nil {
		return nil
	}
	c := *r
	c.Tokens = cloneStrings(r.Tokens)
	c.Sections = cloneStrings(r.Sections)
	c.Skills = cloneStrings(r.Skills)
	c.JobTitles = cloneStrings(r.JobTitles)
	c.ActionVerbs = cloneStrings(r.ActionVerbs)
	c.EducationLines = cloneStrings(r.EducationLines)
	c.Keywords = cloneStrings(r.Keywords)
	c.Warnings = cloneStrings(r.Warnings)
	if r.SectionContent != nil {
		c.SectionContent = make(map[string]string, len(r.SectionContent))
		for k, v := range r.SectionContent {
			c.SectionContent[k] = v
		}
	}
	if r.Experience != nil {
		c.Experience = make([]ExperienceEntry, len(r.Experience))
		for i, e := range r.Experience {
			if e.Dates != nil {
				dr := *e.Dates
				e.Dates = &dr
			}
			c.Experience[i] = e
		}
	}
	return &c
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append(make([]string, 0, len(s)), s...)
}
