package types

// ParsedJobDescription is the structured view of one job posting
type ParsedJobDescription struct {
	RawText               string   `json:"raw_text"`
	NormalizedText        string   `json:"normalized_text"`
	RequiredSkills        []string `json:"required_skills"`
	PreferredSkills       []string `json:"preferred_skills"`
	RoleKeywords          []string `json:"role_keywords"`
	Keywords              []string `json:"keywords"`
	MinExperienceYears    *float64 `json:"min_experience_years,omitempty"`
	EducationRequirements []string `json:"education_requirements"`
}

// Clone returns a deep copy of j.
func (j *ParsedJobDescription) Clone() *ParsedJobDescription {
	if j == nil {
		return nil
	}
	c := *j
	c.RequiredSkills = cloneStrings(j.RequiredSkills)
	c.PreferredSkills = cloneStrings(j.PreferredSkills)
	c.RoleKeywords = cloneStrings(j.RoleKeywords)
	c.Keywords = cloneStrings(j.Keywords)
	c.EducationRequirements = cloneStrings(j.EducationRequirements)
	if j.MinExperienceYears != nil {
		years := *j.MinExperienceYears
		c.MinExperienceYears = &years
	}
	return &c
}
