package skills

import (
	"sort"

	"github.com/jonathan/resume-ats/internal/types"
)

func years(v float64) *float64 { return &v }

func builtinProfiles() map[string]types.Profile {
	return map[string]types.Profile{
		"frontend": {
			Name:            "frontend",
			MandatorySkills: []string{"javascript", "html", "css"},
			OptionalSkills:  []string{"typescript", "react", "jest"},
		},
		"backend": {
			Name:               "backend",
			MandatorySkills:    []string{"sql", "rest apis"},
			OptionalSkills:     []string{"docker", "kubernetes", "redis"},
			MinExperienceYears: years(2),
		},
		"data": {
			Name:            "data",
			MandatorySkills: []string{"python", "sql"},
			OptionalSkills:  []string{"pandas", "spark", "airflow"},
		},
		"devops": {
			Name:               "devops",
			MandatorySkills:    []string{"linux", "docker"},
			OptionalSkills:     []string{"kubernetes", "terraform", "ci/cd"},
			MinExperienceYears: years(3),
		},
	}
}

// DefaultProfiles returns a fresh copy of the built-in profiles keyed by name.
func DefaultProfiles() map[string]types.Profile {
	return builtinProfiles()
}

// ProfileNames lists the built-in profile names in sorted order.
func ProfileNames() []string {
	profiles := builtinProfiles()
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
