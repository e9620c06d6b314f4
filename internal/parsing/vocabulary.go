package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-ats/internal/types"
)

// sectionHeaders maps header aliases to section tags
var sectionHeaders = map[string]string{
	"summary":                   types.SectionSummary,
	"professional summary":      types.SectionSummary,
	"profile":                   types.SectionSummary,
	"objective":                 types.SectionSummary,
	"about":                     types.SectionSummary,
	"about me":                  types.SectionSummary,
	"experience":                types.SectionExperience,
	"work experience":           types.SectionExperience,
	"professional experience":   types.SectionExperience,
	"employment history":        types.SectionExperience,
	"work history":              types.SectionExperience,
	"skills":                    types.SectionSkills,
	"technical skills":          types.SectionSkills,
	"core competencies":         types.SectionSkills,
	"competencies":              types.SectionSkills,
	"technologies":              types.SectionSkills,
	"education":                 types.SectionEducation,
	"academic background":       types.SectionEducation,
	"projects":                  types.SectionProjects,
	"personal projects":         types.SectionProjects,
	"certifications":            types.SectionCertifications,
	"certificates":              types.SectionCertifications,
	"licenses & certifications": types.SectionCertifications,
}

// impactVerbs are the action verbs recognized as strong bullet openers
var impactVerbs = map[string]bool{
	"achieved": true, "architected": true, "automated": true, "built": true,
	"created": true, "delivered": true, "deployed": true, "designed": true,
	"developed": true, "drove": true, "engineered": true, "established": true,
	"improved": true, "implemented": true, "increased": true, "initiated": true,
	"launched": true, "led": true, "managed": true, "mentored": true,
	"migrated": true, "negotiated": true, "optimized": true, "owned": true,
	"reduced": true, "resolved": true, "scaled": true, "shipped": true,
	"spearheaded": true, "streamlined": true,
}

// roleTitlePattern matches lines that open with a seniority or role keyword
var roleTitlePattern = regexp.MustCompile(`(?i)^(?:senior|sr\.?|junior|jr\.?|lead|principal|staff|head|chief|associate|assistant|intern|software|full[- ]?stack|front[- ]?end|back[- ]?end|devops|site reliability|product|project|program|engineering|technical|machine learning|data|web|mobile|cloud|qa|ui|ux|engineer|developer|programmer|manager|director|analyst|consultant|architect|designer|scientist|administrator|specialist|vp|vice president|cto|founder|co-founder)\b`)

// roleNouns are the nouns that anchor a job posting's role keywords
var roleNouns = map[string]bool{
	"engineer": true, "developer": true, "manager": true, "designer": true,
	"analyst": true, "scientist": true, "architect": true, "consultant": true,
	"administrator": true, "specialist": true, "programmer": true, "director": true,
}

var (
	requirementLanguage = regexp.MustCompile(`(?i)\bmust\b|\brequire\w*|\bneed\w*`)
	preferenceLanguage  = regexp.MustCompile(`(?i)\bpreferred\b|nice to have|\bplus\b|\bbonus\b`)
	minYearsPattern     = regexp.MustCompile(`(?i)(\d{1,2})\s*\+\s*(?:years?|yrs?)\b|(?:at least|minimum of|min\.?)\s+(\d{1,2})\s*(?:years?|yrs?)\b`)
)

type degree struct {
	name string
	// strong variants are matched in job postings and resumes; weak ones only in resume education text.
	strong []string
	weak   []string
}

var degrees = []degree{
	{
		name:   "bachelor",
		strong: []string{"bachelor", "bachelors", "bachelor's", "b.s.", "b.sc", "b.a.", "b.eng", "b.tech", "undergraduate degree"},
		weak:   []string{"bs", "bsc", "ba", "b.s", "beng", "btech"},
	},
	{
		name:   "master",
		strong: []string{"master", "masters", "master's", "m.s.", "m.sc", "m.a.", "m.eng", "m.tech", "graduate degree"},
		weak:   []string{"ms", "msc", "ma", "m.s", "meng"},
	},
	{
		name:   "phd",
		strong: []string{"phd", "ph.d", "ph.d.", "doctorate", "doctoral"},
	},
	{
		name:   "associate",
		strong: []string{"associate's", "associate degree", "associates degree"},
	},
	{
		name:   "mba",
		strong: []string{"mba", "m.b.a."},
	},
}

func variantPattern(variants []string) *regexp.Regexp {
	quoted := make([]string, len(variants))
	for i, v := range variants {
		quoted[i] = regexp.QuoteMeta(v)
	}
	return regexp.MustCompile(`(?:^|[^\w.'])(?:` + strings.Join(quoted, "|") + `)(?:$|[^\w'])`)
}

type degreeMatcher struct {
	name   string
	strong *regexp.Regexp
	any    *regexp.Regexp
}

var degreeMatchers = func() []degreeMatcher {
	out := make([]degreeMatcher, 0, len(degrees))
	for _, d := range degrees {
		out = append(out, degreeMatcher{
			name:   d.name,
			strong: variantPattern(d.strong),
			any:    variantPattern(append(append([]string(nil), d.strong...), d.weak...)),
		})
	}
	return out
}()

// DegreesIn returns the degree names whose strong variants appear in normalized text.
func DegreesIn(normalized string) []string {
	var found []string
	for _, m := range degreeMatchers {
		if m.strong.MatchString(normalized) {
			found = append(found, m.name)
		}
	}
	return found
}

// HasDegree reports whether normalized education text mentions the named degree in any form.
func HasDegree(normalized, name string) bool {
	for _, m := range degreeMatchers {
		if m.name == name {
			return m.any.MatchString(normalized)
		}
	}
	return false
}

func isDegreeToken(token string) bool {
	for _, m := range degreeMatchers {
		if m.any.MatchString(token) {
			return true
		}
	}
	return false
}
