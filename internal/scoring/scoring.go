// Package scoring computes the four component scores of an analysis and their weighted composite.
package scoring

import (
	"strings"

	"github.com/jonathan/resume-ats/internal/dates"
	"github.com/jonathan/resume-ats/internal/skills"
	"github.com/jonathan/resume-ats/internal/textutil"
	"github.com/jonathan/resume-ats/internal/types"
)

// Component weights inside the skills and experience scores
const (
	requiredSkillWeight  = 0.7
	preferredSkillWeight = 0.3

	yearsCoverageWeight = 0.75
	titleOverlapWeight  = 0.25

	maxYearsRatio = 2.0
)

// Result is the full output of scoring one resume against one job
type Result struct {
	Breakdown types.ATSBreakdown
	Composite float64

	MatchedSkills    []string
	MissingRequired  []string
	MissingPreferred []string

	RequiredYears *float64
	MissingYears  float64

	MatchedKeywords  []string
	MissingKeywords  []string
	OverusedKeywords []string

	MissingEducation []string
}

// Engine scores parsed documents under one resolved configuration
type Engine struct {
	cfg    *types.ResolvedATSConfig
	skills *skills.Normalizer
}

// NewEngine returns an Engine using cfg and the skill normalizer the documents were parsed with.
func NewEngine(cfg *types.ResolvedATSConfig, normalizer *skills.Normalizer) *Engine {
	return &Engine{cfg: cfg, skills: normalizer}
}

// Score computes every component and the composite. It has no side effects.
func (e *Engine) Score(resume *types.ParsedResume, job *types.ParsedJobDescription) *Result {
	view := newResumeView(resume, e.skills)
	result := &Result{}

	required, preferred := e.skillTargets(job)
	result.Breakdown.Skills, result.MatchedSkills, result.MissingRequired, result.MissingPreferred =
		computeSkillsScore(view, required, preferred, e.cfg.PartialMatch)

	result.RequiredYears = e.requiredYears(job)
	result.Breakdown.Experience, result.MissingYears =
		computeExperienceScore(resume.TotalYears, result.RequiredYears, resume.JobTitles, job.RoleKeywords)

	result.Breakdown.Keywords, result.MatchedKeywords, result.MissingKeywords, result.OverusedKeywords =
		computeKeywordScore(view, job.Keywords, e.cfg.Density.Max)

	result.Breakdown.Education, result.MissingEducation =
		computeEducationScore(resume.EducationLines, job.EducationRequirements)

	result.Composite = Composite(result.Breakdown, e.cfg.Weights)
	return result
}

// skillTargets unions profile skills into the job's own sets.
func (e *Engine) skillTargets(job *types.ParsedJobDescription) (required, preferred []string) {
	required = append(required, job.RequiredSkills...)
	preferred = append(preferred, job.PreferredSkills...)
	if p := e.cfg.Profile; p != nil {
		required = append(required, p.MandatorySkills...)
		preferred = append(preferred, p.OptionalSkills...)
	}
	required = e.skills.CanonicalList(required)
	preferred = without(e.skills.CanonicalList(preferred), required)
	return required, preferred
}

// requiredYears is the larger of the job's and the profile's stated minimum.
func (e *Engine) requiredYears(job *types.ParsedJobDescription) *float64 {
	var years *float64
	if job.MinExperienceYears != nil {
		v := *job.MinExperienceYears
		years = &v
	}
	if p := e.cfg.Profile; p != nil && p.MinExperienceYears != nil {
		if years == nil || *p.MinExperienceYears > *years {
			v := *p.MinExperienceYears
			years = &v
		}
	}
	return years
}

// Composite is the weighted sum of the components rounded to two decimals.
func Composite(b types.ATSBreakdown, w types.Weights) float64 {
	return dates.Round2(b.Skills*w.Skills + b.Experience*w.Experience + b.Keywords*w.Keywords + b.Education*w.Education)
}

// resumeView is the resume prepared for matching: canonical skills plus a token
// stream where single-token aliases are replaced by their canonical form.
type resumeView struct {
	skillSet map[string]bool
	tokens   []string
}

func newResumeView(resume *types.ParsedResume, normalizer *skills.Normalizer) resumeView {
	view := resumeView{
		skillSet: make(map[string]bool, len(resume.Skills)),
		tokens:   make([]string, len(resume.Tokens)),
	}
	for _, s := range resume.Skills {
		view.skillSet[strings.ToLower(s)] = true
	}
	for i, t := range resume.Tokens {
		canonical := normalizer.Canonical(t)
		if canonical == "" || strings.Contains(canonical, " ") {
			canonical = t
		}
		view.tokens[i] = canonical
	}
	return view
}

func (v resumeView) hasSkill(skill string) bool {
	return v.skillSet[strings.ToLower(skill)]
}

func (v resumeView) mentions(term string) bool {
	return textutil.ContainsPhrase(v.tokens, textutil.Tokenize(term))
}

func (v resumeView) density(term string) float64 {
	if len(v.tokens) == 0 {
		return 0
	}
	return float64(textutil.CountPhrase(v.tokens, textutil.Tokenize(term))) / float64(len(v.tokens))
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}

func coverage(matched, total int) float64 {
	if total == 0 {
		return 1.0
	}
	return float64(matched) / float64(total)
}

func without(values, exclude []string) []string {
	drop := make(map[string]bool, len(exclude))
	for _, v := range exclude {
		drop[strings.ToLower(v)] = true
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !drop[strings.ToLower(v)] {
			out = append(out, v)
		}
	}
	return out
}
