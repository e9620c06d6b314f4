package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/resume-ats/internal/skills"
	"github.com/jonathan/resume-ats/internal/types"
)

// Resolve merges cfg over the defaults. It never fails: problems such as an
// unknown profile name or an invalid rule spec are recorded in Warnings.
// The returned value shares nothing mutable with cfg.
func Resolve(cfg *ATSConfig) *types.ResolvedATSConfig {
	if cfg == nil {
		cfg = &ATSConfig{}
	}

	resolved := &types.ResolvedATSConfig{
		Weights:          resolveWeights(cfg.Weights),
		Aliases:          resolveAliases(cfg.Aliases),
		Density:          resolveDensity(cfg.Density),
		SectionPenalties: resolveSectionPenalties(cfg.SectionPenalties),
		PartialMatch:     cfg.PartialMatch == nil || *cfg.PartialMatch,
	}

	resolved.Profile, resolved.Warnings = resolveProfile(cfg)

	now, warning := resolveNow(cfg)
	resolved.Now = now
	if warning != "" {
		resolved.Warnings = append(resolved.Warnings, warning)
	}

	resolved.Rules = append(resolved.Rules, cfg.Rules...)
	for _, spec := range cfg.RuleSpecs {
		rule, err := spec.Compile()
		if err != nil {
			resolved.Warnings = append(resolved.Warnings, fmt.Sprintf("Rule %s ignored: %v", spec.ID, err))
			continue
		}
		resolved.Rules = append(resolved.Rules, rule)
	}

	return resolved
}

// resolveWeights applies overrides and normalizes the weights to sum to 1.
// Negative weights count as zero. An all-zero set is returned unchanged.
func resolveWeights(in *WeightsInput) types.Weights {
	w := DefaultWeights()
	if in != nil {
		override(&w.Skills, in.Skills)
		override(&w.Experience, in.Experience)
		override(&w.Keywords, in.Keywords)
		override(&w.Education, in.Education)
	}
	w.Skills = max(w.Skills, 0)
	w.Experience = max(w.Experience, 0)
	w.Keywords = max(w.Keywords, 0)
	w.Education = max(w.Education, 0)

	sum := w.Sum()
	if sum == 0 {
		return w
	}
	return types.Weights{
		Skills:     w.Skills / sum,
		Experience: w.Experience / sum,
		Keywords:   w.Keywords / sum,
		Education:  w.Education / sum,
	}
}

func resolveAliases(in map[string]string) map[string]string {
	aliases := skills.DefaultAliases()
	for variant, canonical := range in {
		aliases[strings.ToLower(strings.TrimSpace(variant))] = canonical
	}
	return aliases
}

func resolveDensity(in *DensityInput) types.DensityThresholds {
	d := types.DensityThresholds{
		Min:            DefaultMinDensity,
		Max:            DefaultMaxDensity,
		OverusePenalty: DefaultOverusePenalty,
	}
	if in != nil {
		override(&d.Min, in.Min)
		override(&d.Max, in.Max)
		override(&d.OverusePenalty, in.OverusePenalty)
	}
	return d
}

func resolveSectionPenalties(in *SectionPenaltiesInput) types.SectionPenalties {
	p := types.SectionPenalties{
		Summary:    DefaultSummaryPenalty,
		Experience: DefaultExperiencePenalty,
		Skills:     DefaultSkillsPenalty,
		Education:  DefaultEducationPenalty,
	}
	if in != nil {
		override(&p.Summary, in.Summary)
		override(&p.Experience, in.Experience)
		override(&p.Skills, in.Skills)
		override(&p.Education, in.Education)
	}
	return p
}

// resolveProfile prefers an inline profile, then a named one from cfg.Profiles,
// then a built-in profile of that name.
func resolveProfile(cfg *ATSConfig) (*types.Profile, []string) {
	if cfg.Profile != nil {
		return copyProfile(*cfg.Profile), nil
	}
	name := strings.TrimSpace(cfg.ProfileName)
	if name == "" {
		return nil, nil
	}
	p, ok := cfg.Profiles[name]
	if !ok {
		p, ok = cfg.Profiles[strings.ToLower(name)]
	}
	if ok {
		if p.Name == "" {
			p.Name = name
		}
		return copyProfile(p), nil
	}
	if builtin, ok := skills.DefaultProfiles()[strings.ToLower(name)]; ok {
		return copyProfile(builtin), nil
	}
	return nil, []string{fmt.Sprintf("Profile %q not found; continuing without a profile", name)}
}

func copyProfile(p types.Profile) *types.Profile {
	out := types.Profile{
		Name:            p.Name,
		MandatorySkills: append([]string(nil), p.MandatorySkills...),
		OptionalSkills:  append([]string(nil), p.OptionalSkills...),
	}
	if p.MinExperienceYears != nil {
		out.MinExperienceYears = Float(*p.MinExperienceYears)
	}
	return &out
}

var referenceLayouts = []string{"2006-01-02", "2006-01"}

func resolveNow(cfg *ATSConfig) (func() time.Time, string) {
	if cfg.Now != nil {
		return cfg.Now, ""
	}
	if cfg.ReferenceDate == "" {
		return time.Now, ""
	}
	for _, layout := range referenceLayouts {
		if t, err := time.Parse(layout, cfg.ReferenceDate); err == nil {
			return func() time.Time { return t }, ""
		}
	}
	return time.Now, fmt.Sprintf("Reference date %q not understood; using the current date", cfg.ReferenceDate)
}

func override(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
