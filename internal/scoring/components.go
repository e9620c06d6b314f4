package scoring

import (
	"strings"

	"github.com/jonathan/resume-ats/internal/dates"
	"github.com/jonathan/resume-ats/internal/parsing"
	"github.com/jonathan/resume-ats/internal/textutil"
)

// computeSkillsScore weighs required coverage 0.7 and preferred coverage 0.3.
// With partial matching a skill also counts when the resume mentions it anywhere.
func computeSkillsScore(view resumeView, required, preferred []string, partial bool) (score float64, matched, missingRequired, missingPreferred []string) {
	has := func(skill string) bool {
		return view.hasSkill(skill) || (partial && view.mentions(skill))
	}

	matchedRequired := 0
	for _, s := range required {
		if has(s) {
			matchedRequired++
			matched = append(matched, s)
		} else {
			missingRequired = append(missingRequired, s)
		}
	}
	matchedPreferred := 0
	for _, s := range preferred {
		if has(s) {
			matchedPreferred++
			matched = append(matched, s)
		} else {
			missingPreferred = append(missingPreferred, s)
		}
	}

	raw := requiredSkillWeight*coverage(matchedRequired, len(required)) +
		preferredSkillWeight*coverage(matchedPreferred, len(preferred))
	return dates.Round2(clamp(raw*100, 0, 100)), matched, missingRequired, missingPreferred
}

// computeExperienceScore weighs years coverage 0.75 and title overlap 0.25.
// Without a stated minimum the score is 100 and nothing is missing.
func computeExperienceScore(actual float64, required *float64, titles, roleKeywords []string) (score, missingYears float64) {
	if required == nil || *required <= 0 {
		return 100, 0
	}
	yearsCoverage := clamp(min(actual / *required, maxYearsRatio), 0, 1)
	raw := yearsCoverageWeight*yearsCoverage + titleOverlapWeight*titleOverlap(titles, roleKeywords)
	return dates.Round2(clamp(raw*100, 0, 100)), dates.Round2(max(*required-actual, 0))
}

// titleOverlap is the share of role keywords found among the resume's title tokens.
func titleOverlap(titles, roleKeywords []string) float64 {
	if len(roleKeywords) == 0 {
		return 1.0
	}
	titleTokens := make(map[string]bool)
	for _, title := range titles {
		for _, t := range textutil.Tokenize(title) {
			titleTokens[strings.TrimSuffix(t, "s")] = true
		}
	}
	hits := 0
	for _, kw := range roleKeywords {
		if titleTokens[strings.TrimSuffix(strings.ToLower(kw), "s")] {
			hits++
		}
	}
	return coverage(hits, len(roleKeywords))
}

// computeKeywordScore measures token coverage of the job keywords and flags
// matched keywords whose density exceeds maxDensity.
func computeKeywordScore(view resumeView, keywords []string, maxDensity float64) (score float64, matched, missing, overused []string) {
	for _, kw := range keywords {
		if view.mentions(kw) || view.hasSkill(kw) {
			matched = append(matched, kw)
			if view.density(kw) > maxDensity {
				overused = append(overused, kw)
			}
		} else {
			missing = append(missing, kw)
		}
	}
	return dates.Round2(clamp(coverage(len(matched), len(keywords))*100, 0, 100)), matched, missing, overused
}

// degreeRank orders degrees so a higher degree satisfies a lower requirement
var degreeRank = map[string]int{
	"associate": 1,
	"bachelor":  2,
	"master":    3,
	"phd":       4,
}

// computeEducationScore is 100 without requirements and otherwise the share
// of requirements found in the education lines.
func computeEducationScore(educationLines, requirements []string) (score float64, missing []string) {
	if len(requirements) == 0 {
		return 100, nil
	}
	text := textutil.Normalize(strings.Join(educationLines, "\n"))

	highest := 0
	for name, rank := range degreeRank {
		if rank > highest && parsing.HasDegree(text, name) {
			highest = rank
		}
	}

	found := 0
	for _, req := range requirements {
		rank, ranked := degreeRank[req]
		if parsing.HasDegree(text, req) || (ranked && highest >= rank) {
			found++
		} else {
			missing = append(missing, req)
		}
	}
	return dates.Round2(clamp(coverage(found, len(requirements))*100, 0, 100)), missing
}
