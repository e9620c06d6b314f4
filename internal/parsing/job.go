package parsing

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-ats/internal/textutil"
	"github.com/jonathan/resume-ats/internal/types"
)

type lineClass int

const (
	classNone lineClass = iota
	classRequired
	classPreferred
)

var (
	sentenceBreak     = regexp.MustCompile(`\.(?:\s+|$)`)
	fragmentSeparator = regexp.MustCompile(`[,;•|()]|\s+(?:and|or|with|in|of|using|including|like|such as|e\.g\.)\s+`)
	leadingFiller     = regexp.MustCompile(`(?i)^(?:must|have|has|need\w*|require\w*|preferred|nice to have|bonus|plus|strong|solid|proven|hands-on|working|deep|good|excellent|familiarity|experience|knowledge|proficiency|proficient|understanding|expertise|\d+\s*\+?\s*(?:years?|yrs?))\b\s*`)
	trailingFiller    = regexp.MustCompile(`(?i)\s*\b(?:is|are)?\s*(?:required|preferred|a plus|plus|a bonus|bonus|experience|skills?)$`)
)

// ambiguousSkills are only accepted as whole fragments, never picked out of longer phrases.
var ambiguousSkills = map[string]bool{
	"go": true, "c": true, "r": true, "express": true, "spring": true,
	"excel": true, "swift": true, "rails": true, "communication": true, "leadership": true,
}

// ParseJob extracts required and preferred skills, role keywords, minimum
// experience and education requirements from a job posting.
func (p *Parser) ParseJob(raw string) *types.ParsedJobDescription {
	text := apostrophes.Replace(raw)
	job := &types.ParsedJobDescription{
		RawText:        raw,
		NormalizedText: textutil.Normalize(text),
	}

	var required, preferred []string
	heading := classNone
	for _, line := range textutil.Lines(text) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		lineLevel := classify(trimmed)

		// A bare "Requirements:" style heading sets the class of the lines that follow.
		if strings.HasSuffix(trimmed, ":") {
			heading = lineLevel
			continue
		}
		if lineLevel == classNone {
			lineLevel = heading
		}

		for _, sentence := range sentenceBreak.Split(trimmed, -1) {
			sentenceLevel := classify(sentence)
			if sentenceLevel == classNone {
				sentenceLevel = lineLevel
			}
			// "Must have React; GraphQL preferred" carries one class per clause.
			for _, clause := range strings.Split(sentence, ";") {
				class := classify(clause)
				if class == classNone {
					class = sentenceLevel
				}
				switch class {
				case classRequired:
					required = append(required, p.skillFragments(clause)...)
				case classPreferred:
					preferred = append(preferred, p.skillFragments(clause)...)
				}
			}
		}
	}

	job.RequiredSkills = textutil.Dedupe(required, strings.ToLower)
	job.PreferredSkills = without(textutil.Dedupe(preferred, strings.ToLower), job.RequiredSkills)
	job.MinExperienceYears = minimumYears(text)
	job.EducationRequirements = DegreesIn(job.NormalizedText)
	job.RoleKeywords = roleKeywords(text)

	keywords := append([]string(nil), job.RequiredSkills...)
	keywords = append(keywords, job.PreferredSkills...)
	keywords = append(keywords, job.RoleKeywords...)
	job.Keywords = textutil.Dedupe(keywords, strings.ToLower)
	return job
}

// classify prefers preference language when a clause carries both.
func classify(s string) lineClass {
	switch {
	case preferenceLanguage.MatchString(s):
		return classPreferred
	case requirementLanguage.MatchString(s):
		return classRequired
	default:
		return classNone
	}
}

// skillFragments splits a sentence into candidate skills and keeps the ones the
// normalizer recognizes. Text before the last colon is a label and is dropped.
func (p *Parser) skillFragments(sentence string) []string {
	if idx := strings.LastIndex(sentence, ":"); idx >= 0 {
		sentence = sentence[idx+1:]
	}

	var found []string
	for _, fragment := range fragmentSeparator.Split(sentence, -1) {
		fragment = stripBullet(fragment)
		if fragment == "" {
			continue
		}
		if p.skills.Known(fragment) {
			found = append(found, p.skills.Canonical(fragment))
			continue
		}
		if stripped := stripFiller(fragment); stripped != "" && p.skills.Known(stripped) {
			found = append(found, p.skills.Canonical(stripped))
			continue
		}
		found = append(found, p.scanKnown(textutil.Tokenize(fragment))...)
	}
	return found
}

func stripFiller(fragment string) string {
	fragment = strings.TrimSpace(fragment)
	for {
		next := strings.TrimSpace(leadingFiller.ReplaceAllString(fragment, ""))
		next = strings.TrimSpace(trailingFiller.ReplaceAllString(next, ""))
		if next == fragment {
			return fragment
		}
		fragment = next
	}
}

// scanKnown picks known skills out of a longer phrase, longest match first.
func (p *Parser) scanKnown(tokens []string) []string {
	var found []string
	for i := 0; i < len(tokens); {
		matched := false
		for n := min(3, len(tokens)-i); n >= 1; n-- {
			candidate := strings.Join(tokens[i:i+n], " ")
			if !p.skills.Known(candidate) {
				continue
			}
			canonical := p.skills.Canonical(candidate)
			if n == 1 && (ambiguousSkills[canonical] || len(candidate) < 3) {
				continue
			}
			found = append(found, canonical)
			i += n
			matched = true
			break
		}
		if !matched {
			i++
		}
	}
	return found
}

func minimumYears(text string) *float64 {
	m := minYearsPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	digits := m[1]
	if digits == "" {
		digits = m[2]
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return nil
	}
	years := float64(n)
	return &years
}

// roleKeywords takes the first role noun with up to two adjoining qualifiers,
// falling back to the leading tokens of the first line.
func roleKeywords(text string) []string {
	var firstLine []string
	for _, line := range textutil.Lines(text) {
		tokens := textutil.Tokenize(line)
		if len(tokens) == 0 {
			continue
		}
		if firstLine == nil {
			firstLine = tokens
		}
		for i, t := range tokens {
			noun := strings.TrimSuffix(t, "s")
			if !roleNouns[noun] {
				continue
			}
			start := i
			for start > 0 && i-start < 2 && qualifies(tokens[start-1]) {
				start--
			}
			out := append([]string(nil), tokens[start:i]...)
			return append(out, noun)
		}
	}

	var out []string
	for _, t := range textutil.KeywordTokens(firstLine) {
		if isDegreeToken(t) {
			continue
		}
		out = append(out, t)
		if len(out) == 5 {
			break
		}
	}
	return out
}

func qualifies(token string) bool {
	return len(token) > 1 && !textutil.IsStopWord(token) && !roleNouns[token]
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
