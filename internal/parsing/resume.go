package parsing

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-ats/internal/dates"
	"github.com/jonathan/resume-ats/internal/textutil"
	"github.com/jonathan/resume-ats/internal/types"
)

var (
	skillSeparators = regexp.MustCompile(`[,;|•\n]`)
	emptyBrackets   = regexp.MustCompile(`\(\s*\)|\[\s*\]`)
	titleSeparators = regexp.MustCompile(`\s+(?:at|@)\s+|\s*,\s*|\s+\|\s+|\s+[-–—]\s+`)
)

// ParseResume splits raw resume text into sections and extracts skills,
// experience entries, action verbs and keywords.
func (p *Parser) ParseResume(raw string) *types.ParsedResume {
	text := apostrophes.Replace(raw)
	lines := textutil.Lines(text)

	resume := &types.ParsedResume{
		RawText:        raw,
		NormalizedText: textutil.Normalize(text),
		Tokens:         textutil.Tokenize(text),
		SectionContent: make(map[string]string),
		HasTableLayout: textutil.DetectTableStructure(lines),
	}

	content := p.splitSections(lines, resume)
	for tag, body := range content {
		resume.SectionContent[tag] = strings.TrimSpace(strings.Join(body, "\n"))
	}

	resume.Skills = p.parseSkillList(resume.SectionContent[types.SectionSkills])
	resume.Experience = p.parseExperience(content[types.SectionExperience])
	resume.JobTitles = jobTitles(resume.Experience)
	resume.TotalYears = totalYears(resume.Experience)
	resume.ActionVerbs = actionVerbs(resume.Tokens)
	resume.EducationLines = nonEmptyLines(content[types.SectionEducation])

	keywords := append([]string(nil), resume.Skills...)
	keywords = append(keywords, textutil.KeywordTokens(resume.Tokens)...)
	resume.Keywords = textutil.Dedupe(keywords, strings.ToLower)

	for _, missing := range resume.MissingSections() {
		resume.Warnings = append(resume.Warnings, fmt.Sprintf("Resume section not detected: %s", missing))
	}
	return resume
}

// splitSections assigns each line to the most recent section header.
// Lines before the first header belong to no section.
func (p *Parser) splitSections(lines []string, resume *types.ParsedResume) map[string][]string {
	content := make(map[string][]string)
	current := ""
	for _, line := range lines {
		if tag, inline, ok := matchHeader(line); ok {
			if !resume.HasSection(tag) {
				resume.Sections = append(resume.Sections, tag)
			}
			current = tag
			if _, seen := content[tag]; !seen {
				content[tag] = []string{}
			}
			if inline != "" {
				content[tag] = append(content[tag], inline)
			}
			continue
		}
		if current != "" {
			content[current] = append(content[current], line)
		}
	}
	return content
}

// matchHeader recognizes a section header line, optionally followed by inline
// content after a colon ("Skills: Go, SQL").
func matchHeader(line string) (tag, inline string, ok bool) {
	trimmed := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "#"))
	if trimmed == "" {
		return "", "", false
	}
	key := textutil.Normalize(strings.TrimSuffix(trimmed, ":"))
	if tag, ok := sectionHeaders[key]; ok {
		return tag, "", true
	}
	if idx := strings.Index(trimmed, ":"); idx > 0 {
		if tag, ok := sectionHeaders[textutil.Normalize(trimmed[:idx])]; ok {
			return tag, strings.TrimSpace(trimmed[idx+1:]), true
		}
	}
	return "", "", false
}

func (p *Parser) parseSkillList(section string) []string {
	var items []string
	for _, item := range skillSeparators.Split(section, -1) {
		// "Languages: Go, Python" keeps only what follows the label
		if idx := strings.LastIndex(item, ":"); idx >= 0 {
			item = item[idx+1:]
		}
		items = append(items, item)
	}
	return p.skills.CanonicalList(items)
}

// parseExperience builds entries line by line. A date range first tries to
// complete the open entry; a role title always opens a new one. Bulleted
// lines are always description; their range can only date an undated entry.
func (p *Parser) parseExperience(lines []string) []types.ExperienceEntry {
	var entries []types.ExperienceEntry
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		dr, span, hasRange := p.dates.Find(trimmed)
		rest := trimmed
		if hasRange {
			rest = trimmed[:span[0]] + " " + trimmed[span[1]:]
		}
		rest = cleanRemainder(rest)

		if isTitleLine(trimmed, rest) {
			entry := newTitledEntry(rest)
			if hasRange {
				entry.Dates = rangePtr(dr)
			}
			entries = append(entries, entry)
			continue
		}

		// A bulleted line may date the open entry but never starts one.
		if hasRange && startsWithBullet(trimmed) {
			if last := len(entries) - 1; last >= 0 && entries[last].Dates == nil {
				entries[last].Dates = rangePtr(dr)
			}
			hasRange = false
		}

		if hasRange {
			last := len(entries) - 1
			if last >= 0 && entries[last].Dates == nil {
				entries[last].Dates = rangePtr(dr)
				if entries[last].Company == "" {
					entries[last].Company = rest
				}
			} else {
				entries = append(entries, types.ExperienceEntry{Company: rest, Dates: rangePtr(dr)})
			}
			continue
		}

		if last := len(entries) - 1; last >= 0 {
			if entries[last].Description != "" {
				entries[last].Description += "\n"
			}
			entries[last].Description += stripBullet(trimmed)
		}
	}
	return entries
}

// isTitleLine reports whether a line opens a role. Bulleted lines are always description.
func isTitleLine(original, rest string) bool {
	if rest == "" || startsWithBullet(original) {
		return false
	}
	return roleTitlePattern.MatchString(rest) && len(strings.Fields(rest)) <= 12
}

func newTitledEntry(line string) types.ExperienceEntry {
	parts := titleSeparators.Split(line, 3)
	entry := types.ExperienceEntry{Title: strings.ToLower(strings.TrimSpace(parts[0]))}
	if len(parts) > 1 {
		entry.Company = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 {
		entry.Location = strings.TrimSpace(parts[2])
	}
	return entry
}

func cleanRemainder(s string) string {
	s = emptyBrackets.ReplaceAllString(s, " ")
	s = textutil.NormalizeWhitespace(s)
	return strings.Trim(s, " ,|-–—:()[]")
}

func rangePtr(dr dates.DateRange) *dates.DateRange {
	return &dr
}

func jobTitles(entries []types.ExperienceEntry) []string {
	var titles []string
	for _, e := range entries {
		if e.Title != "" {
			titles = append(titles, e.Title)
		}
	}
	return textutil.Dedupe(titles, strings.ToLower)
}

func totalYears(entries []types.ExperienceEntry) float64 {
	var ranges []dates.DateRange
	for _, e := range entries {
		if e.Dates != nil {
			ranges = append(ranges, *e.Dates)
		}
	}
	return dates.TotalYears(ranges)
}

func actionVerbs(tokens []string) []string {
	var verbs []string
	seen := make(map[string]bool)
	for _, t := range tokens {
		if impactVerbs[t] && !seen[t] {
			seen[t] = true
			verbs = append(verbs, t)
		}
	}
	return verbs
}

func nonEmptyLines(lines []string) []string {
	var out []string
	for _, line := range lines {
		if s := stripBullet(line); s != "" {
			out = append(out, s)
		}
	}
	return out
}
