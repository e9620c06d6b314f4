package parsing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-ats/internal/config"
	"github.com/jonathan/resume-ats/internal/types"
)

func testParser(t *testing.T) *Parser {
	t.Helper()
	return NewParser(config.Resolve(&config.ATSConfig{
		Now: func() time.Time { return time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC) },
	}))
}

const fullResume = `Jane Doe
jane@example.com

Summary
Backend engineer who ships reliable services.

Skills
Golang, PostgreSQL; Docker
Languages: Python, JS

Experience
Senior Engineer at Acme Corp (Jan 2020 - Present)
- Led migration to Kubernetes
- Reduced latency by 40%
Software Developer, Initech, Austin
Mar 2017 - Dec 2019
• Built billing APIs

Education
B.S. Computer Science, State University

Projects
Open source CLI tools`

func TestParseResume_Sections(t *testing.T) {
	resume := testParser(t).ParseResume(fullResume)

	assert.Equal(t, []string{
		types.SectionSummary, types.SectionSkills, types.SectionExperience,
		types.SectionEducation, types.SectionProjects,
	}, resume.Sections)
	assert.Equal(t, "Backend engineer who ships reliable services.", resume.SectionContent[types.SectionSummary])
	assert.NotContains(t, resume.SectionContent[types.SectionSummary], "Jane Doe")
	assert.Contains(t, resume.NormalizedText, "jane doe")
	assert.Empty(t, resume.Warnings)
}

func TestParseResume_Skills(t *testing.T) {
	resume := testParser(t).ParseResume(fullResume)

	assert.Equal(t, []string{"go", "postgresql", "docker", "python", "javascript"}, resume.Skills)
	assert.Equal(t, "go", resume.Keywords[0])
	assert.Contains(t, resume.Keywords, "kubernetes")
}

func TestParseResume_Experience(t *testing.T) {
	resume := testParser(t).ParseResume(fullResume)

	require.Len(t, resume.Experience, 2)

	first := resume.Experience[0]
	assert.Equal(t, "senior engineer", first.Title)
	assert.Equal(t, "Acme Corp", first.Company)
	require.NotNil(t, first.Dates)
	assert.True(t, first.Dates.Current)
	assert.Equal(t, 54, first.Dates.Months)
	assert.Equal(t, "Led migration to Kubernetes\nReduced latency by 40%", first.Description)

	second := resume.Experience[1]
	assert.Equal(t, "software developer", second.Title)
	assert.Equal(t, "Initech", second.Company)
	assert.Equal(t, "Austin", second.Location)
	require.NotNil(t, second.Dates)
	assert.Equal(t, 34, second.Dates.Months)
	assert.Equal(t, "Built billing APIs", second.Description)

	assert.Equal(t, []string{"senior engineer", "software developer"}, resume.JobTitles)
	// (54 + 34) / 12
	assert.Equal(t, 7.33, resume.TotalYears)
}

func TestParseResume_ActionVerbsAndEducation(t *testing.T) {
	resume := testParser(t).ParseResume(fullResume)

	assert.Equal(t, []string{"led", "reduced", "built"}, resume.ActionVerbs)
	assert.Equal(t, []string{"B.S. Computer Science, State University"}, resume.EducationLines)
}

func TestParseResume_InlineHeadersAndMarkdown(t *testing.T) {
	resume := testParser(t).ParseResume("## Summary:\nHello\nSKILLS: React, TypeScript\nWork Experience:\nEngineer")

	assert.Equal(t, []string{types.SectionSummary, types.SectionSkills, types.SectionExperience}, resume.Sections)
	assert.Equal(t, []string{"react", "typescript"}, resume.Skills)
	require.Len(t, resume.Experience, 1)
	assert.Equal(t, "engineer", resume.Experience[0].Title)
}

func TestParseResume_DateLineAttachesToOpenEntry(t *testing.T) {
	resume := testParser(t).ParseResume("Experience\nData Analyst\nGlobex, 2019 - 2020\nAnalyzed data\n2021 - 2021")

	require.Len(t, resume.Experience, 2)
	assert.Equal(t, "data analyst", resume.Experience[0].Title)
	assert.Equal(t, "Globex", resume.Experience[0].Company)
	assert.Equal(t, 24, resume.Experience[0].Dates.Months)
	assert.Equal(t, "Analyzed data", resume.Experience[0].Description)

	assert.Empty(t, resume.Experience[1].Title)
	assert.Equal(t, 12, resume.Experience[1].Dates.Months)
	assert.Equal(t, 3.0, resume.TotalYears)
}

func TestParseResume_MissingSections(t *testing.T) {
	resume := testParser(t).ParseResume("Just a paragraph about me and React.")

	assert.Empty(t, resume.Sections)
	assert.Equal(t, []string{
		"Resume section not detected: summary",
		"Resume section not detected: experience",
		"Resume section not detected: skills",
		"Resume section not detected: education",
	}, resume.Warnings)
	assert.Contains(t, resume.Keywords, "react")
	assert.Zero(t, resume.TotalYears)
}

func TestParseResume_TableLayout(t *testing.T) {
	resume := testParser(t).ParseResume("Skills\n| Skill | Years |\n| Go | 5 |")
	assert.True(t, resume.HasTableLayout)

	resume = testParser(t).ParseResume(fullResume)
	assert.False(t, resume.HasTableLayout)
}

func TestParseResume_NumericRangeInBulletIsNotARole(t *testing.T) {
	resume := testParser(t).ParseResume(`Experience
Senior Engineer at Acme (Jan 2022 - Dec 2023)
- Cut p99 latency from 1500-2000 ms to 200 ms
- Ran the 2019 - 2020 migration retrospective`)

	require.Len(t, resume.Experience, 1)
	assert.Equal(t, "senior engineer", resume.Experience[0].Title)
	assert.Equal(t, 24, resume.Experience[0].Dates.Months)
	assert.Contains(t, resume.Experience[0].Description, "1500-2000 ms")
	assert.Contains(t, resume.Experience[0].Description, "2019 - 2020 migration")
	assert.Equal(t, 2.0, resume.TotalYears)
}

func TestParseResume_BulletedRangeDatesUndatedEntry(t *testing.T) {
	resume := testParser(t).ParseResume("Experience\nData Analyst\n- Mar 2021 - Feb 2022\n- Built dashboards")

	require.Len(t, resume.Experience, 1)
	require.NotNil(t, resume.Experience[0].Dates)
	assert.Equal(t, 12, resume.Experience[0].Dates.Months)
	assert.Equal(t, 1.0, resume.TotalYears)
}
