package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-ats/internal/types"
)

const testResume = `Summary
Frontend engineer focused on accessible web applications.

Skills: JavaScript, TypeScript, React

Experience
Senior Engineer (Jan 2020 - Present)
- Built a design system used by six product teams

Education
B.S. Computer Science`

const testJob = "Requirements: React, TypeScript. Must have 3+ years. Bachelor's degree required."

// executeCommand runs the CLI in-process and returns stdout.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestAnalyzeCommand_JSON(t *testing.T) {
	dir := t.TempDir()
	resume := writeFile(t, dir, "resume.md", testResume)
	job := writeFile(t, dir, "job.txt", testJob)

	out, err := executeCommand(t, "analyze", "--resume", resume, "--job", job, "--json")
	require.NoError(t, err)

	var result types.ATSAnalysisResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Contains(t, result.MatchedKeywords, "react")
	assert.Equal(t, 100.0, result.Breakdown.Education)
	assert.Greater(t, result.Score, 0.0)
}

func TestAnalyzeCommand_HTMLJob(t *testing.T) {
	dir := t.TempDir()
	resume := writeFile(t, dir, "resume.md", testResume)
	job := writeFile(t, dir, "job.html", `<html><body><nav>Jobs</nav><main><p>Requirements: React, TypeScript.</p><p>Must have 3+ years.</p></main></body></html>`)

	out, err := executeCommand(t, "analyze", "--resume", resume, "--job", job, "--json")
	require.NoError(t, err)

	var result types.ATSAnalysisResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Contains(t, result.MatchedKeywords, "typescript")
}

func TestAnalyzeCommand_Human(t *testing.T) {
	dir := t.TempDir()
	resume := writeFile(t, dir, "resume.md", testResume)
	job := writeFile(t, dir, "job.txt", testJob)

	out, err := executeCommand(t, "analyze", "-r", resume, "-j", job)
	require.NoError(t, err)
	assert.Contains(t, out, "ATS ANALYSIS")
	assert.Contains(t, out, "resume.md")
}

func TestAnalyzeCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	resume := writeFile(t, dir, "resume.md", testResume)
	empty := writeFile(t, dir, "empty.txt", "   \n")
	job := writeFile(t, dir, "job.txt", testJob)

	tests := []struct {
		name        string
		args        []string
		errorString string
	}{
		{
			name:        "Missing --job flag",
			args:        []string{"analyze", "--resume", resume},
			errorString: "required flag",
		},
		{
			name:        "Missing resume file",
			args:        []string{"analyze", "--resume", filepath.Join(dir, "nope.md"), "--job", job},
			errorString: "failed to read resume",
		},
		{
			name:        "Empty job description",
			args:        []string{"analyze", "--resume", resume, "--job", empty},
			errorString: "job description",
		},
		{
			name:        "Enhance without API key",
			args:        []string{"analyze", "--resume", resume, "--job", job, "--enhance"},
			errorString: "API key is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GEMINI_API_KEY", "")
			_, err := executeCommand(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorString)
		})
	}
}

func TestBatchCommand_KeepsInputOrder(t *testing.T) {
	dir := t.TempDir()
	job := writeFile(t, dir, "job.txt", testJob)
	var resumes []string
	for _, name := range []string{"c.md", "a.md", "b.md"} {
		resumes = append(resumes, writeFile(t, dir, name, testResume))
	}
	missing := filepath.Join(dir, "missing.md")

	args := append([]string{"batch", "--job", job, "--json", "--concurrency", "2"}, resumes...)
	args = append(args, missing)
	out, err := executeCommand(t, args...)
	require.NoError(t, err)

	var entries []batchEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 4)
	for i, path := range resumes {
		assert.Equal(t, path, entries[i].Resume)
		require.NotNil(t, entries[i].Result)
		assert.Equal(t, entries[0].Result.Score, entries[i].Result.Score)
	}
	assert.Equal(t, missing, entries[3].Resume)
	assert.Nil(t, entries[3].Result)
	assert.Contains(t, entries[3].Error, "failed to read resume")
}

func TestBatchCommand_Summary(t *testing.T) {
	dir := t.TempDir()
	job := writeFile(t, dir, "job.txt", testJob)
	resume := writeFile(t, dir, "alice.md", testResume)

	out, err := executeCommand(t, "batch", "--job", job, resume)
	require.NoError(t, err)
	assert.Contains(t, out, "BATCH RESULTS (1)")
	assert.Contains(t, out, "alice.md")
}

func TestBatchCommand_RejectsZeroConcurrency(t *testing.T) {
	dir := t.TempDir()
	job := writeFile(t, dir, "job.txt", testJob)

	_, err := executeCommand(t, "batch", "--job", job, "--concurrency", "0", job)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "concurrency")
}

func TestProfilesCommand(t *testing.T) {
	out, err := executeCommand(t, "profiles")
	require.NoError(t, err)
	for _, name := range []string{"backend", "data", "devops", "frontend"} {
		assert.Contains(t, out, name)
	}

	out, err = executeCommand(t, "profiles", "--json")
	require.NoError(t, err)
	var profiles []types.Profile
	require.NoError(t, json.Unmarshal([]byte(out), &profiles))
	require.Len(t, profiles, 4)
	assert.Equal(t, "backend", profiles[0].Name)
}

func TestValidateConfigCommand(t *testing.T) {
	dir := t.TempDir()

	good := writeFile(t, dir, "good.yaml", "weights:\n  skills: 2\nprofile_name: frontend\n")
	out, err := executeCommand(t, "validate-config", "--config", good)
	require.NoError(t, err)
	assert.Contains(t, out, "Config OK")
	assert.NotContains(t, out, "Warning:")

	unknown := writeFile(t, dir, "unknown.yaml", "profile_name: astronaut\n")
	out, err = executeCommand(t, "validate-config", "--config", unknown)
	require.NoError(t, err)
	assert.Contains(t, out, `Warning: Profile "astronaut" not found`)

	bad := writeFile(t, dir, "bad.yaml", "weights:\n  skills: -1\n")
	_, err = executeCommand(t, "validate-config", "--config", bad)
	require.Error(t, err)
}
