// Package ats exposes the resume analysis entry points.
package ats

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-ats/internal/config"
	"github.com/jonathan/resume-ats/internal/enhance"
	"github.com/jonathan/resume-ats/internal/logger"
	"github.com/jonathan/resume-ats/internal/parsing"
	"github.com/jonathan/resume-ats/internal/rules"
	"github.com/jonathan/resume-ats/internal/scoring"
	"github.com/jonathan/resume-ats/internal/suggestions"
	"github.com/jonathan/resume-ats/internal/types"
)

// Warnings added by the entry points
const (
	WarningSyncEnhancementSkipped = "AI enhancement skipped: synchronous analysis does not call external providers"
	WarningNoProvider             = "AI enhancement skipped: no provider client was supplied"
)

// Analyze scores resumeText against jobText. It never calls a provider; an
// LLM section in cfg only produces a warning. The only error is a
// *parsing.InputError for blank input.
func Analyze(resumeText, jobText string, cfg *config.ATSConfig, opts ...Option) (*types.ATSAnalysisResult, error) {
	log := newAnalysisLogger(buildOptions(opts))

	a, err := analyze(resumeText, jobText, cfg, log)
	if err != nil {
		return nil, err
	}
	if cfg != nil && cfg.LLM != nil {
		a.result.Warnings = append(a.result.Warnings, WarningSyncEnhancementSkipped)
	}
	return a.result, nil
}

// AnalyzeAsync runs the same pipeline as Analyze and then, when a provider is
// supplied, tries to rewrite the suggestions. Enhancement can only replace the
// suggestion texts; any failure keeps the standard suggestions and adds a
// warning. A canceled ctx counts as an enhancement timeout.
func AnalyzeAsync(ctx context.Context, resumeText, jobText string, cfg *config.ATSConfig, llm *enhance.Options, opts ...Option) (*types.ATSAnalysisResult, error) {
	log := newAnalysisLogger(buildOptions(opts))

	a, err := analyze(resumeText, jobText, cfg, log)
	if err != nil {
		return nil, err
	}

	var fileSettings *config.LLMSettings
	if cfg != nil {
		fileSettings = cfg.LLM
	}
	switch {
	case llm != nil && llm.Client != nil:
		settings := llm.Settings
		if settings == nil {
			settings = fileSettings
		}
		a.enhance(ctx, llm, settings, resumeText, jobText, log)
	case llm != nil || fileSettings != nil:
		a.result.Warnings = append(a.result.Warnings, WarningNoProvider)
	}
	return a.result, nil
}

// analysis carries one pipeline run
type analysis struct {
	result *types.ATSAnalysisResult
}

func analyze(resumeText, jobText string, cfg *config.ATSConfig, log *zap.Logger) (*analysis, error) {
	if err := parsing.ValidateInputs(resumeText, jobText); err != nil {
		log.Debug("rejected analysis input", zap.Error(err))
		return nil, err
	}

	resolved := config.Resolve(cfg)
	parser := parsing.NewParser(resolved)
	resume := parser.ParseResume(resumeText)
	job := parser.ParseJob(jobText)
	log.Debug("parsed inputs",
		zap.Strings("sections", resume.Sections),
		zap.Int("resume_skills", len(resume.Skills)),
		zap.Int("required_skills", len(job.RequiredSkills)),
		zap.Int("preferred_skills", len(job.PreferredSkills)),
		zap.Float64("total_years", resume.TotalYears))

	score := scoring.NewEngine(resolved, parser.Skills()).Score(resume, job)
	outcome := rules.NewEngine(resolved, log).Apply(rules.NewContext(resume, job, resolved, score))

	suggestionList, warnings := suggestions.Generate(suggestions.Input{
		Score:          score,
		Resume:         resume,
		RuleWarnings:   outcome.Warnings,
		ConfigWarnings: resolved.Warnings,
	})

	result := &types.ATSAnalysisResult{
		Score:            rules.FinalScore(score.Composite, outcome.Penalty),
		Breakdown:        score.Breakdown,
		MatchedKeywords:  nonNil(score.MatchedKeywords),
		MissingKeywords:  nonNil(score.MissingKeywords),
		OverusedKeywords: nonNil(score.OverusedKeywords),
		Suggestions:      suggestionList,
		Warnings:         warnings,
	}
	log.Debug("scored analysis",
		zap.Float64("composite", score.Composite),
		zap.Float64("penalty", outcome.Penalty),
		zap.Float64("score", result.Score))
	return &analysis{result: result}, nil
}

// enhance swaps in rewritten suggestions on success. Nothing it does can fail the analysis.
func (a *analysis) enhance(ctx context.Context, llm *enhance.Options, in *config.LLMSettings, resumeText, jobText string, log *zap.Logger) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("enhancement panicked", zap.Any("panic", r))
			a.result.Warnings = append(a.result.Warnings, fmt.Sprintf("AI enhancement failed: %v", r))
		}
	}()

	settings, err := enhance.ResolveSettings(in)
	if err != nil {
		a.result.Warnings = append(a.result.Warnings, "AI enhancement skipped: "+err.Error())
		return
	}
	if !settings.Suggestions || len(a.result.Suggestions) == 0 {
		log.Debug("enhancement not needed", zap.Bool("enabled", settings.Suggestions))
		return
	}

	orchestrator := enhance.New(llm.Client, settings, log)
	enhanced, ok := orchestrator.EnhanceSuggestions(ctx, enhance.SuggestionRequest{
		Suggestions: a.result.Suggestions,
		Score:       a.result.Score,
		Resume:      resumeText,
		Job:         jobText,
	})
	if ok {
		a.result.Suggestions = enhanced
	}
	a.result.Warnings = append(a.result.Warnings, orchestrator.Warnings()...)
}

func newAnalysisLogger(o options) *zap.Logger {
	return logger.WithFields(o.logger, zap.String(logger.FieldAnalysisID, uuid.NewString()))
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
