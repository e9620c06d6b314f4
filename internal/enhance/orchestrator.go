// Package enhance optionally rewrites deterministic suggestions through a
// text-generation provider under a call and token budget, a timeout and
// strict response validation. Every failure degrades to the deterministic
// suggestions plus a warning.
package enhance

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-ats/internal/llm"
	"github.com/jonathan/resume-ats/internal/logger"
	"github.com/jonathan/resume-ats/internal/prompts"
	"github.com/jonathan/resume-ats/internal/schemas"
	"github.com/jonathan/resume-ats/internal/validation"
)

// maxExcerptRunes bounds each external document quoted into a prompt
const maxExcerptRunes = 3000

// CallSpec is one structured call
type CallSpec struct {
	System string
	User   string
	Schema *schemas.Schema

	// EstimatedTokens overrides the prompt-length estimate when positive.
	EstimatedTokens int
}

// Result is the outcome of one call. Payload is the validated JSON value.
type Result struct {
	Success    bool
	Fallback   bool
	Payload    any
	Error      string
	TokensUsed int
}

// Orchestrator runs enhancement calls for a single analysis. It owns its budget.
type Orchestrator struct {
	client   llm.Client
	settings Settings
	budget   *Budget
	logger   *zap.Logger

	warnings []string
}

// New returns an Orchestrator with a fresh budget.
func New(client llm.Client, settings Settings, log *zap.Logger) *Orchestrator {
	log = logger.WithFields(log, logger.ModelFields(string(llm.ProviderGemini), settings.Model)...)
	return &Orchestrator{
		client:   client,
		settings: settings,
		budget:   NewBudget(settings.Limits),
		logger:   log,
	}
}

// Warnings returns the warnings recorded so far.
func (o *Orchestrator) Warnings() []string {
	return append([]string(nil), o.warnings...)
}

// Budget exposes the call and token accounting.
func (o *Orchestrator) Budget() *Budget {
	return o.budget
}

// Call runs one budget-checked, schema-validated provider call.
func (o *Orchestrator) Call(ctx context.Context, spec CallSpec) Result {
	estimate := spec.EstimatedTokens
	if estimate <= 0 {
		estimate = EstimateTokens(spec.System, spec.User)
	}

	if err := o.budget.Check(estimate); err != nil {
		return o.fail(err)
	}
	if !spec.Schema.IsStructuredObject() {
		return o.fail(&SchemaError{Message: "expected an object with properties or required fields"})
	}

	req := &llm.Request{
		Model: o.settings.Model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: spec.System},
			{Role: llm.RoleUser, Content: spec.User + "\n\n" + prompts.MustGet(prompts.JSONOnly)},
		},
		MaxTokens: min(o.settings.MaxOutputTokens, o.settings.MaxTokensPerCall),
		Schema:    spec.Schema,
	}

	o.budget.RecordCall()
	o.logger.Debug("dispatching enhancement call",
		zap.Int("estimated_tokens", estimate),
		zap.Int("calls_used", o.budget.CallsUsed()),
		zap.String("prompt_preview", logger.TruncateForLog(spec.User, 120)))

	resp, err := newCall(o.client, req, o.settings.Timeout, o.settings.DrainGrace, o.logger).run(ctx)
	if err != nil {
		return o.fail(err)
	}

	payload, err := llm.DecodeContent(resp.Content)
	if err != nil {
		return o.fail(&ResponseParseError{Cause: err})
	}
	if err := spec.Schema.Validate(payload); err != nil {
		return o.fail(&ValidationError{Cause: err})
	}

	tokens := usedTokens(resp.Usage, estimate)
	o.budget.RecordTokens(tokens)
	o.logger.Debug("enhancement call succeeded", zap.Int("tokens", tokens), zap.Int("tokens_used", o.budget.TokensUsed()))
	return Result{Success: true, Payload: payload, TokensUsed: tokens}
}

// SuggestionRequest is the material for rewriting suggestions
type SuggestionRequest struct {
	Suggestions []string
	Score       float64
	Resume      string
	Job         string
}

// EnhanceSuggestions rewrites the suggestions. It returns ok=false, with the
// reason in Warnings, whenever the deterministic list should be kept.
func (o *Orchestrator) EnhanceSuggestions(ctx context.Context, in SuggestionRequest) (suggestions []string, ok bool) {
	if len(in.Suggestions) == 0 || !o.settings.Suggestions {
		return nil, false
	}

	resume := o.excerpt(in.Resume, "resume")
	job := o.excerpt(in.Job, "job description")

	var list strings.Builder
	for _, s := range in.Suggestions {
		list.WriteString("- ")
		list.WriteString(s)
		list.WriteString("\n")
	}

	user, err := prompts.Render(prompts.SuggestionsUser, map[string]string{
		"Score":       strconv.FormatFloat(in.Score, 'f', -1, 64),
		"Suggestions": strings.TrimRight(list.String(), "\n"),
		"Job":         job,
		"Resume":      resume,
	})
	if err != nil {
		o.fail(err)
		return nil, false
	}

	result := o.Call(ctx, CallSpec{
		System: prompts.MustGet(prompts.SuggestionsSystem),
		User:   user,
		Schema: SuggestionsSchema(),
	})
	if !result.Success {
		return nil, false
	}

	adapted, err := AdaptSuggestions(result.Payload)
	if err != nil {
		o.fail(err)
		return nil, false
	}
	return adapted, true
}

// excerpt bounds, scrubs and quotes external text for a prompt.
func (o *Orchestrator) excerpt(text, label string) string {
	validation.LogInjectionCheck(o.logger, validation.CheckInjection(text), label)
	runes := []rune(strings.TrimSpace(text))
	if len(runes) > maxExcerptRunes {
		runes = runes[:maxExcerptRunes]
	}
	return validation.QuoteExternalContent(validation.StripInjectionAttempts(string(runes)), label)
}

func (o *Orchestrator) fail(err error) Result {
	warning := Warning(err)
	o.warnings = append(o.warnings, warning)
	o.logger.Warn("enhancement fell back to deterministic suggestions", zap.Error(err))
	return Result{Fallback: true, Error: err.Error()}
}

// Warning renders an enhancement error as a result warning.
func Warning(err error) string {
	var (
		budgetErr  *BudgetError
		schemaErr  *SchemaError
		timeoutErr *TimeoutError
		parseErr   *ResponseParseError
		validErr   *ValidationError
		adaptErr   *AdapterError
	)
	switch {
	case errors.As(err, &budgetErr):
		return "AI enhancement skipped: " + budgetErr.Error()
	case errors.As(err, &schemaErr):
		return "AI enhancement skipped: " + schemaErr.Error()
	case errors.As(err, &timeoutErr):
		return "AI enhancement " + timeoutErr.Error() + "; using standard suggestions"
	case errors.As(err, &parseErr):
		return "AI enhancement returned a " + parseErr.Error() + "; using standard suggestions"
	case errors.As(err, &validErr):
		return "AI enhancement " + summarize(validErr) + "; using standard suggestions"
	case errors.As(err, &adaptErr):
		return "AI enhancement produced an " + adaptErr.Error() + "; using standard suggestions"
	default:
		return fmt.Sprintf("AI enhancement failed: %v; using standard suggestions", err)
	}
}

func summarize(err *ValidationError) string {
	var schemaErr *schemas.ValidationError
	if errors.As(err.Cause, &schemaErr) {
		return "response did not match schema: " + schemaErr.Summary(3)
	}
	return err.Error()
}

func usedTokens(usage *llm.Usage, estimate int) int {
	if usage == nil {
		return estimate
	}
	if usage.TotalTokens > 0 {
		return usage.TotalTokens
	}
	if n := usage.InputTokens + usage.OutputTokens; n > 0 {
		return n
	}
	return estimate
}
