// Package rules applies the built-in and user-supplied penalty rules to a scored analysis.
package rules

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-ats/internal/scoring"
	"github.com/jonathan/resume-ats/internal/types"
)

// Fixed built-in penalties
const (
	TablePenalty       = 8.0
	FewSectionsPenalty = 5.0
	MinSections        = 3
)

// Outcome is the accumulated penalty and the warnings that explain it
type Outcome struct {
	Penalty  float64
	Warnings []string
}

func (o *Outcome) add(penalty float64, warning string) {
	o.Penalty += penalty
	if warning != "" {
		o.Warnings = append(o.Warnings, warning)
	}
}

// Engine evaluates rules under one resolved configuration
type Engine struct {
	cfg    *types.ResolvedATSConfig
	logger *zap.Logger
}

// NewEngine returns an Engine. A nil logger is replaced by a no-op logger.
func NewEngine(cfg *types.ResolvedATSConfig, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{cfg: cfg, logger: logger}
}

// NewContext builds the view passed to rule predicates.
func NewContext(resume *types.ParsedResume, job *types.ParsedJobDescription, cfg *types.ResolvedATSConfig, result *scoring.Result) types.RuleContext {
	return types.RuleContext{
		Resume:           resume,
		Job:              job,
		Weights:          cfg.Weights,
		Density:          cfg.Density,
		Breakdown:        result.Breakdown,
		MatchedKeywords:  append([]string(nil), result.MatchedKeywords...),
		OverusedKeywords: append([]string(nil), result.OverusedKeywords...),
		MissingRequired:  append([]string(nil), result.MissingRequired...),
		MissingYears:     result.MissingYears,
	}
}

// Apply runs the built-in rules and then every user rule in declaration order.
// User predicates see a private copy of ctx.
func (e *Engine) Apply(ctx types.RuleContext) Outcome {
	var out Outcome
	e.applyBuiltIn(ctx, &out)
	for _, rule := range e.cfg.Rules {
		e.applyUser(rule, ctx.Clone(), &out)
	}
	return out
}

func (e *Engine) applyBuiltIn(ctx types.RuleContext, out *Outcome) {
	resume := ctx.Resume
	if resume == nil {
		return
	}

	for _, section := range resume.MissingSections() {
		penalty := e.cfg.SectionPenalties.For(section)
		out.add(penalty, fmt.Sprintf("Missing required section: %s (-%s)", section, formatPenalty(penalty)))
	}

	if resume.HasTableLayout {
		out.add(TablePenalty, fmt.Sprintf("Table or column layout detected; ATS parsers may misread it (-%s)", formatPenalty(TablePenalty)))
	}

	if n := len(ctx.OverusedKeywords); n > 0 {
		penalty := float64(n) * e.cfg.Density.OverusePenalty
		out.add(penalty, fmt.Sprintf("Keyword stuffing detected: %s (-%s)", strings.Join(ctx.OverusedKeywords, ", "), formatPenalty(penalty)))
	}

	if n := len(resume.Sections); n < MinSections {
		out.add(FewSectionsPenalty, fmt.Sprintf("Only %d sections detected (-%s)", n, formatPenalty(FewSectionsPenalty)))
	}
}

// applyUser evaluates one user rule. A panicking predicate is skipped with a warning.
func (e *Engine) applyUser(rule types.Rule, ctx types.RuleContext, out *Outcome) {
	if rule.When == nil {
		return
	}
	matched, err := evaluate(rule, ctx)
	if err != nil {
		e.logger.Warn("rule predicate failed", zap.String("rule", rule.ID), zap.Error(err))
		out.Warnings = append(out.Warnings, fmt.Sprintf("Rule %s failed: %v", rule.ID, err))
		return
	}
	if matched {
		e.logger.Debug("rule matched", zap.String("rule", rule.ID), zap.Float64("penalty", rule.Penalty))
		out.add(max(rule.Penalty, 0), rule.Warning)
	}
}

func evaluate(rule types.Rule, ctx types.RuleContext) (matched bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return rule.When(ctx), nil
}

// FinalScore subtracts the penalty from the composite, clamps to [0, 100] and rounds.
func FinalScore(composite, penalty float64) float64 {
	return math.Round(max(0, min(100, composite-penalty)))
}

func formatPenalty(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
