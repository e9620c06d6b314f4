package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-ats/internal/ats"
	"github.com/jonathan/resume-ats/internal/config"
	"github.com/jonathan/resume-ats/internal/enhance"
	"github.com/jonathan/resume-ats/internal/llm"
	"github.com/jonathan/resume-ats/internal/logger"
	"github.com/jonathan/resume-ats/internal/observability"
	"github.com/jonathan/resume-ats/internal/types"
)

type analyzeFlags struct {
	resume     string
	job        string
	configFile string
	enhance    bool
	apiKey     string
	jsonOut    bool
	timeout    time.Duration
}

func newAnalyzeCmd(global *globalFlags) *cobra.Command {
	flags := &analyzeFlags{}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Score one resume against one job description",
		Long:  "Score a resume (text, markdown or HTML) against a job description and print the breakdown, keywords, suggestions and warnings.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAnalyze(cmd, global, flags)
		},
	}
	cmd.Flags().StringVarP(&flags.resume, "resume", "r", "", "Path to the resume file")
	cmd.Flags().StringVarP(&flags.job, "job", "j", "", "Path to the job description file")
	cmd.Flags().StringVarP(&flags.configFile, "config", "c", "", "Path to a YAML, JSON or TOML config file")
	cmd.Flags().BoolVar(&flags.enhance, "enhance", false, "Rewrite suggestions with Gemini")
	cmd.Flags().StringVar(&flags.apiKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	cmd.Flags().BoolVar(&flags.jsonOut, "json", false, "Print the result as JSON")
	cmd.Flags().DurationVar(&flags.timeout, "deadline", 2*time.Minute, "Overall deadline for an enhanced analysis")
	_ = cmd.MarkFlagRequired("resume")
	_ = cmd.MarkFlagRequired("job")
	return cmd
}

func runAnalyze(cmd *cobra.Command, global *globalFlags, flags *analyzeFlags) error {
	log, err := global.logger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	cfg, err := loadConfig(flags.configFile)
	if err != nil {
		return err
	}
	resumeText, err := readInput(flags.resume, "resume", log)
	if err != nil {
		return err
	}
	jobText, err := readInput(flags.job, "job description", log)
	if err != nil {
		return err
	}

	var result *types.ATSAnalysisResult
	if flags.enhance {
		result, err = analyzeEnhanced(cmd.Context(), flags, resumeText, jobText, cfg, log)
	} else {
		result, err = ats.Analyze(resumeText, jobText, cfg, ats.WithLogger(log))
	}
	if err != nil {
		return err
	}

	if flags.jsonOut {
		return writeJSON(cmd, result)
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintResult(flags.resume, result)
	return nil
}

func analyzeEnhanced(ctx context.Context, flags *analyzeFlags, resumeText, jobText string, cfg *config.ATSConfig, log *zap.Logger) (*types.ATSAnalysisResult, error) {
	apiKey := flags.apiKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required for --enhance (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	ctx, cancel := context.WithTimeout(ctx, flags.timeout)
	defer cancel()

	llmConfig := llm.DefaultGeminiConfig()
	client, err := llm.NewGeminiClient(ctx, llmConfig, apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	log = logger.WithFields(log, logger.ModelFields(string(llmConfig.Provider), llmConfig.GetModel(llm.TierStandard))...)
	return ats.AnalyzeAsync(ctx, resumeText, jobText, cfg, &enhance.Options{Client: client}, ats.WithLogger(log))
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return nil
}
