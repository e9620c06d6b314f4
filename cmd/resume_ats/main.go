// Package main provides the resume_ats command line tool.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-ats/internal/config"
	"github.com/jonathan/resume-ats/internal/ingestion"
	"github.com/jonathan/resume-ats/internal/logger"
)

// globalFlags are shared by every subcommand
type globalFlags struct {
	verbose bool
	logJSON bool
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}
	root := &cobra.Command{
		Use:           "resume_ats",
		Short:         "Score resumes against job descriptions",
		Long:          "resume_ats scores how well a resume matches a job description the way an applicant tracking system would, and suggests improvements.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Log pipeline details to stderr")
	root.PersistentFlags().BoolVar(&flags.logJSON, "log-json", false, "Write logs as JSON")

	root.AddCommand(
		newAnalyzeCmd(flags),
		newBatchCmd(flags),
		newProfilesCmd(),
		newValidateConfigCmd(),
	)
	return root
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (f *globalFlags) logger() (*zap.Logger, error) {
	log, err := logger.New(f.logJSON, f.verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return log, nil
}

// loadConfig returns nil when no path was given.
func loadConfig(path string) (*config.ATSConfig, error) {
	if path == "" {
		return nil, nil
	}
	return config.LoadFile(path)
}

func readInput(path, what string, log *zap.Logger) (string, error) {
	text, meta, err := ingestion.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", what, err)
	}
	log.Debug("read input",
		zap.String("kind", what),
		zap.String("path", meta.Path),
		zap.String("format", meta.Format),
		zap.String("hash", meta.Hash),
		zap.Int("chars", meta.Chars))
	return text, nil
}
