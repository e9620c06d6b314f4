package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-ats/internal/ats"
	"github.com/jonathan/resume-ats/internal/config"
	"github.com/jonathan/resume-ats/internal/observability"
	"github.com/jonathan/resume-ats/internal/types"
)

type batchFlags struct {
	job         string
	configFile  string
	concurrency int
	jsonOut     bool
}

// batchEntry is the outcome for one resume. Exactly one of Result and Error is set.
type batchEntry struct {
	Resume string                   `json:"resume"`
	Result *types.ATSAnalysisResult `json:"result,omitempty"`
	Error  string                   `json:"error,omitempty"`

	err error
}

func newBatchCmd(global *globalFlags) *cobra.Command {
	flags := &batchFlags{}
	cmd := &cobra.Command{
		Use:   "batch --job FILE RESUME...",
		Short: "Score several resumes against one job description",
		Long:  "Score each resume independently against the same job description. Results are printed in the order the resumes were given.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, global, flags, args)
		},
	}
	cmd.Flags().StringVarP(&flags.job, "job", "j", "", "Path to the job description file")
	cmd.Flags().StringVarP(&flags.configFile, "config", "c", "", "Path to a YAML, JSON or TOML config file")
	cmd.Flags().IntVar(&flags.concurrency, "concurrency", 4, "Maximum number of analyses running at once")
	cmd.Flags().BoolVar(&flags.jsonOut, "json", false, "Print the results as a JSON array")
	_ = cmd.MarkFlagRequired("job")
	return cmd
}

func runBatch(cmd *cobra.Command, global *globalFlags, flags *batchFlags, resumes []string) error {
	if flags.concurrency < 1 {
		return fmt.Errorf("--concurrency must be at least 1")
	}
	log, err := global.logger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	cfg, err := loadConfig(flags.configFile)
	if err != nil {
		return err
	}
	jobText, err := readInput(flags.job, "job description", log)
	if err != nil {
		return err
	}

	entries := analyzeAll(resumes, jobText, cfg, flags.concurrency, log)

	if flags.jsonOut {
		return writeJSON(cmd, entries)
	}
	rows := make([]observability.BatchRow, len(entries))
	for i, e := range entries {
		rows[i] = observability.BatchRow{Label: e.Resume, Err: e.err}
		if e.Result != nil {
			rows[i].Score = e.Result.Score
		}
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintBatchSummary(rows)
	return nil
}

// analyzeAll runs one independent analysis per resume. A failing resume is
// reported in its entry and does not stop the others.
func analyzeAll(resumes []string, jobText string, cfg *config.ATSConfig, limit int, log *zap.Logger) []batchEntry {
	entries := make([]batchEntry, len(resumes))
	var g errgroup.Group
	g.SetLimit(limit)
	for i, path := range resumes {
		g.Go(func() error {
			entries[i] = analyzeOne(path, jobText, cfg, log)
			return nil
		})
	}
	_ = g.Wait()
	return entries
}

func analyzeOne(path, jobText string, cfg *config.ATSConfig, log *zap.Logger) batchEntry {
	entry := batchEntry{Resume: path}
	resumeText, err := readInput(path, "resume", log)
	if err == nil {
		entry.Result, err = ats.Analyze(resumeText, jobText, cfg, ats.WithLogger(log.With(zap.String("resume_path", path))))
	}
	if err != nil {
		entry.err = err
		entry.Error = err.Error()
		log.Debug("resume failed", zap.String("resume_path", path), zap.Error(err))
	}
	return entry
}
