package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-ats/internal/config"
	"github.com/jonathan/resume-ats/internal/enhance"
)

func newValidateConfigCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "validate-config",
		Short: "Check a config file without running an analysis",
		Long:  "Load a config file, check it against the config schema and report anything that would be ignored or defaulted at analysis time.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadFile(path)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			resolved := config.Resolve(cfg)
			if cfg.LLM != nil {
				if _, err := enhance.ResolveSettings(cfg.LLM); err != nil {
					return fmt.Errorf("invalid llm section: %w", err)
				}
			}
			for _, w := range resolved.Warnings {
				_, _ = fmt.Fprintf(out, "Warning: %s\n", w)
			}
			_, _ = fmt.Fprintf(out, "Config OK: %s (%d rules)\n", path, len(resolved.Rules))
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "config", "c", "", "Path to the config file")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}
