package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-ats/internal/skills"
	"github.com/jonathan/resume-ats/internal/types"
)

func newProfilesCmd() *cobra.Command {
	var jsonOut bool
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List the built-in role profiles",
		Long:  "List the built-in role profiles that a config file can select with profile_name.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			builtin := skills.DefaultProfiles()
			names := skills.ProfileNames()
			if jsonOut {
				list := make([]types.Profile, 0, len(names))
				for _, name := range names {
					list = append(list, builtin[name])
				}
				return writeJSON(cmd, list)
			}
			out := cmd.OutOrStdout()
			for _, name := range names {
				p := builtin[name]
				_, _ = fmt.Fprintf(out, "%s\n", name)
				_, _ = fmt.Fprintf(out, "  mandatory: %s\n", strings.Join(p.MandatorySkills, ", "))
				_, _ = fmt.Fprintf(out, "  optional:  %s\n", strings.Join(p.OptionalSkills, ", "))
				if p.MinExperienceYears != nil {
					_, _ = fmt.Fprintf(out, "  min years: %g\n", *p.MinExperienceYears)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the profiles as JSON")
	return cmd
}
