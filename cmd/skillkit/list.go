package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jingkaihe/skillkit/pkg/presenter"
	"github.com/jingkaihe/skillkit/pkg/skills"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List skills resolved for the current directory",
	Long: `List every skill visible from the current working directory after
scope resolution, highest-priority source first. Shadowed skills are not
shown. Use --errors to also print files that failed to load.`,
	Run: func(cmd *cobra.Command, _ []string) {
		showErrors, _ := cmd.Flags().GetBool("errors")
		forceReload, _ := cmd.Flags().GetBool("reload")
		listSkills(cmd, showErrors, forceReload)
	},
}

func init() {
	listCmd.Flags().Bool("errors", false, "Also print skill files that failed to load")
	listCmd.Flags().Bool("reload", false, "Bypass the cache and re-walk the search roots")
	rootCmd.AddCommand(listCmd)
}

func listSkills(cmd *cobra.Command, showErrors, forceReload bool) {
	home, err := configHome()
	if err != nil {
		presenter.Error(err, "Failed to determine skillkit home")
		os.Exit(1)
	}
	cwd, err := os.Getwd()
	if err != nil {
		presenter.Error(err, "Failed to determine working directory")
		os.Exit(1)
	}

	manager := skills.NewManager(cmd.Context(), home)
	outcome := manager.GetOrLoad(cmd.Context(), cwd, forceReload)

	if len(outcome.Skills) == 0 {
		presenter.Info("No skills found")
	} else {
		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tSCOPE\tDESCRIPTION\tPATH")
		for _, skill := range outcome.Skills {
			description := skill.Description
			if skill.ShortDescription != "" {
				description = skill.ShortDescription
			}
			if len(description) > 60 {
				description = description[:57] + "..."
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", skill.Name, skill.Scope, description, skill.Path)
		}
		tw.Flush()
	}

	if showErrors {
		for _, skillErr := range outcome.Errors {
			presenter.Warning(fmt.Sprintf("%s: %s", skillErr.Path, skillErr.Message))
		}
	}
}
