package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jingkaihe/skillkit/pkg/presenter"
	"github.com/jingkaihe/skillkit/pkg/skills"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Render the session-start skills section",
	Long: `Render the "## Skills" summary block exactly as it would be injected
into the system prompt at session start. Prints nothing when no skills
resolve for the current directory.`,
	Run: func(cmd *cobra.Command, _ []string) {
		renderPrompt(cmd)
	},
}

func init() {
	rootCmd.AddCommand(promptCmd)
}

func renderPrompt(cmd *cobra.Command) {
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
	outcome := manager.GetOrLoad(cmd.Context(), cwd, false)

	if section := skills.RenderSkillsSection(outcome.Skills); section != "" {
		fmt.Println(section)
	}
}
