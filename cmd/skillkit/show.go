package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/jingkaihe/skillkit/pkg/presenter"
	"github.com/jingkaihe/skillkit/pkg/skills"
)

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print the full content of a resolved skill",
	Long: `Resolve the named skill for the current directory and print its full
SKILL.md content, exactly as it would be injected into the conversation.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		showSkill(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func showSkill(cmd *cobra.Command, name string) {
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

	var match *skills.SkillMetadata
	for i := range outcome.Skills {
		if outcome.Skills[i].Name == name {
			match = &outcome.Skills[i]
			break
		}
	}
	if match == nil {
		presenter.Error(errors.Errorf("skill %q not found", name), "Skill not resolved for this directory")
		os.Exit(1)
	}

	// Reuse the injection path so what prints is what the model would see.
	inputs := []skills.UserInput{{Skill: &skills.SkillReference{Name: match.Name, Path: match.Path}}}
	injections, warnings := skills.BuildInjections(cmd.Context(), inputs, outcome)
	for _, warning := range warnings {
		presenter.Warning(warning)
	}
	if len(injections) == 0 {
		os.Exit(1)
	}

	fmt.Printf("# %s (%s)\n# %s\n\n", match.Name, match.Scope, match.Path)
	fmt.Println(skills.ExtractBody(injections[0].Content))
}
