package skills

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func outcomeFromRoot(t *testing.T, root string) *LoadOutcome {
	t.Helper()
	outcome := LoadFromRoots(context.Background(), []SearchRoot{{Path: root, Scope: ScopeUser}})
	require.Empty(t, outcome.Errors)
	return outcome
}

func refFor(outcome *LoadOutcome, name string) *SkillReference {
	for _, skill := range outcome.Skills {
		if skill.Name == name {
			return &SkillReference{Name: skill.Name, Path: skill.Path}
		}
	}
	return nil
}

func TestBuildInjections(t *testing.T) {
	root := t.TempDir()
	writeSkill(t, root, "alpha", "alpha-skill", "first")
	writeSkill(t, root, "beta", "beta-skill", "second")
	outcome := outcomeFromRoot(t, root)

	inputs := []UserInput{
		{Text: "please use these"},
		{Skill: refFor(outcome, "alpha-skill")},
		{Skill: refFor(outcome, "beta-skill")},
	}

	injections, warnings := BuildInjections(context.Background(), inputs, outcome)
	assert.Empty(t, warnings)
	require.Len(t, injections, 2)
	assert.Equal(t, "alpha-skill", injections[0].Name)
	assert.Contains(t, injections[0].Content, "# alpha-skill")
	assert.Equal(t, "beta-skill", injections[1].Name)
}

func TestBuildInjectionsDedupesByName(t *testing.T) {
	root := t.TempDir()
	writeSkill(t, root, "alpha", "alpha-skill", "first")
	outcome := outcomeFromRoot(t, root)

	ref := refFor(outcome, "alpha-skill")
	inputs := []UserInput{{Skill: ref}, {Skill: ref}, {Skill: ref}}

	injections, warnings := BuildInjections(context.Background(), inputs, outcome)
	assert.Empty(t, warnings)
	assert.Len(t, injections, 1)
}

func TestBuildInjectionsStaleReferenceSilentlyIgnored(t *testing.T) {
	root := t.TempDir()
	writeSkill(t, root, "alpha", "alpha-skill", "first")
	outcome := outcomeFromRoot(t, root)

	t.Run("unknown name", func(t *testing.T) {
		inputs := []UserInput{{Skill: &SkillReference{Name: "x", Path: "/nowhere/SKILL.md"}}}
		injections, warnings := BuildInjections(context.Background(), inputs, outcome)
		assert.Empty(t, injections)
		assert.Empty(t, warnings)
	})

	t.Run("known name, wrong path", func(t *testing.T) {
		inputs := []UserInput{{Skill: &SkillReference{Name: "alpha-skill", Path: "/stale/SKILL.md"}}}
		injections, warnings := BuildInjections(context.Background(), inputs, outcome)
		assert.Empty(t, injections)
		assert.Empty(t, warnings)
	})
}

func TestBuildInjectionsReadFailureWarns(t *testing.T) {
	root := t.TempDir()
	writeSkill(t, root, "gone", "gone-skill", "about to vanish")
	outcome := outcomeFromRoot(t, root)

	// Delete the file after discovery so the confirmed match fails to read.
	require.NoError(t, os.Remove(filepath.Join(root, "gone", SkillFileName)))

	inputs := []UserInput{{Skill: refFor(outcome, "gone-skill")}}
	injections, warnings := BuildInjections(context.Background(), inputs, outcome)
	assert.Empty(t, injections)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "gone-skill")
}

func TestBuildInjectionsMixedSuccessAndFailure(t *testing.T) {
	root := t.TempDir()
	writeSkill(t, root, "ok", "ok-skill", "stays")
	writeSkill(t, root, "gone", "gone-skill", "vanishes")
	outcome := outcomeFromRoot(t, root)
	require.NoError(t, os.Remove(filepath.Join(root, "gone", SkillFileName)))

	inputs := []UserInput{
		{Skill: refFor(outcome, "ok-skill")},
		{Skill: refFor(outcome, "gone-skill")},
	}

	injections, warnings := BuildInjections(context.Background(), inputs, outcome)
	require.Len(t, injections, 1)
	assert.Equal(t, "ok-skill", injections[0].Name)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "gone-skill")
}

func TestBuildInjectionsCancelledContext(t *testing.T) {
	root := t.TempDir()
	writeSkill(t, root, "alpha", "alpha-skill", "first")
	outcome := outcomeFromRoot(t, root)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	inputs := []UserInput{{Skill: refFor(outcome, "alpha-skill")}}
	injections, warnings := BuildInjections(ctx, inputs, outcome)
	assert.Empty(t, injections, "reads abandoned by cancellation emit nothing")
	assert.Empty(t, warnings, "cancellation is not a skill failure")
}

func TestBuildInjectionsEmptyInputs(t *testing.T) {
	root := t.TempDir()
	writeSkill(t, root, "alpha", "alpha-skill", "first")
	outcome := outcomeFromRoot(t, root)

	injections, warnings := BuildInjections(context.Background(), nil, outcome)
	assert.Empty(t, injections)
	assert.Empty(t, warnings)

	injections, warnings = BuildInjections(context.Background(), []UserInput{{Text: "hi"}}, nil)
	assert.Empty(t, injections)
	assert.Empty(t, warnings)
}
