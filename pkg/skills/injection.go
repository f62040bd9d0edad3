package skills

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/pkg/errors"
)

// SkillReference is an explicit (name, path) pair supplied by the
// interaction layer when the user selects a skill. Both fields must match
// a prior LoadOutcome entry exactly; stale pairs are tolerated and
// silently ignored rather than rejected.
type SkillReference struct {
	Name string
	Path string
}

// UserInput is one item of the turn's user input. Only the skill
// reference matters here; free text passes through untouched by this
// package.
type UserInput struct {
	Text  string
	Skill *SkillReference
}

// Injection is one conversation-ready entry carrying the full content of
// a referenced skill.
type Injection struct {
	Name    string
	Path    string
	Content string
}

// BuildInjections resolves the turn's explicit skill references against
// the current outcome and loads full content for the confirmed matches.
//
// References are deduped by name (first mention wins) and confirmed by
// name and path; a reference that no longer matches the outcome is
// dropped without a warning. Confirmed matches are read concurrently and
// the call returns when the whole batch settles, so latency is bounded by
// the slowest single read. A read failure becomes one warning naming the
// skill; it never aborts the turn. When ctx is cancelled, reads that have
// not produced a result are abandoned while already-completed reads still
// contribute their entries.
func BuildInjections(ctx context.Context, inputs []UserInput, outcome *LoadOutcome) ([]Injection, []string) {
	if len(inputs) == 0 || outcome == nil {
		return nil, nil
	}

	mentioned := collectSkillMentions(inputs, outcome.Skills)
	if len(mentioned) == 0 {
		return nil, nil
	}

	type readResult struct {
		content string
		err     error
	}

	results := make([]readResult, len(mentioned))
	wg := sync.WaitGroup{}
	wg.Add(len(mentioned))

	for i, skill := range mentioned {
		go func(skill SkillMetadata, i int) {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				results[i] = readResult{err: err}
				return
			}
			content, err := os.ReadFile(skill.Path)
			results[i] = readResult{content: string(content), err: err}
		}(skill, i)
	}

	wg.Wait()

	var injections []Injection
	var warnings []string
	for i, skill := range mentioned {
		res := results[i]
		switch {
		case res.err == nil:
			injections = append(injections, Injection{
				Name:    skill.Name,
				Path:    skill.Path,
				Content: res.content,
			})
		case errors.Is(res.err, context.Canceled), errors.Is(res.err, context.DeadlineExceeded):
			// Abandoned by cancellation, not a skill failure.
		default:
			warnings = append(warnings, fmt.Sprintf(
				"Failed to load skill %s at %s: %v", skill.Name, skill.Path, res.err))
		}
	}

	return injections, warnings
}

// collectSkillMentions extracts the explicit references from the turn's
// inputs, dedupes them by name, and keeps only those still present in the
// outcome by both name and path.
func collectSkillMentions(inputs []UserInput, available []SkillMetadata) []SkillMetadata {
	var selected []SkillMetadata
	seen := make(map[string]struct{})

	for _, input := range inputs {
		ref := input.Skill
		if ref == nil {
			continue
		}
		if _, dup := seen[ref.Name]; dup {
			continue
		}
		seen[ref.Name] = struct{}{}

		for _, skill := range available {
			if skill.Name == ref.Name && skill.Path == ref.Path {
				selected = append(selected, skill)
				break
			}
		}
	}

	return selected
}
