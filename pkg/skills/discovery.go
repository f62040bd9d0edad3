package skills

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/jingkaihe/skillkit/pkg/logger"
)

// SearchRoot pairs a directory with the scope its skills belong to.
type SearchRoot struct {
	Path  string
	Scope Scope
}

// LoadFromRoots discovers skills under every root in order and merges the
// results. Roots are expected highest priority first; on a name collision
// the first entry seen wins, so "first seen" equals "highest scope wins"
// without any priority comparison at merge time. Shadowed entries are
// silently dropped, never reported as errors.
func LoadFromRoots(ctx context.Context, roots []SearchRoot) *LoadOutcome {
	outcome := &LoadOutcome{}

	for _, root := range roots {
		discoverUnderRoot(ctx, root, outcome)
	}

	seen := make(map[string]struct{}, len(outcome.Skills))
	deduped := outcome.Skills[:0]
	for _, skill := range outcome.Skills {
		if _, exists := seen[skill.Name]; exists {
			continue
		}
		seen[skill.Name] = struct{}{}
		deduped = append(deduped, skill)
	}
	outcome.Skills = deduped

	return outcome
}

// discoverUnderRoot walks one root breadth-first and appends every parse
// attempt to the outcome. Skill hierarchies are shallow, so BFS keeps the
// queue proportional to directory breadth. Hidden entries are skipped
// without descent and symlinks are never followed or parsed. A failed
// directory read records one error and the walk continues with the rest
// of the queue.
func discoverUnderRoot(ctx context.Context, root SearchRoot, outcome *LoadOutcome) {
	rootPath := root.Path
	if abs, err := filepath.Abs(rootPath); err == nil {
		rootPath = abs
	}

	info, err := os.Stat(rootPath)
	if err != nil || !info.IsDir() {
		// A nonexistent root yields zero candidates, never an error.
		return
	}

	queue := []string{rootPath}
	for len(queue) > 0 {
		dir := queue[0]
		queue = queue[1:]

		entries, err := os.ReadDir(dir)
		if err != nil {
			recordError(ctx, root.Scope, outcome, dir, "failed to read directory: "+err.Error())
			continue
		}

		for _, entry := range entries {
			name := entry.Name()
			if strings.HasPrefix(name, ".") {
				continue
			}

			entryPath := filepath.Join(dir, name)
			entryType := entry.Type()

			if entryType&os.ModeSymlink != 0 {
				continue
			}

			if entryType.IsDir() {
				queue = append(queue, entryPath)
				continue
			}

			if !entryType.IsRegular() || name != SkillFileName {
				continue
			}

			skill, err := ParseSkillFile(entryPath, root.Scope)
			if err != nil {
				recordError(ctx, root.Scope, outcome, entryPath, err.Error())
				continue
			}
			outcome.Skills = append(outcome.Skills, *skill)
		}
	}
}

// recordError appends a discovery error, except for the System root:
// system skills ship with the binary, so a broken one is a packaging bug
// the user cannot fix. Those are logged instead of surfaced.
func recordError(ctx context.Context, scope Scope, outcome *LoadOutcome, path, message string) {
	if scope == ScopeSystem {
		logger.G(ctx).WithField("path", path).Debug(message)
		return
	}
	outcome.Errors = append(outcome.Errors, SkillError{Path: path, Message: message})
}
