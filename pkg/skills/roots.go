package skills

import (
	"os"
	"path/filepath"
	"runtime"
)

const (
	skillsDirName     = "skills"
	repoConfigDirName = ".skillkit"
	adminSkillsRoot   = "/etc/skillkit/skills"
)

// RootsForCwd builds the ordered search-root list for a (configHome, cwd)
// pair, highest priority first: repo, user, system, and on unix the admin
// root. Load order matters: dedupe keeps the first entry per name, so the
// ordering here is what makes repo skills shadow user skills and so on.
func RootsForCwd(configHome, cwd string) []SearchRoot {
	var roots []SearchRoot

	if repo, ok := repoSkillsRoot(cwd); ok {
		roots = append(roots, repo)
	}

	roots = append(roots, UserSkillsRoot(configHome), SystemSkillsRoot(configHome))

	if runtime.GOOS != "windows" {
		roots = append(roots, SearchRoot{Path: adminSkillsRoot, Scope: ScopeAdmin})
	}

	return roots
}

// UserSkillsRoot is <configHome>/skills.
func UserSkillsRoot(configHome string) SearchRoot {
	return SearchRoot{
		Path:  filepath.Join(configHome, skillsDirName),
		Scope: ScopeUser,
	}
}

// SystemSkillsRoot is <configHome>/skills/.system, owned by the embedded
// skill installer.
func SystemSkillsRoot(configHome string) SearchRoot {
	return SearchRoot{
		Path:  SystemCacheRootDir(configHome),
		Scope: ScopeSystem,
	}
}

// repoSkillsRoot locates a project-local .skillkit/skills directory.
// Inside a git repository it walks ancestors from cwd up to the repo root
// looking for the nearest one, never escaping the repo boundary. Outside
// git only cwd itself is checked; walking arbitrary parent directories
// would let an untrusted ancestor inject skills.
func repoSkillsRoot(cwd string) (SearchRoot, bool) {
	base := cwd
	if info, err := os.Stat(base); err != nil || !info.IsDir() {
		base = filepath.Dir(base)
	}
	if abs, err := filepath.Abs(base); err == nil {
		base = abs
	}

	repoRoot, inRepo := findGitRoot(base)
	if inRepo {
		dir := base
		for {
			candidate := filepath.Join(dir, repoConfigDirName, skillsDirName)
			if info, err := os.Stat(candidate); err == nil && info.IsDir() {
				return SearchRoot{Path: candidate, Scope: ScopeRepo}, true
			}
			if dir == repoRoot {
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
		return SearchRoot{}, false
	}

	candidate := filepath.Join(base, repoConfigDirName, skillsDirName)
	if info, err := os.Stat(candidate); err == nil && info.IsDir() {
		return SearchRoot{Path: candidate, Scope: ScopeRepo}, true
	}
	return SearchRoot{}, false
}

// findGitRoot walks upward from dir looking for a .git entry.
func findGitRoot(dir string) (string, bool) {
	for {
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
