package skills

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeGitRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	return dir
}

func scopesOf(roots []SearchRoot) []Scope {
	scopes := make([]Scope, 0, len(roots))
	for _, root := range roots {
		scopes = append(scopes, root.Scope)
	}
	return scopes
}

func TestRootsForCwdOrdering(t *testing.T) {
	configHome := t.TempDir()
	cwd := t.TempDir()

	roots := RootsForCwd(configHome, cwd)
	expected := []Scope{ScopeUser, ScopeSystem}
	if runtime.GOOS != "windows" {
		expected = append(expected, ScopeAdmin)
	}
	assert.Equal(t, expected, scopesOf(roots))

	assert.Equal(t, filepath.Join(configHome, "skills"), roots[0].Path)
	assert.Equal(t, filepath.Join(configHome, "skills", ".system"), roots[1].Path)
}

func TestRootsForCwdRepoRootFirst(t *testing.T) {
	configHome := t.TempDir()
	repo := makeGitRepo(t)
	skillsDir := filepath.Join(repo, ".skillkit", "skills")
	require.NoError(t, os.MkdirAll(skillsDir, 0o755))

	roots := RootsForCwd(configHome, repo)
	require.NotEmpty(t, roots)
	assert.Equal(t, ScopeRepo, roots[0].Scope)
	assert.Equal(t, skillsDir, roots[0].Path)
}

func TestRepoSkillsRootNearestWins(t *testing.T) {
	repo := makeGitRepo(t)
	nested := filepath.Join(repo, "nested", "inner")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	rootSkills := filepath.Join(repo, ".skillkit", "skills")
	nestedSkills := filepath.Join(repo, "nested", ".skillkit", "skills")
	require.NoError(t, os.MkdirAll(rootSkills, 0o755))
	require.NoError(t, os.MkdirAll(nestedSkills, 0o755))

	root, ok := repoSkillsRoot(nested)
	require.True(t, ok)
	assert.Equal(t, nestedSkills, root.Path)
}

func TestRepoSkillsRootDoesNotEscapeGitRoot(t *testing.T) {
	outer := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(outer, ".skillkit", "skills"), 0o755))

	repo := filepath.Join(outer, "repo")
	require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0o755))

	_, ok := repoSkillsRoot(repo)
	assert.False(t, ok)
}

func TestRepoSkillsRootNonGitChecksOnlyCwd(t *testing.T) {
	outer := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(outer, ".skillkit", "skills"), 0o755))
	nested := filepath.Join(outer, "nested", "inner")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	_, ok := repoSkillsRoot(nested)
	assert.False(t, ok)

	root, ok := repoSkillsRoot(outer)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(outer, ".skillkit", "skills"), root.Path)
}

func TestRepoSkillsRootCwdIsFile(t *testing.T) {
	repo := makeGitRepo(t)
	skillsDir := filepath.Join(repo, ".skillkit", "skills")
	require.NoError(t, os.MkdirAll(skillsDir, 0o755))
	filePath := filepath.Join(repo, "some-file.txt")
	require.NoError(t, os.WriteFile(filePath, []byte("contents"), 0o644))

	root, ok := repoSkillsRoot(filePath)
	require.True(t, ok)
	assert.Equal(t, skillsDir, root.Path)
	assert.Equal(t, ScopeRepo, root.Scope)
}
