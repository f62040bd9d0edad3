package skills

import (
	"crypto/sha256"
	"embed"
	"encoding/hex"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Bundled system skills, compiled into the binary. They are materialized
// under <configHome>/skills/.system at startup so the regular discovery
// path picks them up like any other root.
//
//go:embed assets
var systemSkillsFS embed.FS

const (
	systemSkillsAssetRoot = "assets"
	systemSkillsDirName   = ".system"
	systemSkillsMarker    = ".skillkit-system-skills.marker"
	// Bump the salt to force a reinstall when the fingerprint format
	// changes.
	systemSkillsMarkerSalt = "v1"
)

// SystemCacheRootDir returns the directory the bundled skills are
// installed into: <configHome>/skills/.system.
func SystemCacheRootDir(configHome string) string {
	return filepath.Join(configHome, skillsDirName, systemSkillsDirName)
}

// InstallSystemSkills materializes the bundled skill set under the system
// root. A marker file holds the fingerprint of the last installed set;
// when it matches the embedded content and the directory exists, the call
// is a no-op. Otherwise the installed directory is replaced wholesale and
// the marker rewritten. Errors are returned for logging; callers must not
// treat them as fatal.
func InstallSystemSkills(configHome string) error {
	skillsRoot := filepath.Join(configHome, skillsDirName)
	if err := os.MkdirAll(skillsRoot, 0o755); err != nil {
		return errors.Wrap(err, "failed to create skills root directory")
	}

	destDir := SystemCacheRootDir(configHome)
	markerPath := filepath.Join(destDir, systemSkillsMarker)

	fingerprint, err := embeddedFingerprint()
	if err != nil {
		return errors.Wrap(err, "failed to fingerprint embedded skills")
	}

	if installed, err := readMarker(markerPath); err == nil && installed == fingerprint {
		if info, err := os.Stat(destDir); err == nil && info.IsDir() {
			return nil
		}
	}

	if err := os.RemoveAll(destDir); err != nil {
		return errors.Wrap(err, "failed to remove existing system skills directory")
	}

	if err := writeEmbeddedTree(destDir); err != nil {
		return err
	}

	if err := os.WriteFile(markerPath, []byte(fingerprint+"\n"), 0o644); err != nil {
		return errors.Wrap(err, "failed to write system skills marker")
	}

	return nil
}

func readMarker(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(content)), nil
}

// embeddedFingerprint hashes the relative path and content of every
// bundled file, in sorted path order so the result is deterministic
// across builds of the same asset set.
func embeddedFingerprint() (string, error) {
	type fileHash struct {
		path string
		sum  [sha256.Size]byte
	}

	var files []fileHash
	err := fs.WalkDir(systemSkillsFS, systemSkillsAssetRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		content, err := systemSkillsFS.ReadFile(path)
		if err != nil {
			return err
		}
		rel := strings.TrimPrefix(path, systemSkillsAssetRoot+"/")
		files = append(files, fileHash{path: rel, sum: sha256.Sum256(content)})
		return nil
	})
	if err != nil {
		return "", err
	}

	sort.Slice(files, func(i, j int) bool { return files[i].path < files[j].path })

	hasher := sha256.New()
	hasher.Write([]byte(systemSkillsMarkerSalt))
	for _, f := range files {
		hasher.Write([]byte(f.path))
		hasher.Write(f.sum[:])
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// writeEmbeddedTree copies every bundled file to destDir, preserving the
// directory layout. Per-file failures are aggregated so one unwritable
// skill does not hide the rest of the report.
func writeEmbeddedTree(destDir string) error {
	var result *multierror.Error

	err := fs.WalkDir(systemSkillsFS, systemSkillsAssetRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel := strings.TrimPrefix(path, systemSkillsAssetRoot)
		rel = strings.TrimPrefix(rel, "/")
		target := filepath.Join(destDir, filepath.FromSlash(rel))

		if d.IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				result = multierror.Append(result, errors.Wrapf(err, "failed to create %s", target))
			}
			return nil
		}

		content, err := systemSkillsFS.ReadFile(path)
		if err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "failed to read embedded %s", path))
			return nil
		}
		if err := os.WriteFile(target, content, 0o644); err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "failed to write %s", target))
		}
		return nil
	})
	if err != nil {
		result = multierror.Append(result, err)
	}

	return result.ErrorOrNil()
}
