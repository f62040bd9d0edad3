package skills

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// maxFrontmatterBytes caps the YAML header size. SKILL.md files are
// untrusted input; a multi-megabyte header is rejected before it reaches
// the YAML decoder.
const maxFrontmatterBytes = 64 * 1024

// ErrMissingFrontmatter is returned when a SKILL.md file has no
// "---"-delimited YAML frontmatter block, or the block is unterminated.
var ErrMissingFrontmatter = errors.New("missing YAML frontmatter delimited by ---")

// InvalidHeaderError wraps a structural failure while decoding the
// frontmatter block.
type InvalidHeaderError struct {
	Cause error
}

func (e *InvalidHeaderError) Error() string {
	return fmt.Sprintf("invalid frontmatter: %v", e.Cause)
}

func (e *InvalidHeaderError) Unwrap() error { return e.Cause }

// MissingFieldError indicates a required frontmatter field is absent or
// empty after whitespace normalization.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field `%s`", e.Field)
}

// InvalidFieldError indicates a frontmatter field violates its documented
// constraints.
type InvalidFieldError struct {
	Field  string
	Reason string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// frontmatter mirrors the YAML header of a SKILL.md file. The optional
// short description nests under a metadata mapping:
//
//	---
//	name: pdf-editor
//	description: Edit PDF files ...
//	metadata:
//	  short-description: Edit PDFs
//	---
type frontmatter struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Metadata    struct {
		ShortDescription string `yaml:"short-description"`
	} `yaml:"metadata"`
}

// ParseSkillFile reads and validates one SKILL.md file. On success it
// returns metadata tagged with the given scope; on failure it returns a
// typed error (ErrMissingFrontmatter, *InvalidHeaderError,
// *MissingFieldError, *InvalidFieldError) or a wrapped read error. No
// partial metadata is ever returned.
func ParseSkillFile(path string, scope Scope) (*SkillMetadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read skill file")
	}

	header, ok := extractFrontmatter(string(content))
	if !ok {
		return nil, ErrMissingFrontmatter
	}
	if len(header) > maxFrontmatterBytes {
		return nil, &InvalidHeaderError{Cause: errors.Errorf("frontmatter exceeds %d bytes", maxFrontmatterBytes)}
	}

	var fm frontmatter
	if err := yaml.Unmarshal([]byte(header), &fm); err != nil {
		return nil, &InvalidHeaderError{Cause: err}
	}

	name := sanitizeSingleLine(fm.Name)
	description := sanitizeSingleLine(fm.Description)
	shortDescription := sanitizeSingleLine(fm.Metadata.ShortDescription)

	if err := validateField(name, MaxNameLen, "name"); err != nil {
		return nil, err
	}
	if err := validateField(description, MaxDescriptionLen, "description"); err != nil {
		return nil, err
	}
	if shortDescription != "" {
		if err := validateField(shortDescription, MaxShortDescriptionLen, "metadata.short-description"); err != nil {
			return nil, err
		}
	}

	resolved, err := filepath.Abs(path)
	if err != nil {
		resolved = path
	}
	if real, err := filepath.EvalSymlinks(resolved); err == nil {
		resolved = real
	}

	return &SkillMetadata{
		Name:             name,
		Description:      description,
		ShortDescription: shortDescription,
		Path:             resolved,
		Scope:            scope,
	}, nil
}

// extractFrontmatter returns the YAML between the opening and closing ---
// delimiters. The opening delimiter must be the first line; an empty or
// unterminated block counts as missing.
func extractFrontmatter(content string) (string, bool) {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return "", false
	}

	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			if i == 1 {
				return "", false
			}
			return strings.Join(lines[1:i], "\n"), true
		}
	}

	return "", false
}

// sanitizeSingleLine collapses all whitespace runs (newlines and tabs
// included) into single spaces so metadata renders as one line.
func sanitizeSingleLine(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}

func validateField(value string, maxLen int, field string) error {
	if value == "" {
		return &MissingFieldError{Field: field}
	}
	if len([]rune(value)) > maxLen {
		return &InvalidFieldError{
			Field:  field,
			Reason: fmt.Sprintf("exceeds maximum length of %d characters", maxLen),
		}
	}
	return nil
}

// ExtractBody returns the instructional text after the frontmatter block,
// used verbatim as injection content. Content without frontmatter is
// returned unchanged.
func ExtractBody(content string) string {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return content
	}

	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			return strings.TrimLeft(strings.Join(lines[i+1:], "\n"), "\n")
		}
	}

	return content
}
