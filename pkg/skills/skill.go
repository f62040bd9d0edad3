// Package skills implements discovery, scope resolution, caching, and
// prompt injection for agent skills. Skills are directories containing a
// SKILL.md file with YAML frontmatter (name, description) followed by
// free-form instructions. At session start only name and description are
// surfaced to the model; the full body is loaded when a skill is
// explicitly referenced (progressive disclosure).
package skills

// SkillFileName is the definition file a skill directory must contain.
const SkillFileName = "SKILL.md"

// Validation limits for frontmatter fields, counted in Unicode code
// points after whitespace normalization.
const (
	MaxNameLen             = 64
	MaxDescriptionLen      = 1024
	MaxShortDescriptionLen = MaxDescriptionLen
)

// Scope identifies the tier a skill's search root belongs to. Scopes form
// a total order: Repo shadows User shadows System shadows Admin on name
// collision. The ordering is fixed at compile time; resolution never
// compares priorities at runtime, it relies on root enumeration order.
type Scope int

const (
	// ScopeRepo is a project-local root inside a trusted git repository.
	ScopeRepo Scope = iota
	// ScopeUser is the per-user root under the skillkit home directory.
	ScopeUser
	// ScopeSystem is the installer-owned root holding bundled skills.
	ScopeSystem
	// ScopeAdmin is the machine-wide root under /etc, unix only.
	ScopeAdmin
)

func (s Scope) String() string {
	switch s {
	case ScopeRepo:
		return "repo"
	case ScopeUser:
		return "user"
	case ScopeSystem:
		return "system"
	case ScopeAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// SkillMetadata is the parsed header of one SKILL.md file. Values are
// immutable after discovery; a skill's identity is its (Name, Path) pair.
type SkillMetadata struct {
	Name             string
	Description      string
	ShortDescription string // optional, empty when absent
	Path             string // absolute path to the SKILL.md file
	Scope            Scope
}

// SkillError records one candidate that failed to load. Errors never
// block sibling skills (fail-open); they exist for diagnostics.
type SkillError struct {
	Path    string
	Message string
}

// LoadOutcome collects discovery results across all roots: successfully
// parsed skills and per-file errors, in traversal order. Neither side
// discards the other, and the zero value (no skills, no errors) is a
// valid terminal state.
type LoadOutcome struct {
	Skills []SkillMetadata
	Errors []SkillError
}
