package skills

import "strings"

// Usage guidance appended after the skill list. It teaches the model
// progressive disclosure: decide from the description, then read the
// skill body from disk only when actually using it.
const skillsUsageGuidance = `Usage:
- The description is the trigger signal: when the user names a skill or the task clearly matches a description, use that skill for the turn.
- To use a skill, read its SKILL.md at the listed path and follow it. Load referenced files only when the task needs them; never bulk-load a skill directory.
- If a named skill is missing from this list or its file cannot be read, say so briefly and continue with the best fallback.
- Mention which skill you are using in one short line. Skills do not carry across turns unless referenced again.`

// RenderSkillsSection renders the session-start summary for an
// already-deduped metadata list. It returns the empty string when the
// list is empty so callers can skip the section entirely. Entries render
// in input order with path separators normalized to forward slashes.
func RenderSkillsSection(skills []SkillMetadata) string {
	if len(skills) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("## Skills\n")
	b.WriteString("These skills were discovered at startup from local sources. Each entry lists a name, description, and the file holding the full instructions.\n")

	for _, skill := range skills {
		path := strings.ReplaceAll(skill.Path, "\\", "/")
		b.WriteString("- " + skill.Name + ": " + skill.Description + " (file: " + path + ")\n")
	}

	b.WriteString(skillsUsageGuidance)
	return b.String()
}
