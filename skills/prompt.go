package skills

import (
	"path/filepath"
	"strings"
)

// htmlEscaper rewrites the five HTML-significant characters to their
// entity forms in a single pass, so already-written entities are
// never escaped twice.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
)

// RenderPrompt emits the <available_skills> XML block for the given
// skill locations, in input order, one tag or text segment per line.
// Name and description text is HTML-escaped; location paths are
// emitted as-is.
func RenderPrompt(locations []Location) string {
	lines := []string{"<available_skills>"}
	for _, loc := range locations {
		lines = append(lines,
			"<skill>",
			"<name>",
			htmlEscaper.Replace(loc.Properties.Name),
			"</name>",
			"<description>",
			htmlEscaper.Replace(loc.Properties.Description),
			"</description>",
		)
		if loc.Path != "" {
			lines = append(lines, "<location>", loc.Path, "</location>")
		}
		lines = append(lines, "</skill>")
	}
	lines = append(lines, "</available_skills>")
	return strings.Join(lines, "\n")
}

// ToPrompt reads each skill directory and renders the prompt block
// for inclusion in an agent system prompt.
func ToPrompt(skillDirs []string) (string, error) {
	locations := make([]Location, 0, len(skillDirs))
	for _, dir := range skillDirs {
		props, err := ReadProperties(dir)
		if err != nil {
			return "", err
		}
		loc := Location{Properties: props}
		if path, ok := FindSkillFile(dir); ok {
			loc.Path = resolvePath(path)
		}
		locations = append(locations, loc)
	}
	return RenderPrompt(locations), nil
}

// resolvePath canonicalizes a path, resolving relative segments and
// symlinks. Falls back to the absolute form when symlink resolution
// fails, and to the input when even that fails.
func resolvePath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}
