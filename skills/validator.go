package skills

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const (
	// MaxNameLength caps skill names, counted in Unicode scalar
	// values after NFKC normalization.
	MaxNameLength = 64

	// MaxDescriptionLength caps skill descriptions.
	MaxDescriptionLength = 1024

	// MaxCompatibilityLength caps the compatibility field.
	MaxCompatibilityLength = 500
)

// allowedFields is the closed set of frontmatter keys per the Agent
// Skills format. Anything else is reported as unexpected.
var allowedFields = map[string]bool{
	"name":          true,
	"description":   true,
	"license":       true,
	"allowed-tools": true,
	"metadata":      true,
	"compatibility": true,
}

// Result aggregates validation rule violations in check order. An
// empty Errors list means the skill is valid.
type Result struct {
	Errors []string
}

// OK reports whether validation found no violations.
func (r *Result) OK() bool { return len(r.Errors) == 0 }

// Err converts a failed result into a *ValidationError carrying the
// full message list, or nil when the result is clean.
func (r *Result) Err() error {
	if r.OK() {
		return nil
	}
	return &ValidationError{Errors: r.Errors}
}

// Validate checks a skill directory against the full rule set. Every
// applicable rule runs and violations accumulate rather than failing
// fast. Directory-level problems short-circuit, since there is no
// content left to evaluate once they fail.
func Validate(skillDir string) *Result {
	info, err := os.Stat(skillDir)
	if err != nil {
		return &Result{Errors: []string{fmt.Sprintf("Path does not exist: %s", skillDir)}}
	}
	if !info.IsDir() {
		return &Result{Errors: []string{fmt.Sprintf("Not a directory: %s", skillDir)}}
	}

	path, ok := FindSkillFile(skillDir)
	if !ok {
		return &Result{Errors: []string{"Missing required file: SKILL.md"}}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return &Result{Errors: []string{fmt.Sprintf("Failed to read %s: %v", path, err)}}
	}

	doc, err := ParseFrontmatter(string(content))
	if err != nil {
		return &Result{Errors: []string{err.Error()}}
	}

	return ValidateMetadata(doc.Header, filepath.Base(skillDir))
}

// ValidateMetadata applies the rule set to an already-parsed header
// without a filesystem round-trip. dirName is the name of the
// directory the skill lives in; pass "" to skip the match check.
func ValidateMetadata(header map[string]any, dirName string) *Result {
	var errs []string
	errs = append(errs, checkName(header, dirName)...)
	errs = append(errs, checkDescription(header)...)
	errs = append(errs, checkCompatibility(header)...)
	errs = append(errs, checkAllowedFields(header)...)
	return &Result{Errors: errs}
}

// checkName applies the name rules independently, so a name can
// violate the length and character-set rules at the same time and
// report both.
func checkName(header map[string]any, dirName string) []string {
	raw, present := header["name"]
	if !present {
		return []string{"Missing required field in frontmatter: name"}
	}
	value, ok := raw.(string)
	if !ok || strings.TrimSpace(value) == "" {
		return []string{"Field 'name' must be a non-empty string"}
	}

	name := norm.NFKC.String(strings.TrimSpace(value))
	var errs []string

	if n := utf8.RuneCountInString(name); n > MaxNameLength {
		errs = append(errs, fmt.Sprintf(
			"Skill name '%s' exceeds %d character limit (%d chars)", name, MaxNameLength, n))
	}
	if name != strings.ToLower(name) {
		errs = append(errs, fmt.Sprintf("Skill name '%s' must be lowercase", name))
	}
	if strings.HasPrefix(name, "-") || strings.HasSuffix(name, "-") {
		errs = append(errs, "Skill name cannot start or end with a hyphen")
	}
	if strings.Contains(name, "--") {
		errs = append(errs, "Skill name cannot contain consecutive hyphens")
	}
	if hasInvalidRunes(name) {
		errs = append(errs, fmt.Sprintf(
			"Skill name '%s' contains invalid characters. Only letters, digits, and hyphens are allowed.", name))
	}
	if dirName != "" && norm.NFKC.String(dirName) != name {
		errs = append(errs, fmt.Sprintf(
			"Directory name '%s' must match skill name '%s'", dirName, name))
	}
	return errs
}

// hasInvalidRunes reports any rune outside Unicode letters, Unicode
// digits, and the hyphen. Uppercase letters are still letters; they
// are caught by the lowercase rule instead.
func hasInvalidRunes(name string) bool {
	for _, r := range name {
		if r != '-' && !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			return true
		}
	}
	return false
}

func checkDescription(header map[string]any) []string {
	raw, present := header["description"]
	if !present {
		return []string{"Missing required field in frontmatter: description"}
	}
	value, ok := raw.(string)
	if !ok || strings.TrimSpace(value) == "" {
		return []string{"Field 'description' must be a non-empty string"}
	}
	if n := utf8.RuneCountInString(value); n > MaxDescriptionLength {
		return []string{fmt.Sprintf(
			"Description exceeds %d character limit (%d chars)", MaxDescriptionLength, n)}
	}
	return nil
}

func checkCompatibility(header map[string]any) []string {
	value, ok := header["compatibility"].(string)
	if !ok {
		return nil
	}
	if n := utf8.RuneCountInString(value); n > MaxCompatibilityLength {
		return []string{fmt.Sprintf(
			"Compatibility exceeds %d character limit (%d chars)", MaxCompatibilityLength, n)}
	}
	return nil
}

func checkAllowedFields(header map[string]any) []string {
	var extra []string
	for key := range header {
		if !allowedFields[key] {
			extra = append(extra, key)
		}
	}
	if len(extra) == 0 {
		return nil
	}
	sort.Strings(extra)

	allowed := make([]string, 0, len(allowedFields))
	for key := range allowedFields {
		allowed = append(allowed, key)
	}
	sort.Strings(allowed)

	return []string{fmt.Sprintf(
		"Unexpected fields in frontmatter: %s. Allowed fields: %s.",
		strings.Join(extra, ", "), strings.Join(allowed, ", "))}
}
