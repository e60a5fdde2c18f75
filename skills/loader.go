package skills

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReadProperties reads skill properties from the SKILL.md frontmatter
// inside skillDir. It checks only that the two required fields are
// present and non-blank; the full rule set belongs to Validate, so
// unknown extra fields are accepted here.
func ReadProperties(skillDir string) (*Properties, error) {
	props, _, err := ReadFull(skillDir)
	return props, err
}

// ReadFull reads skill properties plus the markdown body.
func ReadFull(skillDir string) (*Properties, string, error) {
	path, ok := FindSkillFile(skillDir)
	if !ok {
		return nil, "", &ParseError{Msg: fmt.Sprintf("no SKILL.md found in %s", skillDir)}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", path, err)
	}

	doc, err := ParseFrontmatter(string(content))
	if err != nil {
		return nil, "", err
	}

	props, err := propertiesFromHeader(doc.Header)
	if err != nil {
		return nil, "", err
	}
	return props, doc.Body, nil
}

// Discover returns every readable skill directly under root. Children
// that are not valid skill directories are skipped. Order follows the
// directory listing, which os.ReadDir keeps sorted by name.
func Discover(root string) ([]Location, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read skills dir: %w", err)
	}

	var locations []Location
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(root, entry.Name())
		props, err := ReadProperties(dir)
		if err != nil {
			continue
		}
		path, _ := FindSkillFile(dir)
		locations = append(locations, Location{
			Properties: props,
			Path:       resolvePath(path),
		})
	}
	return locations, nil
}

func propertiesFromHeader(header map[string]any) (*Properties, error) {
	for _, field := range []string{"name", "description"} {
		if _, ok := header[field]; !ok {
			return nil, &ValidationError{
				Errors: []string{"Missing required field in frontmatter: " + field},
			}
		}
	}

	name, ok := header["name"].(string)
	if !ok || strings.TrimSpace(name) == "" {
		return nil, &ValidationError{
			Errors: []string{"Field 'name' must be a non-empty string"},
		}
	}
	description, ok := header["description"].(string)
	if !ok || strings.TrimSpace(description) == "" {
		return nil, &ValidationError{
			Errors: []string{"Field 'description' must be a non-empty string"},
		}
	}

	props := &Properties{
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
	}
	if v, ok := header["license"].(string); ok {
		props.License = v
	}
	if v, ok := header["compatibility"].(string); ok {
		props.Compatibility = v
	}
	if v, ok := header["allowed-tools"].(string); ok {
		props.AllowedTools = v
	}
	if v, ok := header["metadata"].(map[string]any); ok {
		props.Metadata = stringifyMetadata(v)
	}
	return props, nil
}

// stringifyMetadata coerces every metadata value to its string
// representation: strings pass through, other scalars go through
// fmt.Sprint, and nested collections render as compact JSON.
func stringifyMetadata(m map[string]any) map[string]string {
	result := make(map[string]string, len(m))
	for k, v := range m {
		result[k] = stringifyValue(v)
	}
	return result
}

func stringifyValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []any, map[string]any:
		if data, err := json.Marshal(val); err == nil {
			return string(data)
		}
		return fmt.Sprint(val)
	default:
		return fmt.Sprint(val)
	}
}
