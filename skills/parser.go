package skills

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// delimiter is the frontmatter fence. A delimiter is a line consisting
// of exactly three hyphens, not any line that merely contains them.
const delimiter = "---"

// FindSkillFile locates the skill definition file inside a skill
// directory. SKILL.md is preferred over skill.md. The boolean reports
// whether either exists; absence is a normal outcome, not an error.
func FindSkillFile(skillDir string) (string, bool) {
	for _, name := range []string{"SKILL.md", "skill.md"} {
		path := filepath.Join(skillDir, name)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// ParseFrontmatter splits SKILL.md content into its YAML header and
// markdown body. The document must open with a delimiter line and
// close the header with a second one; the body is everything after
// the closing delimiter, returned verbatim with the leading newline
// stripped.
func ParseFrontmatter(content string) (*Document, error) {
	lines := strings.Split(content, "\n")
	if trimCR(lines[0]) != delimiter {
		return nil, &ParseError{Msg: "SKILL.md must start with YAML frontmatter (---)"}
	}

	end := -1
	for i := 1; i < len(lines); i++ {
		if trimCR(lines[i]) == delimiter {
			end = i
			break
		}
	}
	if end < 0 {
		return nil, &ParseError{Msg: "SKILL.md frontmatter not properly closed with ---"}
	}

	header, err := decodeHeader(strings.Join(lines[1:end], "\n"))
	if err != nil {
		return nil, err
	}

	return &Document{
		Header: header,
		Body:   strings.Join(lines[end+1:], "\n"),
	}, nil
}

// decodeHeader decodes the text between the delimiters as a YAML
// mapping. An empty header decodes to an empty map; any non-mapping
// top-level value is rejected.
func decodeHeader(raw string) (map[string]any, error) {
	var value any
	if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
		return nil, &ParseError{Msg: fmt.Sprintf("invalid YAML in frontmatter: %v", err)}
	}

	if value == nil {
		return map[string]any{}, nil
	}
	header, ok := value.(map[string]any)
	if !ok {
		return nil, &ParseError{Msg: "frontmatter must be a YAML mapping"}
	}
	return header, nil
}

// trimCR tolerates CRLF line endings in delimiter comparisons.
func trimCR(line string) string {
	return strings.TrimSuffix(line, "\r")
}
