package skills

// Properties holds the fields parsed from a SKILL.md frontmatter.
// Name and Description are always present and non-blank once a value
// has been constructed by ReadProperties; the remaining fields are
// optional and omitted from serialized output when absent.
type Properties struct {
	Name          string            `json:"name" yaml:"name"`
	Description   string            `json:"description" yaml:"description"`
	License       string            `json:"license,omitempty" yaml:"license,omitempty"`
	Compatibility string            `json:"compatibility,omitempty" yaml:"compatibility,omitempty"`
	AllowedTools  string            `json:"allowed-tools,omitempty" yaml:"allowed-tools,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Document is the parsed form of a SKILL.md file: the decoded YAML
// header and the markdown body that follows the closing delimiter.
type Document struct {
	Header map[string]any
	Body   string
}

// Location pairs skill properties with the resolved filesystem path
// of the SKILL.md file they were read from.
type Location struct {
	Properties *Properties
	Path       string
}
