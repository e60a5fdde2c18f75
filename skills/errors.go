package skills

import (
	"errors"
	"strings"
)

// ErrEmptyQuery indicates an empty search query was provided.
var ErrEmptyQuery = errors.New("search query cannot be empty")

// ParseError indicates a structurally malformed skill definition:
// missing or unclosed frontmatter delimiters, invalid YAML, a
// non-mapping header, or a missing SKILL.md file entirely.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string { return e.Msg }

// ValidationError indicates a skill that parsed but violates one or
// more rules. Errors holds every violated rule message, in check
// order, so a single invocation surfaces all defects at once.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Errors, "; ")
}
