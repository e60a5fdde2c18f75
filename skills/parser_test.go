package skills

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Test Helpers
// =============================================================================

// createSkill writes a SKILL.md with the given content into a fresh
// skill directory under root and returns the directory path.
func createSkill(t *testing.T, root, name, content string) string {
	t.Helper()
	skillDir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(skillDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(skillDir, "SKILL.md"), []byte(content), 0o644))
	return skillDir
}

const minimalSkill = `---
name: my-skill
description: A test skill
---
# My Skill
`

// =============================================================================
// FindSkillFile Tests
// =============================================================================

func TestFindSkillFileUppercase(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "SKILL.md"), []byte("x"), 0o644))

	path, ok := FindSkillFile(dir)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "SKILL.md"), path)
}

func TestFindSkillFileLowercase(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "skill.md"), []byte("x"), 0o644))

	path, ok := FindSkillFile(dir)
	require.True(t, ok)
	assert.Equal(t, "skill.md", filepath.Base(path))
}

func TestFindSkillFilePrefersUppercase(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "SKILL.md"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "skill.md"), []byte("x"), 0o644))

	path, ok := FindSkillFile(dir)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "SKILL.md"), path)
}

func TestFindSkillFileAbsent(t *testing.T) {
	path, ok := FindSkillFile(t.TempDir())
	assert.False(t, ok)
	assert.Empty(t, path)
}

// =============================================================================
// ParseFrontmatter Tests
// =============================================================================

func TestParseFrontmatterValid(t *testing.T) {
	doc, err := ParseFrontmatter(minimalSkill)
	require.NoError(t, err)

	assert.Equal(t, "my-skill", doc.Header["name"])
	assert.Equal(t, "A test skill", doc.Header["description"])
	assert.Equal(t, "# My Skill\n", doc.Body)
}

func TestParseFrontmatterMissingStart(t *testing.T) {
	_, err := ParseFrontmatter("name: my-skill\n---\n# Body")
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Msg, "must start with YAML frontmatter")
}

func TestParseFrontmatterUnclosed(t *testing.T) {
	_, err := ParseFrontmatter("---\nname: my-skill\n# Body")
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Msg, "not properly closed")
}

func TestParseFrontmatterEmptyHeader(t *testing.T) {
	doc, err := ParseFrontmatter("---\n---\nbody text")
	require.NoError(t, err)
	assert.NotNil(t, doc.Header)
	assert.Empty(t, doc.Header)
	assert.Equal(t, "body text", doc.Body)
}

func TestParseFrontmatterRejectsNonMapping(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "bare scalar", content: "---\njust a string\n---\nbody"},
		{name: "bare list", content: "---\n- one\n- two\n---\nbody"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFrontmatter(tt.content)
			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
		})
	}
}

func TestParseFrontmatterInvalidYAML(t *testing.T) {
	_, err := ParseFrontmatter("---\nname: [unclosed\n---\nbody")
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Msg, "invalid YAML")
}

func TestParseFrontmatterDelimiterIsLineExact(t *testing.T) {
	// Triple hyphens inside a value are not a delimiter; only a line
	// consisting of exactly "---" closes the header.
	content := "---\nname: my-skill\ndescription: uses --- as a separator\n---\nbody --- more\n"
	doc, err := ParseFrontmatter(content)
	require.NoError(t, err)
	assert.Equal(t, "uses --- as a separator", doc.Header["description"])
	assert.Equal(t, "body --- more\n", doc.Body)
}

func TestParseFrontmatterCRLF(t *testing.T) {
	doc, err := ParseFrontmatter("---\r\nname: my-skill\r\ndescription: x\r\n---\r\nbody")
	require.NoError(t, err)
	assert.Equal(t, "my-skill", doc.Header["name"])
}
