package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCommandValidSkill(t *testing.T) {
	dir := createSkill(t, t.TempDir(), "my-skill", skillContent("my-skill", "A test skill"))

	stdout, _, err := execute(t, "validate", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Valid skill: "+dir)
}

func TestValidateCommandInvalidSkill(t *testing.T) {
	dir := createSkill(t, t.TempDir(), "My--Skill", skillContent("My--Skill", "A test skill"))

	_, stderr, err := execute(t, "validate", dir)
	require.Error(t, err)
	assert.Contains(t, stderr, "Validation failed for "+dir)
	assert.Contains(t, stderr, "lowercase")
	assert.Contains(t, stderr, "consecutive hyphens")
}

func TestValidateCommandMissingSkillFile(t *testing.T) {
	dir := t.TempDir()

	_, stderr, err := execute(t, "validate", dir)
	require.Error(t, err)
	assert.Contains(t, stderr, "Missing required file: SKILL.md")
}

func TestValidateCommandAcceptsSkillFilePath(t *testing.T) {
	dir := createSkill(t, t.TempDir(), "my-skill", skillContent("my-skill", "A test skill"))

	stdout, _, err := execute(t, "validate", filepath.Join(dir, "SKILL.md"))
	require.NoError(t, err)
	assert.Contains(t, stdout, "Valid skill: "+dir)
}
