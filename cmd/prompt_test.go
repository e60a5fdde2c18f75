package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPromptCommand(t *testing.T) {
	root := t.TempDir()
	one := createSkill(t, root, "skill-one", skillContent("skill-one", "First skill"))
	two := createSkill(t, root, "skill-two", skillContent("skill-two", "Second skill"))

	stdout, _, err := execute(t, "to-prompt", one, two)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stdout, "<available_skills>\n"))
	assert.Equal(t, 2, strings.Count(stdout, "<skill>"))
	assert.Contains(t, stdout, "First skill")
	assert.Contains(t, stdout, "Second skill")
	assert.Contains(t, stdout, "</available_skills>\n")
}

func TestToPromptCommandMissingSkill(t *testing.T) {
	_, _, err := execute(t, "to-prompt", t.TempDir())
	require.Error(t, err)
}
