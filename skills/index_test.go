package skills

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLocations() []Location {
	return []Location{
		{
			Properties: &Properties{
				Name:        "pdf-reader",
				Description: "Read and extract text from PDF files",
				Metadata:    map[string]string{"category": "documents"},
			},
			Path: "/skills/pdf-reader/SKILL.md",
		},
		{
			Properties: &Properties{
				Name:        "log-analyzer",
				Description: "Analyze structured log output for anomalies",
			},
			Path: "/skills/log-analyzer/SKILL.md",
		},
	}
}

func TestIndexSearch(t *testing.T) {
	index, err := NewIndex(testLocations())
	require.NoError(t, err)
	defer index.Close()

	matches, err := index.Search(context.Background(), "pdf", 10)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "pdf-reader", matches[0].Location.Properties.Name)
	assert.Greater(t, matches[0].Score, 0.0)
}

func TestIndexSearchMetadataValues(t *testing.T) {
	index, err := NewIndex(testLocations())
	require.NoError(t, err)
	defer index.Close()

	matches, err := index.Search(context.Background(), "documents", 10)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "pdf-reader", matches[0].Location.Properties.Name)
}

func TestIndexSearchEmptyQuery(t *testing.T) {
	index, err := NewIndex(testLocations())
	require.NoError(t, err)
	defer index.Close()

	_, err = index.Search(context.Background(), "   ", 10)
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestIndexSearchLimit(t *testing.T) {
	index, err := NewIndex(testLocations())
	require.NoError(t, err)
	defer index.Close()

	matches, err := index.Search(context.Background(), "extract log", 1)
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestIndexEmpty(t *testing.T) {
	index, err := NewIndex(nil)
	require.NoError(t, err)
	defer index.Close()

	matches, err := index.Search(context.Background(), "anything", 10)
	require.NoError(t, err)
	assert.Empty(t, matches)
}
