package skills

import (
	"context"
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"
)

// skillDocument is the indexed shape of a skill.
type skillDocument struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Metadata    string `json:"metadata,omitempty"`
}

// Match is a single search hit, ranked by relevance.
type Match struct {
	Location Location
	Score    float64
}

// Index is an in-memory full-text index over skill names,
// descriptions, and metadata values. It is built once from a
// discovery pass and queried synchronously; nothing is persisted.
type Index struct {
	index bleve.Index
	byID  map[string]Location
}

// NewIndex builds an in-memory index over the given skill locations.
func NewIndex(locations []Location) (*Index, error) {
	index, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("create index: %w", err)
	}

	byID := make(map[string]Location, len(locations))
	batch := index.NewBatch()
	for _, loc := range locations {
		id := loc.Path
		if id == "" {
			id = loc.Properties.Name
		}
		if err := batch.Index(id, newSkillDocument(loc.Properties)); err != nil {
			index.Close()
			return nil, fmt.Errorf("index %s: %w", id, err)
		}
		byID[id] = loc
	}
	if err := index.Batch(batch); err != nil {
		index.Close()
		return nil, fmt.Errorf("commit batch: %w", err)
	}

	return &Index{index: index, byID: byID}, nil
}

func newSkillDocument(props *Properties) skillDocument {
	values := make([]string, 0, len(props.Metadata))
	for _, v := range props.Metadata {
		values = append(values, v)
	}
	return skillDocument{
		Name:        props.Name,
		Description: props.Description,
		Metadata:    strings.Join(values, " "),
	}
}

// Search runs a query string against the index and returns up to
// limit matches ranked by relevance.
func (ix *Index) Search(ctx context.Context, query string, limit int) ([]Match, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	if limit <= 0 {
		limit = 10
	}

	req := bleve.NewSearchRequestOptions(bleve.NewQueryStringQuery(query), limit, 0, false)
	result, err := ix.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	matches := make([]Match, 0, len(result.Hits))
	for _, hit := range result.Hits {
		loc, ok := ix.byID[hit.ID]
		if !ok {
			continue
		}
		matches = append(matches, Match{Location: loc, Score: hit.Score})
	}
	return matches, nil
}

// Close releases index resources.
func (ix *Index) Close() error {
	return ix.index.Close()
}
