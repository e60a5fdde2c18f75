package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/adalundhe/skillref/skills"
	"github.com/spf13/cobra"
)

const (
	// searchDefaultLimit is the default number of results.
	searchDefaultLimit = 10

	// searchTimeout bounds a single search invocation.
	searchTimeout = 30 * time.Second
)

var (
	searchRoot   string
	searchLimit  int
	searchJSON   bool
	searchFilter string
)

// searchCmd represents the search command.
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search skills by name and description",
	Long: `Search discovers skills under a root directory, indexes their names,
descriptions, and metadata in memory, and prints matches ranked by
relevance.

Examples:
  skillref search "pdf extraction" --root ./skills
  skillref search reader --root ./skills --json | jq '.[].name'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVar(&searchRoot, "root", ".", "Directory containing skill directories")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "l", searchDefaultLimit, "Maximum number of results")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Output results as JSON")
	searchCmd.Flags().StringVar(&searchFilter, "filter", "", "Glob pattern applied to skill names")
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	ctx, cancel := context.WithTimeout(cmd.Context(), searchTimeout)
	defer cancel()

	locations, err := skills.Discover(searchRoot)
	if err != nil {
		return err
	}
	locations, err = filterLocations(locations, searchFilter)
	if err != nil {
		return err
	}
	slog.Debug("indexing skills", "root", searchRoot, "count", len(locations))

	index, err := skills.NewIndex(locations)
	if err != nil {
		return err
	}
	defer index.Close()

	matches, err := index.Search(ctx, query, searchLimit)
	if err != nil {
		return err
	}

	if searchJSON {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(newMatchOutputs(matches))
	}

	if len(matches) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No matching skills.")
		return nil
	}
	for i, match := range matches {
		fmt.Fprintf(cmd.OutOrStdout(), "%d. %s (%.4f)\n   %s\n",
			i+1, match.Location.Properties.Name, match.Score, match.Location.Properties.Description)
	}
	return nil
}

// matchOutput is the JSON output structure for a search match.
type matchOutput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Location    string  `json:"location,omitempty"`
	Score       float64 `json:"score"`
}

func newMatchOutputs(matches []skills.Match) []matchOutput {
	out := make([]matchOutput, 0, len(matches))
	for _, match := range matches {
		out = append(out, matchOutput{
			Name:        match.Location.Properties.Name,
			Description: match.Location.Properties.Description,
			Location:    match.Location.Path,
			Score:       match.Score,
		})
	}
	return out
}
