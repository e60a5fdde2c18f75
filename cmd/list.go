package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/adalundhe/skillref/skills"
	"github.com/gobwas/glob"
	"github.com/spf13/cobra"
)

var (
	listRoot   string
	listJSON   bool
	listFilter string
)

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List skills under a root directory",
	Long: `List discovers every readable skill directly under a root directory
and prints its name and description. Children that are not valid skill
directories are skipped.

Examples:
  skillref list --root ./skills
  skillref list --root ./skills --filter "pdf-*" --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVar(&listRoot, "root", ".", "Directory containing skill directories")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	listCmd.Flags().StringVar(&listFilter, "filter", "", "Glob pattern applied to skill names")
}

func runList(cmd *cobra.Command, args []string) error {
	locations, err := skills.Discover(listRoot)
	if err != nil {
		return err
	}

	locations, err = filterLocations(locations, listFilter)
	if err != nil {
		return err
	}
	slog.Debug("discovered skills", "root", listRoot, "count", len(locations))

	if listJSON {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(newSkillOutputs(locations))
	}

	for _, loc := range locations {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", loc.Properties.Name, loc.Properties.Description)
	}
	return nil
}

// filterLocations keeps locations whose skill name matches the glob
// pattern. An empty pattern keeps everything.
func filterLocations(locations []skills.Location, pattern string) ([]skills.Location, error) {
	if pattern == "" {
		return locations, nil
	}

	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid filter pattern %q: %w", pattern, err)
	}

	filtered := make([]skills.Location, 0, len(locations))
	for _, loc := range locations {
		if g.Match(loc.Properties.Name) {
			filtered = append(filtered, loc)
		}
	}
	return filtered, nil
}

// skillOutput is the JSON output structure for a discovered skill.
type skillOutput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location,omitempty"`
}

func newSkillOutputs(locations []skills.Location) []skillOutput {
	out := make([]skillOutput, 0, len(locations))
	for _, loc := range locations {
		out = append(out, skillOutput{
			Name:        loc.Properties.Name,
			Description: loc.Properties.Description,
			Location:    loc.Path,
		})
	}
	return out
}
