package cmd

import (
	"encoding/json"

	"github.com/adalundhe/skillref/skills"
	"github.com/spf13/cobra"
)

// readPropertiesCmd represents the read-properties command.
var readPropertiesCmd = &cobra.Command{
	Use:   "read-properties <skill-path>",
	Short: "Print skill properties as JSON",
	Long: `Read-properties parses the YAML frontmatter from a skill's SKILL.md
and prints the properties as JSON. Absent optional fields are omitted
from the output.

This does not run the full validation rule set; use "skillref validate"
to check conformance.`,
	Args: cobra.ExactArgs(1),
	RunE: runReadProperties,
}

func init() {
	rootCmd.AddCommand(readPropertiesCmd)
}

func runReadProperties(cmd *cobra.Command, args []string) error {
	skillPath := resolveSkillPath(args[0])

	props, err := skills.ReadProperties(skillPath)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(props)
}
