package cmd

import (
	"fmt"

	"github.com/adalundhe/skillref/skills"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command.
var validateCmd = &cobra.Command{
	Use:   "validate <skill-path>",
	Short: "Validate a skill directory",
	Long: `Validate checks that a skill directory contains a SKILL.md with
well-formed frontmatter, the required fields, and a conforming name.

Every violated rule is reported at once rather than stopping at the
first failure.

Examples:
  skillref validate ./my-skill
  skillref validate ./my-skill/SKILL.md`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	skillPath := resolveSkillPath(args[0])

	result := skills.Validate(skillPath)
	if result.OK() {
		fmt.Fprintf(cmd.OutOrStdout(), "Valid skill: %s\n", skillPath)
		return nil
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Validation failed for %s:\n", skillPath)
	for _, msg := range result.Errors {
		fmt.Fprintf(cmd.ErrOrStderr(), "  - %s\n", msg)
	}
	return fmt.Errorf("skill validation failed with %d error(s)", len(result.Errors))
}
