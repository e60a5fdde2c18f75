package cmd

import (
	"fmt"

	"github.com/adalundhe/skillref/skills"
	"github.com/spf13/cobra"
)

// toPromptCmd represents the to-prompt command.
var toPromptCmd = &cobra.Command{
	Use:   "to-prompt <skill-path>...",
	Short: "Render the <available_skills> prompt block",
	Long: `To-prompt reads one or more skill directories and renders the
<available_skills> XML block for splicing into an agent system prompt.

Examples:
  skillref to-prompt ./pdf-reader
  skillref to-prompt ./skills/*/`,
	Args: cobra.MinimumNArgs(1),
	RunE: runToPrompt,
}

func init() {
	rootCmd.AddCommand(toPromptCmd)
}

func runToPrompt(cmd *cobra.Command, args []string) error {
	dirs := make([]string, len(args))
	for i, arg := range args {
		dirs[i] = resolveSkillPath(arg)
	}

	output, err := skills.ToPrompt(dirs)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), output)
	return nil
}
