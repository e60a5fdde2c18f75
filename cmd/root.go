// Package cmd provides CLI commands for the skillref tool.
package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "skillref",
	Short: "Reference tooling for Agent Skills",
	Long: `Skillref validates, inspects, and renders Agent Skill definitions.

A skill is a directory containing a SKILL.md file: YAML frontmatter
describing the skill, followed by markdown instructions.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging()
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func configureLogging() {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

// resolveSkillPath maps a path pointing directly at a SKILL.md or
// skill.md file to its parent directory, so commands accept either
// form.
func resolveSkillPath(path string) string {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return path
	}
	if strings.EqualFold(filepath.Base(path), "skill.md") {
		return filepath.Dir(path)
	}
	return path
}
