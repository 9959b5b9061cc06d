// Package cli provides the command-line interface for tasksplit.
package cli

import (
	"fmt"

	"github.com/runoshun/tasksplit/internal/app"
	"github.com/runoshun/tasksplit/internal/usecase"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupSplit = "split"
	groupSetup = "setup"
)

// NewRootCommand creates the root command for tasksplit.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "tasksplit",
		Short: "Split a task document into open and archived sections",
		Long: `tasksplit rewrites a Markdown task document so that it keeps only the
"## " sections that still contain open tasks ("- [ ]"), and moves every
section without open tasks to an archive document.

Inside a section with open tasks, completed task blocks ("- [x]" and their
nested lines) are dropped. Paths are read from .tasksplit.toml in the
project root; by default docs/900_tasks.md is rewritten in place and
docs/901_tasks_archived.md receives the archive.`,
		Version: version,
		Args:    cobra.NoArgs,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Template output must work even with broken config files
			if cmd.Name() == "template" {
				return nil
			}

			cfg, err := c.ConfigLoader.Load()
			if err != nil {
				// Reported by the command itself
				return nil
			}

			for _, w := range cfg.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.SplitTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.SplitTasksInput{})
			if err != nil {
				return err
			}

			printSummary(cmd.OutOrStdout(), out, false)
			return nil
		},
	}

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupSplit, Title: "Split Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	previewCmd := newPreviewCommand(c)
	previewCmd.GroupID = groupSplit

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	root.AddCommand(
		previewCmd,
		configCmd,
	)

	return root
}
