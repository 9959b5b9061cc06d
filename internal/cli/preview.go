package cli

import (
	"github.com/runoshun/tasksplit/internal/app"
	"github.com/runoshun/tasksplit/internal/usecase"
	"github.com/spf13/cobra"
)

// newPreviewCommand creates the preview command.
func newPreviewCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Show where each section would go without writing",
		Long: `Compute the split and print the summary without touching any file.

Every "## " section is listed with its destination (pending or archive)
and the number of task blocks it contains.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.SplitTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.SplitTasksInput{DryRun: true})
			if err != nil {
				return err
			}

			printSummary(cmd.OutOrStdout(), out, true)
			return nil
		},
	}
}
