package cli

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/tasksplit/internal/app"
	"github.com/runoshun/tasksplit/internal/domain"
	"github.com/runoshun/tasksplit/internal/usecase"
	"github.com/spf13/cobra"
)

// newConfigCommand creates the config command.
func newConfigCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `Manage tasksplit configuration files and settings.`,
		// No RunE: shows subcommand list when called without arguments
	}

	// Add subcommands
	cmd.AddCommand(newConfigShowCommand(c))
	cmd.AddCommand(newConfigTemplateCommand(c))
	cmd.AddCommand(newConfigInitCommand(c))

	return cmd
}

// newConfigShowCommand creates the config show subcommand.
func newConfigShowCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display effective configuration after merging all sources.

Shows which config files were loaded and the final merged configuration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ShowConfigUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ShowConfigInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()

			// Display loaded files section
			_, _ = fmt.Fprintln(w, "[Loaded from]")
			printConfigSource(w, out.GlobalConfig)
			printConfigSource(w, out.RootConfig)

			_, _ = fmt.Fprintln(w)

			// Display effective config in TOML format
			_, _ = fmt.Fprintln(w, "[Effective Config]")
			return formatEffectiveConfig(w, out.EffectiveConfig)
		},
	}
}

func printConfigSource(w io.Writer, info domain.ConfigInfo) {
	if info.Path == "" {
		return
	}
	if info.Exists {
		_, _ = fmt.Fprintf(w, "- %s\n", info.Path)
	} else {
		_, _ = fmt.Fprintf(w, "- %s (not found)\n", info.Path)
	}
}

// formatEffectiveConfig formats the effective config in TOML format.
func formatEffectiveConfig(w io.Writer, cfg *domain.Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// newConfigTemplateCommand creates the config template subcommand.
func newConfigTemplateCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "template",
		Short: "Output configuration template",
		Long: `Output a configuration file template with the default values to stdout.

It does not read existing configuration files and works even if they are broken.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ShowConfigTemplateUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ShowConfigTemplateInput{})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprint(cmd.OutOrStdout(), out.Template)
			return nil
		},
	}
}

// newConfigInitCommand creates the config init subcommand.
func newConfigInitCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate configuration file",
		Long: `Generate .tasksplit.toml in the project root with the default values.

Error conditions:
- Target file already exists: error`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.InitConfigUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.InitConfigInput{})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created config file: %s\n", out.Path)
			return nil
		},
	}
}
