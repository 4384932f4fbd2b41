package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thirteen37/comment-divider/internal/config"
	"github.com/thirteen37/comment-divider/internal/format"
)

func newSettingsInitCmd(a *app) *cobra.Command {
	var (
		formatName string
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "init <file>",
		Short: "Write a settings file holding the defaults",
		Long: `Write a settings file holding every default: the presets of the
three divider types, the default limiters and the language table.

The format follows the file extension unless --format is given.

Example:
  comment-divider settings init ~/.config/comment-divider.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSettingsInit(args[0], formatName, force)
		},
	}

	cmd.Flags().StringVar(&formatName, "format", "", "Settings format (json, jsonc, toml, ini)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")

	return cmd
}

func (a *app) runSettingsInit(name, formatName string, force bool) error {
	lookup := name
	if formatName != "" {
		lookup = "settings." + formatName
	}
	handler, _, err := config.HandlerFor(lookup)
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(name); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", name)
		}
	}

	data, err := handler.Serialize(config.Default().Tree(), format.SerializeOptions{})
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}
	if err := os.WriteFile(name, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	fmt.Fprintf(a.out, "Created: %s\n", name)
	return nil
}
