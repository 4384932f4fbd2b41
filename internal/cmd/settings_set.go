package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thirteen37/comment-divider/internal/path"
)

func newSettingsSetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <file> <path> <value>",
		Short: "Set a value in a settings file",
		Long: `Set a value in a settings file, creating the file if needed.
Integers and true/false are stored typed, other values as strings.
The change is rejected if the resulting settings are invalid.

Arguments:
  file   Settings file (.json, .jsonc, .toml or .ini)
  path   JSON path array or dotted key (e.g., subheader.lineLen)
  value  New value

Example:
  comment-divider settings set settings.toml subheader.sym =
  comment-divider settings set settings.toml '["languages","nim"]' '#'`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSettingsSet(args[0], args[1], args[2])
		},
	}
}

func (a *app) runSettingsSet(name, pathStr, raw string) error {
	p, err := path.Parse(pathStr)
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", pathStr, err)
	}

	f, err := readSettingsFile(name, false)
	if err != nil {
		return err
	}

	if err := f.handler.SetPath(f.tree, p, parseValue(raw)); err != nil {
		return fmt.Errorf("failed to set %s: %w", p, err)
	}
	if err := f.validate(); err != nil {
		return err
	}
	if err := f.save(); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Set %s = %s\n", p, raw)
	return nil
}
