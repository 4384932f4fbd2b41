package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thirteen37/comment-divider/internal/path"
)

func newSettingsGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <file> <path>",
		Short: "Print one effective setting",
		Long: `Print the effective value at a path: the value in the settings file,
or the default when the file does not set it. Sections print as JSON.

Arguments:
  file  Settings file (it does not need to exist)
  path  JSON path array or dotted key (e.g., subheader.sym)

Example:
  comment-divider settings get settings.toml '["languages","python"]'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSettingsGet(args[0], args[1])
		},
	}
}

func (a *app) runSettingsGet(name, pathStr string) error {
	p, err := path.Parse(pathStr)
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", pathStr, err)
	}

	f, err := readSettingsFile(name, false)
	if err != nil {
		return err
	}

	v, ok := f.handler.GetPath(f.effective(), p)
	if !ok {
		return fmt.Errorf("no setting at %s", p)
	}
	return printValue(a.out, v)
}
