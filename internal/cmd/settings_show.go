package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thirteen37/comment-divider/internal/format"
)

func newSettingsShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <file>",
		Short: "Print the effective settings",
		Long: `Merge a settings file onto the defaults and print the result in the
format of the file. Keys missing from the file show their default.

Example:
  comment-divider settings show settings.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSettingsShow(args[0])
		},
	}
}

func (a *app) runSettingsShow(name string) error {
	f, err := readSettingsFile(name, false)
	if err != nil {
		return err
	}
	if err := f.validate(); err != nil {
		return err
	}

	output, err := f.handler.Serialize(f.effective(), format.SerializeOptions{})
	if err != nil {
		return fmt.Errorf("failed to serialize result: %w", err)
	}

	_, err = a.out.Write(output)
	return err
}
