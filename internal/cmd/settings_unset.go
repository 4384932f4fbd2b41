package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thirteen37/comment-divider/internal/format"
	"github.com/thirteen37/comment-divider/internal/path"
)

func newSettingsUnsetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unset <file> <path>",
		Short: "Remove a value from a settings file",
		Long: `Remove a value from a settings file so that its default applies again.

Arguments:
  file  Settings file
  path  JSON path array or dotted key (e.g., '["languages","nim"]')

Example:
  comment-divider settings unset settings.json mainHeader.transform`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSettingsUnset(args[0], args[1])
		},
	}
}

func (a *app) runSettingsUnset(name, pathStr string) error {
	p, err := path.Parse(pathStr)
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", pathStr, err)
	}

	f, err := readSettingsFile(name, true)
	if err != nil {
		return err
	}

	segments := p.Segments()
	parent := f.tree
	if len(segments) > 1 {
		var ok bool
		if parent, ok = f.handler.GetPath(f.tree, path.NewArrayPath(segments[:len(segments)-1])); !ok {
			parent = nil
		}
	}

	key := segments[len(segments)-1]
	om := format.ToOrderedMapPtr(parent)
	if om == nil {
		fmt.Fprintf(a.out, "Path %s not set\n", p)
		return nil
	}
	if _, exists := om.Get(key); !exists {
		fmt.Fprintf(a.out, "Path %s not set\n", p)
		return nil
	}
	om.Delete(key)

	if err := f.save(); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Removed %s\n", p)
	return nil
}
