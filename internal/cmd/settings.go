package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/iancoleman/orderedmap"
	"github.com/spf13/cobra"

	"github.com/thirteen37/comment-divider/internal/config"
	"github.com/thirteen37/comment-divider/internal/format"
	"github.com/thirteen37/comment-divider/internal/merge"
)

func newSettingsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Create and edit settings files",
		Long: `Create and edit comment-divider settings files.

The format follows the file extension: .json, .jsonc, .toml or .ini.
Paths are JSON arrays such as '["subheader","sym"]' or dotted keys such
as subheader.sym.`,
	}

	cmd.AddCommand(newSettingsInitCmd(a))
	cmd.AddCommand(newSettingsShowCmd(a))
	cmd.AddCommand(newSettingsGetCmd(a))
	cmd.AddCommand(newSettingsSetCmd(a))
	cmd.AddCommand(newSettingsUnsetCmd(a))

	return cmd
}

// settingsFile is a parsed settings file and the handler for its format.
type settingsFile struct {
	name    string
	handler format.Handler
	tree    any
}

// readSettingsFile parses name. A missing or empty file yields an empty
// tree unless mustExist is set.
func readSettingsFile(name string, mustExist bool) (*settingsFile, error) {
	handler, opts, err := config.HandlerFor(name)
	if err != nil {
		return nil, err
	}
	f := &settingsFile{name: name, handler: handler, tree: orderedmap.New()}

	data, err := os.ReadFile(name)
	if err != nil {
		if os.IsNotExist(err) && !mustExist {
			return f, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return f, nil
	}

	if f.tree, err = handler.Parse(data, opts); err != nil {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", name, err)
	}
	return f, nil
}

// effective returns the tree merged onto the defaults.
func (f *settingsFile) effective() any {
	return merge.Merge(f.handler, config.Default().Tree(), f.tree, config.Paths(f.handler, f.tree))
}

// validate checks that the file still decodes to valid settings.
func (f *settingsFile) validate() error {
	if _, err := config.FromTree(f.handler, f.effective()); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}

func (f *settingsFile) save() error {
	data, err := f.handler.Serialize(f.tree, format.SerializeOptions{})
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}
	if err := os.WriteFile(f.name, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

// parseValue types a command line value: integers and true/false are
// stored as such, anything else as a string.
func parseValue(raw string) any {
	if i, err := strconv.Atoi(raw); err == nil {
		return i
	}
	switch raw {
	case "true":
		return true
	case "false":
		return false
	}
	return raw
}

// printValue writes scalars as text and sections as JSON.
func printValue(w io.Writer, v any) error {
	if om := format.ToOrderedMapPtr(v); om != nil {
		data, err := json.MarshalIndent(om, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to format value: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
	_, err := fmt.Fprintln(w, v)
	return err
}
