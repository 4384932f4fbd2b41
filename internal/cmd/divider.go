package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thirteen37/comment-divider/internal/action"
	"github.com/thirteen37/comment-divider/internal/divider"
	"github.com/thirteen37/comment-divider/internal/editor"
	"github.com/thirteen37/comment-divider/internal/render"
)

// stdinArg is the file argument that reads standard input.
const stdinArg = "-"

func newDividerCmd(a *app, use, short string, t divider.Type) *cobra.Command {
	var (
		lines   []int
		selects []string
		write   bool
	)

	cmd := &cobra.Command{
		Use:   use + " <file|->",
		Short: short,
		Long: short + ` on the given lines of a file.

Lines are 1-based. A selection is written L[:C][-L[:C]] with 0-based
columns; a range ending at column 0 of a line does not include that line,
and a range end without a column includes the whole end line. Without
--line or --select the first line is used.

The result is printed to stdout unless --write is given.

Example:
  comment-divider ` + use + ` main.go --line 12 --write
  comment-divider ` + use + ` --lang python --select 3-5 - < script.py`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDivider(t, args[0], lines, selects, write)
		},
	}

	cmd.Flags().IntSliceVarP(&lines, "line", "l", nil, "Line to transform, 1-based (repeatable)")
	cmd.Flags().StringArrayVarP(&selects, "select", "s", nil, "Selection as L[:C][-L[:C]] (repeatable)")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write the result back to the file")

	return cmd
}

func (a *app) runDivider(t divider.Type, file string, lines []int, selects []string, write bool) error {
	if write && file == stdinArg {
		return fmt.Errorf("--write needs a file, not stdin")
	}

	selections, err := parseSelections(lines, selects)
	if err != nil {
		return err
	}

	content, err := a.readInput(file)
	if err != nil {
		return err
	}

	provider, err := a.provider()
	if err != nil {
		return err
	}

	buf := editor.NewBuffer(string(content), a.language(file, content))
	buf.SetSelections(selections...)

	n := newNotifier(a.errOut)
	runner := action.NewRunner(action.New(provider, render.New(provider)), n, action.WithLogger(a.logger))
	runner.Run(editor.StaticHost{Doc: buf}, t)
	if n.failed {
		return errReported
	}

	if write {
		a.logger.Debug("writing file", slog.String("path", file))
		return writeFile(file, buf.String())
	}
	_, err = io.WriteString(a.out, buf.String())
	return err
}

func (a *app) readInput(file string) ([]byte, error) {
	if file == stdinArg {
		data, err := io.ReadAll(a.in)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file, err)
	}
	return data, nil
}

// writeFile replaces the contents of file, keeping its permissions.
func writeFile(file, content string) error {
	info, err := os.Stat(file)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", file, err)
	}
	if err := os.WriteFile(file, []byte(content), info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write %s: %w", file, err)
	}
	return nil
}

// parseSelections converts --line and --select values to editor selections.
func parseSelections(lines []int, selects []string) ([]editor.Selection, error) {
	var selections []editor.Selection

	for _, n := range lines {
		if n < 1 {
			return nil, fmt.Errorf("invalid line %d: lines start at 1", n)
		}
		selections = append(selections, editor.Cursor(editor.Position{Line: n - 1}))
	}

	for _, s := range selects {
		sel, err := parseSelection(s)
		if err != nil {
			return nil, fmt.Errorf("invalid selection %q: %w", s, err)
		}
		selections = append(selections, sel)
	}

	return selections, nil
}

// parseSelection parses L[:C][-L[:C]].
func parseSelection(s string) (editor.Selection, error) {
	from, to, isRange := strings.Cut(s, "-")

	start, _, err := parsePosition(from)
	if err != nil {
		return editor.Selection{}, err
	}
	if !isRange {
		return editor.Cursor(start), nil
	}

	end, endHasColumn, err := parsePosition(to)
	if err != nil {
		return editor.Selection{}, err
	}
	if end.Line < start.Line || (endHasColumn && end.Before(start)) {
		return editor.Selection{}, fmt.Errorf("range ends before it starts")
	}
	if !endHasColumn {
		end = editor.Position{Line: end.Line + 1}
	}

	return editor.Selection{Anchor: start, Active: end}, nil
}

// parsePosition parses L[:C] into a zero-based position.
func parsePosition(s string) (editor.Position, bool, error) {
	lineStr, colStr, hasColumn := strings.Cut(strings.TrimSpace(s), ":")

	line, err := strconv.Atoi(lineStr)
	if err != nil || line < 1 {
		return editor.Position{}, false, fmt.Errorf("line %q is not a positive number", lineStr)
	}

	col := 0
	if hasColumn {
		col, err = strconv.Atoi(colStr)
		if err != nil || col < 0 {
			return editor.Position{}, false, fmt.Errorf("column %q is not a number", colStr)
		}
	}

	return editor.Position{Line: line - 1, Character: col}, hasColumn, nil
}
