package cmd

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/thirteen37/comment-divider/internal/divider"
)

func newLanguagesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "languages [id...]",
		Short: "List comment limiters per language",
		Long: `List the comment limiters used for each known language id, or for
the given ids. Ids without an entry use the default limiters.

Example:
  comment-divider languages python go html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runLanguages(args)
		},
	}
}

func (a *app) runLanguages(ids []string) error {
	provider, err := a.provider()
	if err != nil {
		return err
	}
	settings := provider.Settings()

	if len(ids) == 0 {
		ids = settings.LanguageIDs()
	}

	width := len("LANGUAGE")
	for _, id := range ids {
		width = max(width, runewidth.StringWidth(id))
	}
	width += 2

	fmt.Fprintf(a.out, "%s%-10s%-10s%s\n", runewidth.FillRight("LANGUAGE", width), "LEFT", "RIGHT", "C-STYLE")
	for _, id := range ids {
		l := settings.LimitersFor(id)
		fmt.Fprintf(a.out, "%s%-10s%-10s%t\n",
			runewidth.FillRight(id, width), l.Left, orDash(l.Right), divider.IsCStyle(id))
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
