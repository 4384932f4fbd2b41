package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thirteen37/comment-divider/internal/divider"
	"github.com/thirteen37/comment-divider/internal/editor"
)

func newClassifyCmd(a *app) *cobra.Command {
	var line int

	cmd := &cobra.Command{
		Use:   "classify <file|->",
		Short: "Show how a line is recognized",
		Long: `Show how a line is recognized: the comment limiters that match it,
the text inside them, and whether it is a solid line or a subheader.

Example:
  comment-divider classify main.go --line 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runClassify(args[0], line)
		},
	}

	cmd.Flags().IntVarP(&line, "line", "l", 1, "Line to classify, 1-based")

	return cmd
}

func (a *app) runClassify(file string, n int) error {
	content, err := a.readInput(file)
	if err != nil {
		return err
	}

	provider, err := a.provider()
	if err != nil {
		return err
	}

	lang := a.language(file, content)
	buf := editor.NewBuffer(string(content), lang)
	line, err := buf.LineAt(n - 1)
	if err != nil {
		return fmt.Errorf("line %d: %w", n, err)
	}

	lineCfg, err := provider.Config(divider.Line, lang)
	if err != nil {
		return err
	}
	subCfg, err := provider.Config(divider.Subheader, lang)
	if err != nil {
		return err
	}

	res := divider.Match(line.Text, subCfg.Limiters, lang, false)
	matched := "none"
	if res.HasLimiter {
		matched = res.Limiters.String()
	}
	isSubheader := divider.IsSubheaderDivider(line.Text, subCfg, lang)

	fmt.Fprintf(a.out, "language:  %s\n", lang)
	fmt.Fprintf(a.out, "limiters:  %s\n", subCfg.Limiters)
	fmt.Fprintf(a.out, "c-style:   %t\n", divider.IsCStyle(lang))
	fmt.Fprintf(a.out, "matched:   %s\n", matched)
	fmt.Fprintf(a.out, "inner:     %q\n", res.Inner)
	fmt.Fprintf(a.out, "solid:     %t\n", divider.IsSolidLine(line.Text, lineCfg, lang))
	fmt.Fprintf(a.out, "subheader: %t\n", isSubheader)
	if isSubheader {
		strict := divider.Match(line.Text, subCfg.Limiters, lang, true)
		fmt.Fprintf(a.out, "content:   %q\n", divider.ExtractContent(strict.Inner, subCfg.Sym))
	}
	return nil
}
