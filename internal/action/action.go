// Package action decides how a divider command mutates a line and applies it.
package action

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/thirteen37/comment-divider/internal/divider"
	"github.com/thirteen37/comment-divider/internal/editor"
)

// ConfigSource resolves the config of a divider type in a language.
type ConfigSource interface {
	Config(t divider.Type, lang string) (divider.Config, error)
}

// Renderer formats a divider.
type Renderer interface {
	Render(t divider.Type, raw, lang string) (string, error)
}

// Action toggles dividers on single lines.
type Action struct {
	configs  ConfigSource
	renderer Renderer
}

// New creates an Action.
func New(configs ConfigSource, renderer Renderer) *Action {
	return &Action{configs: configs, renderer: renderer}
}

// Apply transforms line n of doc into a divider of type t and moves the
// cursor to the end of the replacement.
func (a *Action) Apply(doc editor.Document, t divider.Type, n int) error {
	line, err := doc.LineAt(n)
	if err != nil {
		return fmt.Errorf("line %d: %w", n+1, err)
	}

	text, err := a.Transform(t, line.Text, doc.LanguageID())
	if err != nil {
		return fmt.Errorf("line %d: %w", n+1, err)
	}

	if err := doc.Replace(line.Range, text); err != nil {
		return fmt.Errorf("line %d: %w", n+1, err)
	}

	doc.MoveCursor(endOf(line.Range.Start, text))
	return nil
}

// endOf returns the position after text inserted at start. For a block
// header the character is counted on its last row.
func endOf(start editor.Position, text string) editor.Position {
	if i := strings.LastIndex(text, "\n"); i >= 0 {
		return editor.Position{Line: start.Line, Character: len(text) - i - 1}
	}
	return editor.Position{Line: start.Line, Character: start.Character + len(text)}
}

// Transform returns the replacement for a line of text when a divider of
// type t is requested. Rules, first match wins:
//
//  1. a header requested on a solid line strips it down to its indentation;
//  2. a header requested on a blank line renders a solid line;
//  3. a sub-header requested on a sub-header divider turns it into a plain comment;
//  4. a main header requested on a sub-header divider keeps only its text;
//  5. a header requested on a comment drops the comment limiters;
//  6. everything else is rendered as type t.
func (a *Action) Transform(t divider.Type, text, lang string) (string, error) {
	lineCfg, err := a.configs.Config(divider.Line, lang)
	if err != nil {
		return "", err
	}

	if !t.IsHeader() {
		return a.renderer.Render(t, text, lang)
	}

	if divider.IsSolidLine(text, lineCfg, lang) {
		return indentOf(text), nil
	}

	if strings.TrimFunc(text, unicode.IsSpace) == "" {
		return a.renderer.Render(divider.Line, text, lang)
	}

	headerCfg, err := a.configs.Config(t, lang)
	if err != nil {
		return "", err
	}

	raw := text

	switch t {
	case divider.Subheader:
		if content, ok := subheaderContent(raw, headerCfg, lang); ok {
			return plainComment(indentOf(raw), content, lang, headerCfg.Limiters), nil
		}
	case divider.MainHeader:
		subCfg, err := a.configs.Config(divider.Subheader, lang)
		if err != nil {
			return "", err
		}
		if content, ok := subheaderContent(raw, subCfg, lang); ok {
			raw = indentOf(raw) + content
		}
	}

	if res := divider.Match(raw, headerCfg.Limiters, lang, false); res.HasLimiter {
		if res.Inner == "" {
			return a.renderer.Render(divider.Line, indentOf(raw), lang)
		}
		raw = indentOf(raw) + res.Inner
	}

	return a.renderer.Render(t, raw, lang)
}

// subheaderContent returns the header text of a sub-header divider.
func subheaderContent(text string, cfg divider.Config, lang string) (string, bool) {
	if !divider.IsSubheaderDivider(text, cfg, lang) {
		return "", false
	}
	res := divider.Match(text, cfg.Limiters, lang, true)
	return divider.ExtractContent(res.Inner, cfg.Sym), true
}

// plainComment writes text as an ordinary one-line comment. C-style
// languages always get a // comment.
func plainComment(indent, text, lang string, headerLimiters divider.Limiters) string {
	limiters := headerLimiters
	if divider.IsCStyle(lang) {
		limiters = divider.Limiters{Left: "//"}
	}

	if text == "" {
		return indent + limiters.Left
	}

	out := indent + limiters.Left + " " + text
	if limiters.Right != "" && limiters.Right != limiters.Left {
		out += " " + limiters.Right
	}
	return strings.TrimRightFunc(out, unicode.IsSpace)
}

func indentOf(text string) string {
	return text[:len(text)-len(strings.TrimLeftFunc(text, unicode.IsSpace))]
}
