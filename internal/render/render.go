// Package render formats divider lines from a resolved config.
package render

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/thirteen37/comment-divider/internal/divider"
)

// tabWidth is the display width counted for a tab in the indentation.
const tabWidth = 4

// ConfigSource resolves the config of a divider type in a language.
type ConfigSource interface {
	Config(t divider.Type, lang string) (divider.Config, error)
}

// Renderer renders dividers with configs from a ConfigSource.
type Renderer struct {
	configs ConfigSource
}

// New creates a renderer.
func New(configs ConfigSource) *Renderer {
	return &Renderer{configs: configs}
}

// Render formats raw as a divider of type t for lang.
func (r *Renderer) Render(t divider.Type, raw, lang string) (string, error) {
	cfg, err := r.configs.Config(t, lang)
	if err != nil {
		return "", err
	}
	return Format(t, raw, cfg), nil
}

// Format renders raw as a divider of type t.
//
// The leading whitespace of raw is the indentation and the trimmed rest are
// the header words. Line dividers, and headers without words, render as a
// solid line. Block headers span three physical lines joined by "\n".
func Format(t divider.Type, raw string, cfg divider.Config) string {
	indent := ""
	if cfg.IncludeIndent {
		indent = leadingWhitespace(raw)
	}
	words := strings.TrimSpace(raw)
	width := bodyWidth(cfg, indent)

	solid := wrap(indent, cfg.Limiters, fill(cfg.Sym, width))
	if t == divider.Line || words == "" {
		return solid
	}

	words = transform(words, cfg.Transform)

	if cfg.Height == divider.HeightBlock {
		middle := wrap(indent, cfg.Limiters, pad(words, width, cfg.Align))
		if cfg.Limiters.Right == "" {
			middle = strings.TrimRightFunc(middle, unicode.IsSpace)
		}
		return solid + "\n" + middle + "\n" + solid
	}

	return wrap(indent, cfg.Limiters, inline(words, cfg.Sym, width, cfg.Align))
}

func leadingWhitespace(s string) string {
	return s[:len(s)-len(strings.TrimLeftFunc(s, unicode.IsSpace))]
}

// textWidth is the display width of s.
func textWidth(s string) int {
	w := 0
	for _, r := range s {
		if r == '\t' {
			w += tabWidth
			continue
		}
		w += runewidth.RuneWidth(r)
	}
	return w
}

// bodyWidth is the width left for the divider body between the limiters.
func bodyWidth(cfg divider.Config, indent string) int {
	w := cfg.LineLen - textWidth(indent)
	if cfg.Limiters.Left != "" {
		w -= textWidth(cfg.Limiters.Left) + 1
	}
	if cfg.Limiters.Right != "" {
		w -= textWidth(cfg.Limiters.Right) + 1
	}
	return w
}

func wrap(indent string, l divider.Limiters, body string) string {
	var sb strings.Builder
	sb.WriteString(indent)
	if l.Left != "" {
		sb.WriteString(l.Left)
		sb.WriteString(" ")
	}
	sb.WriteString(body)
	if l.Right != "" {
		sb.WriteString(" ")
		sb.WriteString(l.Right)
	}
	return sb.String()
}

// repeatTo counts how many times sym fits in width, at least least times.
func repeatTo(sym string, width, least int) int {
	n := width
	if w := textWidth(sym); w > 0 {
		n = width / w
	}
	return max(n, least)
}

func fill(sym string, width int) string {
	return strings.Repeat(sym, repeatTo(sym, width, 1))
}

// inline lays out words between two runs of sym, each at least one symbol long.
func inline(words, sym string, width int, align divider.Align) string {
	free := width - textWidth(words) - 2*textWidth(divider.GapSym)
	total := repeatTo(sym, free, 2)

	var left int
	switch align {
	case divider.AlignLeft:
		left = min(2, total-1)
	case divider.AlignRight:
		left = total - min(2, total-1)
	default:
		left = total / 2
	}

	return strings.Repeat(sym, left) + divider.GapSym + words + divider.GapSym + strings.Repeat(sym, total-left)
}

// pad aligns words with spaces inside width.
func pad(words string, width int, align divider.Align) string {
	spaces := max(width-textWidth(words), 0)

	var left int
	switch align {
	case divider.AlignLeft:
		left = 0
	case divider.AlignRight:
		left = spaces
	default:
		left = spaces / 2
	}

	return strings.Repeat(" ", left) + words + strings.Repeat(" ", spaces-left)
}

func transform(words string, t divider.Transform) string {
	switch t {
	case divider.TransformUppercase:
		return cases.Upper(language.Und).String(words)
	case divider.TransformLowercase:
		return cases.Lower(language.Und).String(words)
	case divider.TransformTitlecase:
		return cases.Title(language.Und).String(words)
	default:
		return words
	}
}
