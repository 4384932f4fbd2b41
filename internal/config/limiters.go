package config

import (
	"strings"

	"github.com/thirteen37/comment-divider/internal/divider"
)

// LimiterPresets maps preset names to limiter specs.
var LimiterPresets = map[string]string{
	"shell":      "#",        // bash, python, ruby, yaml, toml
	"c":          "//",       // C-style line comments
	"c-block":    "/*|*/",    // C-style block comments
	"html":       "<!--|-->", // html, xml, markdown
	"lua":        "--",       // lua, haskell
	"sql":        "--",       // SQL-style comments
	"semicolon":  ";",        // lisps, ini
	"vim":        "\"",       // .vimrc
	"percent":    "%",        // latex, matlab, erlang
	"apostrophe": "'",        // visual basic
	"ocaml":      "(*|*)",    // ocaml
	"batch":      "::",       // windows batch files
}

// ParseLimiters resolves a limiter spec.
// If the value is a known preset name, the preset's spec is used.
// Otherwise the value is a literal "left|right" pair, or just "left" for a
// line comment. Surrounding quotes are stripped from literal values.
func ParseLimiters(spec string) divider.Limiters {
	if preset, ok := LimiterPresets[spec]; ok {
		spec = preset
	} else if len(spec) >= 2 {
		if (spec[0] == '"' && spec[len(spec)-1] == '"') ||
			(spec[0] == '\'' && spec[len(spec)-1] == '\'') {
			spec = spec[1 : len(spec)-1]
		}
	}

	left, right, _ := strings.Cut(spec, "|")
	return divider.Limiters{
		Left:  strings.TrimSpace(left),
		Right: strings.TrimSpace(right),
	}
}
