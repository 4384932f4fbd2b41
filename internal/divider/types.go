// Package divider classifies comment divider lines and strips their limiters.
package divider

import (
	"errors"
	"fmt"
)

// GapSym separates the symbol runs of a sub-header from its header text.
const GapSym = " "

// ErrUnknownType is returned for divider type names outside the known set.
var ErrUnknownType = errors.New("unknown divider type")

// ErrInvalidPreset is returned when a preset fails validation.
var ErrInvalidPreset = errors.New("invalid preset")

// Type is the kind of divider a command produces.
type Type string

const (
	// MainHeader is a header divider, usually rendered as a block.
	MainHeader Type = "mainHeader"
	// Subheader is a header divider rendered on a single line.
	Subheader Type = "subheader"
	// Line is a solid separator line.
	Line Type = "line"
)

// Types lists every divider type.
var Types = []Type{MainHeader, Subheader, Line}

// ParseType resolves a divider type name.
func ParseType(s string) (Type, error) {
	for _, t := range Types {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// IsHeader reports whether t carries header text.
func (t Type) IsHeader() bool {
	return t == MainHeader || t == Subheader
}

// Height controls whether a header renders on one line or as a block.
type Height string

const (
	HeightLine  Height = "line"
	HeightBlock Height = "block"
)

// Align positions header text inside the divider.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// Transform is the case transform applied to header words.
type Transform string

const (
	TransformUppercase Transform = "uppercase"
	TransformLowercase Transform = "lowercase"
	TransformTitlecase Transform = "titlecase"
	TransformNone      Transform = "none"
)

// Limiters are the left and right delimiters of a comment.
// An empty Right denotes a line comment.
type Limiters struct {
	Left  string
	Right string
}

// String returns the limiters in "left|right" form, or just left for line comments.
func (l Limiters) String() string {
	if l.Right == "" {
		return l.Left
	}
	return l.Left + "|" + l.Right
}

// Preset holds the rendering options of one divider type.
type Preset struct {
	LineLen       int
	Sym           string
	Height        Height
	Align         Align
	Transform     Transform
	IncludeIndent bool
}

// Validate checks that every field holds a known value.
func (p Preset) Validate() error {
	if p.LineLen <= 0 {
		return fmt.Errorf("%w: lineLen must be positive, got %d", ErrInvalidPreset, p.LineLen)
	}
	if p.Sym == "" {
		return fmt.Errorf("%w: sym must not be empty", ErrInvalidPreset)
	}
	switch p.Height {
	case HeightLine, HeightBlock:
	default:
		return fmt.Errorf("%w: unknown height %q", ErrInvalidPreset, p.Height)
	}
	switch p.Align {
	case AlignLeft, AlignCenter, AlignRight:
	default:
		return fmt.Errorf("%w: unknown align %q", ErrInvalidPreset, p.Align)
	}
	switch p.Transform {
	case TransformUppercase, TransformLowercase, TransformTitlecase, TransformNone:
	default:
		return fmt.Errorf("%w: unknown transform %q", ErrInvalidPreset, p.Transform)
	}
	return nil
}

// Config is a preset resolved together with the limiters of a language.
type Config struct {
	Preset
	Limiters Limiters
}

// cStyleLanguages use // and /* */ comments interchangeably.
var cStyleLanguages = map[string]bool{
	"c":               true,
	"cpp":             true,
	"csharp":          true,
	"go":              true,
	"groovy":          true,
	"java":            true,
	"javascript":      true,
	"javascriptreact": true,
	"jsonc":           true,
	"kotlin":          true,
	"less":            true,
	"objective-c":     true,
	"php":             true,
	"sass":            true,
	"scala":           true,
	"stylus":          true,
	"swift":           true,
	"typescript":      true,
	"typescriptreact": true,
}

// IsCStyle reports whether lang accepts both // and /* */ comments.
func IsCStyle(lang string) bool {
	return cStyleLanguages[lang]
}
