// Package editor provides the document capabilities divider commands need:
// reading a line, replacing a range and listing selections.
package editor

import (
	"errors"
	"strings"
	"unicode"
)

// ErrLineOutOfRange is returned when a line number is outside the document.
var ErrLineOutOfRange = errors.New("line out of range")

// Position is a zero-based line and character offset.
type Position struct {
	Line      int
	Character int
}

// Before reports whether p comes before o.
func (p Position) Before(o Position) bool {
	return p.Line < o.Line || (p.Line == o.Line && p.Character < o.Character)
}

// Range is a span between two positions, Start not after End.
type Range struct {
	Start Position
	End   Position
}

// Selection is a range with a direction: Anchor is where it started and
// Active is where the cursor is.
type Selection struct {
	Anchor Position
	Active Position
}

// Cursor returns an empty selection at p.
func Cursor(p Position) Selection {
	return Selection{Anchor: p, Active: p}
}

// Start returns the earlier end of the selection.
func (s Selection) Start() Position {
	if s.Active.Before(s.Anchor) {
		return s.Active
	}
	return s.Anchor
}

// End returns the later end of the selection.
func (s Selection) End() Position {
	if s.Active.Before(s.Anchor) {
		return s.Anchor
	}
	return s.Active
}

// IsEmpty reports whether the selection is a bare cursor.
func (s Selection) IsEmpty() bool {
	return s.Anchor == s.Active
}

// Line is a snapshot of one document line.
type Line struct {
	Number int
	Text   string
	// Range covers the whole line, excluding the line break.
	Range Range
}

// IsEmptyOrWhitespace reports whether the line holds only whitespace.
func (l Line) IsEmptyOrWhitespace() bool {
	return strings.TrimFunc(l.Text, unicode.IsSpace) == ""
}

// Document is an open text document.
type Document interface {
	// LanguageID identifies the language of the document.
	LanguageID() string

	// LineAt returns the line with the given zero-based number.
	LineAt(n int) (Line, error)

	// Replace replaces the text in r.
	Replace(r Range, text string) error

	// Selections returns the current selections, primary first.
	Selections() []Selection

	// MoveCursor collapses the selections into a cursor at p.
	MoveCursor(p Position)
}

// Host gives access to the active document.
type Host interface {
	// ActiveDocument returns the focused document, or false if there is none.
	ActiveDocument() (Document, bool)
}
