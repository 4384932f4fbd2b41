package editor

import (
	"fmt"
	"strings"
)

// Buffer is an in-memory Document over the contents of a text file.
// Character offsets are byte offsets into a line.
//
// Each line keeps its own terminator, so files mixing \n and \r\n are
// written back unchanged apart from the edited lines.
//
// A replacement containing line breaks stays one logical line, so line
// numbers taken before an edit remain valid; the breaks appear when the
// buffer is written out, using the terminator of the edited line.
type Buffer struct {
	lang       string
	lines      []string
	eols       []string // terminator per line, "" for an unterminated last line
	eol        string   // most common terminator
	selections []Selection
}

// NewBuffer creates a buffer holding content. Lines are split on \n; a
// \r before it belongs to the terminator.
func NewBuffer(content, lang string) *Buffer {
	b := &Buffer{
		lang: lang,
		eol:  "\n",
	}

	crlf, lf := 0, 0
	for {
		i := strings.IndexByte(content, '\n')
		if i < 0 {
			break
		}
		text, eol := content[:i], "\n"
		if strings.HasSuffix(text, "\r") {
			text, eol = text[:len(text)-1], "\r\n"
			crlf++
		} else {
			lf++
		}
		b.lines = append(b.lines, text)
		b.eols = append(b.eols, eol)
		content = content[i+1:]
	}
	if content != "" || len(b.lines) == 0 {
		b.lines = append(b.lines, content)
		b.eols = append(b.eols, "")
	}

	if crlf > lf {
		b.eol = "\r\n"
	}
	b.selections = []Selection{Cursor(Position{})}
	return b
}

// LanguageID returns the language id the buffer was created with.
func (b *Buffer) LanguageID() string {
	return b.lang
}

// LineCount returns the number of logical lines.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// LineAt returns line n.
func (b *Buffer) LineAt(n int) (Line, error) {
	if n < 0 || n >= len(b.lines) {
		return Line{}, fmt.Errorf("%w (document has %d lines)", ErrLineOutOfRange, len(b.lines))
	}
	text := b.lines[n]
	return Line{
		Number: n,
		Text:   text,
		Range: Range{
			Start: Position{Line: n},
			End:   Position{Line: n, Character: len(text)},
		},
	}, nil
}

// Replace replaces the text in r. Ranges spanning several lines are not
// supported.
func (b *Buffer) Replace(r Range, text string) error {
	if r.Start.Line != r.End.Line {
		return fmt.Errorf("multi-line range %d-%d not supported", r.Start.Line, r.End.Line)
	}
	line, err := b.LineAt(r.Start.Line)
	if err != nil {
		return err
	}

	start, end := r.Start.Character, r.End.Character
	if start < 0 || end < start || end > len(line.Text) {
		return fmt.Errorf("invalid character range %d-%d on line %d", start, end, line.Number)
	}

	b.lines[line.Number] = line.Text[:start] + text + line.Text[end:]
	return nil
}

// Selections returns the current selections.
func (b *Buffer) Selections() []Selection {
	return append([]Selection(nil), b.selections...)
}

// SetSelections replaces the current selections. An empty call resets to a
// cursor at the start of the document.
func (b *Buffer) SetSelections(selections ...Selection) {
	if len(selections) == 0 {
		selections = []Selection{Cursor(Position{})}
	}
	b.selections = append([]Selection(nil), selections...)
}

// MoveCursor collapses the selections into a cursor at p.
func (b *Buffer) MoveCursor(p Position) {
	b.selections = []Selection{Cursor(p)}
}

// String returns the buffer contents.
func (b *Buffer) String() string {
	var sb strings.Builder
	for i, line := range b.lines {
		eol := b.eols[i]
		if eol == "" {
			eol = b.eol
		}
		sb.WriteString(strings.ReplaceAll(line, "\n", eol))
		sb.WriteString(b.eols[i])
	}
	return sb.String()
}

// StaticHost is a Host with a fixed active document.
type StaticHost struct {
	Doc Document
}

// ActiveDocument returns the document, if any.
func (h StaticHost) ActiveDocument() (Document, bool) {
	return h.Doc, h.Doc != nil
}

// Ensure Buffer implements Document.
var _ Document = (*Buffer)(nil)
