// Package json provides a JSON/JSONC settings handler for comment-divider.
package json

import (
	"encoding/json"
	"fmt"

	"github.com/iancoleman/orderedmap"
	"github.com/thirteen37/comment-divider/internal/format"
	"github.com/thirteen37/comment-divider/internal/path"
)

// Handler implements format.Handler for JSON/JSONC files.
type Handler struct{}

// New creates a new JSON handler.
func New() *Handler {
	return &Handler{}
}

// StripComments removes // and /* */ comments outside of strings so that
// JSONC parses as JSON. Line breaks are kept, including those inside block
// comments, so parse errors report the original line numbers.
func StripComments(data []byte) []byte {
	out := make([]byte, 0, len(data))
	inString, escaped := false, false

	for i := 0; i < len(data); i++ {
		c := data[i]

		if inString {
			out = append(out, c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		if c == '/' && i+1 < len(data) {
			switch data[i+1] {
			case '/':
				for i < len(data) && data[i] != '\n' {
					i++
				}
				if i < len(data) {
					out = append(out, '\n')
				}
				continue
			case '*':
				for i += 2; i < len(data) && !(data[i] == '*' && i+1 < len(data) && data[i+1] == '/'); i++ {
					if data[i] == '\n' {
						out = append(out, '\n')
					}
				}
				i++
				continue
			}
		}

		if c == '"' {
			inString = true
		}
		out = append(out, c)
	}

	return out
}

// Parse reads JSON bytes and returns an *orderedmap.OrderedMap.
// Key order from the original document is preserved.
func (h *Handler) Parse(data []byte, opts format.ParseOptions) (any, error) {
	if opts.StripComments {
		data = StripComments(data)
	}

	result := orderedmap.New()
	if err := json.Unmarshal(data, result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return result, nil
}

// Serialize writes the tree to formatted JSON bytes.
func (h *Handler) Serialize(tree any, opts format.SerializeOptions) ([]byte, error) {
	indent := opts.Indent
	if indent == "" {
		indent = "  "
	}

	data, err := json.MarshalIndent(tree, "", indent)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// GetPath extracts a value at the given path.
func (h *Handler) GetPath(tree any, p path.Path) (any, bool) {
	return format.Lookup(tree, p.Segments())
}

// SetPath sets a value at the given path.
// Creates intermediate maps as needed.
func (h *Handler) SetPath(tree any, p path.Path, value any) error {
	return format.Assign(tree, p.Segments(), value)
}

// Ensure Handler implements format.Handler.
var _ format.Handler = (*Handler)(nil)
