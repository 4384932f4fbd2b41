// Package toml provides a TOML settings handler for comment-divider.
package toml

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/iancoleman/orderedmap"
	"github.com/thirteen37/comment-divider/internal/format"
	"github.com/thirteen37/comment-divider/internal/path"
)

// Handler implements format.Handler for TOML files.
type Handler struct{}

// New creates a new TOML handler.
func New() *Handler {
	return &Handler{}
}

// Parse reads TOML bytes and returns an *orderedmap.OrderedMap.
// Key order from the original TOML document is preserved.
func (h *Handler) Parse(data []byte, opts format.ParseOptions) (any, error) {
	if opts.StripComments {
		return nil, fmt.Errorf("strip-comments is not supported for TOML format")
	}

	var raw map[string]any
	meta, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return toOrdered(raw, meta, nil), nil
}

// toOrdered converts decoded tables to ordered maps, using the metadata
// for document key order.
func toOrdered(v any, meta toml.MetaData, prefix []string) any {
	switch val := v.(type) {
	case map[string]any:
		result := orderedmap.New()
		for _, k := range keysInOrder(meta, prefix, val) {
			result.Set(k, toOrdered(val[k], meta, append(slices.Clone(prefix), k)))
		}
		return result
	case []map[string]any:
		result := make([]any, len(val))
		for i, item := range val {
			result[i] = toOrdered(item, meta, prefix)
		}
		return result
	case []any:
		result := make([]any, len(val))
		for i, item := range val {
			result[i] = toOrdered(item, meta, prefix)
		}
		return result
	default:
		return val
	}
}

// keysInOrder returns the keys of m in document order.
func keysInOrder(meta toml.MetaData, prefix []string, m map[string]any) []string {
	var ordered []string
	for _, key := range meta.Keys() {
		if len(key) != len(prefix)+1 || !slices.Equal([]string(key[:len(prefix)]), prefix) {
			continue
		}
		k := key[len(prefix)]
		if _, ok := m[k]; ok && !slices.Contains(ordered, k) {
			ordered = append(ordered, k)
		}
	}

	// Keys missing from the metadata go last, sorted for stable output.
	var rest []string
	for k := range m {
		if !slices.Contains(ordered, k) {
			rest = append(rest, k)
		}
	}
	slices.Sort(rest)
	return append(ordered, rest...)
}

// Serialize writes the tree to formatted TOML bytes.
func (h *Handler) Serialize(tree any, opts format.SerializeOptions) ([]byte, error) {
	var buf bytes.Buffer
	encoder := toml.NewEncoder(&buf)
	if opts.Indent != "" {
		encoder.Indent = opts.Indent
	}
	if err := encoder.Encode(toRegular(tree)); err != nil {
		return nil, fmt.Errorf("failed to serialize TOML: %w", err)
	}

	return buf.Bytes(), nil
}

// toRegular converts ordered maps to map[string]any for the encoder,
// which sorts keys itself.
func toRegular(v any) any {
	if om := format.ToOrderedMapPtr(v); om != nil {
		result := make(map[string]any, len(om.Keys()))
		for _, k := range om.Keys() {
			child, _ := om.Get(k)
			result[k] = toRegular(child)
		}
		return result
	}
	if list, ok := v.([]any); ok {
		result := make([]any, len(list))
		for i, item := range list {
			result[i] = toRegular(item)
		}
		return result
	}
	return v
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
