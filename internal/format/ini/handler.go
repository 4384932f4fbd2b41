// Package ini provides an INI settings handler for comment-divider.
package ini

import (
	"bytes"
	"fmt"

	"github.com/iancoleman/orderedmap"
	"github.com/thirteen37/comment-divider/internal/format"
	"github.com/thirteen37/comment-divider/internal/path"
	"gopkg.in/ini.v1"
)

// Handler implements format.Handler for INI files.
type Handler struct{}

// New creates a new INI handler.
func New() *Handler {
	return &Handler{}
}

// loadOptions keeps comment markers such as "#" or ";" usable as values.
var loadOptions = ini.LoadOptions{IgnoreInlineComment: true}

// Parse reads INI bytes and returns an *orderedmap.OrderedMap.
// Structure: {"section": {"key": "value"}}
// Global keys (before any section) are stored under the empty string key "".
func (h *Handler) Parse(data []byte, opts format.ParseOptions) (any, error) {
	if opts.StripComments {
		return nil, fmt.Errorf("strip-comments is not supported for INI format")
	}

	cfg, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse INI: %w", err)
	}

	result := orderedmap.New()

	for _, section := range cfg.Sections() {
		sectionName := section.Name()
		if sectionName == ini.DefaultSection {
			sectionName = ""
		}

		sectionMap := orderedmap.New()
		for _, key := range section.Keys() {
			sectionMap.Set(key.Name(), key.Value())
		}

		if len(sectionMap.Keys()) > 0 || sectionName != "" {
			result.Set(sectionName, sectionMap)
		}
	}

	return result, nil
}

// Serialize writes the tree to formatted INI bytes.
// Only two levels are written: top-level keys become sections.
func (h *Handler) Serialize(tree any, opts format.SerializeOptions) ([]byte, error) {
	om := format.ToOrderedMapPtr(tree)
	if om == nil {
		return nil, fmt.Errorf("tree is not an ordered map")
	}

	cfg := ini.Empty(loadOptions)

	for _, sectionName := range om.Keys() {
		sectionVal, _ := om.Get(sectionName)
		sectionMap := format.ToOrderedMapPtr(sectionVal)
		if sectionMap == nil {
			continue
		}

		var section *ini.Section
		if sectionName == "" {
			section = cfg.Section(ini.DefaultSection)
		} else {
			var err error
			section, err = cfg.NewSection(sectionName)
			if err != nil {
				return nil, fmt.Errorf("failed to create section %q: %w", sectionName, err)
			}
		}

		for _, keyName := range sectionMap.Keys() {
			keyVal, _ := sectionMap.Get(keyName)
			if _, err := section.NewKey(keyName, toString(keyVal)); err != nil {
				return nil, fmt.Errorf("failed to create key %q: %w", keyName, err)
			}
		}
	}

	var buf bytes.Buffer
	if _, err := cfg.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize INI: %w", err)
	}

	return buf.Bytes(), nil
}

// toString converts any value to its string representation.
// INI files only support string values.
func toString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// GetPath extracts a value at the given path.
// INI paths are limited to ["section", "key"] format (max 2 segments).
func (h *Handler) GetPath(tree any, p path.Path) (any, bool) {
	segments := p.Segments()
	if len(segments) == 0 || len(segments) > 2 {
		return nil, false
	}
	return format.Lookup(tree, segments)
}

// SetPath sets a value at the given path.
// INI paths are limited to ["section", "key"] format (max 2 segments).
// Key values are converted to strings (INI only supports strings).
func (h *Handler) SetPath(tree any, p path.Path, value any) error {
	segments := p.Segments()
	if len(segments) == 0 || len(segments) > 2 {
		return fmt.Errorf("INI paths must have 1 or 2 segments, got %d", len(segments))
	}

	if len(segments) == 2 {
		value = toString(value)
	}
	return format.Assign(tree, segments, value)
}

// Ensure Handler implements format.Handler.
var _ format.Handler = (*Handler)(nil)
