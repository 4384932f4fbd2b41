// Package path provides selectors for settings keys.
package path

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Path represents a selector for navigating a settings tree.
type Path interface {
	// Segments returns the path as a slice of string keys.
	Segments() []string

	// String returns a canonical string representation.
	String() string
}

// ArrayPath is a path specified as an array of string keys.
// Example: ["subheader", "sym"]
type ArrayPath struct {
	segments []string
}

// NewArrayPath creates a new ArrayPath from string segments.
func NewArrayPath(segments []string) *ArrayPath {
	return &ArrayPath{segments: segments}
}

// ParseArrayPath parses a JSON array string into an ArrayPath.
// Example input: `["subheader", "sym"]`
func ParseArrayPath(s string) (*ArrayPath, error) {
	var segments []string
	if err := json.Unmarshal([]byte(s), &segments); err != nil {
		return nil, fmt.Errorf("invalid path array: %w", err)
	}
	return &ArrayPath{segments: segments}, nil
}

// Parse accepts either a JSON array path or a dotted path such as
// "subheader.sym". Dotted paths cannot address keys containing dots.
func Parse(s string) (*ArrayPath, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "[") {
		return ParseArrayPath(s)
	}
	if s == "" {
		return nil, fmt.Errorf("empty path")
	}

	segments := strings.Split(s, ".")
	for _, seg := range segments {
		if seg == "" {
			return nil, fmt.Errorf("invalid dotted path %q", s)
		}
	}
	return &ArrayPath{segments: segments}, nil
}

// Segments returns the path segments.
func (p *ArrayPath) Segments() []string {
	return p.segments
}

// String returns the path as a JSON array string.
func (p *ArrayPath) String() string {
	data, _ := json.Marshal(p.segments)
	return string(data)
}
