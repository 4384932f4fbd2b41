package format

import (
	"fmt"

	"github.com/iancoleman/orderedmap"
)

// ToOrderedMapPtr converts both value and pointer types of OrderedMap to a pointer.
// Returns nil if the value is not an OrderedMap.
func ToOrderedMapPtr(v any) *orderedmap.OrderedMap {
	switch val := v.(type) {
	case *orderedmap.OrderedMap:
		return val
	case orderedmap.OrderedMap:
		return &val
	default:
		return nil
	}
}

// Lookup walks an ordered tree along segments.
func Lookup(tree any, segments []string) (any, bool) {
	current := tree
	for _, segment := range segments {
		om := ToOrderedMapPtr(current)
		if om == nil {
			return nil, false
		}
		val, exists := om.Get(segment)
		if !exists {
			return nil, false
		}
		current = val
	}
	return current, true
}

// Assign sets value at segments, creating intermediate maps as needed.
// Intermediate value maps are replaced by pointers so the write is visible
// through the parent.
func Assign(tree any, segments []string, value any) error {
	if len(segments) == 0 {
		return fmt.Errorf("empty path")
	}

	om := ToOrderedMapPtr(tree)
	if om == nil {
		return fmt.Errorf("tree is not an ordered map")
	}

	for _, segment := range segments[:len(segments)-1] {
		next, exists := om.Get(segment)
		if !exists {
			next = orderedmap.New()
		}
		nextMap := ToOrderedMapPtr(next)
		if nextMap == nil {
			return fmt.Errorf("path segment %q is not a map", segment)
		}
		om.Set(segment, nextMap)
		om = nextMap
	}

	om.Set(segments[len(segments)-1], value)
	return nil
}
