// Package merge overlays user settings onto the default settings tree.
package merge

import (
	"reflect"

	"github.com/iancoleman/orderedmap"
	"github.com/thirteen37/comment-divider/internal/format"
	"github.com/thirteen37/comment-divider/internal/path"
)

// Merge combines the default settings tree with a user tree.
//
// Algorithm:
// 1. Start with a deep copy of defaults
// 2. For each settings path:
//   - If the path exists in user, copy that value to result
//   - Otherwise keep the default value
func Merge(handler format.Handler, defaults, user any, paths []path.Path) any {
	result := deepCopy(defaults)

	// A typed nil such as (*orderedmap.OrderedMap)(nil) is not == nil.
	if isNilValue(user) {
		return result
	}

	for _, p := range paths {
		if val, ok := handler.GetPath(user, p); ok {
			// A path that cannot be set (e.g. through a scalar) keeps its default.
			_ = handler.SetPath(result, p, val)
		}
	}

	return result
}

// deepCopy creates a deep copy of an ordered tree.
func deepCopy(v any) any {
	if om := format.ToOrderedMapPtr(v); om != nil {
		result := orderedmap.New()
		for _, k := range om.Keys() {
			child, _ := om.Get(k)
			result.Set(k, deepCopy(child))
		}
		return result
	}

	switch val := v.(type) {
	case []any:
		result := make([]any, len(val))
		for i, item := range val {
			result[i] = deepCopy(item)
		}
		return result
	case []string:
		return append([]string(nil), val...)
	default:
		// Scalars are immutable.
		return val
	}
}

// isNilValue checks if v is nil, including typed nil pointers inside interfaces.
func isNilValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
