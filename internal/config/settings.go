package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/iancoleman/orderedmap"
	"github.com/thirteen37/comment-divider/internal/divider"
	"github.com/thirteen37/comment-divider/internal/format"
	"github.com/thirteen37/comment-divider/internal/format/ini"
	"github.com/thirteen37/comment-divider/internal/format/json"
	"github.com/thirteen37/comment-divider/internal/format/toml"
	"github.com/thirteen37/comment-divider/internal/merge"
	"github.com/thirteen37/comment-divider/internal/path"
)

// Settings file sections and keys. The tree is two levels deep so that
// every format, INI included, can hold it.
const (
	SectionGeneral   = "general"
	SectionLanguages = "languages"
	KeyLimiters      = "limiters"

	KeyLineLen       = "lineLen"
	KeySym           = "sym"
	KeyHeight        = "height"
	KeyAlign         = "align"
	KeyTransform     = "transform"
	KeyIncludeIndent = "includeIndent"
)

var presetKeys = []string{KeyLineLen, KeySym, KeyHeight, KeyAlign, KeyTransform, KeyIncludeIndent}

// HandlerFor picks the format handler for a settings file by extension.
func HandlerFor(filename string) (format.Handler, format.ParseOptions, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return json.New(), format.ParseOptions{}, nil
	case ".jsonc":
		return json.New(), format.ParseOptions{StripComments: true}, nil
	case ".toml":
		return toml.New(), format.ParseOptions{}, nil
	case ".ini":
		return ini.New(), format.ParseOptions{}, nil
	default:
		return nil, format.ParseOptions{}, fmt.Errorf("unsupported settings format %q (want .json, .jsonc, .toml or .ini)", filepath.Ext(filename))
	}
}

// Load reads a settings file and merges it onto the defaults.
func Load(filename string) (*Settings, error) {
	handler, opts, err := HandlerFor(filename)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	user, err := handler.Parse(data, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", filename, err)
	}

	merged := merge.Merge(handler, Default().Tree(), user, Paths(handler, user))

	s, err := FromTree(handler, merged)
	if err != nil {
		return nil, fmt.Errorf("invalid settings in %s: %w", filename, err)
	}
	return s, nil
}

// Paths returns the settings paths present in a user tree: every preset key,
// the default limiters, and one path per language the user maps.
func Paths(handler format.Handler, user any) []path.Path {
	var paths []path.Path
	for _, t := range divider.Types {
		for _, k := range presetKeys {
			paths = append(paths, path.NewArrayPath([]string{string(t), k}))
		}
	}
	paths = append(paths, path.NewArrayPath([]string{SectionGeneral, KeyLimiters}))

	if section, ok := handler.GetPath(user, path.NewArrayPath([]string{SectionLanguages})); ok {
		if om := format.ToOrderedMapPtr(section); om != nil {
			for _, lang := range om.Keys() {
				paths = append(paths, path.NewArrayPath([]string{SectionLanguages, lang}))
			}
		}
	}
	return paths
}

// Tree converts settings to an ordered tree for serialization.
func (s *Settings) Tree() *orderedmap.OrderedMap {
	tree := orderedmap.New()

	general := orderedmap.New()
	general.Set(KeyLimiters, s.DefaultLimiters)
	tree.Set(SectionGeneral, general)

	for _, t := range divider.Types {
		p := s.Presets[t]
		section := orderedmap.New()
		section.Set(KeyLineLen, p.LineLen)
		section.Set(KeySym, p.Sym)
		section.Set(KeyHeight, string(p.Height))
		section.Set(KeyAlign, string(p.Align))
		section.Set(KeyTransform, string(p.Transform))
		section.Set(KeyIncludeIndent, p.IncludeIndent)
		tree.Set(string(t), section)
	}

	languages := orderedmap.New()
	for _, lang := range s.LanguageIDs() {
		languages.Set(lang, s.Languages[lang])
	}
	tree.Set(SectionLanguages, languages)

	return tree
}

// FromTree decodes and validates settings from a complete tree.
func FromTree(handler format.Handler, tree any) (*Settings, error) {
	s := &Settings{
		Presets:   make(map[divider.Type]divider.Preset, len(divider.Types)),
		Languages: make(map[string]string),
	}

	get := func(segments ...string) (any, bool) {
		return handler.GetPath(tree, path.NewArrayPath(segments))
	}

	if v, ok := get(SectionGeneral, KeyLimiters); ok {
		s.DefaultLimiters = asString(v)
	} else {
		s.DefaultLimiters = DefaultLimiterSpec
	}

	for _, t := range divider.Types {
		var p divider.Preset
		var err error
		section := string(t)

		if v, ok := get(section, KeyLineLen); ok {
			if p.LineLen, err = asInt(v); err != nil {
				return nil, fmt.Errorf("%s.%s: %w", section, KeyLineLen, err)
			}
		}
		if v, ok := get(section, KeySym); ok {
			p.Sym = asString(v)
		}
		if v, ok := get(section, KeyHeight); ok {
			p.Height = divider.Height(asString(v))
		}
		if v, ok := get(section, KeyAlign); ok {
			p.Align = divider.Align(asString(v))
		}
		if v, ok := get(section, KeyTransform); ok {
			p.Transform = divider.Transform(asString(v))
		}
		if v, ok := get(section, KeyIncludeIndent); ok {
			if p.IncludeIndent, err = asBool(v); err != nil {
				return nil, fmt.Errorf("%s.%s: %w", section, KeyIncludeIndent, err)
			}
		}

		s.Presets[t] = p
	}

	if section, ok := get(SectionLanguages); ok {
		if om := format.ToOrderedMapPtr(section); om != nil {
			for _, lang := range om.Keys() {
				v, _ := om.Get(lang)
				s.Languages[lang] = asString(v)
			}
		}
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// asInt accepts the number types produced by the JSON, TOML and INI handlers.
func asInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("expected an integer, got %v", n)
		}
		return int(n), nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("expected an integer, got %q", n)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("expected an integer, got %T", v)
	}
}

func asBool(v any) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(b))
		if err != nil {
			return false, fmt.Errorf("expected a boolean, got %q", b)
		}
		return parsed, nil
	default:
		return false, fmt.Errorf("expected a boolean, got %T", v)
	}
}
