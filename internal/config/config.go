// Package config resolves divider presets and comment limiters per language.
package config

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/thirteen37/comment-divider/internal/divider"
)

// DefaultLimiterSpec is used for languages without an entry in Settings.Languages.
const DefaultLimiterSpec = "c"

// Settings holds the user-adjustable divider configuration.
type Settings struct {
	// Presets holds the rendering options of each divider type.
	Presets map[divider.Type]divider.Preset

	// Languages maps language ids to limiter specs (see ParseLimiters).
	Languages map[string]string

	// DefaultLimiters is the limiter spec for unmapped languages.
	DefaultLimiters string
}

// Default returns the built-in settings.
func Default() *Settings {
	return &Settings{
		Presets: map[divider.Type]divider.Preset{
			divider.MainHeader: {
				LineLen:       80,
				Sym:           "-",
				Height:        divider.HeightBlock,
				Align:         divider.AlignCenter,
				Transform:     divider.TransformUppercase,
				IncludeIndent: true,
			},
			divider.Subheader: {
				LineLen:       80,
				Sym:           "-",
				Height:        divider.HeightLine,
				Align:         divider.AlignCenter,
				Transform:     divider.TransformNone,
				IncludeIndent: true,
			},
			divider.Line: {
				LineLen:       80,
				Sym:           "-",
				Height:        divider.HeightLine,
				Align:         divider.AlignLeft,
				Transform:     divider.TransformNone,
				IncludeIndent: true,
			},
		},
		Languages:       maps.Clone(defaultLanguages),
		DefaultLimiters: DefaultLimiterSpec,
	}
}

// Validate checks every preset.
func (s *Settings) Validate() error {
	for _, t := range divider.Types {
		p, ok := s.Presets[t]
		if !ok {
			return fmt.Errorf("%w: missing preset for %s", divider.ErrInvalidPreset, t)
		}
		if err := p.Validate(); err != nil {
			return fmt.Errorf("%s: %w", t, err)
		}
	}
	return nil
}

// LanguageIDs returns the mapped language ids in sorted order.
func (s *Settings) LanguageIDs() []string {
	var ids []string
	for id := range s.Languages {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// LimitersFor returns the limiters of lang.
func (s *Settings) LimitersFor(lang string) divider.Limiters {
	if spec, ok := s.Languages[lang]; ok {
		return ParseLimiters(spec)
	}
	return ParseLimiters(s.DefaultLimiters)
}

type cacheKey struct {
	typ  divider.Type
	lang string
}

// Provider resolves divider configs from settings.
// Resolved configs are memoized per (type, language); it is safe for
// concurrent use.
type Provider struct {
	settings *Settings

	mu    sync.Mutex
	cache map[cacheKey]divider.Config
}

// NewProvider creates a provider over s. A nil s uses Default().
func NewProvider(s *Settings) *Provider {
	if s == nil {
		s = Default()
	}
	return &Provider{
		settings: s,
		cache:    make(map[cacheKey]divider.Config),
	}
}

// Settings returns the settings backing the provider.
func (p *Provider) Settings() *Settings {
	return p.settings
}

// Config returns the config of divider type t in language lang.
func (p *Provider) Config(t divider.Type, lang string) (divider.Config, error) {
	key := cacheKey{typ: t, lang: lang}

	p.mu.Lock()
	defer p.mu.Unlock()

	if cfg, ok := p.cache[key]; ok {
		return cfg, nil
	}

	preset, ok := p.settings.Presets[t]
	if !ok {
		return divider.Config{}, fmt.Errorf("%w: %q", divider.ErrUnknownType, t)
	}
	if err := preset.Validate(); err != nil {
		return divider.Config{}, fmt.Errorf("%s: %w", t, err)
	}

	cfg := divider.Config{
		Preset:   preset,
		Limiters: p.settings.LimitersFor(lang),
	}
	p.cache[key] = cfg
	return cfg, nil
}
