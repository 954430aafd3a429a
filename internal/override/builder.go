package override

import (
	"sitesettings/internal/paths"
	"sitesettings/internal/settings"
)

// BuilderOption customizes a Builder.
type BuilderOption func(*Builder)

// WithSourcePath points the sectioned defaults at a different fixture. The
// reference may be application-relative ("~/...") or absolute.
func WithSourcePath(ref string) BuilderOption {
	return func(b *Builder) {
		b.sourceRef = ref
	}
}

// WithSection selects a different "/"-separated section inside the fixture.
func WithSection(section string) BuilderOption {
	return func(b *Builder) {
		b.section = section
	}
}

// Builder lazily constructs and caches the default instance of each domain.
// A cached default is returned as-is until InvalidateCaches is called.
type Builder struct {
	resolver  *paths.Resolver
	sourceRef string
	section   string

	flat      *settings.FlatConfig
	sectioned *settings.SectionedConfig
}

// NewBuilder returns a builder that resolves URLs and the fixture path
// through resolver.
func NewBuilder(resolver *paths.Resolver, opts ...BuilderOption) *Builder {
	b := &Builder{
		resolver:  resolver,
		sourceRef: settings.DefaultFixturePath,
		section:   settings.DefaultFixtureSection,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Resolver returns the path resolver the builder was created with.
func (b *Builder) Resolver() *paths.Resolver {
	return b.resolver
}

// SourcePath returns the absolute path of the sectioned defaults fixture.
func (b *Builder) SourcePath() (string, error) {
	return b.resolver.ResolveFile(b.sourceRef)
}

// Section returns the fixture section the sectioned defaults are read from.
func (b *Builder) Section() string {
	return b.section
}

// DefaultFlat returns the cached flat defaults, building them on first use.
func (b *Builder) DefaultFlat() *settings.FlatConfig {
	if b.flat == nil {
		b.flat = settings.GenerateFlat(b.resolver)
	}
	return b.flat
}

// DefaultSectioned returns the cached sectioned defaults, building them on
// first use from the literal defaults and the fixture section. On failure
// the error is a *SourceError and nothing is cached.
func (b *Builder) DefaultSectioned() (*settings.SectionedConfig, error) {
	if b.sectioned != nil {
		return b.sectioned, nil
	}

	path, err := b.SourcePath()
	if err != nil {
		return nil, &SourceError{Section: b.section, Err: err}
	}
	cfg := settings.GenerateSectioned()
	if err := settings.LoadSection(path, b.section, cfg); err != nil {
		return nil, &SourceError{Path: path, Section: b.section, Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return nil, &SourceError{Path: path, Section: b.section, Err: err}
	}

	b.sectioned = cfg
	return b.sectioned, nil
}

// InvalidateCaches drops both cached defaults.
func (b *Builder) InvalidateCaches() {
	b.flat = nil
	b.sectioned = nil
}
