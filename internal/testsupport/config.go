package testsupport

import (
	"path/filepath"
	"testing"

	"sitesettings/internal/override"
	"sitesettings/internal/paths"
	"sitesettings/internal/settings"
)

// Option allows callers to customize the generated test overrides.
type Option func(*overridesBuilder)

type overridesBuilder struct {
	t           testing.TB
	baseDir     string
	format      settings.Format
	fixture     []byte
	virtualRoot string
	flat        settings.Flat
	sectioned   settings.Sectioned
}

// NewOverrides produces an Overrides rooted at a unique temp directory with
// the sample fixture written in and defaults installed. Options run before
// the reset; WithFlat and WithSectioned are installed after it.
func NewOverrides(t testing.TB, opts ...Option) *override.Overrides {
	t.Helper()

	builder := &overridesBuilder{
		t:           t,
		baseDir:     t.TempDir(),
		format:      settings.FormatTOML,
		virtualRoot: "/",
	}
	for _, opt := range opts {
		opt(builder)
	}

	resolver := &paths.Resolver{ContentRoot: builder.baseDir, VirtualRoot: builder.virtualRoot}
	ref := FixtureRef(builder.format)
	fixturePath, err := resolver.ResolveFile(ref)
	if err != nil {
		t.Fatalf("resolve fixture path: %v", err)
	}
	contents := builder.fixture
	if contents == nil {
		sample, err := settings.SampleFixture(builder.format)
		if err != nil {
			t.Fatalf("sample fixture: %v", err)
		}
		contents = []byte(sample)
	}
	WriteFile(t, fixturePath, contents)

	o := override.New(override.NewHolder(), override.NewBuilder(resolver, override.WithSourcePath(ref)))
	if err := o.Reset(); err != nil {
		t.Fatalf("reset settings: %v", err)
	}
	if builder.flat != nil {
		o.OverrideFlat(builder.flat)
	}
	if builder.sectioned != nil {
		o.OverrideSectioned(builder.sectioned)
	}
	return o
}

// FixtureRef returns the application-relative fixture location for format.
func FixtureRef(format settings.Format) string {
	if format == settings.FormatYAML {
		return "~/Configurations/SectionedSettings/settings.yaml"
	}
	return settings.DefaultFixturePath
}

// WithFixture replaces the sample fixture contents.
func WithFixture(contents string) Option {
	return func(b *overridesBuilder) {
		b.fixture = []byte(contents)
	}
}

// WithFixtureFormat selects the fixture encoding (and file extension).
func WithFixtureFormat(format settings.Format) Option {
	return func(b *overridesBuilder) {
		b.format = format
	}
}

// WithVirtualRoot mounts the site under a URL prefix.
func WithVirtualRoot(root string) Option {
	return func(b *overridesBuilder) {
		b.virtualRoot = root
	}
}

// WithFlat installs instance over the flat defaults.
func WithFlat(instance settings.Flat) Option {
	return func(b *overridesBuilder) {
		b.flat = instance
	}
}

// WithSectioned installs instance over the sectioned defaults.
func WithSectioned(instance settings.Sectioned) Option {
	return func(b *overridesBuilder) {
		b.sectioned = instance
	}
}

// BaseDir returns the content root backing the overrides.
func BaseDir(o *override.Overrides) string {
	return filepath.Clean(o.Builder().Resolver().ContentRoot)
}
