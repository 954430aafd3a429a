package testsupport_test

import (
	"os"
	"path/filepath"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitesettings/internal/override"
	"sitesettings/internal/settings"
	"sitesettings/internal/testsupport"
)

func TestNewOverridesInstallsDefaults(t *testing.T) {
	o := testsupport.NewOverrides(t)

	flat, err := o.Holder().Flat()
	require.NoError(t, err)
	assert.Equal(t, 20, flat.TimeoutMinutes())
	assert.Equal(t, "/backoffice", flat.Path())

	sectioned, err := o.Holder().Sectioned()
	require.NoError(t, err)
	assert.Equal(t, 1800, sectioned.Content().LibraryCacheDuration())

	_, err = os.Stat(filepath.Join(testsupport.BaseDir(o), "Configurations", "SectionedSettings", "settings.toml"))
	require.NoError(t, err)
}

func TestNewOverridesOptions(t *testing.T) {
	custom := settings.GenerateSectioned()
	custom.ContentSection.CacheDuration = 5

	o := testsupport.NewOverrides(t,
		testsupport.WithFixtureFormat(settings.FormatYAML),
		testsupport.WithVirtualRoot("/site"),
		testsupport.WithSectioned(custom),
	)

	flat, err := o.Holder().Flat()
	require.NoError(t, err)
	assert.Equal(t, "/site/backoffice", flat.Path())

	sectioned, err := o.Holder().Sectioned()
	require.NoError(t, err)
	assert.Same(t, custom, sectioned)
	assert.Equal(t, override.StateOverridden, o.Holder().State(override.DomainSectioned))

	defaults, err := o.Builder().DefaultSectioned()
	require.NoError(t, err)
	assert.Equal(t, "SITE_CONTEXT", defaults.Security().AuthCookieName())

	path, err := o.Builder().SourcePath()
	require.NoError(t, err)
	assert.Equal(t, ".yaml", filepath.Ext(path))
}

func TestNewOverridesWithFixture(t *testing.T) {
	fixture := "[settings.defaults.security]\nauth_cookie_name = \"FIXTURE\"\n"
	o := testsupport.NewOverrides(t, testsupport.WithFixture(fixture))

	sectioned, err := o.Holder().Sectioned()
	require.NoError(t, err)
	assert.Equal(t, "FIXTURE", sectioned.Security().AuthCookieName())
	assert.Empty(t, sectioned.ScheduledTasks().Tasks())
}

func TestUseSharedResetsBetweenTests(t *testing.T) {
	o := testsupport.NewOverrides(t)

	t.Run("override", func(t *testing.T) {
		testsupport.UseShared(t, o)
		custom := settings.GenerateFlat(o.Builder().Resolver())
		custom.Timeout = 99
		o.OverrideFlat(custom)

		flat, err := o.Holder().Flat()
		require.NoError(t, err)
		assert.Equal(t, 99, flat.TimeoutMinutes())
	})

	t.Run("clean", func(t *testing.T) {
		testsupport.UseShared(t, o)
		flat, err := o.Holder().Flat()
		require.NoError(t, err)
		assert.Equal(t, 20, flat.TimeoutMinutes())
		assert.Equal(t, override.StateDefault, o.Holder().State(override.DomainFlat))
	})
}

func TestStubFlat(t *testing.T) {
	reserved := mapset.NewSet("~/custom/")
	m, err := testsupport.StubFlat(map[string]any{
		"TimeoutMinutes":   99,
		"UseHTTPS":         true,
		"LocalTempStorage": settings.TempStorageEnvironmentTemp,
		"ReservedPaths":    reserved,
	})
	require.NoError(t, err)

	o := testsupport.NewOverrides(t, testsupport.WithFlat(m))
	flat, err := o.Holder().Flat()
	require.NoError(t, err)
	assert.Same(t, m, flat)
	assert.Equal(t, 99, flat.TimeoutMinutes())
	assert.True(t, flat.UseHTTPS())
	assert.Equal(t, settings.TempStorageEnvironmentTemp, flat.LocalTempStorage())
	assert.True(t, flat.ReservedPaths().Contains("~/custom/"))
	m.AssertCalled(t, "TimeoutMinutes")
	m.AssertNotCalled(t, "Path")
}

func TestStubSectionedWithContent(t *testing.T) {
	content, err := testsupport.StubContent(map[string]any{
		"LibraryCacheDuration": 42,
		"ImageFileTypes":       []string{"webp"},
	})
	require.NoError(t, err)

	defaults := settings.GenerateSectioned()
	m, err := testsupport.StubSectioned(map[string]any{
		"Content":    content,
		"WebRouting": defaults.WebRouting(),
	})
	require.NoError(t, err)

	o := testsupport.NewOverrides(t)
	o.OverrideSectioned(m)

	sectioned, err := o.Holder().Sectioned()
	require.NoError(t, err)
	assert.Equal(t, 42, sectioned.Content().LibraryCacheDuration())
	assert.Equal(t, []string{"webp"}, sectioned.Content().ImageFileTypes())
	assert.Equal(t, "AutoLegacy", sectioned.WebRouting().URLProviderMode())
}

func TestStubRejectsMalformedSpecs(t *testing.T) {
	_, err := testsupport.StubFlat(map[string]any{"Timeout": 5})
	assert.ErrorContains(t, err, `no member "Timeout"`)

	_, err = testsupport.StubFlat(map[string]any{"TimeoutMinutes": "twenty"})
	assert.ErrorContains(t, err, "not assignable")

	_, err = testsupport.StubFlat(map[string]any{"UseHTTPS": nil})
	assert.ErrorContains(t, err, "nil is not a bool")

	_, err = testsupport.StubContent(map[string]any{"ImageFileTypes": nil})
	assert.NoError(t, err)
}

func TestSerializeReleasesOnCleanup(t *testing.T) {
	t.Run("first", func(t *testing.T) {
		testsupport.Serialize(t)
	})
	t.Run("second", func(t *testing.T) {
		testsupport.Serialize(t)
	})
}
