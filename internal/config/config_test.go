package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"sitesettings/internal/config"
	"sitesettings/internal/settings"
)

func isolateEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SITESETTINGS_CONTENT_ROOT", "")
	t.Setenv("SITESETTINGS_VIRTUAL_ROOT", "")
	t.Chdir(t.TempDir())
	return home
}

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	home := isolateEnv(t)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if resolved != filepath.Join(home, ".config", "sitesettings", "config.toml") {
		t.Fatalf("unexpected resolved path: %q", resolved)
	}

	if cfg.Paths.ContentRoot != filepath.Join(home, ".local", "share", "sitesettings", "site") {
		t.Fatalf("unexpected content root: %q", cfg.Paths.ContentRoot)
	}
	if cfg.Paths.LogDir != filepath.Join(home, ".local", "share", "sitesettings", "logs") {
		t.Fatalf("unexpected log dir: %q", cfg.Paths.LogDir)
	}
	if cfg.Paths.FixturePath != settings.DefaultFixturePath {
		t.Fatalf("fixture path must stay content-relative, got %q", cfg.Paths.FixturePath)
	}
	if cfg.Paths.VirtualRoot != "/" {
		t.Fatalf("unexpected virtual root: %q", cfg.Paths.VirtualRoot)
	}
	if cfg.Fixture.Section != settings.DefaultFixtureSection {
		t.Fatalf("unexpected section: %q", cfg.Fixture.Section)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.toml")
	contents := `
[paths]
content_root = "` + filepath.ToSlash(filepath.Join(dir, "site")) + `"
virtual_root = "cms"
fixture_path = "~/fixtures/settings.yaml"
log_dir = ""

[fixture]
section = "/defaults/"

[logging]
format = "JSON"
level = "Debug"
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected existing config at %q, got %q exists=%v", path, resolved, exists)
	}
	if cfg.Paths.ContentRoot != filepath.Join(dir, "site") {
		t.Fatalf("unexpected content root: %q", cfg.Paths.ContentRoot)
	}
	if cfg.Paths.VirtualRoot != "/cms" {
		t.Fatalf("expected leading slash on virtual root, got %q", cfg.Paths.VirtualRoot)
	}
	if cfg.Paths.LogDir != "" {
		t.Fatalf("expected empty log dir to stay empty, got %q", cfg.Paths.LogDir)
	}
	if cfg.Fixture.Section != "defaults" {
		t.Fatalf("unexpected section: %q", cfg.Fixture.Section)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("expected lower-cased logging values, got %+v", cfg.Logging)
	}

	fixture, err := cfg.Resolver().ResolveFile(cfg.Paths.FixturePath)
	if err != nil {
		t.Fatalf("ResolveFile: %v", err)
	}
	if fixture != filepath.Join(dir, "site", "fixtures", "settings.yaml") {
		t.Fatalf("unexpected fixture path: %q", fixture)
	}
	if got := cfg.Resolver().ResolveURL("~/backoffice"); got != "/cms/backoffice" {
		t.Fatalf("unexpected resolved url: %q", got)
	}
}

func TestLoadProjectConfig(t *testing.T) {
	isolateEnv(t)
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.WriteFile(filepath.Join(cwd, "sitesettings.toml"), []byte("[logging]\nlevel = \"warn\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || filepath.Base(resolved) != "sitesettings.toml" {
		t.Fatalf("expected project config, got %q exists=%v", resolved, exists)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("unexpected level: %q", cfg.Logging.Level)
	}
}

func TestEnvOverridesRoots(t *testing.T) {
	isolateEnv(t)
	root := t.TempDir()
	t.Setenv("SITESETTINGS_CONTENT_ROOT", root)
	t.Setenv("SITESETTINGS_VIRTUAL_ROOT", "/site/")

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[paths]\ncontent_root = \"/elsewhere\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Paths.ContentRoot != root {
		t.Fatalf("expected env content root, got %q", cfg.Paths.ContentRoot)
	}
	if got := cfg.Resolver().ResolveURL("~/backoffice/"); got != "/site/backoffice/" {
		t.Fatalf("unexpected resolved url: %q", got)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[paths]\nstaging_dir = \"/tmp\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	def := config.Default()
	if cfg != def {
		t.Fatalf("sample should mirror defaults:\n got %+v\nwant %+v", cfg, def)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}

	cfg.Paths.FixturePath = "~/settings.ini"
	cfg.Fixture.Section = ""
	cfg.Logging.Format = "xml"
	cfg.Logging.Level = "loud"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"paths.fixture_path", "fixture.section", "logging.format", "logging.level"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q in %v", want, err)
		}
	}
}
