package paths_test

import (
	"path/filepath"
	"testing"

	"sitesettings/internal/paths"
)

func TestResolveFileUnderContentRoot(t *testing.T) {
	root := t.TempDir()
	r := paths.NewResolver(root)

	got, err := r.ResolveFile("~/Configurations/SectionedSettings/settings.toml")
	if err != nil {
		t.Fatalf("ResolveFile returned error: %v", err)
	}
	want := filepath.Join(root, "Configurations", "SectionedSettings", "settings.toml")
	if got != want {
		t.Fatalf("unexpected path: got %q want %q", got, want)
	}

	got, err = r.ResolveFile("fixtures/a.toml")
	if err != nil {
		t.Fatalf("ResolveFile relative: %v", err)
	}
	if got != filepath.Join(root, "fixtures", "a.toml") {
		t.Fatalf("unexpected relative path: %q", got)
	}
}

func TestResolveFileAbsoluteAndErrors(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "x", "..", "y.toml")
	got, err := (&paths.Resolver{}).ResolveFile(abs)
	if err != nil {
		t.Fatalf("ResolveFile absolute: %v", err)
	}
	if got != filepath.Clean(abs) {
		t.Fatalf("expected cleaned absolute path, got %q", got)
	}

	if _, err := (&paths.Resolver{}).ResolveFile("~/a.toml"); err == nil {
		t.Fatal("expected error without content root")
	}
	if _, err := paths.NewResolver(t.TempDir()).ResolveFile("  "); err == nil {
		t.Fatal("expected error for empty reference")
	}
}

func TestResolveURL(t *testing.T) {
	cases := []struct {
		root string
		ref  string
		want string
	}{
		{"/", "~/backoffice", "/backoffice"},
		{"", "~/backoffice", "/backoffice"},
		{"/site", "~/backoffice", "/site/backoffice"},
		{"site/", "~/app_plugins/", "/site/app_plugins/"},
		{"/", "~", "/"},
		{"/", "/already/absolute", "/already/absolute"},
	}
	for _, tc := range cases {
		r := &paths.Resolver{VirtualRoot: tc.root}
		if got := r.ResolveURL(tc.ref); got != tc.want {
			t.Fatalf("ResolveURL(%q) with root %q = %q, want %q", tc.ref, tc.root, got, tc.want)
		}
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := paths.ExpandHome("~/.config/sitesettings")
	if err != nil {
		t.Fatalf("ExpandHome: %v", err)
	}
	if got != filepath.Join(home, ".config", "sitesettings") {
		t.Fatalf("unexpected expansion: %q", got)
	}
	if got, _ := paths.ExpandHome(""); got != "" {
		t.Fatalf("expected empty path to stay empty, got %q", got)
	}
}
