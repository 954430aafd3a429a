package testsupport

import (
	"testing"

	"sitesettings/internal/settings"
)

// WriteFile writes contents to path, creating parent directories.
func WriteFile(t testing.TB, path string, contents []byte) {
	t.Helper()

	if err := settings.WriteFixture(path, contents); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
