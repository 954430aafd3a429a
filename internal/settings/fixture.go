package settings

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

const (
	// DefaultFixturePath is where the sectioned defaults fixture lives,
	// relative to the content root.
	DefaultFixturePath = "~/Configurations/SectionedSettings/settings.toml"
	// DefaultFixtureSection selects the defaults table inside the fixture.
	DefaultFixtureSection = "settings/defaults"
)

//go:embed sample_settings.toml
var sampleFixtureTOML string

//go:embed sample_settings.yaml
var sampleFixtureYAML string

// SampleFixture returns the bundled fixture in the requested encoding.
func SampleFixture(format Format) (string, error) {
	switch format {
	case FormatTOML:
		return sampleFixtureTOML, nil
	case FormatYAML:
		return sampleFixtureYAML, nil
	default:
		return "", fmt.Errorf("unsupported fixture format %q", format)
	}
}

// WriteFixture writes contents to path while holding an exclusive lock on a
// sibling lock file, so test binaries sharing a fixture directory do not
// interleave writes.
func WriteFixture(path string, contents []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create fixture directory: %w", err)
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock fixture: %w", err)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp fixture: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(contents); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write fixture: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close fixture: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace fixture: %w", err)
	}
	return nil
}

// WriteSampleFixture writes the bundled fixture to path, choosing the
// encoding from the extension.
func WriteSampleFixture(path string) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}
	sample, err := SampleFixture(format)
	if err != nil {
		return err
	}
	return WriteFixture(path, []byte(sample))
}
