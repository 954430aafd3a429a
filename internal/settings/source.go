package settings

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format identifies a fixture file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the encoding from the file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported fixture extension %q", filepath.Ext(path))
	}
}

// LoadSection reads the file at path, selects the "/"-separated section and
// decodes it into dst. Fields already set on dst and absent from the section
// keep their values. Unknown keys are rejected.
func LoadSection(path, section string, dst any) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read fixture: %w", err)
	}

	doc := map[string]any{}
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	}
	if err != nil {
		return fmt.Errorf("parse fixture: %w", err)
	}

	sub, err := selectSection(doc, section)
	if err != nil {
		return err
	}
	return decodeStrict(format, sub, dst)
}

func selectSection(doc map[string]any, section string) (map[string]any, error) {
	current := doc
	trimmed := strings.Trim(section, "/")
	if trimmed == "" {
		return current, nil
	}
	for _, key := range strings.Split(trimmed, "/") {
		next, ok := current[key]
		if !ok {
			return nil, fmt.Errorf("section %q: key %q not found", section, key)
		}
		table, ok := next.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("section %q: key %q is not a table", section, key)
		}
		current = table
	}
	return current, nil
}

func decodeStrict(format Format, sub map[string]any, dst any) error {
	switch format {
	case FormatTOML:
		raw, err := toml.Marshal(sub)
		if err != nil {
			return fmt.Errorf("encode section: %w", err)
		}
		decoder := toml.NewDecoder(bytes.NewReader(raw))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(dst); err != nil {
			return fmt.Errorf("decode section: %w", err)
		}
	case FormatYAML:
		raw, err := yaml.Marshal(sub)
		if err != nil {
			return fmt.Errorf("encode section: %w", err)
		}
		decoder := yaml.NewDecoder(bytes.NewReader(raw))
		decoder.KnownFields(true)
		if err := decoder.Decode(dst); err != nil {
			return fmt.Errorf("decode section: %w", err)
		}
	}
	return nil
}
