package config

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"sitesettings/internal/settings"
)

// Validate ensures the configuration is usable, reporting every problem.
func (c *Config) Validate() error {
	var errs *multierror.Error
	if c.Paths.ContentRoot == "" {
		errs = multierror.Append(errs, errors.New("paths.content_root must be set"))
	}
	if _, err := settings.FormatForPath(c.Paths.FixturePath); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("paths.fixture_path: %w", err))
	}
	if c.Fixture.Section == "" {
		errs = multierror.Append(errs, errors.New("fixture.section must be set"))
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		errs = multierror.Append(errs, fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format))
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = multierror.Append(errs, fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level))
	}
	return errs.ErrorOrNil()
}
