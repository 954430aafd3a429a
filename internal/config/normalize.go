package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeFixture()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	if value, ok := os.LookupEnv(envContentRoot); ok && strings.TrimSpace(value) != "" {
		c.Paths.ContentRoot = value
	}
	if value, ok := os.LookupEnv(envVirtualRoot); ok && strings.TrimSpace(value) != "" {
		c.Paths.VirtualRoot = value
	}

	var err error
	if strings.TrimSpace(c.Paths.ContentRoot) == "" {
		c.Paths.ContentRoot = defaultContentRoot
	}
	if c.Paths.ContentRoot, err = ExpandPath(strings.TrimSpace(c.Paths.ContentRoot)); err != nil {
		return fmt.Errorf("paths.content_root: %w", err)
	}
	if c.Paths.LogDir, err = ExpandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}

	c.Paths.VirtualRoot = strings.TrimSpace(c.Paths.VirtualRoot)
	if c.Paths.VirtualRoot == "" {
		c.Paths.VirtualRoot = defaultVirtualRoot
	}
	if !strings.HasPrefix(c.Paths.VirtualRoot, "/") {
		c.Paths.VirtualRoot = "/" + c.Paths.VirtualRoot
	}

	c.Paths.FixturePath = strings.TrimSpace(c.Paths.FixturePath)
	if c.Paths.FixturePath == "" {
		c.Paths.FixturePath = Default().Paths.FixturePath
	}
	return nil
}

func (c *Config) normalizeFixture() {
	c.Fixture.Section = strings.Trim(strings.TrimSpace(c.Fixture.Section), "/")
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
