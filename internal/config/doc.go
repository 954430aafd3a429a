// Package config loads, normalizes, and validates the sitesettings CLI
// configuration.
//
// It supplies repository defaults, expands home-relative paths, reads TOML
// files, and honours the SITESETTINGS_CONTENT_ROOT and
// SITESETTINGS_VIRTUAL_ROOT environment fallbacks. The Config type tells the
// CLI where the site content lives, which fixture feeds the sectioned
// defaults, and how to log.
package config
