package config

import "sitesettings/internal/settings"

const (
	defaultContentRoot = "~/.local/share/sitesettings/site"
	defaultVirtualRoot = "/"
	defaultLogDir      = "~/.local/share/sitesettings/logs"
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"

	envContentRoot = "SITESETTINGS_CONTENT_ROOT"
	envVirtualRoot = "SITESETTINGS_VIRTUAL_ROOT"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			ContentRoot: defaultContentRoot,
			VirtualRoot: defaultVirtualRoot,
			FixturePath: settings.DefaultFixturePath,
			LogDir:      defaultLogDir,
		},
		Fixture: Fixture{
			Section: settings.DefaultFixtureSection,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
