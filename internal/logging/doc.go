// Package logging assembles structured slog loggers for the sitesettings
// command line tool.
//
// It owns the console and JSON handlers, level parsing and output routing.
// Several outputs (stderr plus a log file) fan out through slog-multi.
// The package also provides a no-op logger for tests and for library code
// that accepts an optional logger.
//
// The settings and override packages never log; only the CLI does.
package logging
