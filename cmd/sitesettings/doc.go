// Package main hosts the sitesettings CLI entrypoint and command graph.
//
// The Cobra-based command tree renders the default flat and sectioned
// settings, scaffolds and validates the sectioned defaults fixture, and
// manages the CLI's own configuration file. Configuration resolution and
// logging setup live in the command context so subcommands stay declarative.
package main
