// Package settings defines the two site configuration domains and their
// factory defaults.
//
// Flat carries scalar runtime switches (base path, timeout, locale, reserved
// paths). Sectioned groups settings into named sections such as content,
// request handling and web routing. Both are interfaces so tests can install
// alternate implementations; FlatConfig and SectionedConfig are the plain
// value implementations produced by GenerateFlat and GenerateSectioned.
//
// The package also reads named sections out of TOML or YAML fixture files and
// owns the static default tables (image types, character replacements,
// reserved paths and URLs, current version).
package settings
