// Package override installs site settings for tests and restores the
// factory defaults between them.
//
// A Holder keeps the active instance of each settings domain. A Builder
// lazily constructs and caches the default instance of each domain; the
// sectioned default layers a fixture file over the literal defaults. An
// Overrides value ties the two together: tests install their own instances
// with OverrideFlat and OverrideSectioned, and Reset drops the caches and
// reinstalls freshly built defaults.
//
// Nothing in this package locks. Tests that share one Overrides must run
// sequentially or serialise access themselves; see testsupport.Serialize.
package override
