// Package paths resolves application-relative locations.
//
// Site settings refer to files and URLs with a leading "~/" meaning "the
// application root". A Resolver maps those references onto a content root on
// disk (for fixture files) and onto a virtual root for URLs, so tests can
// point the whole configuration at a temporary directory.
package paths
