package settings

import "github.com/Masterminds/semver/v3"

const releaseVersion = "1.6.0"

var currentVersion = semver.MustParse(releaseVersion)

// CurrentVersion returns the running system version.
func CurrentVersion() *semver.Version {
	v := *currentVersion
	return &v
}
