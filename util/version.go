// Package util provides utility functions for the backend.
//
//revive:disable-next-line:var-naming
package util

import (
	"github.com/Masterminds/semver/v3"
)

// Version is replaced at build time with -ldflags "-X .../util.Version=x.y.z"
var Version = "0.1.0"

// NormalizeVersion returns the canonical semantic version of v, or "dev" when v is not a version
func NormalizeVersion(v string) string {
	parsed, err := semver.NewVersion(v)
	if err != nil {
		return "dev"
	}
	return parsed.String()
}
