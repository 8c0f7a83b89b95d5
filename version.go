// Package logicloom carries build metadata for the logicloom binaries.
package logicloom

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var versionRaw string

// Version returns the release version, e.g. "0.1.0".
func Version() string {
	return strings.TrimSpace(versionRaw)
}

// UserAgent identifies logicloom in logs and HTTP headers.
func UserAgent() string {
	return "logicloom/" + Version()
}
