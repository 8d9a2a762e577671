package picoedit

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

// Version returns the release version without the leading `v`.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag is the version as shown by the CLI and used for git tags.
func VersionTag() string {
	return "v" + Version()
}
