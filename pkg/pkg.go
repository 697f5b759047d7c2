//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
)

// Version is the semantic version of the rusty-sharutils module embedded at
// build time. It is printed by every tool when users request --version.
//
//go:embed VERSION
var Version string

const (
	// Name is the canonical module identifier shared by all tools in the
	// suite. Individual binaries carry their own command names.
	Name = "rusty-sharutils"
	// Description is a short, human-readable summary of the project used in
	// version banners and documentation.
	Description = "Unix sharutils encode/decode tools"
)
