// Package constant defines immutable application-level identifiers and build metadata.
package constant

const (
	// Couchpad is the canonical application identifier used for filesystem paths and CLI branding.
	Couchpad = "couchpad"

	// Version is the current application semantic version string.
	Version = "0.1.0"
)

// Build metadata, overridable via -ldflags at release time.
var (
	Revision = "unknown"
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
)
