// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Webify is the canonical application identifier used for filesystem paths and CLI branding.
	Webify = "webify"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// UserAgent is the HTTP User-Agent sent to every remote media service.
	UserAgent = "Mozilla/5.0"
)

// Build metadata, overridden with -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
