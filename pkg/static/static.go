// Package static holds build-time version information.
package static

var (
	Version = "dev"
	Commit  = "unknown"
)
