// Package version holds the build version, overridable at link time with
// -ldflags "-X github.com/bnema/load-velocity-cli/internal/version.Version=v1.2.3".
package version

var Version = "dev"
