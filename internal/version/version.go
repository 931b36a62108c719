// Package version holds the build version, overridden at release time via
// -ldflags "-X github.com/facetline/facet/internal/version.Version=...".
package version

var Version = "0.3.1"
