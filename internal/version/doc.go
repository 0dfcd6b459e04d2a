// Package version exposes build metadata of the disdat binaries.
//
// Version, Commit and BuildTime are injected via Go ldflags.
package version
