// SPDX-License-Identifier: MIT

// Package build carries version metadata injected at link time:
//
//	go build -ldflags "-X github.com/katalvlaran/tuplex/internal/build.Version=v0.3.0"
package build

var (
	// Version is the released version, "dev" for local builds.
	Version = "dev"

	// Commit is the VCS revision the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)
