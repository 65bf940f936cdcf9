// Package buildinfo exposes build metadata injected at link time.
package buildinfo

import (
	"fmt"
	"io"
)

// Set via -ldflags, e.g.
//
//	go build -ldflags "-X .../internal/buildinfo.Version=1.2.0 -X .../internal/buildinfo.BuildDate=2026-09-01"
var (
	Version   = "N/A"
	BuildDate = "N/A"
)

// PrintBuildData writes version information to w.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", Version)
	fmt.Fprintf(w, "Build date: %s\n", BuildDate)
}
