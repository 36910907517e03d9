// Package buildinfo exposes version metadata stamped at link time.
//
// The variables are meant to be overridden via -ldflags, e.g.:
//
//	go build -ldflags "-X github.com/wip-project/wipcli/internal/buildinfo.Version=v1.2.0"
package buildinfo

import (
	"fmt"
	"io"
)

var (
	Version = "N/A"
	Date    = "N/A"
	Commit  = "N/A"
)

// Print writes the build banner to w. Unset values render as "N/A".
func Print(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", Version)
	fmt.Fprintf(w, "Build date: %s\n", Date)
	fmt.Fprintf(w, "Build commit: %s\n", Commit)
}
