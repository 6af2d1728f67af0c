package app

import (
	"fmt"
	"io"
	"runtime"
)

// Version is the application version, overridable at build time via
// -ldflags "-X github.com/algoforge/katarun/internal/app.Version=v1.2.3".
var Version = "dev"

// HasVersionFlag reports whether the arguments request the version banner.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "-version" || arg == "--version" {
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "katarun %s (%s, %s/%s)\n", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
