// Package version reports build metadata injected with -ldflags.
package version

import (
	"fmt"
	"runtime"
)

// These variables are set via ldflags during build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Summary is the short form shown by --version, e.g. "1.2.0 (abc1234)".
func Summary() string {
	v := Version
	if v == "" {
		v = "dev"
	}
	if Commit == "" || Commit == "none" {
		return v
	}
	short := Commit
	if len(short) > 7 {
		short = short[:7]
	}
	return fmt.Sprintf("%s (%s)", v, short)
}

// Details is the multi-line build report.
func Details() string {
	return fmt.Sprintf("chatentry %s\n  commit: %s\n  built: %s\n  go: %s\n  platform: %s/%s\n",
		Summary(), Commit, Date, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
