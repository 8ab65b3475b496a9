//go:build windows
// +build windows

package hos

import (
	"os"
	"runtime"
)

// uname approximates utsname on Windows, which has no uname syscall.
// Release and Version are left empty rather than failing the query.
func uname() (Utsname, error) {
	nodename, _ := os.Hostname()

	return Utsname{
		Sysname:  runtime.GOOS,
		Nodename: nodename,
		Machine:  runtime.GOARCH,
	}, nil
}
