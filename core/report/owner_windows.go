//go:build windows
// +build windows

package report

import "os"

// fileOwner has no numeric owner to extract on Windows.
func fileOwner(fileInfo os.FileInfo) (uid, gid int) {
	return 0, 0
}
