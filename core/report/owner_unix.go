//go:build !windows
// +build !windows

package report

import (
	"os"
	"syscall"
)

// fileOwner extracts the numeric owner from platform stat info, falling
// back to root for filesystems that don't track ownership.
func fileOwner(fileInfo os.FileInfo) (uid, gid int) {
	if st, ok := fileInfo.Sys().(*syscall.Stat_t); ok {
		return int(st.Uid), int(st.Gid)
	}
	return 0, 0
}
