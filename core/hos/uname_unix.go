//go:build !windows
// +build !windows

package hos

import "golang.org/x/sys/unix"

func uname() (Utsname, error) {
	var buf unix.Utsname
	if err := unix.Uname(&buf); err != nil {
		return Utsname{}, err
	}

	return Utsname{
		Sysname:  unix.ByteSliceToString(buf.Sysname[:]),
		Nodename: unix.ByteSliceToString(buf.Nodename[:]),
		Release:  unix.ByteSliceToString(buf.Release[:]),
		Version:  unix.ByteSliceToString(buf.Version[:]),
		Machine:  unix.ByteSliceToString(buf.Machine[:]),
	}, nil
}
