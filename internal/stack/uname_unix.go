//go:build unix

package stack

import "golang.org/x/sys/unix"

func unameInfo() (sysname, release, machine string) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return fallbackUname()
	}
	return unix.ByteSliceToString(uts.Sysname[:]),
		unix.ByteSliceToString(uts.Release[:]),
		unix.ByteSliceToString(uts.Machine[:])
}
