//go:build linux || darwin || freebsd || netbsd || openbsd

package platform

import (
	"runtime"

	"golang.org/x/sys/unix"
)

func detect() OS {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return FromGOOS(runtime.GOOS)
	}
	return FromSysname(unix.ByteSliceToString(uts.Sysname[:]))
}
