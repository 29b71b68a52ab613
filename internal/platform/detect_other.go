//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package platform

import "runtime"

func detect() OS {
	return FromGOOS(runtime.GOOS)
}
