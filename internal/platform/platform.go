// Package platform identifies the operating system family the process runs on.
package platform

import "strings"

// OS is an operating system family.
type OS int

const (
	Other OS = iota
	Windows
	MacOS
	Linux
)

func (o OS) String() string {
	switch o {
	case Windows:
		return "windows"
	case MacOS:
		return "macos"
	case Linux:
		return "linux"
	default:
		return "other"
	}
}

// FromGOOS maps a runtime.GOOS value to an OS.
func FromGOOS(goos string) OS {
	switch goos {
	case "windows":
		return Windows
	case "darwin", "ios":
		return MacOS
	case "linux", "android":
		return Linux
	}
	return Other
}

// FromSysname maps a uname(2) sysname such as "Darwin" or "Linux" to an OS.
func FromSysname(sysname string) OS {
	switch strings.ToLower(sysname) {
	case "darwin":
		return MacOS
	case "linux":
		return Linux
	}
	if strings.HasPrefix(strings.ToLower(sysname), "windows") {
		return Windows
	}
	return Other
}

// Detect returns the OS of the running process.
func Detect() OS {
	return detect()
}
