// Package platform identifies the host operating system family once at startup.
package platform

import (
	"fmt"
	"runtime"
	"strings"
)

// Identity is the closed set of operating system families taskar dispatches on.
type Identity string

const (
	Windows Identity = "windows"
	Darwin  Identity = "darwin"
	Linux   Identity = "linux"
)

// Detect resolves the process platform identity from the Go runtime.
// Anything that is not Windows or macOS is treated as a Linux-like desktop.
func Detect() Identity {
	switch runtime.GOOS {
	case "windows":
		return Windows
	case "darwin":
		return Darwin
	default:
		return Linux
	}
}

// Parse maps a user-supplied platform name to an Identity.
func Parse(name string) (Identity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "windows":
		return Windows, nil
	case "darwin", "mac", "macos":
		return Darwin, nil
	case "linux":
		return Linux, nil
	default:
		return "", fmt.Errorf("unknown platform %q (expected windows, mac, or linux)", name)
	}
}

// String renders the identity for logs and doctor output.
func (i Identity) String() string {
	return string(i)
}
