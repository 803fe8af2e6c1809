//go:build unix

package artifact

import "golang.org/x/sys/unix"

// setUmask sets the process umask and returns a function restoring the previous one.
func setUmask(mask int) func() {
	old := unix.Umask(mask)
	return func() {
		unix.Umask(old)
	}
}
