//go:build darwin

package internal

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// pipe has no pipe2 to lean on, so close-on-exec is set after the fact under
// the fork lock.
func pipe(p []int) error {
	syscall.ForkLock.RLock()
	defer syscall.ForkLock.RUnlock()
	if err := unix.Pipe(p); err != nil {
		return err
	}
	unix.CloseOnExec(p[0])
	unix.CloseOnExec(p[1])
	return nil
}
