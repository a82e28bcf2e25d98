package fhandle

import (
	"fmt"
	"syscall"

	"github.com/gwangyi/fhandle/internal"
)

var (
	// ErrBadFileDescriptor is returned when an operation is performed on a file descriptor
	// that is not open for that operation (e.g., writing to the read end of a pipe).
	// It is an alias for syscall.EBADF.
	ErrBadFileDescriptor = internal.ErrBadFileDescriptor

	// ErrNotBound is returned by operations on a Handle that holds no descriptor.
	ErrNotBound = internal.ErrNotBound

	// ErrClosed is returned by operations on a descriptor that has already been
	// closed through any of its owners. errors.Is reports it as both
	// ErrBadFileDescriptor and fs.ErrClosed.
	ErrClosed = internal.ErrClosed
)

// ReleaseError is the panic value raised by Release when closing the
// descriptor of the last owner fails.
type ReleaseError struct {
	Name string
	FD   int
	Err  error
}

func (e *ReleaseError) Error() string {
	return fmt.Sprintf("fhandle: release %s (fd %d): %v", e.Name, e.FD, e.Err)
}

func (e *ReleaseError) Unwrap() error { return e.Err }

// Errno returns the platform error code carried by err, as reported by the
// failing system call.
func Errno(err error) (syscall.Errno, bool) {
	return internal.Errno(err)
}
