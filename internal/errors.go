package internal

import (
	"errors"
	"io/fs"
	"os"
	"syscall"
)

var (
	// ErrBadFileDescriptor is the errno reported for a descriptor that is not
	// open, or not open for the requested operation.
	ErrBadFileDescriptor = syscall.EBADF

	// ErrNotBound is returned by every operation on a handle that holds no
	// descriptor.
	ErrNotBound = errors.New("no file descriptor bound")

	// ErrClosed is returned when the shared descriptor has already been closed.
	// It matches both ErrBadFileDescriptor and fs.ErrClosed.
	ErrClosed error = closedError{}
)

type closedError struct{}

func (closedError) Error() string { return "file descriptor already closed" }

func (closedError) Is(target error) bool {
	return target == ErrBadFileDescriptor || target == fs.ErrClosed
}

func underlyingError(err error) error {
	switch e := err.(type) {
	case *fs.PathError:
		return e.Err
	case *os.SyscallError:
		return e.Err
	}
	return err
}

// IntoPathErr wraps err into an *fs.PathError carrying op and path.
// An error that is already a *fs.PathError or *os.SyscallError is unwrapped
// first so the errno is never buried more than one level deep.
func IntoPathErr(op, path string, err error) error {
	if err == nil {
		return nil
	}

	return &fs.PathError{Op: op, Path: path, Err: underlyingError(err)}
}

// Errno extracts the platform error code carried by err, if any.
func Errno(err error) (syscall.Errno, bool) {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno, true
	}
	return 0, false
}
