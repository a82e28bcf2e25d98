package fhandle_test

import (
	"errors"
	"io/fs"
	"syscall"
	"testing"

	"github.com/gwangyi/fhandle"
)

func TestErrClosed(t *testing.T) {
	tests := []struct {
		name     string
		target   error
		expected bool
	}{
		{
			name:     "ErrClosed",
			target:   fhandle.ErrClosed,
			expected: true,
		},
		{
			name:     "ErrBadFileDescriptor",
			target:   fhandle.ErrBadFileDescriptor,
			expected: true,
		},
		{
			name:     "syscall.EBADF",
			target:   syscall.EBADF,
			expected: true,
		},
		{
			name:     "fs.ErrClosed",
			target:   fs.ErrClosed,
			expected: true,
		},
		{
			name:     "ErrNotBound",
			target:   fhandle.ErrNotBound,
			expected: false,
		},
		{
			name:     "syscall.EPIPE",
			target:   syscall.EPIPE,
			expected: false,
		},
	}

	wrapped := &fs.PathError{Op: "read", Path: "fd:3", Err: fhandle.ErrClosed}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(wrapped, tt.target); got != tt.expected {
				t.Errorf("errors.Is(%v, %v) = %v, want %v", wrapped, tt.target, got, tt.expected)
			}
		})
	}
}

func TestReleaseError(t *testing.T) {
	err := &fhandle.ReleaseError{Name: "data.bin", FD: 7, Err: syscall.EIO}

	if got, want := err.Error(), "fhandle: release data.bin (fd 7): "+syscall.EIO.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, syscall.EIO) {
		t.Errorf("expected ReleaseError to unwrap to EIO")
	}
	if errno, ok := fhandle.Errno(err); !ok || errno != syscall.EIO {
		t.Errorf("Errno() = %v, %v; want EIO", errno, ok)
	}
}
