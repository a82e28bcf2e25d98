//go:build darwin || linux || freebsd || netbsd || openbsd

package internal

//go:generate mockgen -build_constraint "darwin || linux || freebsd || netbsd || openbsd" -destination ../mocksys/mocksys.go -package mocksys . Sys

import (
	"golang.org/x/sys/unix"
)

// Sys is the set of descriptor primitives a Slot and its handles are built on.
// Unix is the production implementation; tests substitute a mock to produce
// failures the kernel will not produce on demand (a failing close, a block
// device).
type Sys interface {
	Open(path string, flag int, perm uint32) (int, error)
	Close(fd int) error
	Read(fd int, p []byte) (int, error)
	Write(fd int, p []byte) (int, error)
	Pread(fd int, p []byte, offset int64) (int, error)
	Pwrite(fd int, p []byte, offset int64) (int, error)
	Seek(fd int, offset int64, whence int) (int64, error)
	Ftruncate(fd int, size int64) error
	Fstat(fd int, st *unix.Stat_t) error
	Flock(fd int, how int) error
	Pipe() (r, w int, err error)

	// BlockDeviceSize returns the size in bytes of the block device behind fd.
	// ok is false when the platform has no way to ask.
	BlockDeviceSize(fd int) (size int64, ok bool)
}

// Unix implements Sys with golang.org/x/sys/unix.
type Unix struct{}

var _ Sys = Unix{}

func (Unix) Open(path string, flag int, perm uint32) (int, error) {
	return unix.Open(path, flag|unix.O_CLOEXEC, perm)
}

func (Unix) Close(fd int) error { return unix.Close(fd) }

// Read and Write issue exactly one system call. Zero-length buffers are
// handled by the caller.
func (Unix) Read(fd int, p []byte) (int, error)  { return unix.Read(fd, p) }
func (Unix) Write(fd int, p []byte) (int, error) { return unix.Write(fd, p) }

func (Unix) Pread(fd int, p []byte, offset int64) (int, error) {
	return unix.Pread(fd, p, offset)
}

func (Unix) Pwrite(fd int, p []byte, offset int64) (int, error) {
	return unix.Pwrite(fd, p, offset)
}

func (Unix) Seek(fd int, offset int64, whence int) (int64, error) {
	return unix.Seek(fd, offset, whence)
}

func (Unix) Ftruncate(fd int, size int64) error { return unix.Ftruncate(fd, size) }

func (Unix) Fstat(fd int, st *unix.Stat_t) error { return unix.Fstat(fd, st) }

func (Unix) Flock(fd int, how int) error { return unix.Flock(fd, how) }

func (Unix) Pipe() (r, w int, err error) {
	var p [2]int
	if err := pipe(p[:]); err != nil {
		return -1, -1, err
	}
	return p[0], p[1], nil
}

func (Unix) BlockDeviceSize(fd int) (int64, bool) {
	if blockDeviceSize == nil {
		return 0, false
	}
	size, err := blockDeviceSize(fd)
	if err != nil {
		return 0, false
	}
	return size, true
}
