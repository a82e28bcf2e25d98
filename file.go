//go:build darwin || linux || freebsd || netbsd || openbsd

package fhandle

import (
	"io"
	"io/fs"

	"github.com/go-git/go-billy/v5"
	"golang.org/x/sys/unix"

	"github.com/gwangyi/fhandle/internal"
)

// File adapts a Handle to the standard io interfaces. It owns its own
// reference to the descriptor, taken when it is created and dropped by Close.
//
// Unlike Handle, File follows the io contracts: Read reports end of stream as
// io.EOF, and Write, ReadAt and WriteAt keep going until the whole buffer is
// transferred or an error occurs.
type File struct {
	h *Handle
}

var (
	_ internal.File = (*File)(nil)
	_ billy.File    = (*File)(nil)
)

// File returns a new File sharing h's descriptor.
func (h *Handle) File() (*File, error) {
	if _, _, err := h.use("file"); err != nil {
		return nil, err
	}
	return &File{h: h.Clone()}, nil
}

// Name returns the name the descriptor was opened or adopted under.
func (f *File) Name() string { return f.h.Name() }

// Fd returns the raw descriptor, or ^uintptr(0) once it has been closed.
func (f *File) Fd() uintptr {
	fd, err := f.h.FD()
	if err != nil || fd < 0 {
		return ^uintptr(0)
	}
	return uintptr(fd)
}

// Stat implements fs.File.
func (f *File) Stat() (fs.FileInfo, error) { return f.h.Stat() }

// Read implements io.Reader.
func (f *File) Read(p []byte) (int, error) {
	n, err := f.h.ReadInto(p)
	if err == nil && n == 0 && len(p) > 0 {
		return 0, io.EOF
	}
	return n, err
}

// ReadAt implements io.ReaderAt.
func (f *File) ReadAt(p []byte, off int64) (int, error) {
	var total int
	for total < len(p) {
		n, err := f.h.ReadAt(p[total:], off+int64(total))
		if err != nil {
			return total, err
		}
		if n == 0 {
			return total, io.EOF
		}
		total += n
	}
	return total, nil
}

// Write implements io.Writer.
func (f *File) Write(p []byte) (int, error) {
	var total int
	for total < len(p) {
		n, err := f.h.Write(p[total:])
		if err != nil {
			return total, err
		}
		if n == 0 {
			return total, internal.IntoPathErr("write", f.Name(), io.ErrShortWrite)
		}
		total += n
	}
	return total, nil
}

// WriteAt implements io.WriterAt.
func (f *File) WriteAt(p []byte, off int64) (int, error) {
	var total int
	for total < len(p) {
		n, err := f.h.WriteAt(p[total:], off+int64(total))
		if err != nil {
			return total, err
		}
		if n == 0 {
			return total, internal.IntoPathErr("pwrite", f.Name(), io.ErrShortWrite)
		}
		total += n
	}
	return total, nil
}

// Seek implements io.Seeker.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	return f.h.Seek(offset, whence)
}

// Truncate changes the size of the file.
func (f *File) Truncate(size int64) error { return f.h.Truncate(size) }

// Lock places an exclusive flock(2) lock on the file, blocking until it is
// available.
func (f *File) Lock() error { return f.flock("lock", unix.LOCK_EX) }

// Unlock removes the lock placed by Lock.
func (f *File) Unlock() error { return f.flock("unlock", unix.LOCK_UN) }

func (f *File) flock(op string, how int) error {
	s, fd, err := f.h.use(op)
	if err != nil {
		return err
	}
	return internal.IntoPathErr(op, s.Name(), s.Sys().Flock(fd, how))
}

// Close drops the File's reference. If it was the last one, the descriptor is
// closed and the result of close(2) is returned rather than escalated.
// Closing a File twice fails with fs.ErrClosed.
func (f *File) Close() error {
	s := f.h.slot
	if s == nil {
		return internal.IntoPathErr("close", "", fs.ErrClosed)
	}
	f.h.slot = nil
	return internal.IntoPathErr("close", s.Name(), s.Release())
}
