//go:build darwin || linux || freebsd || netbsd || openbsd

package fhandle

import (
	"io/fs"
	"unsafe"

	"github.com/gwangyi/fhandle/internal"
)

// Scalar is the set of fixed-size element types WriteValues and ReadValues
// move as raw memory.
type Scalar interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Write writes p at the current offset with a single write(2) and returns the
// number of bytes written. A short count is not an error; the caller resubmits
// the remainder if it needs all of p written.
func (h *Handle) Write(p []byte) (int, error) {
	s, fd, err := h.use("write")
	if err != nil {
		return 0, err
	}
	if len(p) == 0 {
		return 0, nil
	}
	n, err := s.Sys().Write(fd, p)
	if err != nil {
		return 0, internal.IntoPathErr("write", s.Name(), err)
	}
	return n, nil
}

// WriteAt writes p at offset off without moving the current offset.
// Like Write it issues one call and may write fewer bytes than len(p).
func (h *Handle) WriteAt(p []byte, off int64) (int, error) {
	s, fd, err := h.use("pwrite")
	if err != nil {
		return 0, err
	}
	if len(p) == 0 {
		return 0, nil
	}
	n, err := s.Sys().Pwrite(fd, p, off)
	if err != nil {
		return 0, internal.IntoPathErr("pwrite", s.Name(), err)
	}
	return n, nil
}

// Read reads up to n bytes at the current offset into a new buffer, trimmed
// to the bytes actually read. An empty result with a nil error means end of
// stream.
func (h *Handle) Read(n int) ([]byte, error) {
	if n < 0 {
		return nil, internal.IntoPathErr("read", h.Name(), fs.ErrInvalid)
	}
	buf := make([]byte, n)
	got, err := h.readInto("read", buf)
	if err != nil {
		return nil, err
	}
	return buf[:got], nil
}

// ReadInto reads into p at the current offset and returns the number of bytes
// read. Zero with a nil error means end of stream; it is not reported as
// io.EOF.
func (h *Handle) ReadInto(p []byte) (int, error) {
	return h.readInto("read", p)
}

func (h *Handle) readInto(op string, p []byte) (int, error) {
	s, fd, err := h.use(op)
	if err != nil {
		return 0, err
	}
	if len(p) == 0 {
		return 0, nil
	}
	n, err := s.Sys().Read(fd, p)
	if err != nil {
		return 0, internal.IntoPathErr(op, s.Name(), err)
	}
	return n, nil
}

// ReadAt reads into p from offset off without moving the current offset. It
// issues one call: fewer than len(p) bytes, or zero at end of file, is not an
// error.
func (h *Handle) ReadAt(p []byte, off int64) (int, error) {
	s, fd, err := h.use("pread")
	if err != nil {
		return 0, err
	}
	if len(p) == 0 {
		return 0, nil
	}
	n, err := s.Sys().Pread(fd, p, off)
	if err != nil {
		return 0, internal.IntoPathErr("pread", s.Name(), err)
	}
	return n, nil
}

// WriteValues writes the memory of vals at the current offset. The byte count
// is len(vals) times the element size, in host byte order. The returned count
// is in bytes and may end in the middle of an element.
func WriteValues[T Scalar](h *Handle, vals []T) (int, error) {
	return h.Write(asBytes(vals))
}

// ReadValues reads into the memory of vals and returns the number of bytes
// read, which may end in the middle of an element.
func ReadValues[T Scalar](h *Handle, vals []T) (int, error) {
	return h.ReadInto(asBytes(vals))
}

func asBytes[T Scalar](vals []T) []byte {
	if len(vals) == 0 {
		return nil
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(vals))), len(vals)*int(unsafe.Sizeof(zero)))
}
