//go:build darwin || linux || freebsd || netbsd || openbsd

package fhandle

import (
	"io"

	"github.com/gwangyi/fhandle/internal"
)

// Seek sets the offset for the next Read or Write to offset, interpreted
// according to whence (io.SeekStart, io.SeekCurrent or io.SeekEnd), and
// returns the new offset. Seeking a pipe or socket fails with ESPIPE.
func (h *Handle) Seek(offset int64, whence int) (int64, error) {
	s, fd, err := h.use("seek")
	if err != nil {
		return 0, err
	}
	pos, err := s.Sys().Seek(fd, offset, whence)
	if err != nil {
		return 0, internal.IntoPathErr("seek", s.Name(), err)
	}
	return pos, nil
}

// Tell returns the current offset without moving it.
func (h *Handle) Tell() (int64, error) {
	s, fd, err := h.use("tell")
	if err != nil {
		return 0, err
	}
	pos, err := s.Sys().Seek(fd, 0, io.SeekCurrent)
	if err != nil {
		return 0, internal.IntoPathErr("tell", s.Name(), err)
	}
	return pos, nil
}

// Truncate changes the size of the file to exactly size bytes, discarding the
// tail or extending with zeros. The offset is not changed.
// It fails with EINVAL for objects that cannot be resized, such as pipes.
func (h *Handle) Truncate(size int64) error {
	s, fd, err := h.use("truncate")
	if err != nil {
		return err
	}
	return internal.IntoPathErr("truncate", s.Name(), s.Sys().Ftruncate(fd, size))
}
