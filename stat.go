//go:build darwin || linux || freebsd || netbsd || openbsd

package fhandle

import (
	"golang.org/x/sys/unix"

	"github.com/gwangyi/fhandle/internal"
)

// SizeUnknown is returned by Size when the descriptor has no meaningful size.
const SizeUnknown int64 = -1

// FileInfo extends the standard fs.FileInfo interface with ownership, access
// time and change time.
type FileInfo = internal.FileInfo

// Size returns the size in bytes of the object behind the descriptor.
//
// Regular files report their length and block devices the device capacity.
// Pipes, sockets, character devices and directories report SizeUnknown, as do
// block devices on platforms without a geometry query and descriptors fstat
// cannot describe. Only ErrNotBound and ErrClosed are returned as errors.
func (h *Handle) Size() (int64, error) {
	s, fd, err := h.use("size")
	if err != nil {
		return SizeUnknown, err
	}

	var st unix.Stat_t
	if err := s.Sys().Fstat(fd, &st); err != nil {
		return SizeUnknown, nil
	}
	switch kindOf(uint32(st.Mode)) {
	case KindRegular:
		return st.Size, nil
	case KindBlockDevice:
		if size, ok := s.Sys().BlockDeviceSize(fd); ok {
			return size, nil
		}
	}
	return SizeUnknown, nil
}

// Kind reports what kind of object the descriptor refers to.
func (h *Handle) Kind() (Kind, error) {
	s, fd, err := h.use("stat")
	if err != nil {
		return KindUnknown, err
	}

	var st unix.Stat_t
	if err := s.Sys().Fstat(fd, &st); err != nil {
		return KindUnknown, internal.IntoPathErr("stat", s.Name(), err)
	}
	return kindOf(uint32(st.Mode)), nil
}

// Stat returns a FileInfo describing the descriptor, as fstat(2) reports it.
func (h *Handle) Stat() (FileInfo, error) {
	s, fd, err := h.use("stat")
	if err != nil {
		return nil, err
	}

	var st unix.Stat_t
	if err := s.Sys().Fstat(fd, &st); err != nil {
		return nil, internal.IntoPathErr("stat", s.Name(), err)
	}
	return internal.NewFileInfo(s.Name(), &st), nil
}

func kindOf(mode uint32) Kind {
	switch mode & unix.S_IFMT {
	case unix.S_IFREG:
		return KindRegular
	case unix.S_IFDIR:
		return KindDirectory
	case unix.S_IFLNK:
		return KindSymlink
	case unix.S_IFBLK:
		return KindBlockDevice
	case unix.S_IFCHR:
		return KindCharDevice
	case unix.S_IFIFO:
		return KindPipe
	case unix.S_IFSOCK:
		return KindSocket
	}
	return KindUnknown
}
