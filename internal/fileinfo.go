//go:build darwin || linux || freebsd || netbsd || openbsd

package internal

import (
	"io/fs"
	"os/user"
	"path"
	"strconv"
	"time"

	"golang.org/x/sys/unix"
)

// FileInfo extends the standard fs.FileInfo interface with additional metadata
// reported by fstat(2).
//
// It allows access to ownership (Owner/Group) and the timestamps fs.FileInfo
// leaves out (AccessTime, ChangeTime).
type FileInfo interface {
	fs.FileInfo

	// Owner returns the user name of the owner of the file.
	// If resolution fails, it returns the numeric UID as a string.
	Owner() string

	// Group returns the group name of the group of the file.
	// If resolution fails, it returns the numeric GID as a string.
	Group() string

	// AccessTime returns the last access time of the file (atime).
	AccessTime() time.Time

	// ChangeTime returns the last status change time of the file (ctime).
	ChangeTime() time.Time
}

// statInfo is the FileInfo built from a unix.Stat_t.
type statInfo struct {
	name       string
	st         unix.Stat_t
	owner      string
	group      string
	accessTime time.Time
	modTime    time.Time
	changeTime time.Time
}

func (s *statInfo) Name() string          { return s.name }
func (s *statInfo) Size() int64           { return s.st.Size }
func (s *statInfo) Mode() fs.FileMode     { return FileMode(uint32(s.st.Mode)) }
func (s *statInfo) ModTime() time.Time    { return s.modTime }
func (s *statInfo) IsDir() bool           { return s.Mode().IsDir() }
func (s *statInfo) Sys() any              { return &s.st }
func (s *statInfo) Owner() string         { return s.owner }
func (s *statInfo) Group() string         { return s.group }
func (s *statInfo) AccessTime() time.Time { return s.accessTime }
func (s *statInfo) ChangeTime() time.Time { return s.changeTime }

// NewFileInfo returns a FileInfo describing st. name is reduced to its last
// element, as fs.FileInfo.Name requires.
func NewFileInfo(name string, st *unix.Stat_t) FileInfo {
	fi := &statInfo{name: path.Base(name), st: *st}
	fi.accessTime, fi.modTime, fi.changeTime = statTimes(&fi.st)

	// Try to lookup owner name, fall back to numeric ID.
	uidStr := strconv.FormatUint(uint64(st.Uid), 10)
	if u, err := user.LookupId(uidStr); err == nil {
		fi.owner = u.Username
	} else {
		fi.owner = uidStr
	}

	// Try to lookup group name, fall back to numeric ID.
	gidStr := strconv.FormatUint(uint64(st.Gid), 10)
	if g, err := user.LookupGroupId(gidStr); err == nil {
		fi.group = g.Name
	} else {
		fi.group = gidStr
	}
	return fi
}

// FileMode converts a raw st_mode into an fs.FileMode.
func FileMode(mode uint32) fs.FileMode {
	m := fs.FileMode(mode & 0o777)
	switch mode & unix.S_IFMT {
	case unix.S_IFBLK:
		m |= fs.ModeDevice
	case unix.S_IFCHR:
		m |= fs.ModeDevice | fs.ModeCharDevice
	case unix.S_IFDIR:
		m |= fs.ModeDir
	case unix.S_IFIFO:
		m |= fs.ModeNamedPipe
	case unix.S_IFLNK:
		m |= fs.ModeSymlink
	case unix.S_IFSOCK:
		m |= fs.ModeSocket
	}
	if mode&unix.S_ISGID != 0 {
		m |= fs.ModeSetgid
	}
	if mode&unix.S_ISUID != 0 {
		m |= fs.ModeSetuid
	}
	if mode&unix.S_ISVTX != 0 {
		m |= fs.ModeSticky
	}
	return m
}
