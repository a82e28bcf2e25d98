//go:build darwin || linux || freebsd || netbsd || openbsd

package internal_test

import (
	"io/fs"
	"strconv"
	"testing"

	"golang.org/x/sys/unix"

	"github.com/gwangyi/fhandle/internal"
)

func TestFileMode(t *testing.T) {
	tests := []struct {
		name string
		mode uint32
		want fs.FileMode
	}{
		{name: "regular", mode: unix.S_IFREG | 0o644, want: 0o644},
		{name: "directory", mode: unix.S_IFDIR | 0o755, want: fs.ModeDir | 0o755},
		{name: "symlink", mode: unix.S_IFLNK | 0o777, want: fs.ModeSymlink | 0o777},
		{name: "block device", mode: unix.S_IFBLK | 0o660, want: fs.ModeDevice | 0o660},
		{name: "char device", mode: unix.S_IFCHR | 0o666, want: fs.ModeDevice | fs.ModeCharDevice | 0o666},
		{name: "fifo", mode: unix.S_IFIFO | 0o600, want: fs.ModeNamedPipe | 0o600},
		{name: "socket", mode: unix.S_IFSOCK | 0o700, want: fs.ModeSocket | 0o700},
		{name: "setuid", mode: unix.S_IFREG | unix.S_ISUID | 0o755, want: fs.ModeSetuid | 0o755},
		{name: "setgid", mode: unix.S_IFDIR | unix.S_ISGID | 0o755, want: fs.ModeDir | fs.ModeSetgid | 0o755},
		{name: "sticky", mode: unix.S_IFDIR | unix.S_ISVTX | 0o777, want: fs.ModeDir | fs.ModeSticky | 0o777},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := internal.FileMode(tt.mode); got != tt.want {
				t.Errorf("FileMode(%o) = %v, want %v", tt.mode, got, tt.want)
			}
		})
	}
}

// TestNewFileInfo_InvalidUserGroup verifies that NewFileInfo falls back to
// the numeric IDs when they do not resolve to names.
func TestNewFileInfo_InvalidUserGroup(t *testing.T) {
	// These are values that no real user/group would have.
	invalidUID := uint32(999999999)
	invalidGID := uint32(999999998)

	st := &unix.Stat_t{Uid: invalidUID, Gid: invalidGID, Size: 123}
	fi := internal.NewFileInfo("/tmp/dir/file.bin", st)

	if fi.Name() != "file.bin" {
		t.Errorf("Name() = %q, want %q", fi.Name(), "file.bin")
	}
	if fi.Size() != 123 {
		t.Errorf("Size() = %d, want 123", fi.Size())
	}
	if owner, want := fi.Owner(), strconv.FormatUint(uint64(invalidUID), 10); owner != want {
		t.Errorf("expected owner %q, got %q", want, owner)
	}
	if group, want := fi.Group(), strconv.FormatUint(uint64(invalidGID), 10); group != want {
		t.Errorf("expected group %q, got %q", want, group)
	}
	if sys, ok := fi.Sys().(*unix.Stat_t); !ok || sys.Size != 123 {
		t.Errorf("Sys() = %#v, want the source Stat_t", fi.Sys())
	}
}
