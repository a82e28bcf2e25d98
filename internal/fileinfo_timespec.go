//go:build darwin || netbsd

package internal

import (
	"time"

	"golang.org/x/sys/unix"
)

// statTimes extracts atime, mtime and ctime. Darwin and NetBSD name the fields
// Atimespec/Mtimespec/Ctimespec.
func statTimes(st *unix.Stat_t) (atime, mtime, ctime time.Time) {
	return time.Unix(st.Atimespec.Unix()), time.Unix(st.Mtimespec.Unix()), time.Unix(st.Ctimespec.Unix())
}
