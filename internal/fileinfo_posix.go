//go:build linux || freebsd || openbsd

package internal

import (
	"time"

	"golang.org/x/sys/unix"
)

// statTimes extracts atime, mtime and ctime from the Atim/Mtim/Ctim fields.
func statTimes(st *unix.Stat_t) (atime, mtime, ctime time.Time) {
	return time.Unix(st.Atim.Unix()), time.Unix(st.Mtim.Unix()), time.Unix(st.Ctim.Unix())
}
