//go:build darwin

package internal

import (
	"golang.org/x/sys/unix"
)

// From <sys/disk.h>: _IOR('d', 24, uint32_t) and _IOR('d', 25, uint64_t).
const (
	dkiocGetBlockSize  = 0x40046418
	dkiocGetBlockCount = 0x40086419
)

// blockDeviceSize multiplies the block count by the block size. int is 64
// bits wide on every supported darwin target, so IoctlGetInt can receive the
// uint64 block count.
var blockDeviceSize = func(fd int) (int64, error) {
	count, err := unix.IoctlGetInt(fd, dkiocGetBlockCount)
	if err != nil {
		return 0, err
	}
	size, err := unix.IoctlGetUint32(fd, dkiocGetBlockSize)
	if err != nil {
		return 0, err
	}
	return int64(count) * int64(size), nil
}
