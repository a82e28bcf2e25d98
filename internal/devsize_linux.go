//go:build linux

package internal

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// blockDeviceSize asks the kernel for the device size in bytes with
// BLKGETSIZE64. The ioctl writes a uint64, which IoctlGetInt cannot receive
// on 32-bit platforms, so the call is made directly.
var blockDeviceSize = func(fd int) (int64, error) {
	var size uint64
	_, _, errno := unix.Syscall(
		unix.SYS_IOCTL,
		uintptr(fd),
		unix.BLKGETSIZE64,
		uintptr(unsafe.Pointer(&size)),
	)
	if errno != 0 {
		return 0, errno
	}
	return int64(size), nil
}
