//go:build freebsd || netbsd || openbsd

package internal

// blockDeviceSize is nil here: there is no device geometry query wired up
// for these platforms, so block devices report an unknown size.
var blockDeviceSize func(fd int) (int64, error)
