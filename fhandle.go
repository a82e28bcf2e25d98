//go:build darwin || linux || freebsd || netbsd || openbsd

// Package fhandle provides a shared handle over a Unix file descriptor.
//
// A Handle owns its descriptor together with every handle cloned from it. The
// descriptor is closed exactly once: either by an explicit Close, which any
// owner may call, or when the last owner calls Release. Go has no destructors,
// so every owner pairs its handle with a deferred Release:
//
//	h, err := fhandle.OpenFile(name, os.O_RDWR|os.O_CREATE, 0o644)
//	if err != nil {
//		return err
//	}
//	defer h.Release()
//
// On top of ownership, Handle offers unbuffered positioned I/O (Read, Write,
// Seek, Truncate, Size) that maps every kernel failure to an *fs.PathError
// carrying the original errno.
package fhandle

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/gwangyi/fhandle/internal"
)

const (
	// O_ACCMODE is the mask for access modes (O_RDONLY, O_WRONLY, O_RDWR).
	O_ACCMODE = internal.O_ACCMODE

	// DefaultFlag is the open flag used by Open.
	DefaultFlag = os.O_RDONLY

	// DefaultPerm is the creation mode used by Open (rw-r--r--).
	DefaultPerm fs.FileMode = 0o644
)

// noCopy lets go vet's copylocks check flag a Handle copied by value. A plain
// copy would share the slot without counting as an owner; use Clone instead.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Handle is a shared owner of one file descriptor.
//
// The zero value is an unbound handle: Empty reports true and every operation
// other than Clone, Assign, Empty, Valid and Release fails with ErrNotBound.
//
// Distinct handles sharing a descriptor may be used from different goroutines;
// the owner count and the closed state are updated atomically. A single
// *Handle must not be rebound (Bind, Assign, Release) concurrently with other
// calls on the same *Handle. Reads and writes through different owners are
// not coordinated and interleave exactly as the kernel allows.
type Handle struct {
	_    noCopy
	slot *internal.Slot
}

// Open opens the named file read-only.
func Open(name string) (*Handle, error) {
	return OpenFile(name, DefaultFlag, DefaultPerm)
}

// OpenFile opens the named file with the given flag (os.O_RDONLY etc.) and
// creation mode, and returns a handle owning the new descriptor.
// The descriptor is opened close-on-exec.
func OpenFile(name string, flag int, perm fs.FileMode) (*Handle, error) {
	return openFile(internal.Unix{}, name, flag, perm)
}

func openFile(sys internal.Sys, name string, flag int, perm fs.FileMode) (*Handle, error) {
	fd, err := sys.Open(name, flag, syscallMode(perm))
	if err != nil {
		return nil, internal.IntoPathErr("open", name, err)
	}
	h := &Handle{}
	h.slot = internal.NewSlot(sys, fd, name)
	return h, nil
}

// FromFD returns a handle owning an already-open descriptor, for example one
// end of a pipe or a descriptor inherited from the parent process. A negative
// fd is how open-like calls report failure; it is rejected with EBADF and no
// handle is created.
//
// name is only used in error messages and by Name; an empty name is replaced
// by "fd:<n>".
func FromFD(fd int, name string) (*Handle, error) {
	h := &Handle{}
	if err := h.bind(internal.Unix{}, fd, name); err != nil {
		return nil, err
	}
	return h, nil
}

// Pipe returns both ends of a new pipe, each with its own handle.
func Pipe() (r, w *Handle, err error) {
	return pipe(internal.Unix{})
}

func pipe(sys internal.Sys) (r, w *Handle, err error) {
	rfd, wfd, err := sys.Pipe()
	if err != nil {
		return nil, nil, internal.IntoPathErr("pipe", "", err)
	}
	r, w = &Handle{}, &Handle{}
	r.slot = internal.NewSlot(sys, rfd, fdName(rfd))
	w.slot = internal.NewSlot(sys, wfd, fdName(wfd))
	return r, w, nil
}

// Bind makes h the only owner of a new slot for fd, releasing whatever h held
// before. If fd is negative, Bind fails with EBADF and h is left unchanged.
func (h *Handle) Bind(fd int, name string) error {
	sys := internal.Sys(internal.Unix{})
	if h.slot != nil {
		sys = h.slot.Sys()
	}
	return h.bind(sys, fd, name)
}

func (h *Handle) bind(sys internal.Sys, fd int, name string) error {
	if name == "" {
		name = fdName(fd)
	}
	if fd < 0 {
		return internal.IntoPathErr("adopt", name, internal.ErrBadFileDescriptor)
	}
	old := h.slot
	h.slot = internal.NewSlot(sys, fd, name)
	release(old)
	return nil
}

// Clone returns a new owner of h's descriptor. Cloning an unbound handle
// returns another unbound handle. No I/O takes place.
func (h *Handle) Clone() *Handle {
	c := &Handle{}
	if h.slot != nil {
		h.slot.Acquire()
		c.slot = h.slot
	}
	return c
}

// Assign makes h share src's descriptor. The descriptor h held before is
// released, and closed if h was its last owner. Assigning an unbound src
// leaves h unbound.
func (h *Handle) Assign(src *Handle) {
	if h == src || h.slot == src.slot {
		return
	}
	if src.slot != nil {
		src.slot.Acquire()
	}
	old := h.slot
	h.slot = src.slot
	release(old)
}

// Empty reports whether h holds no descriptor.
func (h *Handle) Empty() bool { return h.slot == nil }

// Valid reports whether h holds a descriptor. It is the negation of Empty and
// says nothing about whether the descriptor has been closed.
func (h *Handle) Valid() bool { return h.slot != nil }

// FD returns the raw descriptor, or -1 once it has been closed.
func (h *Handle) FD() (int, error) {
	if h.slot == nil {
		return -1, internal.IntoPathErr("fd", "", ErrNotBound)
	}
	return h.slot.FD(), nil
}

// Name returns the name the descriptor was opened or adopted under, or ""
// for an unbound handle.
func (h *Handle) Name() string {
	if h.slot == nil {
		return ""
	}
	return h.slot.Name()
}

// Refs returns the number of handles sharing h's descriptor.
func (h *Handle) Refs() int {
	if h.slot == nil {
		return 0
	}
	return h.slot.Refs()
}

// Close closes the shared descriptor for every owner. h keeps its reference;
// afterwards every I/O call through any owner fails with ErrClosed.
//
// Close reports the close(2) failure, if any, but the descriptor is treated
// as gone either way. Closing a descriptor a second time fails with ErrClosed.
func (h *Handle) Close() error {
	if h.slot == nil {
		return internal.IntoPathErr("close", "", ErrNotBound)
	}
	return internal.IntoPathErr("close", h.slot.Name(), h.slot.Close())
}

// Release drops h's reference and leaves h unbound. Releasing an unbound
// handle does nothing.
//
// When h was the last owner of a still-open descriptor, Release closes it.
// There is no caller to report a failure to at that point, so a failing close
// panics with a *ReleaseError. Call Close first when the outcome matters.
func (h *Handle) Release() {
	s := h.slot
	h.slot = nil
	release(s)
}

// release drops one owner of s, escalating a failed close to a panic.
func release(s *internal.Slot) {
	if s == nil {
		return
	}
	fd := s.FD()
	if err := s.Release(); err != nil {
		panic(&ReleaseError{Name: s.Name(), FD: fd, Err: err})
	}
}

// use returns the slot and descriptor for op, or the error explaining why
// there is none.
func (h *Handle) use(op string) (*internal.Slot, int, error) {
	if h.slot == nil {
		return nil, -1, internal.IntoPathErr(op, "", ErrNotBound)
	}
	fd := h.slot.FD()
	if fd < 0 {
		return nil, -1, internal.IntoPathErr(op, h.slot.Name(), ErrClosed)
	}
	return h.slot, fd, nil
}

func fdName(fd int) string { return fmt.Sprintf("fd:%d", fd) }

// syscallMode converts an fs.FileMode into the mode bits open(2) expects.
func syscallMode(perm fs.FileMode) uint32 {
	m := uint32(perm.Perm())
	if perm&fs.ModeSetuid != 0 {
		m |= 0o4000
	}
	if perm&fs.ModeSetgid != 0 {
		m |= 0o2000
	}
	if perm&fs.ModeSticky != 0 {
		m |= 0o1000
	}
	return m
}
