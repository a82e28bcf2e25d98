//go:build darwin || linux || freebsd || netbsd || openbsd

package internal

import (
	"sync/atomic"
)

// closedFD marks a slot whose descriptor has been closed.
const closedFD = -1

// Slot owns exactly one descriptor and counts the handles referencing it.
//
// The descriptor moves from open to closed once, either by an explicit Close
// or by the Release that drops the last owner. Both transitions swap the
// descriptor to closedFD before calling close(2), so no owner can observe a
// stale number that the kernel may already have handed out again.
type Slot struct {
	fd   atomic.Int64
	refs atomic.Int64
	name string
	sys  Sys
}

// NewSlot returns a slot owning fd with a single owner.
func NewSlot(sys Sys, fd int, name string) *Slot {
	s := &Slot{name: name, sys: sys}
	s.fd.Store(int64(fd))
	s.refs.Store(1)
	return s
}

// Sys returns the primitives the slot was created with.
func (s *Slot) Sys() Sys { return s.sys }

// Name returns the name the descriptor was opened or adopted under.
func (s *Slot) Name() string { return s.name }

// FD returns the descriptor, or -1 once the slot is closed.
func (s *Slot) FD() int { return int(s.fd.Load()) }

// Closed reports whether the descriptor has been closed.
func (s *Slot) Closed() bool { return s.fd.Load() == closedFD }

// Refs returns the number of owners.
func (s *Slot) Refs() int { return int(s.refs.Load()) }

// Acquire registers one more owner.
func (s *Slot) Acquire() {
	if s.refs.Add(1) <= 1 {
		panic("fhandle: acquire on a released slot")
	}
}

// Release drops one owner. When the last owner goes away an open descriptor
// is closed and the result of close(2) is returned.
func (s *Slot) Release() error {
	switch n := s.refs.Add(-1); {
	case n > 0:
		return nil
	case n < 0:
		panic("fhandle: slot released more times than acquired")
	}

	fd := s.fd.Swap(closedFD)
	if fd == closedFD {
		return nil
	}
	return s.sys.Close(int(fd))
}

// Close closes the descriptor for every owner. It returns ErrClosed if
// that already happened. A failing close(2) still leaves the slot closed.
func (s *Slot) Close() error {
	fd := s.fd.Swap(closedFD)
	if fd == closedFD {
		return ErrClosed
	}
	return s.sys.Close(int(fd))
}
