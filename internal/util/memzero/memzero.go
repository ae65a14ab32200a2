// Package memzero wipes sensitive buffers.
//
// Go gives no guarantee that a wiped buffer has no other copies (the garbage
// collector may have moved it, and values passed by value are copied), so
// this is best effort: it shortens the lifetime of key material rather than
// proving its absence.
package memzero

import (
	"crypto/subtle"
	"runtime"
)

// Zero overwrites b with zeros in a constant-time friendly way.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	zero := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zero)
	runtime.KeepAlive(b)
}

// Int64s overwrites x with zeros.
//
//go:noinline
func Int64s(x []int64) {
	for i := range x {
		x[i] = 0
	}
	runtime.KeepAlive(x)
}

// Scope collects buffers holding secrets for the duration of one call and
// wipes all of them on Wipe. Typical use:
//
//	var scope memzero.Scope
//	defer scope.Wipe()
//	digest := scope.Alloc(64)
//
// The zero value is ready to use.
type Scope struct {
	bufs [][]byte
}

// Alloc returns a new n-byte buffer that Wipe will zero.
func (s *Scope) Alloc(n int) []byte {
	b := make([]byte, n)
	s.bufs = append(s.bufs, b)
	return b
}

// Track registers existing buffers to be zeroed by Wipe.
func (s *Scope) Track(bufs ...[]byte) {
	s.bufs = append(s.bufs, bufs...)
}

// Wipe zeroes every tracked buffer. It is safe to call more than once.
func (s *Scope) Wipe() {
	for _, b := range s.bufs {
		Zero(b)
	}
	s.bufs = nil
}
