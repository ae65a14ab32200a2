// Package entropy supplies cryptographically secure random bytes.
//
// A Source either fills the whole buffer or returns an error wrapping
// ErrUnavailable; it never hands back a partially filled or zeroed buffer as
// if it were random. Sources do not retry beyond what the underlying system
// interface requires.
package entropy

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

// ErrUnavailable reports that no random bytes could be obtained.
var ErrUnavailable = errors.New("entropy: random source unavailable")

// Source fills buffers with random bytes.
type Source interface {
	FillRandom(buf []byte) error
}

// Reader adapts an io.Reader such as crypto/rand.Reader into a Source.
type Reader struct {
	R io.Reader
}

// FromReader returns a Source that reads from r.
func FromReader(r io.Reader) Source { return Reader{R: r} }

// FillRandom reads len(buf) bytes from the underlying reader.
func (r Reader) FillRandom(buf []byte) error {
	if r.R == nil {
		return fmt.Errorf("%w: nil reader", ErrUnavailable)
	}
	if _, err := io.ReadFull(r.R, buf); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// System returns the operating system's random source.
func System() Source { return systemSource() }

// Portable returns a Source backed by crypto/rand.
func Portable() Source { return Reader{R: rand.Reader} }
