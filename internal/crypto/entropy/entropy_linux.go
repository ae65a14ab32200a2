//go:build linux

package entropy

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/sys/unix"
)

const urandomPath = "/dev/urandom"

// getrandomSource reads from getrandom(2). If the call fails for any reason
// other than an interrupted or would-block read, it falls back to
// /dev/urandom.
type getrandomSource struct {
	once    sync.Once
	urandom *os.File
	openErr error
}

var linuxSource = &getrandomSource{}

func systemSource() Source { return linuxSource }

// FillRandom fills buf from the kernel random number generator.
func (s *getrandomSource) FillRandom(buf []byte) error {
	err := fillGetrandom(buf)
	if err == nil {
		return nil
	}
	return s.fillURandom(buf, err)
}

func fillGetrandom(buf []byte) error {
	for off := 0; off < len(buf); {
		n, err := unix.Getrandom(buf[off:], unix.GRND_NONBLOCK)
		if errors.Is(err, unix.EAGAIN) {
			// Pool not initialised yet; wait for it.
			n, err = unix.Getrandom(buf[off:], 0)
		}
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return err
		}
		off += n
	}
	return nil
}

func (s *getrandomSource) fillURandom(buf []byte, cause error) error {
	s.once.Do(func() {
		s.urandom, s.openErr = os.Open(urandomPath)
	})
	if s.openErr != nil {
		return fmt.Errorf("%w: getrandom: %v; %s: %v", ErrUnavailable, cause, urandomPath, s.openErr)
	}
	if _, err := io.ReadFull(s.urandom, buf); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, urandomPath, err)
	}
	return nil
}
