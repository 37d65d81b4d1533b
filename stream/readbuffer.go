package stream

import (
	"fmt"
	"io"
)

const (
	defaultReadBufSize = 32 * 1024
	maxReadBufSize     = 8 * 1024 * 1024
)

// readBuffer holds bytes read from an io.Reader that have not been handed
// out yet. buf[start:end] is the live window.
type readBuffer struct {
	buf        []byte
	start, end int
}

func (rb *readBuffer) init(size int) {
	if len(rb.buf) == 0 {
		rb.buf = make([]byte, size)
	}
}

func (rb *readBuffer) window() []byte {
	return rb.buf[rb.start:rb.end]
}

func (rb *readBuffer) advance(consumed int) {
	if consumed <= 0 {
		return
	}
	rb.start += consumed
	if rb.start >= rb.end {
		rb.start, rb.end = 0, 0
	}
}

func (rb *readBuffer) compact() {
	if rb.start == 0 || rb.start == rb.end {
		return
	}
	copy(rb.buf, rb.buf[rb.start:rb.end])
	rb.end -= rb.start
	rb.start = 0
}

func (rb *readBuffer) ensureWriteSpace() error {
	if rb.end < len(rb.buf) {
		return nil
	}
	if rb.start > 0 {
		rb.compact()
		if rb.end < len(rb.buf) {
			return nil
		}
	}

	// No space and cannot compact: grow.
	cur := len(rb.buf)
	if cur == 0 {
		cur = defaultReadBufSize
	}
	newLen := min(cur*2, maxReadBufSize)
	if newLen <= len(rb.buf) {
		return fmt.Errorf("rapidutf: read buffer exceeded %d bytes", maxReadBufSize)
	}

	nb := make([]byte, newLen)
	copy(nb, rb.window())
	rb.end -= rb.start
	rb.start = 0
	rb.buf = nb
	return nil
}

func (rb *readBuffer) readMore(r io.Reader) (int, error) {
	if err := rb.ensureWriteSpace(); err != nil {
		return 0, err
	}
	n, err := r.Read(rb.buf[rb.end:])
	if n > 0 {
		rb.end += n
	}
	return n, err
}
