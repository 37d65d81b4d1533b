package stream

import (
	"errors"
	"hash"
	"hash/crc32"
	"io"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/mnightingale/rapidutf"
)

var (
	errWriterNil = errors.New("rapidutf: writer is nil")
	errClosed    = errors.New("rapidutf: write after close")
)

var crlf = []byte("\r\n")

// Base64Writer base64 encodes everything written to it. Input is encoded in
// whole three byte groups; up to two bytes are held back until the next Write
// or Close. A CRC-32 (IEEE) of the raw input is kept alongside.
type Base64Writer struct {
	w          io.Writer
	o          rapidutf.Base64Options
	lineLength int
	column     int

	hash      hash.Hash32
	processed int64

	pending []byte
	buf     []byte
	closed  bool

	writeMu  sync.Mutex
	hashErrs errgroup.Group
}

// NewBase64Writer returns a [Base64Writer] writing a single unbroken line
// of base64 to w.
//
// It is the caller's responsibility to call Close on the [Base64Writer] when done.
func NewBase64Writer(w io.Writer, o rapidutf.Base64Options) *Base64Writer {
	return NewBase64LineWriter(w, o, 0)
}

// NewBase64LineWriter is NewBase64Writer breaking the output with CRLF every
// lineLength characters, as MIME does with 76. A lineLength of zero or less
// disables wrapping.
func NewBase64LineWriter(w io.Writer, o rapidutf.Base64Options, lineLength int) *Base64Writer {
	e := &Base64Writer{
		o:          o,
		lineLength: max(lineLength, 0),
		hash:       crc32.NewIEEE(),
		pending:    make([]byte, 0, 3),
	}
	e.Reset(w)
	return e
}

// Reset discards the writer's state and makes it equivalent to the result of
// its original state, but writing to w instead.
func (e *Base64Writer) Reset(w io.Writer) {
	e.writeMu.Lock()
	defer e.writeMu.Unlock()

	e.w = w
	e.column = 0
	e.hash.Reset()
	e.processed = 0
	e.pending = e.pending[:0]
	e.closed = false
	e.hashErrs = errgroup.Group{}
}

// Write encodes p to the underlying [io.Writer]. The final partial group is
// not flushed until the writer is closed.
func (e *Base64Writer) Write(p []byte) (n int, err error) {
	e.writeMu.Lock()
	defer e.writeMu.Unlock()

	if e.w == nil {
		return 0, errWriterNil
	}
	if e.closed {
		return 0, errClosed
	}
	n = len(p)
	if n == 0 {
		return 0, nil
	}
	e.processed += int64(n)

	// p is resliced below; the hash goroutine keeps the full slice
	data := p
	e.hashErrs.Go(func() error {
		_, err := e.hash.Write(data)
		return err
	})
	defer func() {
		// Other errors take priority
		if hashErr := e.hashErrs.Wait(); err == nil {
			err = hashErr
		}
	}()

	if len(e.pending) > 0 {
		k := min(3-len(e.pending), len(p))
		e.pending = append(e.pending, p[:k]...)
		p = p[k:]
		if len(e.pending) < 3 {
			return n, nil
		}
		if err := e.encode(e.pending); err != nil {
			return 0, err
		}
		e.pending = e.pending[:0]
	}

	full := len(p) / 3 * 3
	if full > 0 {
		if err := e.encode(p[:full]); err != nil {
			return 0, err
		}
	}
	e.pending = append(e.pending, p[full:]...)
	return n, nil
}

func (e *Base64Writer) encode(p []byte) error {
	if grow := rapidutf.Base64LengthFromBinary(len(p), e.o) - len(e.buf); grow > 0 {
		e.buf = append(e.buf, make([]byte, grow)...)
	}
	encoded := e.buf[:rapidutf.BinaryToBase64(p, e.buf, e.o)]
	return e.writeLines(encoded)
}

func (e *Base64Writer) writeLines(b []byte) error {
	if e.lineLength == 0 {
		_, err := e.w.Write(b)
		return err
	}
	for len(b) > 0 {
		if e.column == e.lineLength {
			if _, err := e.w.Write(crlf); err != nil {
				return err
			}
			e.column = 0
		}
		k := min(e.lineLength-e.column, len(b))
		if _, err := e.w.Write(b[:k]); err != nil {
			return err
		}
		e.column += k
		b = b[k:]
	}
	return nil
}

// Close flushes the final group, padded if the options call for it. It is an
// error to call Write after calling Close.
func (e *Base64Writer) Close() error {
	e.writeMu.Lock()
	defer e.writeMu.Unlock()

	if e.w == nil {
		return errWriterNil
	}
	if e.closed {
		return nil
	}
	e.closed = true

	if err := e.hashErrs.Wait(); err != nil {
		return err
	}
	if len(e.pending) > 0 {
		if err := e.encode(e.pending); err != nil {
			return err
		}
		e.pending = e.pending[:0]
	}
	return nil
}

// Sum32 returns the CRC-32 of the input written so far.
func (e *Base64Writer) Sum32() uint32 {
	e.writeMu.Lock()
	defer e.writeMu.Unlock()
	return e.hash.Sum32()
}

// Processed returns the number of input bytes accepted so far.
func (e *Base64Writer) Processed() int64 {
	e.writeMu.Lock()
	defer e.writeMu.Unlock()
	return e.processed
}
