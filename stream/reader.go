// Package stream adapts the rapidutf kernels to io.Reader and io.Writer and
// splits large conversions across goroutines.
package stream

import (
	"errors"
	"io"

	"github.com/mnightingale/rapidutf"
)

// ValidatingReader passes through bytes from an underlying reader after
// checking that they are valid UTF-8. Read never returns a byte that belongs
// to a malformed or truncated character. When one is found, every valid byte
// before it is delivered first and then Read returns a *rapidutf.Error whose
// Offset counts from the start of the stream.
type ValidatingReader struct {
	r  io.Reader
	rb readBuffer

	// offset is the stream position of the start of the window
	offset int64
	// ready bytes at the start of the window have been validated
	ready int
	err   error
}

// NewValidatingReader returns a ValidatingReader reading from r.
func NewValidatingReader(r io.Reader) *ValidatingReader {
	return NewValidatingReaderSize(r, defaultReadBufSize)
}

// NewValidatingReaderSize is NewValidatingReader with an initial buffer of
// size bytes.
func NewValidatingReaderSize(r io.Reader, size int) *ValidatingReader {
	v := &ValidatingReader{r: r}
	v.rb.init(max(size, 16))
	return v
}

// Offset returns the number of bytes delivered so far.
func (v *ValidatingReader) Offset() int64 {
	return v.offset
}

func (v *ValidatingReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for {
		if v.ready > 0 {
			n := copy(p, v.rb.window()[:v.ready])
			v.rb.advance(n)
			v.ready -= n
			v.offset += int64(n)
			return n, nil
		}
		if v.err != nil {
			return 0, v.err
		}

		_, err := v.rb.readMore(v.r)
		eof := errors.Is(err, io.EOF)
		if err != nil && !eof {
			v.err = err
		}
		w := v.rb.window()
		cut := len(w)
		if !eof {
			cut = rapidutf.TrimPartialUTF8(w)
		}
		if cut < v.ready {
			cut = v.ready
		}
		r := rapidutf.ValidateUTF8WithErrors(w[v.ready:cut])
		if !r.OK() {
			v.err = &rapidutf.Error{Code: r.Error, Offset: int(v.offset) + v.ready + r.Count}
			v.ready += r.Count
			continue
		}
		v.ready = cut
		if eof && v.err == nil {
			v.err = io.EOF
		}
	}
}
