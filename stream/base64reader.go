package stream

import (
	"bytes"
	"errors"
	"io"

	"github.com/mnightingale/rapidutf"
)

// Base64Reader decodes base64 text read from an underlying reader. Complete
// four character chunks are decoded as they arrive; the final chunk is
// decoded at end of input with the configured LastChunkHandling. Decoding
// errors are returned as a *rapidutf.Error with an offset into the encoded
// stream.
type Base64Reader struct {
	r  io.Reader
	rb readBuffer
	o  rapidutf.Base64Options
	lc rapidutf.LastChunkHandling

	// offset is the stream position of the start of the window
	offset int64
	out    []byte
	outPos int
	err    error
}

// NewBase64Reader returns a Base64Reader decoding r with Loose last chunk
// handling.
func NewBase64Reader(r io.Reader, o rapidutf.Base64Options) *Base64Reader {
	return NewBase64ReaderMode(r, o, rapidutf.Loose)
}

// NewBase64ReaderMode is NewBase64Reader with an explicit LastChunkHandling.
func NewBase64ReaderMode(r io.Reader, o rapidutf.Base64Options, lc rapidutf.LastChunkHandling) *Base64Reader {
	d := &Base64Reader{r: r, o: o, lc: lc}
	d.rb.init(defaultReadBufSize)
	return d
}

func (d *Base64Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for {
		if d.outPos < len(d.out) {
			n := copy(p, d.out[d.outPos:])
			d.outPos += n
			return n, nil
		}
		if d.err != nil {
			return 0, d.err
		}

		_, err := d.rb.readMore(d.r)
		final := errors.Is(err, io.EOF)
		if err != nil && !final {
			d.err = err
		}

		w := d.rb.window()
		cut := len(w)
		if i := bytes.IndexByte(w, '='); i >= 0 {
			cut = i
			if d.o&rapidutf.Base64DefaultAcceptGarbage != 0 || d.validAfter(w[i:]) {
				// padding ends the input, or something follows it that will fail
				final = true
			}
		}
		if final {
			d.decode(w, d.lc)
			if d.err == nil {
				d.err = io.EOF
			}
			continue
		}
		d.decode(w[:cut], rapidutf.StopBeforePartial)
	}
}

func (d *Base64Reader) validAfter(b []byte) bool {
	for _, c := range b {
		if c != '=' && rapidutf.Base64Valid(c, d.o) {
			return true
		}
	}
	return false
}

func (d *Base64Reader) decode(src []byte, lc rapidutf.LastChunkHandling) {
	if grow := rapidutf.MaximalBinaryLengthFromBase64(src) - cap(d.out); grow > 0 {
		d.out = make([]byte, cap(d.out)+grow)
	}
	d.out = d.out[:cap(d.out)]
	r := rapidutf.Base64ToBinaryDetails(src, d.out, d.o, lc)
	if !r.OK() {
		// bytes decoded ahead of the error are still delivered
		d.err = &rapidutf.Error{Code: r.Error, Offset: int(d.offset) + r.InputCount}
		d.out, d.outPos = d.out[:r.OutputCount], 0
		return
	}
	d.out, d.outPos = d.out[:r.OutputCount], 0
	d.rb.advance(r.InputCount)
	d.offset += int64(r.InputCount)
}
