package stream

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/mnightingale/rapidutf"
)

// DefaultChunkSize is the chunk size ConvertParallel uses when given zero.
const DefaultChunkSize = 1 << 20

// SplitUTF8 cuts b into pieces of about size bytes without splitting a
// character. A malformed tail stays with the piece that contains it.
func SplitUTF8(b []byte, size int) [][]byte {
	if size < 4 {
		size = 4
	}
	var chunks [][]byte
	for len(b) > size {
		n := rapidutf.TrimPartialUTF8(b[:size])
		if n == 0 {
			n = size
		}
		chunks = append(chunks, b[:n])
		b = b[n:]
	}
	if len(b) > 0 {
		chunks = append(chunks, b)
	}
	return chunks
}

// ConvertParallel converts UTF-8 src to UTF-16LE, validating and converting
// chunks of about chunkSize bytes on separate goroutines. When src is
// malformed the returned *rapidutf.Error locates the first error in src.
func ConvertParallel(ctx context.Context, src []byte, chunkSize int) ([]uint16, error) {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	chunks := SplitUTF8(src, chunkSize)
	if len(chunks) == 0 {
		return []uint16{}, nil
	}

	// First pass: validate and size every chunk.
	lengths := make([]int, len(chunks))
	results := make([]rapidutf.Result, len(chunks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, c := range chunks {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = rapidutf.ValidateUTF8WithErrors(c)
			if results[i].OK() {
				lengths[i] = rapidutf.UTF16LengthFromUTF8(c)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	offsets := make([]int, len(chunks)+1)
	base := 0
	for i, r := range results {
		if !r.OK() {
			return nil, &rapidutf.Error{Code: r.Error, Offset: base + r.Count}
		}
		base += len(chunks[i])
		offsets[i+1] = offsets[i] + lengths[i]
	}

	// Second pass: each chunk writes its own slice of dst.
	dst := make([]uint16, offsets[len(chunks)])
	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, c := range chunks {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rapidutf.ConvertValidUTF8ToUTF16LE(c, dst[offsets[i]:offsets[i+1]])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dst, nil
}
