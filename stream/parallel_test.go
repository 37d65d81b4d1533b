package stream

import (
	"context"
	"errors"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/require"

	"github.com/mnightingale/rapidutf"
)

func TestSplitUTF8(t *testing.T) {
	text := randomText(seededRand(), 10_000)
	for _, size := range []int{1, 4, 5, 7, 64, 1000, 20_000} {
		chunks := SplitUTF8(text, size)
		var joined []byte
		for _, c := range chunks {
			require.True(t, rapidutf.ValidateUTF8(c), "size %d", size)
			joined = append(joined, c...)
		}
		require.Equal(t, text, joined)
	}
	require.Empty(t, SplitUTF8(nil, 16))
}

func TestConvertParallel(t *testing.T) {
	text := randomText(seededRand(), 300_000)
	expected := utf16.Encode([]rune(string(text)))

	for _, size := range []int{0, 1000, 4096, 65536} {
		got, err := ConvertParallel(context.Background(), text, size)
		require.NoError(t, err)
		require.Equal(t, expected, got)
	}

	got, err := ConvertParallel(context.Background(), nil, 16)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestConvertParallelError(t *testing.T) {
	text := randomText(seededRand(), 50_000)
	bad := append([]byte{}, text[:30_000]...)
	for !rapidutf.ValidateUTF8(bad) {
		bad = bad[:len(bad)-1]
	}
	pos := len(bad)
	bad = append(bad, 0xed, 0xa0, 0x80)
	bad = append(bad, text[30_000:]...)
	// a later error must not win
	bad = append(bad, 0xff)

	whole := rapidutf.ValidateUTF8WithErrors(bad)
	require.Equal(t, pos, whole.Count)

	_, err := ConvertParallel(context.Background(), bad, 1024)
	var uerr *rapidutf.Error
	require.True(t, errors.As(err, &uerr))
	require.Equal(t, rapidutf.Surrogate, uerr.Code)
	require.Equal(t, pos, uerr.Offset)
}

func TestConvertParallelCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ConvertParallel(ctx, []byte("hello"), 16)
	require.ErrorIs(t, err, context.Canceled)
}

func BenchmarkConvertParallel(b *testing.B) {
	text := randomText(seededRand(), 16*1024*1024)
	b.SetBytes(int64(len(text)))
	b.ResetTimer()
	for b.Loop() {
		_, _ = ConvertParallel(context.Background(), text, 0)
	}
}
