//go:build amd64

package rapidutf

import (
	"bytes"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestASCIIPrefixSIMD(t *testing.T) {
	if !useSIMDASCII {
		t.Skip("simd ASCII path not available")
	}
	portable16 := newBlockImplementation("p16", "test", ISADefault, 16)
	portable32 := newBlockImplementation("p32", "test", ISADefault, 32)

	text := bytes.Repeat([]byte("0123456789abcdef"), 16)
	for pos := -1; pos < len(text); pos += 5 {
		b := bytes.Clone(text)
		if pos >= 0 {
			b[pos] = 0x80 | byte(pos)
		}
		require.Equal(t, portable16.asciiRun(b), asciiPrefixAVX(b), "pos %d", pos)
		if useAVX2ASCII {
			require.Equal(t, portable32.asciiRun(b), asciiPrefixAVX2(b), "pos %d", pos)
		}
	}
}

func TestUTF8PrefixAVX2(t *testing.T) {
	if !useAVX2ASCII {
		t.Skip("simd UTF-8 path not available")
	}
	r := seededRand()
	cases := []struct {
		name string
		b    []byte
	}{
		{"Empty", nil},
		{"Short", []byte("héllo")},
		{"ASCII", bytes.Repeat([]byte("abcd"), 64)},
		{"Mixed", randomText(r, 4096, 50)},
		{"FourByte", bytes.Repeat([]byte("😀"), 64)},
		{"Straddle", append(bytes.Repeat([]byte("a"), 31), bytes.Repeat([]byte("€"), 40)...)},
		{"Surrogate", append(bytes.Repeat([]byte("a"), 70), 0xed, 0xa0, 0x80)},
		{"Overlong", append(bytes.Repeat([]byte("b"), 40), 0xc0, 0xaf)},
		{"TooLarge", append(bytes.Repeat([]byte("c"), 33), 0xf4, 0x90, 0x80, 0x80)},
		{"Truncated", append(bytes.Repeat([]byte("d"), 63), 0xe2, 0x82)},
		{"StrayContinuation", append(bytes.Repeat([]byte("e"), 100), 0x80)},
	}
	for i := 0; i < 20; i++ {
		b := randomText(r, 500, 60)
		b[r.IntN(len(b))] = byte(0x80 + r.IntN(0x80))
		cases = append(cases, struct {
			name string
			b    []byte
		}{"Corrupt", b})
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n := utf8PrefixAVX2(tc.b)
			require.Zero(t, n%32)
			require.LessOrEqual(t, n, len(tc.b))
			require.True(t, utf8.Valid(tc.b[:n]))
			require.Equal(t, n, TrimPartialUTF8(tc.b[:n]))
			if utf8.Valid(tc.b) && len(tc.b)%32 == 0 && TrimPartialUTF8(tc.b) == len(tc.b) {
				require.Equal(t, len(tc.b), n)
			}

			haswell, err := LookupImplementation("haswell")
			require.NoError(t, err)
			require.Equal(t, utf8.Valid(tc.b), haswell.ValidateUTF8(tc.b))
			require.Equal(t, validateUTF8WithErrors(tc.b), haswell.ValidateUTF8WithErrors(tc.b))
		})
	}
}

func TestIndexByteAVX2(t *testing.T) {
	if !useAVX2ASCII {
		t.Skip("simd byte search not available")
	}
	b := make([]byte, 130)
	for i := range b {
		b[i] = '\n'
		require.Equal(t, i, indexByteAVX2(b, '\n'))
		require.Equal(t, -1, indexByteAVX2(b[:i], '\n'))
		b[i] = 0
	}
}
