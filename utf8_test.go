package rapidutf

import (
	"bytes"
	"fmt"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

type utf8ErrorCase struct {
	name  string
	input string
	code  ErrorCode
	pos   int
}

var utf8ErrorCases = []utf8ErrorCase{
	{"StrayContinuation", "\x80", TooLong, 0},
	{"ContinuationAfterChar", "abc\xc3\xa9\x80", TooLong, 5},
	{"TruncatedTwo", "a\xc3", TooShort, 1},
	{"BrokenTwo", "\xc3\x28", TooShort, 0},
	{"TruncatedThree", "\xe2\x82", TooShort, 0},
	{"TruncatedFour", "\xf0\x9f\x98", TooShort, 0},
	{"OverlongTwo", "\xc0\x80", Overlong, 0},
	{"OverlongThree", "\xe0\x80\x80", Overlong, 0},
	{"OverlongFour", "\xf0\x80\x80\x80", Overlong, 0},
	{"Surrogate", "ab\xed\xa0\x80", Surrogate, 2},
	{"TooLarge", "\xf4\x90\x80\x80", TooLarge, 0},
	{"TooLargeF5", "\xf5\x80\x80\x80", TooLarge, 0},
	{"HeaderBitsF8", "\xf8\x88\x80\x80\x80", HeaderBits, 0},
	{"HeaderBitsFF", "x\xff", HeaderBits, 1},
}

func TestValidateUTF8Errors(t *testing.T) {
	for _, k := range kernels() {
		t.Run(k.Name(), func(t *testing.T) {
			for _, tc := range utf8ErrorCases {
				// move the error across block boundaries
				for pad := 0; pad <= 70; pad++ {
					in := append(bytes.Repeat([]byte{'.'}, pad), tc.input...)
					in = append(in, "xyz"...)
					name := fmt.Sprintf("%s/%d", tc.name, pad)

					require.False(t, k.ValidateUTF8(in), name)
					require.Equal(t, Result{tc.code, pad + tc.pos}, k.ValidateUTF8WithErrors(in), name)
				}
			}
		})
	}
}

// firstInvalid returns the index of the first byte utf8.DecodeRune rejects.
func firstInvalid(b []byte) int {
	for i := 0; i < len(b); {
		r, n := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && n == 1 {
			return i
		}
		i += n
	}
	return -1
}

func TestValidateUTF8Random(t *testing.T) {
	r := seededRand()
	for _, k := range kernels() {
		t.Run(k.Name(), func(t *testing.T) {
			for _, ascii := range []int{0, 50, 90, 100} {
				text := randomText(r, 4096, ascii)
				require.True(t, k.ValidateUTF8(text))
				require.Equal(t, Result{Success, len(text)}, k.ValidateUTF8WithErrors(text))

				// single byte corruption
				for range 200 {
					bad := bytes.Clone(text)
					bad[r.IntN(len(bad))] = byte(r.IntN(256))
					want := utf8.Valid(bad)
					require.Equal(t, want, k.ValidateUTF8(bad))
					res := k.ValidateUTF8WithErrors(bad)
					require.Equal(t, want, res.OK())
					if !want {
						require.Equal(t, firstInvalid(bad), res.Count)
					}
				}
			}
		})
	}
}

func TestValidateASCII(t *testing.T) {
	for _, k := range kernels() {
		t.Run(k.Name(), func(t *testing.T) {
			text := bytes.Repeat([]byte("The quick brown fox. "), 20)
			require.True(t, k.ValidateASCII(text))
			require.True(t, k.ValidateASCII(nil))
			require.Equal(t, Result{Success, len(text)}, k.ValidateASCIIWithErrors(text))

			for _, pos := range []int{0, 15, 16, 31, 32, 33, 200, len(text) - 1} {
				bad := bytes.Clone(text)
				bad[pos] = 0x80
				require.False(t, k.ValidateASCII(bad))
				require.Equal(t, Result{TooLarge, pos}, k.ValidateASCIIWithErrors(bad))
			}
		})
	}
}

func TestCountUTF8(t *testing.T) {
	r := seededRand()
	for _, k := range kernels() {
		t.Run(k.Name(), func(t *testing.T) {
			for _, ascii := range []int{0, 70, 100} {
				text := randomText(r, 1000, ascii)
				n := utf8.RuneCount(text)
				require.Equal(t, n, k.CountUTF8(text))
				require.Equal(t, n, k.UTF32LengthFromUTF8(text))

				units := 0
				for _, c := range string(text) {
					units += 1 + utf8.RuneLen(c)/4
				}
				require.Equal(t, units, k.UTF16LengthFromUTF8(text))
			}
		})
	}
}

func TestTrimPartialUTF8(t *testing.T) {
	cases := []struct {
		input string
		n     int
	}{
		{"", 0},
		{"abc", 3},
		{"ab\xc3", 2},
		{"ab\xc3\xa9", 4},
		{"a\xe2\x82", 1},
		{"\xe2\x82\xac", 3},
		{"\xf0\x9f\x98", 0},
		{"\xf0\x9f\x98\x80", 4},
	}
	for _, tc := range cases {
		require.Equal(t, tc.n, TrimPartialUTF8([]byte(tc.input)), "%q", tc.input)
	}
}

func BenchmarkValidateUTF8(b *testing.B) {
	text := randomText(seededRand(), 1024*1024, 80)
	for _, k := range kernels() {
		b.Run(k.Name(), func(b *testing.B) {
			b.SetBytes(int64(len(text)))
			for b.Loop() {
				k.ValidateUTF8(text)
			}
		})
	}
}
