package rapidutf

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func decodeWith(k Implementation, src string, o Base64Options, lc LastChunkHandling) ([]byte, FullResult) {
	dst := make([]byte, k.MaximalBinaryLengthFromBase64([]byte(src)))
	r := k.Base64ToBinary([]byte(src), dst, o, lc)
	return dst[:r.OutputCount], r
}

func TestBase64Decode(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		o        Base64Options
		lc       LastChunkHandling
		expected []byte
		result   FullResult
	}{
		{"Padded", "AAGA/v8=", Base64Default, Loose, []byte{0, 1, 0x80, 0xfe, 0xff}, FullResult{Success, 8, 5}},
		{"OverPadded", "AAGA/v8==", Base64Default, Loose, nil, FullResult{InvalidBase64Character, 7, 0}},
		{"Empty", "", Base64Default, Loose, nil, FullResult{Success, 0, 0}},
		{"OnlySpace", " \n\t", Base64Default, Loose, nil, FullResult{Success, 3, 0}},
		{"OnlyPadding", "==", Base64Default, Loose, nil, FullResult{InvalidBase64Character, 0, 0}},
		{"Spaces", " QU JD\r\nRA== ", Base64Default, Loose, []byte("ABCD"), FullResult{Success, 13, 4}},
		{"Unpadded", "QUJDRA", Base64Default, Loose, []byte("ABCD"), FullResult{Success, 6, 4}},
		{"BadChar", "AAAA*AAA", Base64Default, Loose, nil, FullResult{InvalidBase64Character, 4, 3}},
		{"Remainder", "AAAAA", Base64Default, Loose, nil, FullResult{Base64InputRemainder, 5, 3}},
		{"StrictRemainder", "QUJDRA", Base64Default, Strict, nil, FullResult{Base64InputRemainder, 6, 3}},
		{"StrictPadded", "QUJDRA==", Base64Default, Strict, []byte("ABCD"), FullResult{Success, 8, 4}},
		{"StopBeforePartial", "QUJDRA", Base64Default, StopBeforePartial, []byte("ABC"), FullResult{Success, 4, 3}},
		{"OnlyFullChunks", "QUJDRA", Base64Default, OnlyFullChunks, []byte("ABC"), FullResult{Success, 4, 3}},
		{"URL", "-_-_", Base64URL, Loose, []byte{0xfb, 0xff, 0xbf}, FullResult{Success, 4, 3}},
		{"URLRejectsStandard", "+/+/", Base64URL, Loose, nil, FullResult{InvalidBase64Character, 0, 0}},
		{"StandardRejectsURL", "AAAA-_-_", Base64Default, Loose, nil, FullResult{InvalidBase64Character, 4, 3}},
		{"Either", "-_+/", Base64DefaultOrURL, Loose, []byte{0xfb, 0xff, 0xbf}, FullResult{Success, 4, 3}},
		{"Garbage", "QU*JD!RA==", Base64DefaultAcceptGarbage, Loose, []byte("ABCD"), FullResult{Success, 9, 4}},
	}

	for _, k := range kernels() {
		t.Run(k.Name(), func(t *testing.T) {
			for _, tc := range cases {
				got, r := decodeWith(k, tc.input, tc.o, tc.lc)
				require.Equal(t, tc.result.Error, r.Error, tc.name)
				require.Equal(t, tc.result.InputCount, r.InputCount, tc.name)
				if r.OK() {
					require.Equal(t, tc.result.OutputCount, r.OutputCount, tc.name)
					require.Equal(t, string(tc.expected), string(got), tc.name)
				}
			}
		})
	}
}

func TestBase64StrictExtraBits(t *testing.T) {
	for _, k := range kernels() {
		_, r := decodeWith(k, "Zm9=", Base64Default, Strict)
		require.Equal(t, Base64ExtraBits, r.Error, k.Name())

		got, r := decodeWith(k, "Zm9=", Base64Default, Loose)
		require.True(t, r.OK(), k.Name())
		require.Equal(t, "fo", string(got))
	}
}

var base64Encodings = []struct {
	o   Base64Options
	enc *base64.Encoding
}{
	{Base64Default, base64.StdEncoding},
	{Base64DefaultNoPadding, base64.RawStdEncoding},
	{Base64URL, base64.RawURLEncoding},
	{Base64URLWithPadding, base64.URLEncoding},
	{Base64DefaultOrURL, base64.StdEncoding},
}

func TestBase64Encode(t *testing.T) {
	raw := seededBytes(4096)
	for _, k := range kernels() {
		t.Run(k.Name(), func(t *testing.T) {
			for _, ec := range base64Encodings {
				for _, n := range []int{0, 1, 2, 3, 4, 5, 47, 48, 49, 100, 1000, 4096} {
					want := ec.enc.EncodeToString(raw[:n])
					require.Equal(t, len(want), k.Base64LengthFromBinary(n, ec.o))

					dst := make([]byte, len(want))
					require.Equal(t, len(want), k.BinaryToBase64(raw[:n], dst, ec.o))
					require.Equal(t, want, string(dst), "%s/%d", ec.o, n)

					require.GreaterOrEqual(t, k.MaximalBinaryLengthFromBase64(dst), n)
					back := make([]byte, k.MaximalBinaryLengthFromBase64(dst))
					lc := Loose
					if ec.o.padded() {
						lc = Strict
					}
					r := k.Base64ToBinary(dst, back, ec.o, lc)
					require.True(t, r.OK(), "%s/%d: %v", ec.o, n, r.Error)
					require.Equal(t, raw[:n], back[:r.OutputCount])
				}
			}
		})
	}
}

func TestBase64DecodeWrapped(t *testing.T) {
	raw := seededBytes(100_000)
	encoded := base64.StdEncoding.EncodeToString(raw)
	var wrapped strings.Builder
	for i := 0; i < len(encoded); i += 76 {
		wrapped.WriteString(encoded[i:min(i+76, len(encoded))])
		wrapped.WriteString("\r\n")
	}

	for _, k := range kernels() {
		got, r := decodeWith(k, wrapped.String(), Base64Default, Loose)
		require.True(t, r.OK(), k.Name())
		require.Equal(t, wrapped.Len(), r.InputCount)
		require.True(t, bytes.Equal(raw, got), k.Name())
	}
}

func TestBase64ToBinarySafe(t *testing.T) {
	raw := seededBytes(1000)
	encoded := []byte(base64.StdEncoding.EncodeToString(raw))

	for _, size := range []int{3, 4, 37, 100, 999, 1000, 2000} {
		var out []byte
		dst := make([]byte, size)
		src := encoded
		for {
			r := Base64ToBinarySafe(src, dst, Base64Default, Loose, false)
			out = append(out, dst[:r.OutputCount]...)
			if r.Error == OutputBufferTooSmall {
				require.Positive(t, r.InputCount+r.OutputCount, "no progress with %d", size)
				src = src[r.InputCount:]
				continue
			}
			require.Equal(t, Success, r.Error)
			require.Equal(t, len(src), r.InputCount)
			break
		}
		require.Equal(t, raw, out, "size %d", size)
	}

	r := Base64ToBinarySafe([]byte("AAGA/v8=="), make([]byte, 10), Base64Default, Loose, false)
	require.Equal(t, InvalidBase64Character, r.Error)
}

func TestBase64ToBinarySafeUpToBadChar(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		size   int
		want   string
		result FullResult
	}{
		{"Roomy", "QUJDREVG!QUJD", 100, "ABCDEF", FullResult{InvalidBase64Character, 8, 6}},
		{"Exact", "QUJDREVG!QUJD", 6, "ABCDEF", FullResult{InvalidBase64Character, 8, 6}},
		{"Spaced", "QUJD REVG\n*QUJD", 100, "ABCDEF", FullResult{InvalidBase64Character, 10, 6}},
		{"TooSmall", "QUJDREVG!QUJD", 4, "ABC", FullResult{OutputBufferTooSmall, 4, 3}},
		{"First", "!QUJD", 10, "", FullResult{InvalidBase64Character, 0, 0}},
		{"Clean", "QUJDREVG", 10, "ABCDEF", FullResult{Success, 8, 6}},
	}

	for _, k := range kernels() {
		t.Run(k.Name(), func(t *testing.T) {
			resetActive(t)
			SetActiveImplementation(k)
			for _, tc := range cases {
				dst := make([]byte, tc.size)
				r := Base64ToBinarySafe([]byte(tc.input), dst, Base64Default, Loose, true)
				require.Equal(t, tc.result, r, tc.name)
				require.Equal(t, tc.want, string(dst[:r.OutputCount]), tc.name)
			}
		})
	}
}

func TestBase64Helpers(t *testing.T) {
	require.Equal(t, 5, MaximalBinaryLengthFromBase64([]byte("AAGA/v8=")))
	require.Equal(t, 0, MaximalBinaryLengthFromBase64(nil))
	require.Equal(t, 8, Base64LengthFromBinary(5, Base64Default))
	require.Equal(t, 7, Base64LengthFromBinary(5, Base64URL))

	require.True(t, Base64Ignorable(' ', Base64Default))
	require.False(t, Base64Ignorable('*', Base64Default))
	require.True(t, Base64Ignorable('*', Base64DefaultAcceptGarbage))
	require.True(t, Base64Valid('+', Base64Default))
	require.False(t, Base64Valid('-', Base64Default))
	require.True(t, Base64Valid('-', Base64DefaultOrURL))

	enc := Base64Encode([]byte("hello"), Base64URL)
	require.Equal(t, "aGVsbG8", string(enc))
	dec, err := Base64Decode(enc, Base64URL)
	require.NoError(t, err)
	require.Equal(t, "hello", string(dec))

	_, err = Base64Decode([]byte("AAGA/v8=="), Base64Default)
	require.ErrorIs(t, err, InvalidBase64Character)

	require.Equal(t, Result{Success, 5}, Base64ToBinary([]byte("AAGA/v8="), make([]byte, 5), Base64Default, Loose))
	require.Equal(t, "base64_url", Base64URL.String())
	require.Equal(t, "stop_before_partial", StopBeforePartial.String())
}

func BenchmarkBase64(b *testing.B) {
	raw := seededBytes(1024 * 1024)
	encoded := []byte(base64.StdEncoding.EncodeToString(raw))
	dst := make([]byte, len(raw))
	for _, k := range kernels() {
		b.Run(k.Name()+"/decode", func(b *testing.B) {
			b.SetBytes(int64(len(encoded)))
			for b.Loop() {
				k.Base64ToBinary(encoded, dst, Base64Default, Loose)
			}
		})
	}
}
