package rapidutf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckBOM(t *testing.T) {
	cases := []struct {
		input string
		e     Encoding
		size  int
	}{
		{"\xef\xbb\xbfabc", UTF8, 3},
		{"\xff\xfea\x00", UTF16LE, 2},
		{"\xfe\xff\x00a", UTF16BE, 2},
		{"\xff\xfe\x00\x00", UTF32LE, 4},
		{"\x00\x00\xfe\xff", UTF32BE, 4},
		{"abc", Unspecified, 0},
		{"\xef\xbb", Unspecified, 0},
	}
	for _, tc := range cases {
		require.Equal(t, tc.e, CheckBOM([]byte(tc.input)), "%q", tc.input)
		require.Equal(t, tc.size, BOMByteSize(tc.e))
	}
}

func TestDetectEncodings(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		found  Encoding
		winner Encoding
	}{
		{"Empty", "", UTF8 | UTF16LE | UTF32LE, UTF8},
		{"OddASCII", "hello", UTF8, UTF8},
		{"EvenASCII", "hi", UTF8 | UTF16LE, UTF8},
		{"FourASCII", "abcd", UTF8 | UTF16LE, UTF8},
		{"UTF16LE", "h\x00\xe9\x00l\x00l\x00o\x00", UTF16LE, UTF16LE},
		{"UTF32LE", "h\x00\x00\x00\xe9\x00\x00\x00", UTF16LE | UTF32LE, UTF16LE},
		{"UTF32LEOnly", "\x00\xd8\x01\x00", UTF32LE, UTF32LE},
		{"BOM16BE", "\xfe\xff\x00h", UTF16BE, UTF16BE},
		{"BOM32BE", "\x00\x00\xfe\xff", UTF32BE, UTF32BE},
		{"Nothing", "\xc3", Unspecified, Unspecified},
	}

	for _, k := range kernels() {
		t.Run(k.Name(), func(t *testing.T) {
			for _, tc := range cases {
				require.Equal(t, tc.found, k.DetectEncodings([]byte(tc.input)), tc.name)
				require.Equal(t, tc.winner, k.AutodetectEncoding([]byte(tc.input)), tc.name)
			}
		})
	}
}

func TestEncodingString(t *testing.T) {
	require.Equal(t, "UTF8", UTF8.String())
	require.Equal(t, "UTF8, UTF16 little-endian", (UTF8 | UTF16LE).String())
	require.Equal(t, "unknown", Unspecified.String())
	require.True(t, (UTF8 | UTF32LE).Has(UTF32LE))
	require.False(t, UTF8.Has(Unspecified))
}
