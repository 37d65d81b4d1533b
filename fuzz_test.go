package rapidutf

import (
	"bytes"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func FuzzValidateUTF8(f *testing.F) {
	for _, tc := range utf8ErrorCases {
		f.Add([]byte(tc.input))
	}
	f.Add(randomText(seededRand(), 100, 50))

	impls := kernels()
	f.Fuzz(func(t *testing.T, b []byte) {
		want := utf8.Valid(b)
		for _, k := range impls {
			require.Equal(t, want, k.ValidateUTF8(b), k.Name())
			r := k.ValidateUTF8WithErrors(b)
			require.Equal(t, want, r.OK(), k.Name())
			if want {
				require.Equal(t, len(b), r.Count)
			} else {
				require.Equal(t, firstInvalid(b), r.Count, k.Name())
			}
		}
	})
}

func FuzzUTF8ToUTF16(f *testing.F) {
	f.Add([]byte("1234"))
	f.Add([]byte("\xc2\xa9"))
	f.Add([]byte("h\xf0\x9f\x98\x80i"))

	impls := kernels()
	f.Fuzz(func(t *testing.T, b []byte) {
		ref := newFallbackImplementation()
		for _, k := range impls {
			for _, e := range endians {
				dst := make([]uint16, 4*len(b))
				n := k.ConvertUTF8ToUTF16(b, dst, e)
				if !utf8.Valid(b) {
					require.Zero(t, n)
					refDst := make([]uint16, 4*len(b))
					require.Equal(t,
						ref.ConvertUTF8ToUTF16WithErrors(b, refDst, e),
						k.ConvertUTF8ToUTF16WithErrors(b, dst, e), k.Name())
					continue
				}
				require.Equal(t, k.UTF16LengthFromUTF8(b), n)

				back := make([]byte, k.UTF8LengthFromUTF16(dst[:n], e))
				require.Equal(t, len(b), k.ConvertUTF16ToUTF8(dst[:n], back, e))
				require.Equal(t, b, back)
			}
		}
	})
}

func FuzzBase64(f *testing.F) {
	f.Add([]byte("AAGA/v8="), byte(0), byte(0))
	f.Add([]byte("AAGA/v8=="), byte(0), byte(1))
	f.Add([]byte(" QU JD\nRA"), byte(1), byte(2))
	f.Add([]byte("QU*JD!RA=="), byte(4), byte(3))

	impls := kernels()
	opts := []Base64Options{
		Base64Default, Base64URL, Base64DefaultNoPadding, Base64URLWithPadding,
		Base64DefaultAcceptGarbage, Base64URLAcceptGarbage, Base64DefaultOrURL, Base64DefaultOrURLAcceptGarbage,
	}
	f.Fuzz(func(t *testing.T, src []byte, opt, mode byte) {
		o := opts[int(opt)%len(opts)]
		lc := LastChunkHandling(int(mode) % 4)

		ref := newFallbackImplementation()
		refDst := make([]byte, ref.MaximalBinaryLengthFromBase64(src))
		want := ref.Base64ToBinary(src, refDst, o, lc)
		if want.OK() {
			require.LessOrEqual(t, want.OutputCount, len(refDst))
		}

		for _, k := range impls {
			dst := make([]byte, len(refDst))
			got := k.Base64ToBinary(src, dst, o, lc)
			require.Equal(t, want.Error, got.Error, k.Name())
			require.Equal(t, want.InputCount, got.InputCount, k.Name())
			if want.OK() {
				require.Equal(t, want.OutputCount, got.OutputCount, k.Name())
				require.True(t, bytes.Equal(refDst[:want.OutputCount], dst[:got.OutputCount]), k.Name())
			}
		}

		// anything decoded re-encodes to something that decodes the same
		if want.OK() {
			enc := make([]byte, ref.Base64LengthFromBinary(want.OutputCount, o))
			ref.BinaryToBase64(refDst[:want.OutputCount], enc, o)
			back := make([]byte, ref.MaximalBinaryLengthFromBase64(enc))
			r := ref.Base64ToBinary(enc, back, o, Loose)
			require.True(t, r.OK())
			require.Equal(t, refDst[:want.OutputCount], back[:r.OutputCount])
		}
	})
}
