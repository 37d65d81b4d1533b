//go:build amd64 && !goexperiment.simd

package rapidutf

// Without the simd experiment the amd64 kernels use the portable block loop.
var (
	useSIMDASCII = false
	useAVX2ASCII = false
)

func asciiPrefixAVX(b []byte) int        { return 0 }
func asciiPrefixAVX2(b []byte) int       { return 0 }
func utf8PrefixAVX2(b []byte) int        { return 0 }
func indexByteAVX2(b []byte, c byte) int { return findByte(b, c) }
