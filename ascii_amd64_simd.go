//go:build goexperiment.simd && amd64

package rapidutf

import "simd/archsimd"

// archsimd 128-bit ops on AMD64 require AVX, 256-bit integer ops AVX2.
var (
	useSIMDASCII = archsimd.X86.AVX()
	useAVX2ASCII = archsimd.X86.AVX2()
)

// asciiPrefixAVX returns the length of the ASCII prefix of b in whole 16 byte
// blocks. A byte is ASCII when int8(b) >= 0.
func asciiPrefixAVX(b []byte) int {
	zero := archsimd.BroadcastInt8x16(0)
	n := 0
	for n+16 <= len(b) {
		v := archsimd.LoadUint8x16Slice(b[n:]).AsInt8x16()
		if v.Less(zero).ToBits() != 0 {
			break
		}
		n += 16
	}
	return n
}

// asciiPrefixAVX2 is asciiPrefixAVX over 32 byte blocks.
func asciiPrefixAVX2(b []byte) int {
	zero := archsimd.BroadcastInt8x32(0)
	n := 0
	for n+32 <= len(b) {
		v := archsimd.LoadUint8x32Slice(b[n:]).AsInt8x32()
		if toBits(v.Less(zero)) != 0 {
			break
		}
		n += 32
	}
	return n
}

// toBits extract MSB of each int8 and place in corresponding bit
func toBits(mask archsimd.Mask8x32) uint32 {
	var tmp [32]int8
	mask.ToInt8x32().Store(&tmp)
	var bits uint32
	for i := 0; i < 32; i++ {
		bits |= (uint32(tmp[i]) >> 7 & 1) << i
	}
	return bits
}
