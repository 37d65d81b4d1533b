package rapidutf

import (
	"encoding/binary"
	"math/bits"
)

func validateASCII(b []byte) bool {
	i := 0
	for ; i+16 <= len(b); i += 16 {
		if !isASCII16(b[i:]) {
			return false
		}
	}
	var acc byte
	for _, c := range b[i:] {
		acc |= c
	}
	return acc < 0x80
}

func validateASCIIWithErrors(b []byte) Result {
	i := 0
	for ; i+8 <= len(b); i += 8 {
		if w := binary.LittleEndian.Uint64(b[i:]) & asciiMask64; w != 0 {
			return Result{TooLarge, i + bits.TrailingZeros64(w)/8}
		}
	}
	for ; i < len(b); i++ {
		if b[i] >= 0x80 {
			return Result{TooLarge, i}
		}
	}
	return Result{Success, len(b)}
}

// load16 returns the code unit u stored in byte order e.
func load16(u uint16, e Endianness) uint16 {
	if isNative(e) {
		return u
	}
	return bits.ReverseBytes16(u)
}

// store16 is the inverse of load16.
func store16(u uint16, e Endianness) uint16 {
	return load16(u, e)
}

func changeEndiannessUTF16(src, dst []uint16) {
	for i, u := range src {
		dst[i] = bits.ReverseBytes16(u)
	}
}
