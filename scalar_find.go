package rapidutf

import (
	"encoding/binary"
	"math/bits"
)

// findByte returns the index of the first c in b, or -1. Eight bytes are
// tested at a time: XOR with the broadcast needle zeroes matching bytes and
// the lowest zero byte is located with the has-zero trick.
func findByte(b []byte, c byte) int {
	const lo8, hi8 = 0x0101010101010101, 0x8080808080808080
	needle := uint64(c) * lo8
	i := 0
	for ; i+8 <= len(b); i += 8 {
		x := binary.LittleEndian.Uint64(b[i:]) ^ needle
		if zero := (x - lo8) &^ x & hi8; zero != 0 {
			return i + bits.TrailingZeros64(zero)/8
		}
	}
	for ; i < len(b); i++ {
		if b[i] == c {
			return i
		}
	}
	return -1
}

func findUTF16(s []uint16, c uint16) int {
	for i, u := range s {
		if u == c {
			return i
		}
	}
	return -1
}
