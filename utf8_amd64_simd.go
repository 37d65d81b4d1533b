//go:build goexperiment.simd && amd64

package rapidutf

import (
	"math/bits"

	"simd/archsimd"
)

// The lookup tables repeated in both 128-bit lanes, since
// PermuteOrZeroGrouped shuffles each lane on its own.
var byte1HighLanes, byte1LowLanes, byte2HighLanes [32]int8

func init() {
	for i := range 32 {
		byte1HighLanes[i] = int8(byte1High[i&15])
		byte1LowLanes[i] = int8(byte1Low[i&15])
		byte2HighLanes[i] = int8(byte2High[i&15])
	}
}

// utf8PrefixAVX2 runs the lookup validator over 32 byte blocks and returns
// the end of the last block that is valid and ends on a character boundary.
// The caller finishes the input from there with a fresh checker.
func utf8PrefixAVX2(b []byte) int {
	t1h := archsimd.LoadInt8x32(&byte1HighLanes)
	t1l := archsimd.LoadInt8x32(&byte1LowLanes)
	t2h := archsimd.LoadInt8x32(&byte2HighLanes)
	low := archsimd.BroadcastInt8x32(0x0f)
	bit7 := archsimd.BroadcastInt8x32(-0x80)
	zero := archsimd.BroadcastInt8x32(0)
	third := archsimd.BroadcastUint8x32(0xe0 - 0x80)
	fourth := archsimd.BroadcastUint8x32(0xf0 - 0x80)

	// bytes before the input are zero
	var head [35]byte
	good := 0
	for n := 0; n+32 <= len(b); n += 32 {
		cur := archsimd.LoadUint8x32Slice(b[n:])
		var prev1, prev2, prev3 archsimd.Uint8x32
		if n == 0 {
			copy(head[3:], b[:32])
			prev1 = archsimd.LoadUint8x32Slice(head[2:])
			prev2 = archsimd.LoadUint8x32Slice(head[1:])
			prev3 = archsimd.LoadUint8x32Slice(head[0:])
		} else {
			prev1 = archsimd.LoadUint8x32Slice(b[n-1:])
			prev2 = archsimd.LoadUint8x32Slice(b[n-2:])
			prev3 = archsimd.LoadUint8x32Slice(b[n-3:])
		}

		sc := t1h.PermuteOrZeroGrouped(highNibbles(prev1, low)).
			And(t1l.PermuteOrZeroGrouped(prev1.AsInt8x32().And(low))).
			And(t2h.PermuteOrZeroGrouped(highNibbles(cur, low)))
		must23 := prev2.SubSaturated(third).Or(prev3.SubSaturated(fourth)).AsInt8x32().And(bit7)
		if toBits(must23.Xor(sc).Equal(zero)) != 0xffffffff {
			break
		}
		end := n + 32
		if b[end-1] < 0xc0 && b[end-2] < 0xe0 && b[end-3] < 0xf0 {
			good = end
		}
	}
	archsimd.ClearAVXUpperBits()
	return good
}

// highNibbles shifts 16-bit lanes and masks, as there is no 8-bit shift.
func highNibbles(v archsimd.Uint8x32, low archsimd.Int8x32) archsimd.Int8x32 {
	return v.AsUint16x16().ShiftAllRight(4).AsInt8x32().And(low)
}

// indexByteAVX2 compares 32 bytes per step.
func indexByteAVX2(b []byte, c byte) int {
	needle := archsimd.BroadcastUint8x32(c)
	i := 0
	for ; i+32 <= len(b); i += 32 {
		if m := toBits(archsimd.LoadUint8x32Slice(b[i:]).Equal(needle)); m != 0 {
			archsimd.ClearAVXUpperBits()
			return i + bits.TrailingZeros32(m)
		}
	}
	archsimd.ClearAVXUpperBits()
	if j := findByte(b[i:], c); j >= 0 {
		return i + j
	}
	return -1
}
