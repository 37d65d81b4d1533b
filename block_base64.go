package rapidutf

// decodeBase64Blocks packs leading blocks of width characters (a multiple of
// four) that are all in the alphabet. It stops at the first block holding
// white space, padding or any other character and returns the input and
// output positions reached.
func decodeBase64Blocks(dst, src []byte, table *[256]uint8, width int) (s, d int) {
	var vals [64]uint8
	for s+width <= len(src) {
		var bad uint8
		for i, c := range src[s : s+width] {
			v := table[c]
			vals[i] = v
			bad |= v
		}
		if bad > 63 {
			return s, d
		}
		for i := 0; i < width; i += 4 {
			x := uint32(vals[i])<<18 | uint32(vals[i+1])<<12 | uint32(vals[i+2])<<6 | uint32(vals[i+3])
			dst[d], dst[d+1], dst[d+2] = byte(x>>16), byte(x>>8), byte(x)
			d += 3
		}
		s += width
	}
	return s, d
}

// encodeBase64Blocks encodes leading groups of width*3/4 bytes, six bytes
// at a time unpacked into eight 6-bit lanes. The rest is left to
// binaryToBase64.
func encodeBase64Blocks(dst, src []byte, alphabet string, width int) (s, d int) {
	in := width / 4 * 3
	for s+in <= len(src) {
		for end := s + in; s < end; s += 6 {
			x := uint64(src[s])<<40 | uint64(src[s+1])<<32 | uint64(src[s+2])<<24 |
				uint64(src[s+3])<<16 | uint64(src[s+4])<<8 | uint64(src[s+5])
			for i := 0; i < 8; i++ {
				dst[d+i] = alphabet[x>>(42-6*i)&0x3f]
			}
			d += 8
		}
	}
	return s, d
}

func (k *blockImplementation) Base64ToBinary(src, dst []byte, o Base64Options, lc LastChunkHandling) FullResult {
	return base64ToBinary(src, dst, o, lc, false, k.width)
}

func (k *blockImplementation) BinaryToBase64(src, dst []byte, o Base64Options) int {
	s, d := encodeBase64Blocks(dst, src, o.alphabet(), k.width)
	return d + binaryToBase64(src[s:], dst[d:], o)
}
