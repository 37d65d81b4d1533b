package rapidutf

func utf8LengthFromLatin1(b []byte) int {
	n := len(b)
	for _, c := range b {
		if c >= 0x80 {
			n++
		}
	}
	return n
}

func latin1ToUTF8Range(b []byte, p, limit int, dst []byte, q int) (int, int) {
	for p < limit {
		if p+16 <= len(b) && isASCII16(b[p:]) {
			copy(dst[q:q+16], b[p:p+16])
			p += 16
			q += 16
			continue
		}
		c := b[p]
		if c < 0x80 {
			dst[q] = c
			q++
		} else {
			dst[q] = 0xc0 | c>>6
			dst[q+1] = 0x80 | c&0x3f
			q += 2
		}
		p++
	}
	return p, q
}

func latin1ToUTF16Range(b []byte, p, limit int, dst []uint16, q int, e Endianness) (int, int) {
	for ; p < limit; p++ {
		dst[q] = store16(uint16(b[p]), e)
		q++
	}
	return p, q
}

func latin1ToUTF32Range(b []byte, p, limit int, dst []uint32, q int) (int, int) {
	for ; p < limit; p++ {
		dst[q] = uint32(b[p])
		q++
	}
	return p, q
}
