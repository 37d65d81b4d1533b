package rapidutf

// The UTF-8 source converters decode whole characters from b[p:] until at
// least limit bytes are consumed and return the next input and output
// positions. On malformed input they stop with p at the leading byte of the
// offending character and q at the number of units written before it.

func utf8ToUTF16Range(b []byte, p, limit int, dst []uint16, q int, e Endianness) (int, int, ErrorCode) {
	for p < limit {
		if p+16 <= len(b) && isASCII16(b[p:]) {
			for _, c := range b[p : p+16] {
				dst[q] = store16(uint16(c), e)
				q++
			}
			p += 16
			continue
		}
		cp, n, code := decodeUTF8(b, p)
		if code != Success {
			return p, q, code
		}
		q = putUTF16(dst, q, cp, e)
		p += n
	}
	return p, q, Success
}

func validUTF8ToUTF16Range(b []byte, p, limit int, dst []uint16, q int, e Endianness) (int, int) {
	for p < limit {
		cp, n := decodeValidUTF8(b, p)
		q = putUTF16(dst, q, cp, e)
		p += n
	}
	return p, q
}

func utf8ToUTF32Range(b []byte, p, limit int, dst []uint32, q int) (int, int, ErrorCode) {
	for p < limit {
		if p+16 <= len(b) && isASCII16(b[p:]) {
			for _, c := range b[p : p+16] {
				dst[q] = uint32(c)
				q++
			}
			p += 16
			continue
		}
		cp, n, code := decodeUTF8(b, p)
		if code != Success {
			return p, q, code
		}
		dst[q] = uint32(cp)
		q++
		p += n
	}
	return p, q, Success
}

func validUTF8ToUTF32Range(b []byte, p, limit int, dst []uint32, q int) (int, int) {
	for p < limit {
		cp, n := decodeValidUTF8(b, p)
		dst[q] = uint32(cp)
		q++
		p += n
	}
	return p, q
}

// utf8ToLatin1Range reports structural errors first; a well formed character
// above U+00FF is TooLarge.
func utf8ToLatin1Range(b []byte, p, limit int, dst []byte, q int) (int, int, ErrorCode) {
	for p < limit {
		if p+16 <= len(b) && isASCII16(b[p:]) {
			copy(dst[q:q+16], b[p:p+16])
			p += 16
			q += 16
			continue
		}
		cp, n, code := decodeUTF8(b, p)
		if code != Success {
			return p, q, code
		}
		if cp > 0xff {
			return p, q, TooLarge
		}
		dst[q] = byte(cp)
		q++
		p += n
	}
	return p, q, Success
}

func validUTF8ToLatin1Range(b []byte, p, limit int, dst []byte, q int) (int, int) {
	for p < limit {
		cp, n := decodeValidUTF8(b, p)
		dst[q] = byte(cp)
		q++
		p += n
	}
	return p, q
}
