package rapidutf

func validateUTF32(s []uint32) bool {
	return validateUTF32WithErrors(s).Error == Success
}

func validateUTF32WithErrors(s []uint32) Result {
	for i, cp := range s {
		if code := checkUTF32(cp); code != Success {
			return Result{code, i}
		}
	}
	return Result{Success, len(s)}
}

func checkUTF32(cp uint32) ErrorCode {
	switch {
	case cp > 0x10ffff:
		return TooLarge
	case cp >= 0xd800 && cp <= 0xdfff:
		return Surrogate
	}
	return Success
}

func utf8LengthFromUTF32(s []uint32) int {
	n := 0
	for _, cp := range s {
		switch {
		case cp < 0x80:
			n++
		case cp < 0x800:
			n += 2
		case cp < 0x10000:
			n += 3
		default:
			n += 4
		}
	}
	return n
}

func utf16LengthFromUTF32(s []uint32) int {
	n := len(s)
	for _, cp := range s {
		if cp > 0xffff {
			n++
		}
	}
	return n
}

func utf32ToUTF8Range(s []uint32, p, limit int, dst []byte, q int) (int, int, ErrorCode) {
	for ; p < limit; p++ {
		cp := s[p]
		if code := checkUTF32(cp); code != Success {
			return p, q, code
		}
		q = putUTF8(dst, q, rune(cp))
	}
	return p, q, Success
}

func validUTF32ToUTF8Range(s []uint32, p, limit int, dst []byte, q int) (int, int) {
	for ; p < limit; p++ {
		q = putUTF8(dst, q, rune(s[p]))
	}
	return p, q
}

func utf32ToUTF16Range(s []uint32, p, limit int, dst []uint16, q int, e Endianness) (int, int, ErrorCode) {
	for ; p < limit; p++ {
		cp := s[p]
		if code := checkUTF32(cp); code != Success {
			return p, q, code
		}
		q = putUTF16(dst, q, rune(cp), e)
	}
	return p, q, Success
}

func validUTF32ToUTF16Range(s []uint32, p, limit int, dst []uint16, q int, e Endianness) (int, int) {
	for ; p < limit; p++ {
		q = putUTF16(dst, q, rune(s[p]), e)
	}
	return p, q
}

func utf32ToLatin1Range(s []uint32, p, limit int, dst []byte, q int) (int, int, ErrorCode) {
	for ; p < limit; p++ {
		cp := s[p]
		if cp > 0xff {
			return p, q, TooLarge
		}
		dst[q] = byte(cp)
		q++
	}
	return p, q, Success
}

func validUTF32ToLatin1Range(s []uint32, p, limit int, dst []byte, q int) (int, int) {
	for ; p < limit; p++ {
		dst[q] = byte(s[p])
		q++
	}
	return p, q
}
