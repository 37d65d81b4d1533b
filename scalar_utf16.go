package rapidutf

const replacementCharacter = 0xfffd

func isSurrogate(u uint16) bool { return u&0xf800 == 0xd800 }
func isHighSurrogate(u uint16) bool { return u&0xfc00 == 0xd800 }
func isLowSurrogate(u uint16) bool { return u&0xfc00 == 0xdc00 }

func validateUTF16(s []uint16, e Endianness) bool {
	return validateUTF16WithErrors(s, e).Error == Success
}

func validateUTF16WithErrors(s []uint16, e Endianness) Result {
	for pos := 0; pos < len(s); {
		u := load16(s[pos], e)
		if !isSurrogate(u) {
			pos++
			continue
		}
		if !isHighSurrogate(u) || pos+1 >= len(s) || !isLowSurrogate(load16(s[pos+1], e)) {
			return Result{Surrogate, pos}
		}
		pos += 2
	}
	return Result{Success, len(s)}
}

// decodeUTF16 decodes the character starting at s[pos]. n is 0 when s[pos] is
// an unpaired surrogate.
func decodeUTF16(s []uint16, pos int, e Endianness) (cp rune, n int) {
	u := load16(s[pos], e)
	if !isSurrogate(u) {
		return rune(u), 1
	}
	if !isHighSurrogate(u) || pos+1 >= len(s) {
		return 0, 0
	}
	lo := load16(s[pos+1], e)
	if !isLowSurrogate(lo) {
		return 0, 0
	}
	return 0x10000 + (rune(u-0xd800)<<10 | rune(lo-0xdc00)), 2
}

// decodeValidUTF16 assumes a high surrogate is followed by a low one.
func decodeValidUTF16(s []uint16, pos int, e Endianness) (rune, int) {
	u := load16(s[pos], e)
	if !isHighSurrogate(u) || pos+1 >= len(s) {
		return rune(u), 1
	}
	return 0x10000 + (rune(u-0xd800)<<10 | rune(load16(s[pos+1], e)-0xdc00)), 2
}

func countUTF16(s []uint16, e Endianness) int {
	n := 0
	for _, u := range s {
		if !isLowSurrogate(load16(u, e)) {
			n++
		}
	}
	return n
}

// utf8LengthFromUTF16 counts each half of a surrogate pair as two bytes, so a
// valid pair is four. Unpaired surrogates count as if they were paired.
func utf8LengthFromUTF16(s []uint16, e Endianness) int {
	n := 0
	for _, u := range s {
		u = load16(u, e)
		switch {
		case u < 0x80:
			n++
		case u < 0x800:
			n += 2
		case isSurrogate(u):
			n += 2
		default:
			n += 3
		}
	}
	return n
}

// utf8LengthFromUTF16WithReplacement sizes the output of the replacing
// converter: an unpaired surrogate becomes the three byte U+FFFD.
func utf8LengthFromUTF16WithReplacement(s []uint16, e Endianness) Result {
	n := 0
	code := Success
	for pos := 0; pos < len(s); {
		cp, k := decodeUTF16(s, pos, e)
		if k == 0 {
			code = Surrogate
			n += 3
			pos++
			continue
		}
		n += utf8RuneLen(cp)
		pos += k
	}
	return Result{code, n}
}

func utf8RuneLen(cp rune) int {
	switch {
	case cp < 0x80:
		return 1
	case cp < 0x800:
		return 2
	case cp < 0x10000:
		return 3
	}
	return 4
}

// putUTF8 stores cp at dst[q] and returns the index after it.
func putUTF8(dst []byte, q int, cp rune) int {
	switch {
	case cp < 0x80:
		dst[q] = byte(cp)
		return q + 1
	case cp < 0x800:
		dst[q] = byte(0xc0 | cp>>6)
		dst[q+1] = byte(0x80 | cp&0x3f)
		return q + 2
	case cp < 0x10000:
		dst[q] = byte(0xe0 | cp>>12)
		dst[q+1] = byte(0x80 | (cp>>6)&0x3f)
		dst[q+2] = byte(0x80 | cp&0x3f)
		return q + 3
	}
	dst[q] = byte(0xf0 | cp>>18)
	dst[q+1] = byte(0x80 | (cp>>12)&0x3f)
	dst[q+2] = byte(0x80 | (cp>>6)&0x3f)
	dst[q+3] = byte(0x80 | cp&0x3f)
	return q + 4
}

// putUTF16 stores cp at dst[q], as a surrogate pair above the BMP.
func putUTF16(dst []uint16, q int, cp rune, e Endianness) int {
	if cp < 0x10000 {
		dst[q] = store16(uint16(cp), e)
		return q + 1
	}
	cp -= 0x10000
	dst[q] = store16(uint16(0xd800+cp>>10), e)
	dst[q+1] = store16(uint16(0xdc00+cp&0x3ff), e)
	return q + 2
}

// utf16ToUTF8Range converts whole characters from s[p:] until at least limit
// units are consumed. It returns the next input and output positions and stops
// at an unpaired surrogate unless replace is set, in which case U+FFFD is
// written for it.
func utf16ToUTF8Range(s []uint16, p, limit int, dst []byte, q int, e Endianness, replace bool) (int, int, ErrorCode) {
	for p < limit {
		if p+4 <= len(s) {
			// four ASCII units at once
			a, b, c, d := load16(s[p], e), load16(s[p+1], e), load16(s[p+2], e), load16(s[p+3], e)
			if (a|b|c|d)&0xff80 == 0 {
				dst[q], dst[q+1], dst[q+2], dst[q+3] = byte(a), byte(b), byte(c), byte(d)
				p += 4
				q += 4
				continue
			}
		}
		cp, n := decodeUTF16(s, p, e)
		if n == 0 {
			if !replace {
				return p, q, Surrogate
			}
			cp, n = replacementCharacter, 1
		}
		q = putUTF8(dst, q, cp)
		p += n
	}
	return p, q, Success
}

func validUTF16ToUTF8Range(s []uint16, p, limit int, dst []byte, q int, e Endianness) (int, int) {
	for p < limit {
		cp, n := decodeValidUTF16(s, p, e)
		q = putUTF8(dst, q, cp)
		p += n
	}
	return p, q
}

func utf16ToUTF32Range(s []uint16, p, limit int, dst []uint32, q int, e Endianness) (int, int, ErrorCode) {
	for p < limit {
		cp, n := decodeUTF16(s, p, e)
		if n == 0 {
			return p, q, Surrogate
		}
		dst[q] = uint32(cp)
		q++
		p += n
	}
	return p, q, Success
}

func validUTF16ToUTF32Range(s []uint16, p, limit int, dst []uint32, q int, e Endianness) (int, int) {
	for p < limit {
		cp, n := decodeValidUTF16(s, p, e)
		dst[q] = uint32(cp)
		q++
		p += n
	}
	return p, q
}

// utf16ToLatin1Range rejects any unit above 0xff with TooLarge.
func utf16ToLatin1Range(s []uint16, p, limit int, dst []byte, q int, e Endianness) (int, int, ErrorCode) {
	for ; p < limit; p++ {
		u := load16(s[p], e)
		if u > 0xff {
			return p, q, TooLarge
		}
		dst[q] = byte(u)
		q++
	}
	return p, q, Success
}

func validUTF16ToLatin1Range(s []uint16, p, limit int, dst []byte, q int, e Endianness) (int, int) {
	for ; p < limit; p++ {
		dst[q] = byte(load16(s[p], e))
		q++
	}
	return p, q
}

// toWellFormedUTF16 copies src to dst, replacing unpaired surrogates with
// U+FFFD. src and dst may be the same slice.
func toWellFormedUTF16(src, dst []uint16, e Endianness) {
	replacement := store16(replacementCharacter, e)
	for i := 0; i < len(src); {
		u := load16(src[i], e)
		if !isSurrogate(u) {
			dst[i] = src[i]
			i++
			continue
		}
		if isHighSurrogate(u) && i+1 < len(src) && isLowSurrogate(load16(src[i+1], e)) {
			dst[i], dst[i+1] = src[i], src[i+1]
			i += 2
			continue
		}
		dst[i] = replacement
		i++
	}
}

func trimPartialUTF16(s []uint16, e Endianness) int {
	if n := len(s); n > 0 && isHighSurrogate(load16(s[n-1], e)) {
		return n - 1
	}
	return len(s)
}
