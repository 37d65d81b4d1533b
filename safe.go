package rapidutf

// The bounded conversions write as much of the output as fits in dst and stop
// before the first character that does not. Input that would land in dst is
// still checked, and any error there returns 0. Input past the point where
// dst filled up is not examined.

// ConvertUTF16LEToUTF8Safe converts src into a dst of any size and returns
// the bytes written.
func ConvertUTF16LEToUTF8Safe(src []uint16, dst []byte) int {
	return convertUTF16ToUTF8Safe(GetActiveImplementation(), src, dst, LittleEndian)
}

func ConvertUTF16BEToUTF8Safe(src []uint16, dst []byte) int {
	return convertUTF16ToUTF8Safe(GetActiveImplementation(), src, dst, BigEndian)
}

// ConvertLatin1ToUTF8Safe converts src into a dst of any size and returns the
// bytes written.
func ConvertLatin1ToUTF8Safe(src, dst []byte) int {
	return convertLatin1ToUTF8Safe(GetActiveImplementation(), src, dst)
}

func convertUTF16ToUTF8Safe(impl Implementation, src []uint16, dst []byte, e Endianness) int {
	p, q := 0, 0
	// a chunk whose worst case fits goes through the kernel whole
	for p < len(src) {
		n := min(len(src)-p, (len(dst)-q)/3)
		n = trimPartialUTF16(src[p:p+n], e)
		if n == 0 {
			break
		}
		w := impl.ConvertUTF16ToUTF8(src[p:p+n], dst[q:], e)
		if w == 0 {
			return 0
		}
		p += n
		q += w
	}
	var tmp [4]byte
	for p < len(src) {
		_, n := decodeUTF16(src, p, e)
		if n == 0 {
			return 0
		}
		w := impl.ConvertUTF16ToUTF8(src[p:p+n], tmp[:], e)
		if w == 0 {
			return 0
		}
		if q+w > len(dst) {
			break
		}
		q += copy(dst[q:], tmp[:w])
		p += n
	}
	return q
}

func convertLatin1ToUTF8Safe(impl Implementation, src, dst []byte) int {
	p, q := 0, 0
	for p < len(src) {
		n := min(len(src)-p, (len(dst)-q)/2)
		if n == 0 {
			break
		}
		w := impl.ConvertLatin1ToUTF8(src[p:p+n], dst[q:])
		if w == 0 {
			return 0
		}
		p += n
		q += w
	}
	var tmp [2]byte
	for ; p < len(src); p++ {
		w := impl.ConvertLatin1ToUTF8(src[p:p+1], tmp[:])
		if w == 0 {
			return 0
		}
		if q+w > len(dst) {
			break
		}
		q += copy(dst[q:], tmp[:w])
	}
	return q
}
