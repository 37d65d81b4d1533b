package rapidutf

import "encoding/binary"

// detectEncodings returns the encoding named by a BOM if there is one.
// Otherwise it returns every encoding among UTF8, UTF16LE and UTF32LE the
// buffer is valid in.
func detectEncodings(b []byte) Encoding {
	if bom := CheckBOM(b); bom != Unspecified {
		return bom
	}
	var out Encoding
	if validateUTF8(b) {
		out |= UTF8
	}
	if len(b)%2 == 0 && validUTF16LEBytes(b) {
		out |= UTF16LE
	}
	if len(b)%4 == 0 && validUTF32LEBytes(b) {
		out |= UTF32LE
	}
	return out
}

func autodetectEncoding(b []byte) Encoding {
	if len(b) == 0 {
		return UTF8
	}
	found := detectEncodings(b)
	for _, e := range []Encoding{UTF8, UTF16LE, UTF32LE, UTF16BE, UTF32BE} {
		if found&e != 0 {
			return e
		}
	}
	return Unspecified
}

func validUTF16LEBytes(b []byte) bool {
	for i := 0; i+1 < len(b); {
		u := binary.LittleEndian.Uint16(b[i:])
		if !isSurrogate(u) {
			i += 2
			continue
		}
		if !isHighSurrogate(u) || i+3 >= len(b) || !isLowSurrogate(binary.LittleEndian.Uint16(b[i+2:])) {
			return false
		}
		i += 4
	}
	return true
}

func validUTF32LEBytes(b []byte) bool {
	for i := 0; i+3 < len(b); i += 4 {
		if checkUTF32(binary.LittleEndian.Uint32(b[i:])) != Success {
			return false
		}
	}
	return true
}
