package rapidutf

// CheckBOM returns the encoding announced by a byte order mark at the start
// of b, or Unspecified when there is none.
func CheckBOM(b []byte) Encoding {
	switch {
	case len(b) >= 2 && b[0] == 0xff && b[1] == 0xfe:
		if len(b) >= 4 && b[2] == 0x00 && b[3] == 0x00 {
			return UTF32LE
		}
		return UTF16LE
	case len(b) >= 2 && b[0] == 0xfe && b[1] == 0xff:
		return UTF16BE
	case len(b) >= 4 && b[0] == 0x00 && b[1] == 0x00 && b[2] == 0xfe && b[3] == 0xff:
		return UTF32BE
	case len(b) >= 3 && b[0] == 0xef && b[1] == 0xbb && b[2] == 0xbf:
		return UTF8
	}
	return Unspecified
}

// BOMByteSize returns the length in bytes of the byte order mark of e.
func BOMByteSize(e Encoding) int {
	switch e {
	case UTF8:
		return 3
	case UTF16LE, UTF16BE:
		return 2
	case UTF32LE, UTF32BE:
		return 4
	}
	return 0
}
