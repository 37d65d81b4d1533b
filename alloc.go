package rapidutf

// Allocating helpers. Each sizes the destination with the matching length
// function, converts with error reporting, and returns the converted slice or
// an *Error locating the first malformed input.

func sizeCheck[T any](dst []T, r Result) ([]T, error) {
	if err := r.Err(); err != nil {
		return nil, err
	}
	if r.Count > len(dst) {
		return nil, ErrOutputTooSmall
	}
	return dst[:r.Count], nil
}

// UTF8ToUTF16LE converts src to a new UTF-16LE slice.
func UTF8ToUTF16LE(src []byte) ([]uint16, error) {
	return utf8ToUTF16(src, LittleEndian)
}

// UTF8ToUTF16BE converts src to a new UTF-16BE slice.
func UTF8ToUTF16BE(src []byte) ([]uint16, error) {
	return utf8ToUTF16(src, BigEndian)
}

func utf8ToUTF16(src []byte, e Endianness) ([]uint16, error) {
	impl := GetActiveImplementation()
	if r := impl.ValidateUTF8WithErrors(src); !r.OK() {
		return nil, r.Err()
	}
	dst := make([]uint16, impl.UTF16LengthFromUTF8(src))
	return sizeCheck(dst, impl.ConvertUTF8ToUTF16WithErrors(src, dst, e))
}

// UTF16LEToUTF8 converts UTF-16LE src to a new UTF-8 slice.
func UTF16LEToUTF8(src []uint16) ([]byte, error) {
	return utf16ToUTF8(src, LittleEndian)
}

// UTF16BEToUTF8 converts UTF-16BE src to a new UTF-8 slice.
func UTF16BEToUTF8(src []uint16) ([]byte, error) {
	return utf16ToUTF8(src, BigEndian)
}

func utf16ToUTF8(src []uint16, e Endianness) ([]byte, error) {
	impl := GetActiveImplementation()
	dst := make([]byte, impl.UTF8LengthFromUTF16(src, e))
	return sizeCheck(dst, impl.ConvertUTF16ToUTF8WithErrors(src, dst, e))
}

// UTF8ToUTF32 converts src to a new UTF-32 slice.
func UTF8ToUTF32(src []byte) ([]uint32, error) {
	impl := GetActiveImplementation()
	if r := impl.ValidateUTF8WithErrors(src); !r.OK() {
		return nil, r.Err()
	}
	dst := make([]uint32, impl.UTF32LengthFromUTF8(src))
	return sizeCheck(dst, impl.ConvertUTF8ToUTF32WithErrors(src, dst))
}

// UTF32ToUTF8 converts src to a new UTF-8 slice.
func UTF32ToUTF8(src []uint32) ([]byte, error) {
	impl := GetActiveImplementation()
	if r := impl.ValidateUTF32WithErrors(src); !r.OK() {
		return nil, r.Err()
	}
	dst := make([]byte, impl.UTF8LengthFromUTF32(src))
	return sizeCheck(dst, impl.ConvertUTF32ToUTF8WithErrors(src, dst))
}

// UTF8ToLatin1 converts src to a new Latin-1 slice. Characters above U+00FF
// are reported as TooLarge.
func UTF8ToLatin1(src []byte) ([]byte, error) {
	impl := GetActiveImplementation()
	if r := impl.ValidateUTF8WithErrors(src); !r.OK() {
		return nil, r.Err()
	}
	dst := make([]byte, impl.Latin1LengthFromUTF8(src))
	return sizeCheck(dst, impl.ConvertUTF8ToLatin1WithErrors(src, dst))
}

// Latin1ToUTF8 converts src to a new UTF-8 slice.
func Latin1ToUTF8(src []byte) []byte {
	impl := GetActiveImplementation()
	dst := make([]byte, impl.UTF8LengthFromLatin1(src))
	return dst[:impl.ConvertLatin1ToUTF8(src, dst)]
}
