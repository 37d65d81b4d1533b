// Package rapidutf validates and transcodes Unicode text between UTF-8,
// UTF-16 (little and big endian), UTF-32 and Latin-1, and encodes and decodes
// base64.
//
// Every package-level function forwards to the active [Implementation],
// chosen once per process from the processor's capabilities (see
// [GetActiveImplementation]). Destination buffers are supplied by the caller
// and must be sized with the matching length function:
//
//	n := rapidutf.UTF16LengthFromUTF8(src)
//	dst := make([]uint16, n)
//	written := rapidutf.ConvertUTF8ToUTF16LE(src, dst)
//
// UTF-16 input and output is a []uint16 holding code units as they are laid
// out in memory in the named byte order. UTF-32 is a []uint32 in native order.
package rapidutf

// ValidateUTF8 reports whether b is well-formed UTF-8.
func ValidateUTF8(b []byte) bool { return GetActiveImplementation().ValidateUTF8(b) }

// ValidateUTF8WithErrors returns Count = len(b) on success, otherwise the
// error and the offset of the leading byte of the offending sequence.
func ValidateUTF8WithErrors(b []byte) Result {
	return GetActiveImplementation().ValidateUTF8WithErrors(b)
}

// ValidateASCII reports whether every byte of b is below 0x80.
func ValidateASCII(b []byte) bool { return GetActiveImplementation().ValidateASCII(b) }

// ValidateASCIIWithErrors reports the first byte above 0x7f as TooLarge.
func ValidateASCIIWithErrors(b []byte) Result {
	return GetActiveImplementation().ValidateASCIIWithErrors(b)
}

func ValidateUTF16LE(s []uint16) bool { return GetActiveImplementation().ValidateUTF16(s, LittleEndian) }
func ValidateUTF16BE(s []uint16) bool { return GetActiveImplementation().ValidateUTF16(s, BigEndian) }

// ValidateUTF16LEWithErrors reports the offset of the first unpaired
// surrogate as Surrogate.
func ValidateUTF16LEWithErrors(s []uint16) Result {
	return GetActiveImplementation().ValidateUTF16WithErrors(s, LittleEndian)
}

func ValidateUTF16BEWithErrors(s []uint16) Result {
	return GetActiveImplementation().ValidateUTF16WithErrors(s, BigEndian)
}

// ValidateUTF32 reports whether every value is a Unicode scalar value.
func ValidateUTF32(s []uint32) bool { return GetActiveImplementation().ValidateUTF32(s) }

func ValidateUTF32WithErrors(s []uint32) Result {
	return GetActiveImplementation().ValidateUTF32WithErrors(s)
}

// ToWellFormedUTF16LE copies src to dst replacing every unpaired surrogate
// with U+FFFD. src and dst may be the same slice.
func ToWellFormedUTF16LE(src, dst []uint16) {
	GetActiveImplementation().ToWellFormedUTF16(src, dst, LittleEndian)
}

func ToWellFormedUTF16BE(src, dst []uint16) {
	GetActiveImplementation().ToWellFormedUTF16(src, dst, BigEndian)
}

// DetectEncodings returns the encoding named by a byte order mark, or else
// the set of UTF8, UTF16LE and UTF32LE that b is valid in.
func DetectEncodings(b []byte) Encoding { return GetActiveImplementation().DetectEncodings(b) }

// AutodetectEncoding returns the most likely single encoding of b, preferring
// UTF8, then UTF16LE, then UTF32LE. An empty buffer is UTF8.
func AutodetectEncoding(b []byte) Encoding { return GetActiveImplementation().AutodetectEncoding(b) }

// ConvertUTF8ToLatin1 returns the bytes written, or 0 if src is not valid
// UTF-8 or holds a character above U+00FF.
func ConvertUTF8ToLatin1(src, dst []byte) int {
	return GetActiveImplementation().ConvertUTF8ToLatin1(src, dst)
}

func ConvertUTF8ToLatin1WithErrors(src, dst []byte) Result {
	return GetActiveImplementation().ConvertUTF8ToLatin1WithErrors(src, dst)
}

func ConvertValidUTF8ToLatin1(src, dst []byte) int {
	return GetActiveImplementation().ConvertValidUTF8ToLatin1(src, dst)
}

// ConvertUTF8ToUTF16LE returns the code units written, or 0 on invalid input.
func ConvertUTF8ToUTF16LE(src []byte, dst []uint16) int {
	return GetActiveImplementation().ConvertUTF8ToUTF16(src, dst, LittleEndian)
}

func ConvertUTF8ToUTF16BE(src []byte, dst []uint16) int {
	return GetActiveImplementation().ConvertUTF8ToUTF16(src, dst, BigEndian)
}

func ConvertUTF8ToUTF16LEWithErrors(src []byte, dst []uint16) Result {
	return GetActiveImplementation().ConvertUTF8ToUTF16WithErrors(src, dst, LittleEndian)
}

func ConvertUTF8ToUTF16BEWithErrors(src []byte, dst []uint16) Result {
	return GetActiveImplementation().ConvertUTF8ToUTF16WithErrors(src, dst, BigEndian)
}

func ConvertValidUTF8ToUTF16LE(src []byte, dst []uint16) int {
	return GetActiveImplementation().ConvertValidUTF8ToUTF16(src, dst, LittleEndian)
}

func ConvertValidUTF8ToUTF16BE(src []byte, dst []uint16) int {
	return GetActiveImplementation().ConvertValidUTF8ToUTF16(src, dst, BigEndian)
}

func ConvertUTF8ToUTF32(src []byte, dst []uint32) int {
	return GetActiveImplementation().ConvertUTF8ToUTF32(src, dst)
}

func ConvertUTF8ToUTF32WithErrors(src []byte, dst []uint32) Result {
	return GetActiveImplementation().ConvertUTF8ToUTF32WithErrors(src, dst)
}

func ConvertValidUTF8ToUTF32(src []byte, dst []uint32) int {
	return GetActiveImplementation().ConvertValidUTF8ToUTF32(src, dst)
}

// ConvertUTF16LEToUTF8 returns the bytes written, or 0 if src holds an
// unpaired surrogate.
func ConvertUTF16LEToUTF8(src []uint16, dst []byte) int {
	return GetActiveImplementation().ConvertUTF16ToUTF8(src, dst, LittleEndian)
}

func ConvertUTF16BEToUTF8(src []uint16, dst []byte) int {
	return GetActiveImplementation().ConvertUTF16ToUTF8(src, dst, BigEndian)
}

func ConvertUTF16LEToUTF8WithErrors(src []uint16, dst []byte) Result {
	return GetActiveImplementation().ConvertUTF16ToUTF8WithErrors(src, dst, LittleEndian)
}

func ConvertUTF16BEToUTF8WithErrors(src []uint16, dst []byte) Result {
	return GetActiveImplementation().ConvertUTF16ToUTF8WithErrors(src, dst, BigEndian)
}

func ConvertValidUTF16LEToUTF8(src []uint16, dst []byte) int {
	return GetActiveImplementation().ConvertValidUTF16ToUTF8(src, dst, LittleEndian)
}

func ConvertValidUTF16BEToUTF8(src []uint16, dst []byte) int {
	return GetActiveImplementation().ConvertValidUTF16ToUTF8(src, dst, BigEndian)
}

// ConvertUTF16LEToUTF8WithReplacement never fails: unpaired surrogates become
// U+FFFD. Size dst with UTF8LengthFromUTF16LEWithReplacement.
func ConvertUTF16LEToUTF8WithReplacement(src []uint16, dst []byte) int {
	return GetActiveImplementation().ConvertUTF16ToUTF8WithReplacement(src, dst, LittleEndian)
}

func ConvertUTF16BEToUTF8WithReplacement(src []uint16, dst []byte) int {
	return GetActiveImplementation().ConvertUTF16ToUTF8WithReplacement(src, dst, BigEndian)
}

func ConvertUTF16LEToLatin1(src []uint16, dst []byte) int {
	return GetActiveImplementation().ConvertUTF16ToLatin1(src, dst, LittleEndian)
}

func ConvertUTF16BEToLatin1(src []uint16, dst []byte) int {
	return GetActiveImplementation().ConvertUTF16ToLatin1(src, dst, BigEndian)
}

func ConvertUTF16LEToLatin1WithErrors(src []uint16, dst []byte) Result {
	return GetActiveImplementation().ConvertUTF16ToLatin1WithErrors(src, dst, LittleEndian)
}

func ConvertUTF16BEToLatin1WithErrors(src []uint16, dst []byte) Result {
	return GetActiveImplementation().ConvertUTF16ToLatin1WithErrors(src, dst, BigEndian)
}

func ConvertValidUTF16LEToLatin1(src []uint16, dst []byte) int {
	return GetActiveImplementation().ConvertValidUTF16ToLatin1(src, dst, LittleEndian)
}

func ConvertValidUTF16BEToLatin1(src []uint16, dst []byte) int {
	return GetActiveImplementation().ConvertValidUTF16ToLatin1(src, dst, BigEndian)
}

func ConvertUTF16LEToUTF32(src []uint16, dst []uint32) int {
	return GetActiveImplementation().ConvertUTF16ToUTF32(src, dst, LittleEndian)
}

func ConvertUTF16BEToUTF32(src []uint16, dst []uint32) int {
	return GetActiveImplementation().ConvertUTF16ToUTF32(src, dst, BigEndian)
}

func ConvertUTF16LEToUTF32WithErrors(src []uint16, dst []uint32) Result {
	return GetActiveImplementation().ConvertUTF16ToUTF32WithErrors(src, dst, LittleEndian)
}

func ConvertUTF16BEToUTF32WithErrors(src []uint16, dst []uint32) Result {
	return GetActiveImplementation().ConvertUTF16ToUTF32WithErrors(src, dst, BigEndian)
}

func ConvertValidUTF16LEToUTF32(src []uint16, dst []uint32) int {
	return GetActiveImplementation().ConvertValidUTF16ToUTF32(src, dst, LittleEndian)
}

func ConvertValidUTF16BEToUTF32(src []uint16, dst []uint32) int {
	return GetActiveImplementation().ConvertValidUTF16ToUTF32(src, dst, BigEndian)
}

// ConvertUTF32ToUTF8 returns the bytes written, or 0 if src holds a
// surrogate or a value above 0x10ffff.
func ConvertUTF32ToUTF8(src []uint32, dst []byte) int {
	return GetActiveImplementation().ConvertUTF32ToUTF8(src, dst)
}

func ConvertUTF32ToUTF8WithErrors(src []uint32, dst []byte) Result {
	return GetActiveImplementation().ConvertUTF32ToUTF8WithErrors(src, dst)
}

func ConvertValidUTF32ToUTF8(src []uint32, dst []byte) int {
	return GetActiveImplementation().ConvertValidUTF32ToUTF8(src, dst)
}

func ConvertUTF32ToUTF16LE(src []uint32, dst []uint16) int {
	return GetActiveImplementation().ConvertUTF32ToUTF16(src, dst, LittleEndian)
}

func ConvertUTF32ToUTF16BE(src []uint32, dst []uint16) int {
	return GetActiveImplementation().ConvertUTF32ToUTF16(src, dst, BigEndian)
}

func ConvertUTF32ToUTF16LEWithErrors(src []uint32, dst []uint16) Result {
	return GetActiveImplementation().ConvertUTF32ToUTF16WithErrors(src, dst, LittleEndian)
}

func ConvertUTF32ToUTF16BEWithErrors(src []uint32, dst []uint16) Result {
	return GetActiveImplementation().ConvertUTF32ToUTF16WithErrors(src, dst, BigEndian)
}

func ConvertValidUTF32ToUTF16LE(src []uint32, dst []uint16) int {
	return GetActiveImplementation().ConvertValidUTF32ToUTF16(src, dst, LittleEndian)
}

func ConvertValidUTF32ToUTF16BE(src []uint32, dst []uint16) int {
	return GetActiveImplementation().ConvertValidUTF32ToUTF16(src, dst, BigEndian)
}

func ConvertUTF32ToLatin1(src []uint32, dst []byte) int {
	return GetActiveImplementation().ConvertUTF32ToLatin1(src, dst)
}

func ConvertUTF32ToLatin1WithErrors(src []uint32, dst []byte) Result {
	return GetActiveImplementation().ConvertUTF32ToLatin1WithErrors(src, dst)
}

func ConvertValidUTF32ToLatin1(src []uint32, dst []byte) int {
	return GetActiveImplementation().ConvertValidUTF32ToLatin1(src, dst)
}

// ConvertLatin1ToUTF8 cannot fail; size dst with UTF8LengthFromLatin1.
func ConvertLatin1ToUTF8(src, dst []byte) int {
	return GetActiveImplementation().ConvertLatin1ToUTF8(src, dst)
}

func ConvertLatin1ToUTF16LE(src []byte, dst []uint16) int {
	return GetActiveImplementation().ConvertLatin1ToUTF16(src, dst, LittleEndian)
}

func ConvertLatin1ToUTF16BE(src []byte, dst []uint16) int {
	return GetActiveImplementation().ConvertLatin1ToUTF16(src, dst, BigEndian)
}

func ConvertLatin1ToUTF32(src []byte, dst []uint32) int {
	return GetActiveImplementation().ConvertLatin1ToUTF32(src, dst)
}

// ChangeEndiannessUTF16 byte-swaps every code unit of src into dst.
func ChangeEndiannessUTF16(src, dst []uint16) {
	GetActiveImplementation().ChangeEndiannessUTF16(src, dst)
}

// CountUTF8 returns the number of code points in b, which must be valid.
func CountUTF8(b []byte) int { return GetActiveImplementation().CountUTF8(b) }

func CountUTF16LE(s []uint16) int { return GetActiveImplementation().CountUTF16(s, LittleEndian) }
func CountUTF16BE(s []uint16) int { return GetActiveImplementation().CountUTF16(s, BigEndian) }

// UTF16LengthFromUTF8 returns the UTF-16 code units needed for valid b.
func UTF16LengthFromUTF8(b []byte) int { return GetActiveImplementation().UTF16LengthFromUTF8(b) }

func UTF32LengthFromUTF8(b []byte) int  { return GetActiveImplementation().UTF32LengthFromUTF8(b) }
func Latin1LengthFromUTF8(b []byte) int { return GetActiveImplementation().Latin1LengthFromUTF8(b) }

// UTF8LengthFromUTF16LE returns the bytes needed to hold s as UTF-8.
func UTF8LengthFromUTF16LE(s []uint16) int {
	return GetActiveImplementation().UTF8LengthFromUTF16(s, LittleEndian)
}

func UTF8LengthFromUTF16BE(s []uint16) int {
	return GetActiveImplementation().UTF8LengthFromUTF16(s, BigEndian)
}

// UTF8LengthFromUTF16LEWithReplacement sizes the output of
// ConvertUTF16LEToUTF8WithReplacement. Error is Surrogate when at least one
// surrogate was unpaired; Count is valid either way.
func UTF8LengthFromUTF16LEWithReplacement(s []uint16) Result {
	return GetActiveImplementation().UTF8LengthFromUTF16WithReplacement(s, LittleEndian)
}

func UTF8LengthFromUTF16BEWithReplacement(s []uint16) Result {
	return GetActiveImplementation().UTF8LengthFromUTF16WithReplacement(s, BigEndian)
}

func UTF32LengthFromUTF16LE(s []uint16) int {
	return GetActiveImplementation().UTF32LengthFromUTF16(s, LittleEndian)
}

func UTF32LengthFromUTF16BE(s []uint16) int {
	return GetActiveImplementation().UTF32LengthFromUTF16(s, BigEndian)
}

func UTF8LengthFromUTF32(s []uint32) int  { return GetActiveImplementation().UTF8LengthFromUTF32(s) }
func UTF16LengthFromUTF32(s []uint32) int { return GetActiveImplementation().UTF16LengthFromUTF32(s) }
func UTF8LengthFromLatin1(b []byte) int   { return GetActiveImplementation().UTF8LengthFromLatin1(b) }

// The remaining sizes are one unit per character.

func Latin1LengthFromUTF16(n int) int { return n }
func Latin1LengthFromUTF32(n int) int { return n }
func UTF16LengthFromLatin1(n int) int { return n }
func UTF32LengthFromLatin1(n int) int { return n }

// Find returns the index of the first c in b, or -1 if there is none.
func Find(b []byte, c byte) int { return GetActiveImplementation().Find(b, c) }

// FindUTF16 returns the index of the first unit of s equal to c, or -1. Units
// are compared as stored, so c must be in the byte order of s.
func FindUTF16(s []uint16, c uint16) int { return GetActiveImplementation().FindUTF16(s, c) }

// TrimPartialUTF8 returns the length of the longest prefix of b that does not
// end inside a multi-byte character. Only the last three bytes are examined.
func TrimPartialUTF8(b []byte) int { return trimPartialUTF8(b) }

// TrimPartialUTF16LE returns len(s), or len(s)-1 when s ends with a high
// surrogate.
func TrimPartialUTF16LE(s []uint16) int { return trimPartialUTF16(s, LittleEndian) }
func TrimPartialUTF16BE(s []uint16) int { return trimPartialUTF16(s, BigEndian) }
