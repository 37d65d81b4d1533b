package rapidutf

// scalarKernel implements every operation with the portable routines. The
// block kernels embed it and override the operations they accelerate.
type scalarKernel struct{}

// fallbackImplementation runs everywhere.
type fallbackImplementation struct {
	implementationInfo
	scalarKernel
}

func newFallbackImplementation() *fallbackImplementation {
	return &fallbackImplementation{
		implementationInfo: implementationInfo{
			name:        "fallback",
			description: "Generic fallback implementation",
			required:    ISADefault,
		},
	}
}

// checked turns the outcome of a range converter into the checked result.
func checked(q int, code ErrorCode) int {
	if code != Success {
		return 0
	}
	return q
}

// withErrors turns the outcome of a range converter into a Result.
func withErrors(p, q int, code ErrorCode) Result {
	if code != Success {
		return Result{code, p}
	}
	return Result{Success, q}
}

func (scalarKernel) DetectEncodings(b []byte) Encoding    { return detectEncodings(b) }
func (scalarKernel) AutodetectEncoding(b []byte) Encoding { return autodetectEncoding(b) }

func (scalarKernel) ValidateUTF8(b []byte) bool                 { return validateUTF8(b) }
func (scalarKernel) ValidateUTF8WithErrors(b []byte) Result     { return validateUTF8WithErrors(b) }
func (scalarKernel) ValidateASCII(b []byte) bool                { return validateASCII(b) }
func (scalarKernel) ValidateASCIIWithErrors(b []byte) Result    { return validateASCIIWithErrors(b) }
func (scalarKernel) ValidateUTF32(s []uint32) bool              { return validateUTF32(s) }
func (scalarKernel) ValidateUTF32WithErrors(s []uint32) Result  { return validateUTF32WithErrors(s) }
func (scalarKernel) ValidateUTF16(s []uint16, e Endianness) bool { return validateUTF16(s, e) }

func (scalarKernel) ValidateUTF16WithErrors(s []uint16, e Endianness) Result {
	return validateUTF16WithErrors(s, e)
}

func (scalarKernel) ToWellFormedUTF16(src, dst []uint16, e Endianness) {
	toWellFormedUTF16(src, dst, e)
}

func (scalarKernel) ConvertUTF8ToLatin1(src, dst []byte) int {
	_, q, code := utf8ToLatin1Range(src, 0, len(src), dst, 0)
	return checked(q, code)
}

func (scalarKernel) ConvertUTF8ToLatin1WithErrors(src, dst []byte) Result {
	return withErrors(utf8ToLatin1Range(src, 0, len(src), dst, 0))
}

func (scalarKernel) ConvertValidUTF8ToLatin1(src, dst []byte) int {
	_, q := validUTF8ToLatin1Range(src, 0, len(src), dst, 0)
	return q
}

func (scalarKernel) ConvertUTF8ToUTF16(src []byte, dst []uint16, e Endianness) int {
	_, q, code := utf8ToUTF16Range(src, 0, len(src), dst, 0, e)
	return checked(q, code)
}

func (scalarKernel) ConvertUTF8ToUTF16WithErrors(src []byte, dst []uint16, e Endianness) Result {
	return withErrors(utf8ToUTF16Range(src, 0, len(src), dst, 0, e))
}

func (scalarKernel) ConvertValidUTF8ToUTF16(src []byte, dst []uint16, e Endianness) int {
	_, q := validUTF8ToUTF16Range(src, 0, len(src), dst, 0, e)
	return q
}

func (scalarKernel) ConvertUTF8ToUTF32(src []byte, dst []uint32) int {
	_, q, code := utf8ToUTF32Range(src, 0, len(src), dst, 0)
	return checked(q, code)
}

func (scalarKernel) ConvertUTF8ToUTF32WithErrors(src []byte, dst []uint32) Result {
	return withErrors(utf8ToUTF32Range(src, 0, len(src), dst, 0))
}

func (scalarKernel) ConvertValidUTF8ToUTF32(src []byte, dst []uint32) int {
	_, q := validUTF8ToUTF32Range(src, 0, len(src), dst, 0)
	return q
}

func (scalarKernel) ConvertUTF16ToUTF8(src []uint16, dst []byte, e Endianness) int {
	_, q, code := utf16ToUTF8Range(src, 0, len(src), dst, 0, e, false)
	return checked(q, code)
}

func (scalarKernel) ConvertUTF16ToUTF8WithErrors(src []uint16, dst []byte, e Endianness) Result {
	return withErrors(utf16ToUTF8Range(src, 0, len(src), dst, 0, e, false))
}

func (scalarKernel) ConvertValidUTF16ToUTF8(src []uint16, dst []byte, e Endianness) int {
	_, q := validUTF16ToUTF8Range(src, 0, len(src), dst, 0, e)
	return q
}

func (scalarKernel) ConvertUTF16ToUTF8WithReplacement(src []uint16, dst []byte, e Endianness) int {
	_, q, _ := utf16ToUTF8Range(src, 0, len(src), dst, 0, e, true)
	return q
}

func (scalarKernel) ConvertUTF16ToLatin1(src []uint16, dst []byte, e Endianness) int {
	_, q, code := utf16ToLatin1Range(src, 0, len(src), dst, 0, e)
	return checked(q, code)
}

func (scalarKernel) ConvertUTF16ToLatin1WithErrors(src []uint16, dst []byte, e Endianness) Result {
	return withErrors(utf16ToLatin1Range(src, 0, len(src), dst, 0, e))
}

func (scalarKernel) ConvertValidUTF16ToLatin1(src []uint16, dst []byte, e Endianness) int {
	_, q := validUTF16ToLatin1Range(src, 0, len(src), dst, 0, e)
	return q
}

func (scalarKernel) ConvertUTF16ToUTF32(src []uint16, dst []uint32, e Endianness) int {
	_, q, code := utf16ToUTF32Range(src, 0, len(src), dst, 0, e)
	return checked(q, code)
}

func (scalarKernel) ConvertUTF16ToUTF32WithErrors(src []uint16, dst []uint32, e Endianness) Result {
	return withErrors(utf16ToUTF32Range(src, 0, len(src), dst, 0, e))
}

func (scalarKernel) ConvertValidUTF16ToUTF32(src []uint16, dst []uint32, e Endianness) int {
	_, q := validUTF16ToUTF32Range(src, 0, len(src), dst, 0, e)
	return q
}

func (scalarKernel) ConvertUTF32ToUTF8(src []uint32, dst []byte) int {
	_, q, code := utf32ToUTF8Range(src, 0, len(src), dst, 0)
	return checked(q, code)
}

func (scalarKernel) ConvertUTF32ToUTF8WithErrors(src []uint32, dst []byte) Result {
	return withErrors(utf32ToUTF8Range(src, 0, len(src), dst, 0))
}

func (scalarKernel) ConvertValidUTF32ToUTF8(src []uint32, dst []byte) int {
	_, q := validUTF32ToUTF8Range(src, 0, len(src), dst, 0)
	return q
}

func (scalarKernel) ConvertUTF32ToUTF16(src []uint32, dst []uint16, e Endianness) int {
	_, q, code := utf32ToUTF16Range(src, 0, len(src), dst, 0, e)
	return checked(q, code)
}

func (scalarKernel) ConvertUTF32ToUTF16WithErrors(src []uint32, dst []uint16, e Endianness) Result {
	return withErrors(utf32ToUTF16Range(src, 0, len(src), dst, 0, e))
}

func (scalarKernel) ConvertValidUTF32ToUTF16(src []uint32, dst []uint16, e Endianness) int {
	_, q := validUTF32ToUTF16Range(src, 0, len(src), dst, 0, e)
	return q
}

func (scalarKernel) ConvertUTF32ToLatin1(src []uint32, dst []byte) int {
	_, q, code := utf32ToLatin1Range(src, 0, len(src), dst, 0)
	return checked(q, code)
}

func (scalarKernel) ConvertUTF32ToLatin1WithErrors(src []uint32, dst []byte) Result {
	return withErrors(utf32ToLatin1Range(src, 0, len(src), dst, 0))
}

func (scalarKernel) ConvertValidUTF32ToLatin1(src []uint32, dst []byte) int {
	_, q := validUTF32ToLatin1Range(src, 0, len(src), dst, 0)
	return q
}

func (scalarKernel) ConvertLatin1ToUTF8(src, dst []byte) int {
	_, q := latin1ToUTF8Range(src, 0, len(src), dst, 0)
	return q
}

func (scalarKernel) ConvertLatin1ToUTF16(src []byte, dst []uint16, e Endianness) int {
	_, q := latin1ToUTF16Range(src, 0, len(src), dst, 0, e)
	return q
}

func (scalarKernel) ConvertLatin1ToUTF32(src []byte, dst []uint32) int {
	_, q := latin1ToUTF32Range(src, 0, len(src), dst, 0)
	return q
}

func (scalarKernel) ChangeEndiannessUTF16(src, dst []uint16) { changeEndiannessUTF16(src, dst) }

func (scalarKernel) CountUTF8(b []byte) int                           { return countUTF8(b) }
func (scalarKernel) CountUTF16(s []uint16, e Endianness) int          { return countUTF16(s, e) }
func (scalarKernel) UTF8LengthFromLatin1(b []byte) int                { return utf8LengthFromLatin1(b) }
func (scalarKernel) UTF8LengthFromUTF16(s []uint16, e Endianness) int { return utf8LengthFromUTF16(s, e) }
func (scalarKernel) UTF8LengthFromUTF32(s []uint32) int               { return utf8LengthFromUTF32(s) }
func (scalarKernel) UTF16LengthFromUTF8(b []byte) int                 { return utf16LengthFromUTF8(b) }
func (scalarKernel) UTF16LengthFromUTF32(s []uint32) int              { return utf16LengthFromUTF32(s) }
func (scalarKernel) UTF32LengthFromUTF8(b []byte) int                 { return countUTF8(b) }
func (scalarKernel) UTF32LengthFromUTF16(s []uint16, e Endianness) int {
	return countUTF16(s, e)
}
func (scalarKernel) Latin1LengthFromUTF8(b []byte) int { return countUTF8(b) }

func (scalarKernel) UTF8LengthFromUTF16WithReplacement(s []uint16, e Endianness) Result {
	return utf8LengthFromUTF16WithReplacement(s, e)
}

func (scalarKernel) MaximalBinaryLengthFromBase64(src []byte) int {
	return maximalBinaryLengthFromBase64(src)
}

func (scalarKernel) Base64ToBinary(src, dst []byte, o Base64Options, lc LastChunkHandling) FullResult {
	return base64ToBinary(src, dst, o, lc, false, 0)
}

func (scalarKernel) Base64LengthFromBinary(n int, o Base64Options) int {
	return base64LengthFromBinary(n, o)
}

func (scalarKernel) BinaryToBase64(src, dst []byte, o Base64Options) int {
	return binaryToBase64(src, dst, o)
}

func (scalarKernel) Find(b []byte, c byte) int          { return findByte(b, c) }
func (scalarKernel) FindUTF16(s []uint16, c uint16) int { return findUTF16(s, c) }
