package rapidutf

// unsupportedImplementation is selected when RAPIDUTF_FORCE_IMPLEMENTATION
// names a kernel that is not compiled in or that the processor cannot run.
// Validators fail and converters return 0, so the misconfiguration is visible
// instead of silently falling back.
type unsupportedImplementation struct {
	implementationInfo
}

var unsupportedSingleton = &unsupportedImplementation{
	implementationInfo: implementationInfo{
		name:        "unsupported",
		description: "Unsupported CPU (no detected SIMD instructions)",
	},
}

var unsupportedResult = Result{Other, 0}

func (*unsupportedImplementation) SupportedByRuntimeSystem() bool { return false }

func (*unsupportedImplementation) DetectEncodings([]byte) Encoding    { return Unspecified }
func (*unsupportedImplementation) AutodetectEncoding([]byte) Encoding { return Unspecified }

func (*unsupportedImplementation) ValidateUTF8([]byte) bool                      { return false }
func (*unsupportedImplementation) ValidateUTF8WithErrors([]byte) Result          { return unsupportedResult }
func (*unsupportedImplementation) ValidateASCII([]byte) bool                     { return false }
func (*unsupportedImplementation) ValidateASCIIWithErrors([]byte) Result         { return unsupportedResult }
func (*unsupportedImplementation) ValidateUTF16([]uint16, Endianness) bool       { return false }
func (*unsupportedImplementation) ValidateUTF16WithErrors([]uint16, Endianness) Result {
	return unsupportedResult
}
func (*unsupportedImplementation) ValidateUTF32([]uint32) bool             { return false }
func (*unsupportedImplementation) ValidateUTF32WithErrors([]uint32) Result { return unsupportedResult }
func (*unsupportedImplementation) ToWellFormedUTF16(_, _ []uint16, _ Endianness) {}

func (*unsupportedImplementation) ConvertUTF8ToLatin1(_, _ []byte) int                { return 0 }
func (*unsupportedImplementation) ConvertUTF8ToLatin1WithErrors(_, _ []byte) Result   { return unsupportedResult }
func (*unsupportedImplementation) ConvertValidUTF8ToLatin1(_, _ []byte) int           { return 0 }
func (*unsupportedImplementation) ConvertUTF8ToUTF16([]byte, []uint16, Endianness) int { return 0 }
func (*unsupportedImplementation) ConvertUTF8ToUTF16WithErrors([]byte, []uint16, Endianness) Result {
	return unsupportedResult
}
func (*unsupportedImplementation) ConvertValidUTF8ToUTF16([]byte, []uint16, Endianness) int { return 0 }
func (*unsupportedImplementation) ConvertUTF8ToUTF32([]byte, []uint32) int                  { return 0 }
func (*unsupportedImplementation) ConvertUTF8ToUTF32WithErrors([]byte, []uint32) Result {
	return unsupportedResult
}
func (*unsupportedImplementation) ConvertValidUTF8ToUTF32([]byte, []uint32) int { return 0 }

func (*unsupportedImplementation) ConvertUTF16ToUTF8([]uint16, []byte, Endianness) int { return 0 }
func (*unsupportedImplementation) ConvertUTF16ToUTF8WithErrors([]uint16, []byte, Endianness) Result {
	return unsupportedResult
}
func (*unsupportedImplementation) ConvertValidUTF16ToUTF8([]uint16, []byte, Endianness) int { return 0 }
func (*unsupportedImplementation) ConvertUTF16ToUTF8WithReplacement([]uint16, []byte, Endianness) int {
	return 0
}
func (*unsupportedImplementation) ConvertUTF16ToLatin1([]uint16, []byte, Endianness) int { return 0 }
func (*unsupportedImplementation) ConvertUTF16ToLatin1WithErrors([]uint16, []byte, Endianness) Result {
	return unsupportedResult
}
func (*unsupportedImplementation) ConvertValidUTF16ToLatin1([]uint16, []byte, Endianness) int { return 0 }
func (*unsupportedImplementation) ConvertUTF16ToUTF32([]uint16, []uint32, Endianness) int    { return 0 }
func (*unsupportedImplementation) ConvertUTF16ToUTF32WithErrors([]uint16, []uint32, Endianness) Result {
	return unsupportedResult
}
func (*unsupportedImplementation) ConvertValidUTF16ToUTF32([]uint16, []uint32, Endianness) int {
	return 0
}

func (*unsupportedImplementation) ConvertUTF32ToUTF8([]uint32, []byte) int { return 0 }
func (*unsupportedImplementation) ConvertUTF32ToUTF8WithErrors([]uint32, []byte) Result {
	return unsupportedResult
}
func (*unsupportedImplementation) ConvertValidUTF32ToUTF8([]uint32, []byte) int             { return 0 }
func (*unsupportedImplementation) ConvertUTF32ToUTF16([]uint32, []uint16, Endianness) int { return 0 }
func (*unsupportedImplementation) ConvertUTF32ToUTF16WithErrors([]uint32, []uint16, Endianness) Result {
	return unsupportedResult
}
func (*unsupportedImplementation) ConvertValidUTF32ToUTF16([]uint32, []uint16, Endianness) int {
	return 0
}
func (*unsupportedImplementation) ConvertUTF32ToLatin1([]uint32, []byte) int { return 0 }
func (*unsupportedImplementation) ConvertUTF32ToLatin1WithErrors([]uint32, []byte) Result {
	return unsupportedResult
}
func (*unsupportedImplementation) ConvertValidUTF32ToLatin1([]uint32, []byte) int { return 0 }

func (*unsupportedImplementation) ConvertLatin1ToUTF8(_, _ []byte) int                   { return 0 }
func (*unsupportedImplementation) ConvertLatin1ToUTF16([]byte, []uint16, Endianness) int { return 0 }
func (*unsupportedImplementation) ConvertLatin1ToUTF32([]byte, []uint32) int             { return 0 }

func (*unsupportedImplementation) ChangeEndiannessUTF16(_, _ []uint16) {}

func (*unsupportedImplementation) CountUTF8([]byte) int                          { return 0 }
func (*unsupportedImplementation) CountUTF16([]uint16, Endianness) int           { return 0 }
func (*unsupportedImplementation) UTF8LengthFromLatin1([]byte) int               { return 0 }
func (*unsupportedImplementation) UTF8LengthFromUTF16([]uint16, Endianness) int  { return 0 }
func (*unsupportedImplementation) UTF8LengthFromUTF32([]uint32) int              { return 0 }
func (*unsupportedImplementation) UTF16LengthFromUTF8([]byte) int                { return 0 }
func (*unsupportedImplementation) UTF16LengthFromUTF32([]uint32) int             { return 0 }
func (*unsupportedImplementation) UTF32LengthFromUTF8([]byte) int                { return 0 }
func (*unsupportedImplementation) UTF32LengthFromUTF16([]uint16, Endianness) int { return 0 }
func (*unsupportedImplementation) Latin1LengthFromUTF8([]byte) int               { return 0 }
func (*unsupportedImplementation) UTF8LengthFromUTF16WithReplacement([]uint16, Endianness) Result {
	return unsupportedResult
}

func (*unsupportedImplementation) MaximalBinaryLengthFromBase64([]byte) int { return 0 }
func (*unsupportedImplementation) Base64ToBinary(_, _ []byte, _ Base64Options, _ LastChunkHandling) FullResult {
	return FullResult{Error: Other}
}
func (*unsupportedImplementation) Base64LengthFromBinary(int, Base64Options) int { return 0 }
func (*unsupportedImplementation) BinaryToBase64(_, _ []byte, _ Base64Options) int { return 0 }

func (*unsupportedImplementation) Find([]byte, byte) int          { return -1 }
func (*unsupportedImplementation) FindUTF16([]uint16, uint16) int { return -1 }
