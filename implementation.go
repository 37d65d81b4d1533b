package rapidutf

// Implementation is a kernel: one complete set of validation, conversion,
// counting and base64 routines tuned for a family of processors. All kernels
// return identical results for identical input.
//
// UTF-16 methods take the byte order in which the code units are stored.
// Destination slices must be large enough; use the matching length method to
// size them. Checked conversions return 0 on malformed input, the WithErrors
// variants return the error and its input position, and the Valid variants
// assume well formed input and produce unspecified output otherwise.
type Implementation interface {
	// Name is the short identifier accepted by LookupImplementation, e.g. "haswell".
	Name() string
	Description() string
	RequiredInstructionSets() InstructionSet
	// SupportedByRuntimeSystem reports whether the running processor has every
	// instruction set this kernel requires.
	SupportedByRuntimeSystem() bool

	DetectEncodings(b []byte) Encoding
	AutodetectEncoding(b []byte) Encoding

	ValidateUTF8(b []byte) bool
	ValidateUTF8WithErrors(b []byte) Result
	ValidateASCII(b []byte) bool
	ValidateASCIIWithErrors(b []byte) Result
	ValidateUTF16(s []uint16, e Endianness) bool
	ValidateUTF16WithErrors(s []uint16, e Endianness) Result
	ValidateUTF32(s []uint32) bool
	ValidateUTF32WithErrors(s []uint32) Result
	// ToWellFormedUTF16 copies src to dst replacing unpaired surrogates with
	// U+FFFD. dst must be at least as long as src and may alias it.
	ToWellFormedUTF16(src, dst []uint16, e Endianness)

	ConvertUTF8ToLatin1(src, dst []byte) int
	ConvertUTF8ToLatin1WithErrors(src, dst []byte) Result
	ConvertValidUTF8ToLatin1(src, dst []byte) int
	ConvertUTF8ToUTF16(src []byte, dst []uint16, e Endianness) int
	ConvertUTF8ToUTF16WithErrors(src []byte, dst []uint16, e Endianness) Result
	ConvertValidUTF8ToUTF16(src []byte, dst []uint16, e Endianness) int
	ConvertUTF8ToUTF32(src []byte, dst []uint32) int
	ConvertUTF8ToUTF32WithErrors(src []byte, dst []uint32) Result
	ConvertValidUTF8ToUTF32(src []byte, dst []uint32) int

	ConvertUTF16ToUTF8(src []uint16, dst []byte, e Endianness) int
	ConvertUTF16ToUTF8WithErrors(src []uint16, dst []byte, e Endianness) Result
	ConvertValidUTF16ToUTF8(src []uint16, dst []byte, e Endianness) int
	// ConvertUTF16ToUTF8WithReplacement writes U+FFFD for every unpaired
	// surrogate instead of failing.
	ConvertUTF16ToUTF8WithReplacement(src []uint16, dst []byte, e Endianness) int
	ConvertUTF16ToLatin1(src []uint16, dst []byte, e Endianness) int
	ConvertUTF16ToLatin1WithErrors(src []uint16, dst []byte, e Endianness) Result
	ConvertValidUTF16ToLatin1(src []uint16, dst []byte, e Endianness) int
	ConvertUTF16ToUTF32(src []uint16, dst []uint32, e Endianness) int
	ConvertUTF16ToUTF32WithErrors(src []uint16, dst []uint32, e Endianness) Result
	ConvertValidUTF16ToUTF32(src []uint16, dst []uint32, e Endianness) int

	ConvertUTF32ToUTF8(src []uint32, dst []byte) int
	ConvertUTF32ToUTF8WithErrors(src []uint32, dst []byte) Result
	ConvertValidUTF32ToUTF8(src []uint32, dst []byte) int
	ConvertUTF32ToUTF16(src []uint32, dst []uint16, e Endianness) int
	ConvertUTF32ToUTF16WithErrors(src []uint32, dst []uint16, e Endianness) Result
	ConvertValidUTF32ToUTF16(src []uint32, dst []uint16, e Endianness) int
	ConvertUTF32ToLatin1(src []uint32, dst []byte) int
	ConvertUTF32ToLatin1WithErrors(src []uint32, dst []byte) Result
	ConvertValidUTF32ToLatin1(src []uint32, dst []byte) int

	ConvertLatin1ToUTF8(src, dst []byte) int
	ConvertLatin1ToUTF16(src []byte, dst []uint16, e Endianness) int
	ConvertLatin1ToUTF32(src []byte, dst []uint32) int

	ChangeEndiannessUTF16(src, dst []uint16)

	CountUTF8(b []byte) int
	CountUTF16(s []uint16, e Endianness) int
	UTF8LengthFromLatin1(b []byte) int
	UTF8LengthFromUTF16(s []uint16, e Endianness) int
	UTF8LengthFromUTF16WithReplacement(s []uint16, e Endianness) Result
	UTF8LengthFromUTF32(s []uint32) int
	UTF16LengthFromUTF8(b []byte) int
	UTF16LengthFromUTF32(s []uint32) int
	UTF32LengthFromUTF8(b []byte) int
	UTF32LengthFromUTF16(s []uint16, e Endianness) int
	Latin1LengthFromUTF8(b []byte) int

	MaximalBinaryLengthFromBase64(src []byte) int
	// Base64ToBinary decodes src into dst, which must hold
	// MaximalBinaryLengthFromBase64(src) bytes.
	Base64ToBinary(src, dst []byte, o Base64Options, lc LastChunkHandling) FullResult
	Base64LengthFromBinary(n int, o Base64Options) int
	BinaryToBase64(src, dst []byte, o Base64Options) int

	// Find returns the index of the first c in b, or -1.
	Find(b []byte, c byte) int
	// FindUTF16 compares code units as stored, so c must be in the same byte
	// order as s.
	FindUTF16(s []uint16, c uint16) int
}

// implementationInfo carries the descriptor shared by every kernel.
type implementationInfo struct {
	name        string
	description string
	required    InstructionSet
}

func (i *implementationInfo) Name() string                            { return i.name }
func (i *implementationInfo) Description() string                     { return i.description }
func (i *implementationInfo) RequiredInstructionSets() InstructionSet { return i.required }

func (i *implementationInfo) SupportedByRuntimeSystem() bool {
	return DetectSupportedArchitectures().Contains(i.required)
}
