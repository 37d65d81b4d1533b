package rapidutf

import "strings"

// Encoding identifies a text encoding. Values are distinct bits so that
// [DetectEncodings] can report every encoding a buffer is valid in.
type Encoding int

const (
	Unspecified Encoding = 0
	UTF8        Encoding = 1  // BOM 0xef 0xbb 0xbf
	UTF16LE     Encoding = 2  // BOM 0xff 0xfe
	UTF16BE     Encoding = 4  // BOM 0xfe 0xff
	UTF32LE     Encoding = 8  // BOM 0xff 0xfe 0x00 0x00
	UTF32BE     Encoding = 16 // BOM 0x00 0x00 0xfe 0xff
	Latin1      Encoding = 32
)

var encodingNames = []struct {
	e    Encoding
	name string
}{
	{UTF8, "UTF8"},
	{UTF16LE, "UTF16 little-endian"},
	{UTF16BE, "UTF16 big-endian"},
	{UTF32LE, "UTF32 little-endian"},
	{UTF32BE, "UTF32 big-endian"},
	{Latin1, "Latin1"},
}

// String returns the name of a single encoding, or the names of every
// encoding in the set joined by ", ".
func (e Encoding) String() string {
	if e == Unspecified {
		return "unknown"
	}
	var names []string
	for _, n := range encodingNames {
		if e&n.e != 0 {
			names = append(names, n.name)
		}
	}
	if len(names) == 0 {
		return "unknown"
	}
	return strings.Join(names, ", ")
}

// Has reports whether every encoding in o is also in e.
func (e Encoding) Has(o Encoding) bool {
	return o != Unspecified && e&o == o
}

// Endianness is the byte order of UTF-16 code units in memory.
type Endianness int

const (
	LittleEndian Endianness = 0
	BigEndian    Endianness = 1
)

func (e Endianness) String() string {
	if e == BigEndian {
		return "big-endian"
	}
	return "little-endian"
}

// ErrorCode classifies why an input was rejected. The set is closed.
type ErrorCode int

const (
	Success ErrorCode = iota
	// HeaderBits is any byte that cannot start a UTF-8 character (0xf8-0xff).
	HeaderBits
	// TooShort is a leading byte that is not followed by enough continuation bytes.
	TooShort
	// TooLong is a continuation byte that does not follow a leading byte.
	TooLong
	// Overlong is a sequence encoding a code point that fits in fewer bytes.
	Overlong
	// TooLarge is a code point above 0x10ffff, or above 0xff when the target is Latin-1.
	TooLarge
	// Surrogate is an encoded surrogate (UTF-8, UTF-32) or an unpaired surrogate (UTF-16).
	Surrogate
	// InvalidBase64Character is a character outside the alphabet, or misplaced padding.
	InvalidBase64Character
	// Base64InputRemainder is a final chunk holding a single base64 character.
	Base64InputRemainder
	// Base64ExtraBits is a final chunk whose unused low bits are not zero (strict mode).
	Base64ExtraBits
	// OutputBufferTooSmall is returned by the bounded base64 decoder.
	OutputBufferTooSmall
	Other
)

var errorCodeNames = [...]string{
	Success:                "SUCCESS",
	HeaderBits:             "HEADER_BITS",
	TooShort:               "TOO_SHORT",
	TooLong:                "TOO_LONG",
	Overlong:               "OVERLONG",
	TooLarge:               "TOO_LARGE",
	Surrogate:              "SURROGATE",
	InvalidBase64Character: "INVALID_BASE64_CHARACTER",
	Base64InputRemainder:   "BASE64_INPUT_REMAINDER",
	Base64ExtraBits:        "BASE64_EXTRA_BITS",
	OutputBufferTooSmall:   "OUTPUT_BUFFER_TOO_SMALL",
	Other:                  "OTHER",
}

func (c ErrorCode) String() string {
	if c < 0 || int(c) >= len(errorCodeNames) {
		return "OTHER"
	}
	return errorCodeNames[c]
}

// Result is returned by the validating and error-reporting conversion functions.
//
// When Error is Success, Count is the number of code units validated or written
// (documented per function). Otherwise Count is the index of the first code unit
// of the offending sequence in the input.
type Result struct {
	Error ErrorCode
	Count int
}

// OK reports whether the operation succeeded.
func (r Result) OK() bool {
	return r.Error == Success
}

// Err returns nil on success and an *Error locating the failure otherwise.
func (r Result) Err() error {
	if r.Error == Success {
		return nil
	}
	return &Error{Code: r.Error, Offset: r.Count}
}

// FullResult is a Result that also reports how much output was produced. It is
// returned by the base64 decoders, whose input may contain ignorable white space.
type FullResult struct {
	Error       ErrorCode
	InputCount  int
	OutputCount int
}

// OK reports whether the operation succeeded.
func (r FullResult) OK() bool {
	return r.Error == Success
}

// Err returns nil on success and an *Error locating the failure otherwise.
func (r FullResult) Err() error {
	if r.Error == Success {
		return nil
	}
	return &Error{Code: r.Error, Offset: r.InputCount}
}

// Result drops the output count. On success Count is the number of bytes
// written, on failure the input position.
func (r FullResult) Result() Result {
	if r.Error == Success {
		return Result{Success, r.OutputCount}
	}
	return Result{r.Error, r.InputCount}
}
