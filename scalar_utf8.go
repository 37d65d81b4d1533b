package rapidutf

import "encoding/binary"

// The UTF-8 validator is a DFA over byte classes. utf8Class maps every byte to
// one of utf8Classes classes and utf8Transition[state*utf8Classes+class] gives
// the next state. A buffer is valid iff the walk ends in stateAccept.
const (
	stateAccept = iota
	stateReject
	stateCont1 // one continuation byte left
	stateCont2 // two continuation bytes left
	stateCont3 // three continuation bytes left
	stateE0    // after 0xe0, next must be 0xa0-0xbf (no overlong)
	stateED    // after 0xed, next must be 0x80-0x9f (no surrogate)
	stateF0    // after 0xf0, next must be 0x90-0xbf (no overlong)
	stateF4    // after 0xf4, next must be 0x80-0x8f (<= 0x10ffff)
	utf8States
)

const (
	classASCII  = iota // 0x00-0x7f
	classCont80        // 0x80-0x8f
	classCont90        // 0x90-0x9f
	classContA0        // 0xa0-0xbf
	classC0            // 0xc0-0xc1
	classLead2         // 0xc2-0xdf
	classE0            // 0xe0
	classLead3         // 0xe1-0xec, 0xee-0xef
	classED            // 0xed
	classF0            // 0xf0
	classLead4         // 0xf1-0xf3
	classF4            // 0xf4
	classInvalid       // 0xf5-0xff
	utf8Classes
)

var (
	utf8Class      [256]uint8
	utf8Transition [utf8States * utf8Classes]uint8
)

func init() {
	for i := range utf8Class {
		var c uint8
		switch b := byte(i); {
		case b < 0x80:
			c = classASCII
		case b < 0x90:
			c = classCont80
		case b < 0xa0:
			c = classCont90
		case b < 0xc0:
			c = classContA0
		case b < 0xc2:
			c = classC0
		case b < 0xe0:
			c = classLead2
		case b == 0xe0:
			c = classE0
		case b == 0xed:
			c = classED
		case b < 0xf0:
			c = classLead3
		case b == 0xf0:
			c = classF0
		case b < 0xf4:
			c = classLead4
		case b == 0xf4:
			c = classF4
		default:
			c = classInvalid
		}
		utf8Class[i] = c
	}

	for i := range utf8Transition {
		utf8Transition[i] = stateReject
	}
	set := func(state int, next uint8, classes ...int) {
		for _, c := range classes {
			utf8Transition[state*utf8Classes+c] = next
		}
	}
	set(stateAccept, stateAccept, classASCII)
	set(stateAccept, stateCont1, classLead2)
	set(stateAccept, stateE0, classE0)
	set(stateAccept, stateCont2, classLead3)
	set(stateAccept, stateED, classED)
	set(stateAccept, stateF0, classF0)
	set(stateAccept, stateCont3, classLead4)
	set(stateAccept, stateF4, classF4)
	set(stateCont1, stateAccept, classCont80, classCont90, classContA0)
	set(stateCont2, stateCont1, classCont80, classCont90, classContA0)
	set(stateCont3, stateCont2, classCont80, classCont90, classContA0)
	set(stateE0, stateCont1, classContA0)
	set(stateED, stateCont1, classCont80, classCont90)
	set(stateF0, stateCont2, classCont90, classContA0)
	set(stateF4, stateCont2, classCont80)
}

const asciiMask64 = 0x8080808080808080

// isASCII16 reports whether the 16 bytes at the start of b are ASCII.
func isASCII16(b []byte) bool {
	_ = b[15]
	return (binary.LittleEndian.Uint64(b)|binary.LittleEndian.Uint64(b[8:]))&asciiMask64 == 0
}

func validateUTF8(b []byte) bool {
	state := uint8(stateAccept)
	for pos := 0; pos < len(b); {
		if state == stateAccept && pos+16 <= len(b) && isASCII16(b[pos:]) {
			pos += 16
			continue
		}
		state = utf8Transition[int(state)*utf8Classes+int(utf8Class[b[pos]])]
		if state == stateReject {
			return false
		}
		pos++
	}
	return state == stateAccept
}

// validateUTF8WithErrors runs the same DFA as validateUTF8, remembering where
// the current character started. On rejection the character is decoded again to
// classify the error.
func validateUTF8WithErrors(b []byte) Result {
	state := uint8(stateAccept)
	start := 0
	for pos := 0; pos < len(b); {
		if state == stateAccept {
			if pos+16 <= len(b) && isASCII16(b[pos:]) {
				pos += 16
				continue
			}
			start = pos
		}
		state = utf8Transition[int(state)*utf8Classes+int(utf8Class[b[pos]])]
		if state == stateReject {
			return Result{classifyUTF8(b, start), start}
		}
		pos++
	}
	if state != stateAccept {
		return Result{classifyUTF8(b, start), start}
	}
	return Result{Success, len(b)}
}

func classifyUTF8(b []byte, pos int) ErrorCode {
	if _, _, code := decodeUTF8(b, pos); code != Success {
		return code
	}
	return Other
}

// rewindAndValidateUTF8WithErrors locates the first error of b when a block
// validator flagged the block starting at start. An error can belong to a
// character that began in the previous block, so validation restarts at the
// leading byte of the character containing b[start-1].
func rewindAndValidateUTF8WithErrors(b []byte, start int) Result {
	from := start
	if from > 0 {
		from--
	}
	for i := 0; i < 3 && from > 0 && isContinuation(b[from]); i++ {
		from--
	}
	r := validateUTF8WithErrors(b[from:])
	r.Count += from
	return r
}

func isContinuation(c byte) bool {
	return c&0xc0 == 0x80
}

// decodeUTF8 decodes the character starting at b[pos]. It returns the code
// point and its length, or the reason it is malformed.
func decodeUTF8(b []byte, pos int) (rune, int, ErrorCode) {
	c := b[pos]
	switch {
	case c < 0x80:
		return rune(c), 1, Success
	case c&0xe0 == 0xc0:
		if pos+2 > len(b) || !isContinuation(b[pos+1]) {
			return 0, 0, TooShort
		}
		cp := rune(c&0x1f)<<6 | rune(b[pos+1]&0x3f)
		if cp < 0x80 {
			return 0, 0, Overlong
		}
		return cp, 2, Success
	case c&0xf0 == 0xe0:
		if pos+3 > len(b) || !isContinuation(b[pos+1]) || !isContinuation(b[pos+2]) {
			return 0, 0, TooShort
		}
		cp := rune(c&0x0f)<<12 | rune(b[pos+1]&0x3f)<<6 | rune(b[pos+2]&0x3f)
		if cp < 0x800 {
			return 0, 0, Overlong
		}
		if cp >= 0xd800 && cp <= 0xdfff {
			return 0, 0, Surrogate
		}
		return cp, 3, Success
	case c&0xf8 == 0xf0:
		if pos+4 > len(b) || !isContinuation(b[pos+1]) || !isContinuation(b[pos+2]) || !isContinuation(b[pos+3]) {
			return 0, 0, TooShort
		}
		cp := rune(c&0x07)<<18 | rune(b[pos+1]&0x3f)<<12 | rune(b[pos+2]&0x3f)<<6 | rune(b[pos+3]&0x3f)
		if cp <= 0xffff {
			return 0, 0, Overlong
		}
		if cp > 0x10ffff {
			return 0, 0, TooLarge
		}
		return cp, 4, Success
	case isContinuation(c):
		return 0, 0, TooLong
	}
	return 0, 0, HeaderBits
}

// decodeValidUTF8 trusts the leading byte. A sequence cut short by the end of
// b decodes from the bytes that are there.
func decodeValidUTF8(b []byte, pos int) (rune, int) {
	c := b[pos]
	var cp rune
	var n int
	switch {
	case c < 0x80:
		return rune(c), 1
	case c < 0xe0:
		cp, n = rune(c&0x1f), 2
	case c < 0xf0:
		cp, n = rune(c&0x0f), 3
	default:
		cp, n = rune(c&0x07), 4
	}
	if pos+n > len(b) {
		n = len(b) - pos
	}
	for i := 1; i < n; i++ {
		cp = cp<<6 | rune(b[pos+i]&0x3f)
	}
	return cp, n
}

// isLeading reports whether c starts a character; as a signed byte it is
// greater than -65 (0b10111111).
func isLeading(c byte) bool {
	return int8(c) > -65
}

func countUTF8(b []byte) int {
	n := 0
	for _, c := range b {
		if isLeading(c) {
			n++
		}
	}
	return n
}

func utf16LengthFromUTF8(b []byte) int {
	n := 0
	for _, c := range b {
		if isLeading(c) {
			n++
		}
		if c >= 0xf0 {
			n++
		}
	}
	return n
}

func trimPartialUTF8(b []byte) int {
	n := len(b)
	if n >= 1 && b[n-1] >= 0xc0 {
		return n - 1
	}
	if n >= 2 && b[n-2] >= 0xe0 {
		return n - 2
	}
	if n >= 3 && b[n-3] >= 0xf0 {
		return n - 3
	}
	return n
}
