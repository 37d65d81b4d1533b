package rapidutf

import "golang.org/x/exp/constraints"

// blockImplementation is the engine behind every vector kernel. Input is
// consumed in blocks of width code units: blocks that are entirely ASCII take
// a widening or narrowing fast path, other blocks are handed to the scalar
// routines, which may run past the end of the block to finish a character.
// Operations the engine does not accelerate come from scalarKernel.
type blockImplementation struct {
	implementationInfo
	scalarKernel

	width int
	// asciiPrefix, when set, returns the length of the ASCII prefix of b in
	// whole blocks using vector instructions.
	asciiPrefix func(b []byte) int
	// utf8Prefix, when set, returns the length of a valid UTF-8 prefix of b
	// that ends on a character boundary, in whole blocks.
	utf8Prefix func(b []byte) int
	// indexByte, when set, replaces findByte.
	indexByte func(b []byte, c byte) int
}

func newBlockImplementation(name, description string, required InstructionSet, width int) *blockImplementation {
	return &blockImplementation{
		implementationInfo: implementationInfo{name: name, description: description, required: required},
		width:              width,
	}
}

func alignDown[T constraints.Integer](n, width T) T {
	return n - n%width
}

// orBelow reports whether every element of s is below bound, which must be a
// power of two.
func orBelow[T constraints.Unsigned](s []T, bound T) bool {
	var acc T
	for _, v := range s {
		acc |= v
	}
	return acc < bound
}

func maxOf[T constraints.Unsigned](s []T) T {
	var m T
	for _, v := range s {
		m = max(m, v)
	}
	return m
}

// asciiRun returns the length of the ASCII prefix of b, in whole blocks.
func (k *blockImplementation) asciiRun(b []byte) int {
	if k.asciiPrefix != nil {
		return k.asciiPrefix(b)
	}
	n := 0
	for n+k.width <= len(b) && blockIsASCII(b[n:n+k.width]) {
		n += k.width
	}
	return n
}

func (k *blockImplementation) ValidateASCII(b []byte) bool {
	n := k.asciiRun(b)
	return validateASCII(b[n:])
}

func (k *blockImplementation) ValidateASCIIWithErrors(b []byte) Result {
	n := k.asciiRun(b)
	r := validateASCIIWithErrors(b[n:])
	r.Count += n
	return r
}

// validUTF8Run is the vector-checked valid prefix of b, or 0.
func (k *blockImplementation) validUTF8Run(b []byte) int {
	if k.utf8Prefix != nil {
		return k.utf8Prefix(b)
	}
	return 0
}

func (k *blockImplementation) ValidateUTF8(b []byte) bool {
	var c utf8BlockChecker
	for p := k.validUTF8Run(b); p < len(b); p += k.width {
		c.check(b[p:min(p+k.width, len(b))])
		if c.failed() {
			return false
		}
	}
	return c.finish()
}

func (k *blockImplementation) ValidateUTF8WithErrors(b []byte) Result {
	var c utf8BlockChecker
	start := k.validUTF8Run(b)
	for p := start; p < len(b); p += k.width {
		c.check(b[p:min(p+k.width, len(b))])
		if c.failed() {
			return rewindAndValidateUTF8WithErrors(b, p)
		}
	}
	if !c.finish() {
		return rewindAndValidateUTF8WithErrors(b, max(start, alignDown(len(b)-1, k.width)))
	}
	return Result{Success, len(b)}
}

func (k *blockImplementation) ValidateUTF16(s []uint16, e Endianness) bool {
	return k.ValidateUTF16WithErrors(s, e).Error == Success
}

// ValidateUTF16WithErrors skips blocks without surrogates and checks the
// rest unit by unit.
func (k *blockImplementation) ValidateUTF16WithErrors(s []uint16, e Endianness) Result {
	for p := 0; p < len(s); {
		end := min(p+k.width, len(s))
		if !hasSurrogate(s[p:end], e) {
			p = end
			continue
		}
		for p < end {
			u := load16(s[p], e)
			if !isSurrogate(u) {
				p++
				continue
			}
			if !isHighSurrogate(u) || p+1 >= len(s) || !isLowSurrogate(load16(s[p+1], e)) {
				return Result{Surrogate, p}
			}
			p += 2
		}
	}
	return Result{Success, len(s)}
}

func hasSurrogate(s []uint16, e Endianness) bool {
	for _, u := range s {
		if isSurrogate(load16(u, e)) {
			return true
		}
	}
	return false
}

func (k *blockImplementation) ValidateUTF32(s []uint32) bool {
	return k.ValidateUTF32WithErrors(s).Error == Success
}

func (k *blockImplementation) ValidateUTF32WithErrors(s []uint32) Result {
	for p := 0; p < len(s); p += k.width {
		end := min(p+k.width, len(s))
		block := s[p:end]
		if maxOf(block) < 0xd800 {
			continue
		}
		for i, cp := range block {
			if code := checkUTF32(cp); code != Success {
				return Result{code, p + i}
			}
		}
	}
	return Result{Success, len(s)}
}

func (k *blockImplementation) CountUTF8(b []byte) int {
	return k.countLeading(b, false)
}

func (k *blockImplementation) UTF32LengthFromUTF8(b []byte) int {
	return k.countLeading(b, false)
}

func (k *blockImplementation) Latin1LengthFromUTF8(b []byte) int {
	return k.countLeading(b, false)
}

func (k *blockImplementation) UTF16LengthFromUTF8(b []byte) int {
	return k.countLeading(b, true)
}

// countLeading counts leading bytes, plus four-byte leading bytes again when
// wide is set. ASCII blocks count one per byte.
func (k *blockImplementation) countLeading(b []byte, wide bool) int {
	n := 0
	for p := 0; p < len(b); p += k.width {
		block := b[p:min(p+k.width, len(b))]
		if blockIsASCII(block) {
			n += len(block)
			continue
		}
		if wide {
			n += utf16LengthFromUTF8(block)
		} else {
			n += countUTF8(block)
		}
	}
	return n
}

func (k *blockImplementation) UTF8LengthFromLatin1(b []byte) int {
	n := len(b)
	for p := 0; p < len(b); p += k.width {
		block := b[p:min(p+k.width, len(b))]
		if !blockIsASCII(block) {
			n += utf8LengthFromLatin1(block) - len(block)
		}
	}
	return n
}

func (k *blockImplementation) ConvertUTF8ToUTF16(src []byte, dst []uint16, e Endianness) int {
	_, q, code := k.utf8ToUTF16(src, dst, e)
	return checked(q, code)
}

func (k *blockImplementation) ConvertUTF8ToUTF16WithErrors(src []byte, dst []uint16, e Endianness) Result {
	return withErrors(k.utf8ToUTF16(src, dst, e))
}

func (k *blockImplementation) utf8ToUTF16(src []byte, dst []uint16, e Endianness) (p, q int, code ErrorCode) {
	for p < len(src) {
		if n := k.asciiRun(src[p:]); n > 0 {
			for _, c := range src[p : p+n] {
				dst[q] = store16(uint16(c), e)
				q++
			}
			p += n
			continue
		}
		p, q, code = utf8ToUTF16Range(src, p, min(p+k.width, len(src)), dst, q, e)
		if code != Success {
			return p, q, code
		}
	}
	return p, q, Success
}

func (k *blockImplementation) ConvertUTF8ToUTF32(src []byte, dst []uint32) int {
	_, q, code := k.utf8ToUTF32(src, dst)
	return checked(q, code)
}

func (k *blockImplementation) ConvertUTF8ToUTF32WithErrors(src []byte, dst []uint32) Result {
	return withErrors(k.utf8ToUTF32(src, dst))
}

func (k *blockImplementation) utf8ToUTF32(src []byte, dst []uint32) (p, q int, code ErrorCode) {
	for p < len(src) {
		if n := k.asciiRun(src[p:]); n > 0 {
			for _, c := range src[p : p+n] {
				dst[q] = uint32(c)
				q++
			}
			p += n
			continue
		}
		p, q, code = utf8ToUTF32Range(src, p, min(p+k.width, len(src)), dst, q)
		if code != Success {
			return p, q, code
		}
	}
	return p, q, Success
}

func (k *blockImplementation) ConvertUTF8ToLatin1(src, dst []byte) int {
	_, q, code := k.utf8ToLatin1(src, dst)
	return checked(q, code)
}

func (k *blockImplementation) ConvertUTF8ToLatin1WithErrors(src, dst []byte) Result {
	return withErrors(k.utf8ToLatin1(src, dst))
}

func (k *blockImplementation) utf8ToLatin1(src, dst []byte) (p, q int, code ErrorCode) {
	for p < len(src) {
		if n := k.asciiRun(src[p:]); n > 0 {
			q += copy(dst[q:], src[p:p+n])
			p += n
			continue
		}
		p, q, code = utf8ToLatin1Range(src, p, min(p+k.width, len(src)), dst, q)
		if code != Success {
			return p, q, code
		}
	}
	return p, q, Success
}

func (k *blockImplementation) ConvertLatin1ToUTF8(src, dst []byte) int {
	p, q := 0, 0
	for p < len(src) {
		if n := k.asciiRun(src[p:]); n > 0 {
			q += copy(dst[q:], src[p:p+n])
			p += n
			continue
		}
		p, q = latin1ToUTF8Range(src, p, min(p+k.width, len(src)), dst, q)
	}
	return q
}

func (k *blockImplementation) ConvertUTF16ToUTF8(src []uint16, dst []byte, e Endianness) int {
	_, q, code := k.utf16ToUTF8(src, dst, e, false)
	return checked(q, code)
}

func (k *blockImplementation) ConvertUTF16ToUTF8WithErrors(src []uint16, dst []byte, e Endianness) Result {
	return withErrors(k.utf16ToUTF8(src, dst, e, false))
}

func (k *blockImplementation) ConvertUTF16ToUTF8WithReplacement(src []uint16, dst []byte, e Endianness) int {
	_, q, _ := k.utf16ToUTF8(src, dst, e, true)
	return q
}

func (k *blockImplementation) utf16ToUTF8(src []uint16, dst []byte, e Endianness, replace bool) (p, q int, code ErrorCode) {
	for p < len(src) {
		end := min(p+k.width, len(src))
		if isNative(e) && orBelow(src[p:end], 0x80) {
			for _, u := range src[p:end] {
				dst[q] = byte(u)
				q++
			}
			p = end
			continue
		}
		p, q, code = utf16ToUTF8Range(src, p, end, dst, q, e, replace)
		if code != Success {
			return p, q, code
		}
	}
	return p, q, Success
}

func (k *blockImplementation) ConvertUTF32ToUTF8(src []uint32, dst []byte) int {
	_, q, code := k.utf32ToUTF8(src, dst)
	return checked(q, code)
}

func (k *blockImplementation) ConvertUTF32ToUTF8WithErrors(src []uint32, dst []byte) Result {
	return withErrors(k.utf32ToUTF8(src, dst))
}

func (k *blockImplementation) utf32ToUTF8(src []uint32, dst []byte) (p, q int, code ErrorCode) {
	for p < len(src) {
		end := min(p+k.width, len(src))
		if orBelow(src[p:end], 0x80) {
			for _, cp := range src[p:end] {
				dst[q] = byte(cp)
				q++
			}
			p = end
			continue
		}
		p, q, code = utf32ToUTF8Range(src, p, end, dst, q)
		if code != Success {
			return p, q, code
		}
	}
	return p, q, Success
}

func (k *blockImplementation) Find(b []byte, c byte) int {
	if k.indexByte != nil {
		return k.indexByte(b, c)
	}
	return findByte(b, c)
}
