package rapidutf

// Decode tables map each byte to its 6-bit value, to base64Space for ASCII
// white space, or to base64Invalid.
const (
	base64Space   = 64
	base64Invalid = 255
)

const (
	base64StandardAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	base64URLAlphabet      = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
)

var (
	base64StandardDecode [256]uint8
	base64URLDecode      [256]uint8
	base64EitherDecode   [256]uint8
)

func init() {
	fill := func(t *[256]uint8, alphabets ...string) {
		for i := range t {
			t[i] = base64Invalid
		}
		for _, c := range []byte{' ', '\t', '\n', '\r', '\f'} {
			t[c] = base64Space
		}
		for _, a := range alphabets {
			for v := 0; v < len(a); v++ {
				t[a[v]] = uint8(v)
			}
		}
	}
	fill(&base64StandardDecode, base64StandardAlphabet)
	fill(&base64URLDecode, base64URLAlphabet)
	fill(&base64EitherDecode, base64StandardAlphabet, base64URLAlphabet)
}

func (o Base64Options) decodeTable() *[256]uint8 {
	switch {
	case o&Base64DefaultOrURL != 0:
		return &base64EitherDecode
	case o&Base64URL != 0:
		return &base64URLDecode
	}
	return &base64StandardDecode
}

func (o Base64Options) acceptGarbage() bool {
	return o == Base64DefaultAcceptGarbage || o == Base64URLAcceptGarbage || o == Base64DefaultOrURLAcceptGarbage
}

// padded reports whether the encoder emits '=' padding.
func (o Base64Options) padded() bool {
	return (o&Base64URL == 0) != (o&base64ReversePadding != 0)
}

func (o Base64Options) alphabet() string {
	if o&Base64URL != 0 {
		return base64URLAlphabet
	}
	return base64StandardAlphabet
}

func (l LastChunkHandling) partial() bool {
	return l == StopBeforePartial || l == OnlyFullChunks
}

func base64Ignorable(c byte, o Base64Options) bool {
	switch code := o.decodeTable()[c]; {
	case code <= 63:
		return false
	case code == base64Space:
		return true
	}
	return o.acceptGarbage()
}

func base64Valid(c byte, o Base64Options) bool {
	return o.decodeTable()[c] <= 63
}

// base64End locates the padding at the end of src. srcLen is the length of
// the input without trailing white space and padding, fullLen keeps trailing
// white space. equalLoc is the index of the first '=' when equalSigns > 0.
type base64End struct {
	equalSigns int
	equalLoc   int
	srcLen     int
	fullLen    int
}

func findBase64End(src []byte, o Base64Options) base64End {
	table := o.decodeTable()
	r := base64End{srcLen: len(src), fullLen: len(src)}
	if o.acceptGarbage() {
		r.equalLoc = r.srcLen
		for i, c := range src {
			if c == '=' {
				r.equalLoc, r.equalSigns = i, 1
				r.srcLen, r.fullLen = i, i+1
				break
			}
		}
		return r
	}
	for r.srcLen > 0 && table[src[r.srcLen-1]] == base64Space {
		r.srcLen--
	}
	r.equalLoc = r.srcLen
	if r.srcLen > 0 && src[r.srcLen-1] == '=' {
		r.srcLen--
		r.equalLoc, r.equalSigns = r.srcLen, 1
		for r.srcLen > 0 && table[src[r.srcLen-1]] == base64Space {
			r.srcLen--
		}
		if r.srcLen > 0 && src[r.srcLen-1] == '=' {
			r.srcLen--
			r.equalLoc, r.equalSigns = r.srcLen, 2
		}
	}
	return r
}

// base64TailDecode decodes src, which has had its padding removed. When
// checkCapacity is false dst must hold MaximalBinaryLengthFromBase64 bytes.
// paddingError means the reported input position must be moved to the first
// '=' of the input.
func base64TailDecode(dst, src []byte, padding int, o Base64Options, lc LastChunkHandling, checkCapacity bool) (r FullResult, paddingError bool) {
	table := o.decodeTable()
	garbage := o.acceptGarbage()
	s, d := 0, 0
	var buf [4]uint8
	for {
		for s+4 <= len(src) {
			v0, v1, v2, v3 := table[src[s]], table[src[s+1]], table[src[s+2]], table[src[s+3]]
			if v0|v1|v2|v3 > 63 {
				break
			}
			if checkCapacity && len(dst)-d < 3 {
				return FullResult{OutputBufferTooSmall, s, d}, false
			}
			x := uint32(v0)<<18 | uint32(v1)<<12 | uint32(v2)<<6 | uint32(v3)
			dst[d], dst[d+1], dst[d+2] = byte(x>>16), byte(x>>8), byte(x)
			s += 4
			d += 3
		}

		start := s
		idx := 0
		for idx < 4 && s < len(src) {
			code := table[src[s]]
			buf[idx] = code
			if code <= 63 {
				idx++
			} else if !garbage && code > base64Space {
				return FullResult{InvalidBase64Character, s, d}, false
			}
			s++
		}

		if idx != 4 {
			switch {
			case !garbage && idx+padding > 4:
				return FullResult{InvalidBase64Character, s, d}, true
			case !garbage && lc == Loose && idx >= 2 && padding > 0 && (idx+padding)&3 != 0:
				return FullResult{InvalidBase64Character, s, d}, true
			case !garbage && lc == Strict && idx >= 2 && (idx+padding)&3 != 0:
				return FullResult{Base64InputRemainder, s, d}, true
			case lc == StopBeforePartial && padding+idx < 4 && idx != 0 && (idx >= 2 || padding == 0),
				lc == OnlyFullChunks && (idx >= 2 || padding == 0):
				// the partial chunk is left for the caller
				return FullResult{Success, start, d}, false
			}

			switch {
			case idx == 2:
				x := uint32(buf[0])<<18 | uint32(buf[1])<<12
				if !garbage && lc == Strict && x&0xffff != 0 {
					return FullResult{Base64ExtraBits, s, d}, false
				}
				if checkCapacity && len(dst)-d < 1 {
					return FullResult{OutputBufferTooSmall, start, d}, false
				}
				dst[d] = byte(x >> 16)
				d++
			case idx == 3:
				x := uint32(buf[0])<<18 | uint32(buf[1])<<12 | uint32(buf[2])<<6
				if !garbage && lc == Strict && x&0xff != 0 {
					return FullResult{Base64ExtraBits, s, d}, false
				}
				if checkCapacity && len(dst)-d < 2 {
					return FullResult{OutputBufferTooSmall, start, d}, false
				}
				dst[d], dst[d+1] = byte(x>>16), byte(x>>8)
				d += 2
			case !garbage && idx == 1 && (!lc.partial() || padding > 0):
				return FullResult{Base64InputRemainder, s, d}, false
			case !garbage && idx == 0 && padding > 0:
				return FullResult{InvalidBase64Character, s, d}, true
			}
			return FullResult{Success, s, d}, false
		}

		if checkCapacity && len(dst)-d < 3 {
			return FullResult{OutputBufferTooSmall, start, d}, false
		}
		x := uint32(buf[0])<<18 | uint32(buf[1])<<12 | uint32(buf[2])<<6 | uint32(buf[3])
		dst[d], dst[d+1], dst[d+2] = byte(x>>16), byte(x>>8), byte(x)
		d += 3
	}
}

func patchBase64Result(r FullResult, paddingError bool, end base64End, lc LastChunkHandling) FullResult {
	if paddingError {
		r.InputCount = end.equalLoc
	}
	if r.Error == Success && (!lc.partial() || r.OutputCount%3 != 0) {
		r.InputCount = end.fullLen
	}
	return r
}

// base64ToBinary is the complete decoder: padding is located first, the body
// decoded, and then the padding is checked against the amount of output. With
// a non-zero width, leading blocks of width characters that contain no white
// space are packed by decodeBase64Blocks before the tail decoder runs.
func base64ToBinary(src, dst []byte, o Base64Options, lc LastChunkHandling, checkCapacity bool, width int) FullResult {
	garbage := o.acceptGarbage()
	end := findBase64End(src, o)
	if end.srcLen == 0 {
		if !garbage && end.equalSigns > 0 {
			return FullResult{InvalidBase64Character, end.equalLoc, 0}
		}
		return FullResult{Success, end.fullLen, 0}
	}
	body := src[:end.srcLen]
	s, d := 0, 0
	if width > 0 && !checkCapacity {
		s, d = decodeBase64Blocks(dst, body, o.decodeTable(), width)
	}
	r, paddingError := base64TailDecode(dst[d:], body[s:], end.equalSigns, o, lc, checkCapacity)
	r.InputCount += s
	r.OutputCount += d
	r = patchBase64Result(r, paddingError, end, lc)
	if !lc.partial() && r.Error == Success && end.equalSigns > 0 && !garbage {
		if rem := r.OutputCount % 3; rem == 0 || rem+1+end.equalSigns != 4 {
			return FullResult{InvalidBase64Character, end.equalLoc, r.OutputCount}
		}
	}
	if lc.partial() && r.Error == Success && r.InputCount < end.fullLen {
		for r.InputCount < end.fullLen && base64Ignorable(src[r.InputCount], o) {
			r.InputCount++
		}
		if r.InputCount < end.fullLen {
			for r.InputCount > 0 && base64Ignorable(src[r.InputCount-1], o) {
				r.InputCount--
			}
		}
	}
	return r
}

func maximalBinaryLengthFromBase64(src []byte) int {
	n := len(src)
	if n > 0 && src[n-1] == '=' {
		n--
		if n > 0 && src[n-1] == '=' {
			n--
		}
	}
	if n%4 <= 1 {
		return n / 4 * 3
	}
	return n/4*3 + n%4 - 1
}

func base64LengthFromBinary(n int, o Base64Options) int {
	if o.padded() {
		return (n + 2) / 3 * 4
	}
	r := n / 3 * 4
	if n%3 != 0 {
		r += n%3 + 1
	}
	return r
}

// binaryToBase64 encodes src into dst, which must hold
// base64LengthFromBinary(len(src), o) bytes.
func binaryToBase64(src, dst []byte, o Base64Options) int {
	alphabet := o.alphabet()
	s, d := 0, 0
	for ; s+3 <= len(src); s += 3 {
		x := uint32(src[s])<<16 | uint32(src[s+1])<<8 | uint32(src[s+2])
		dst[d] = alphabet[x>>18]
		dst[d+1] = alphabet[x>>12&0x3f]
		dst[d+2] = alphabet[x>>6&0x3f]
		dst[d+3] = alphabet[x&0x3f]
		d += 4
	}
	switch len(src) - s {
	case 1:
		x := uint32(src[s]) << 16
		dst[d] = alphabet[x>>18]
		dst[d+1] = alphabet[x>>12&0x3f]
		d += 2
		if o.padded() {
			dst[d], dst[d+1] = '=', '='
			d += 2
		}
	case 2:
		x := uint32(src[s])<<16 | uint32(src[s+1])<<8
		dst[d] = alphabet[x>>18]
		dst[d+1] = alphabet[x>>12&0x3f]
		dst[d+2] = alphabet[x>>6&0x3f]
		d += 3
		if o.padded() {
			dst[d] = '='
			d++
		}
	}
	return d
}
