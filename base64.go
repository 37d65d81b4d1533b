package rapidutf

// Base64Options selects the alphabet and padding of the base64 codec.
type Base64Options uint64

// base64ReversePadding flips the padding default of an alphabet.
const base64ReversePadding Base64Options = 2

const (
	// Base64Default is the standard alphabet (RFC 4648 §4) with padding.
	Base64Default Base64Options = 0
	// Base64URL is the URL-safe alphabet (RFC 4648 §5) without padding.
	Base64URL Base64Options = 1
	// Base64DefaultNoPadding is the standard alphabet without padding.
	Base64DefaultNoPadding = Base64Default | base64ReversePadding
	// Base64URLWithPadding is the URL-safe alphabet with padding.
	Base64URLWithPadding = Base64URL | base64ReversePadding
	// Base64DefaultAcceptGarbage decodes the standard alphabet, skipping any
	// character outside it. Input ends at the first '='.
	Base64DefaultAcceptGarbage Base64Options = 4
	// Base64URLAcceptGarbage is Base64DefaultAcceptGarbage for the URL-safe alphabet.
	Base64URLAcceptGarbage Base64Options = 5
	// Base64DefaultOrURL decodes both alphabets. Encoding uses the standard one.
	Base64DefaultOrURL Base64Options = 8
	// Base64DefaultOrURLAcceptGarbage decodes both alphabets, skipping garbage.
	Base64DefaultOrURLAcceptGarbage Base64Options = 12
)

func (o Base64Options) String() string {
	switch o {
	case Base64Default:
		return "base64_default"
	case Base64URL:
		return "base64_url"
	case Base64DefaultNoPadding:
		return "base64_default_no_padding"
	case Base64URLWithPadding:
		return "base64_url_with_padding"
	case Base64DefaultAcceptGarbage:
		return "base64_default_accept_garbage"
	case Base64URLAcceptGarbage:
		return "base64_url_accept_garbage"
	case Base64DefaultOrURL:
		return "base64_default_or_url"
	case Base64DefaultOrURLAcceptGarbage:
		return "base64_default_or_url_accept_garbage"
	}
	return "<unknown>"
}

// LastChunkHandling controls what happens to a final chunk of fewer than four
// characters.
type LastChunkHandling int

const (
	// Loose decodes a partial final chunk.
	Loose LastChunkHandling = iota
	// Strict rejects an unpadded partial final chunk and non-zero unused bits.
	Strict
	// StopBeforePartial stops before a partial final chunk without error.
	StopBeforePartial
	// OnlyFullChunks decodes complete four character chunks only.
	OnlyFullChunks
)

func (l LastChunkHandling) String() string {
	switch l {
	case Loose:
		return "loose"
	case Strict:
		return "strict"
	case StopBeforePartial:
		return "stop_before_partial"
	case OnlyFullChunks:
		return "only_full_chunks"
	}
	return "<unknown>"
}

// MaximalBinaryLengthFromBase64 returns an upper bound on the decoded size of
// src. It only looks at the length and the trailing padding.
func MaximalBinaryLengthFromBase64(src []byte) int {
	return GetActiveImplementation().MaximalBinaryLengthFromBase64(src)
}

// Base64LengthFromBinary returns the exact encoded length of n bytes.
func Base64LengthFromBinary(n int, o Base64Options) int {
	return GetActiveImplementation().Base64LengthFromBinary(n, o)
}

// BinaryToBase64 encodes src into dst, which must hold
// Base64LengthFromBinary(len(src), o) bytes, and returns the bytes written.
func BinaryToBase64(src, dst []byte, o Base64Options) int {
	return GetActiveImplementation().BinaryToBase64(src, dst, o)
}

// Base64ToBinary decodes src into dst, which must hold
// MaximalBinaryLengthFromBase64(src) bytes. ASCII white space is ignored. On
// success Count is the number of bytes written, otherwise the offset of the
// offending input character.
func Base64ToBinary(src, dst []byte, o Base64Options, lc LastChunkHandling) Result {
	return GetActiveImplementation().Base64ToBinary(src, dst, o, lc).Result()
}

// Base64ToBinaryDetails is Base64ToBinary reporting both the input consumed
// and the output produced. In the partial modes InputCount is where decoding
// should resume.
func Base64ToBinaryDetails(src, dst []byte, o Base64Options, lc LastChunkHandling) FullResult {
	return GetActiveImplementation().Base64ToBinary(src, dst, o, lc)
}

// Base64ToBinarySafe decodes into a dst of any size. When dst fills up it
// returns OutputBufferTooSmall with InputCount at the first chunk that did
// not fit and OutputCount bytes written, so decoding can resume from there.
//
// An InvalidBase64Character error normally leaves dst to be discarded. With
// decodeUpToBadChar set, dst instead holds the OutputCount bytes decoded from
// the complete chunks ahead of the bad character; if those do not fit, the
// error becomes OutputBufferTooSmall.
func Base64ToBinarySafe(src, dst []byte, o Base64Options, lc LastChunkHandling, decodeUpToBadChar bool) FullResult {
	r := base64ToBinarySafe(src, dst, o, lc)
	if decodeUpToBadChar && r.Error == InvalidBase64Character {
		return base64ToBinary(src, dst, o, lc, true, 0)
	}
	return r
}

func base64ToBinarySafe(src, dst []byte, o Base64Options, lc LastChunkHandling) FullResult {
	impl := GetActiveImplementation()
	// a prefix that cannot overflow dst goes through the kernel
	safe := min(len(src), impl.Base64LengthFromBinary(len(dst)/3*3, o))
	done := safe == len(src)
	mode := lc
	if !done {
		mode = OnlyFullChunks
	}
	r := impl.Base64ToBinary(src[:safe], dst, o, mode)
	if r.Error != Success || done {
		return r
	}
	rest := base64ToBinary(src[r.InputCount:], dst[r.OutputCount:], o, lc, true, 0)
	rest.InputCount += r.InputCount
	rest.OutputCount += r.OutputCount
	if rest.Error != Success {
		return rest
	}
	if rest.InputCount < len(src) {
		for rest.InputCount > 0 && base64Ignorable(src[rest.InputCount-1], o) {
			rest.InputCount--
		}
	}
	return rest
}

// Base64Ignorable reports whether the decoder skips c: ASCII white space, or
// any character outside the alphabet for the AcceptGarbage options.
func Base64Ignorable(c byte, o Base64Options) bool {
	return base64Ignorable(c, o)
}

// Base64Valid reports whether c is in the decoding alphabet of o.
func Base64Valid(c byte, o Base64Options) bool {
	return base64Valid(c, o)
}

// Base64Encode returns src encoded with o.
func Base64Encode(src []byte, o Base64Options) []byte {
	impl := GetActiveImplementation()
	dst := make([]byte, impl.Base64LengthFromBinary(len(src), o))
	n := impl.BinaryToBase64(src, dst, o)
	return dst[:n]
}

// Base64Decode returns src decoded with o and Loose last chunk handling.
func Base64Decode(src []byte, o Base64Options) ([]byte, error) {
	impl := GetActiveImplementation()
	dst := make([]byte, impl.MaximalBinaryLengthFromBase64(src))
	r := impl.Base64ToBinary(src, dst, o, Loose)
	if err := r.Err(); err != nil {
		return nil, err
	}
	return dst[:r.OutputCount], nil
}
