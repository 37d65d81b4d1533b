package stream

import (
	"bytes"
	randv2 "math/rand/v2"
	"unicode/utf8"
)

var seed = [32]byte(bytes.Repeat([]byte{0xBA, 0xAD, 0xF0, 0x0D}, 8))

func seededRand() *randv2.Rand {
	return randv2.New(randv2.NewChaCha8(seed))
}

func seededBytes(n int) []byte {
	raw := make([]byte, n)
	_, _ = randv2.NewChaCha8(seed).Read(raw)
	return raw
}

// randomText returns about n bytes of valid UTF-8 mixing every sequence length.
func randomText(r *randv2.Rand, n int) []byte {
	b := make([]byte, 0, n+4)
	for len(b) < n {
		var c rune
		switch r.IntN(4) {
		case 0:
			c = rune(r.IntN(0x80))
		case 1:
			c = rune(0x80 + r.IntN(0x800-0x80))
		case 2:
			c = rune(0x800 + r.IntN(0x10000-0x800))
			if c >= 0xd800 && c <= 0xdfff {
				c -= 0x800
			}
		default:
			c = rune(0x10000 + r.IntN(0x110000-0x10000))
		}
		b = utf8.AppendRune(b, c)
	}
	return b
}
