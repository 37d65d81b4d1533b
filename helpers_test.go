package rapidutf

import (
	"bytes"
	randv2 "math/rand/v2"
	"sync"
	"testing"
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

// randomRune returns a scalar value of a random UTF-8 length; ascii is the
// percentage of ASCII characters.
func randomRune(r *randv2.Rand, ascii int) rune {
	if r.IntN(100) < ascii {
		return rune(r.IntN(0x80))
	}
	switch r.IntN(3) {
	case 0:
		return rune(0x80 + r.IntN(0x800-0x80))
	case 1:
		c := rune(0x800 + r.IntN(0x10000-0x800))
		if c >= 0xd800 && c <= 0xdfff {
			c -= 0x800
		}
		return c
	}
	return rune(0x10000 + r.IntN(0x110000-0x10000))
}

func randomText(r *randv2.Rand, n, ascii int) []byte {
	b := make([]byte, 0, n+4)
	for len(b) < n {
		b = utf8.AppendRune(b, randomRune(r, ascii))
	}
	return b
}

func randomLatin1(r *randv2.Rand, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		if r.IntN(4) == 0 {
			b[i] = byte(0x80 + r.IntN(0x80))
		} else {
			b[i] = byte(r.IntN(0x80))
		}
	}
	return b
}

// kernels returns every compiled-in implementation plus block engines of
// both widths, so the block paths run on every GOARCH.
func kernels() []Implementation {
	impls := AvailableImplementations()
	impls = append(impls,
		newBlockImplementation("block16", "test", ISADefault, 16),
		newBlockImplementation("block32", "test", ISADefault, 32),
	)
	return impls
}

// resetActive forgets the active implementation so the next call resolves it
// again, and restores that state when the test ends.
func resetActive(t testing.TB) {
	t.Helper()
	forget := func() {
		active.Store(nil)
		activeOnce = sync.Once{}
	}
	forget()
	t.Cleanup(forget)
}

func swap16(s []uint16) []uint16 {
	out := make([]uint16, len(s))
	ChangeEndiannessUTF16(s, out)
	return out
}
