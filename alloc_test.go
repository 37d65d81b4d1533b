package rapidutf

import (
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/require"
)

func TestAllocatingConverters(t *testing.T) {
	text := randomText(seededRand(), 5000, 60)
	runes := []rune(string(text))

	u16, err := UTF8ToUTF16LE(text)
	require.NoError(t, err)
	require.Equal(t, inOrder(utf16.Encode(runes), LittleEndian), u16)
	back, err := UTF16LEToUTF8(u16)
	require.NoError(t, err)
	require.Equal(t, text, back)

	u16be, err := UTF8ToUTF16BE(text)
	require.NoError(t, err)
	require.Equal(t, swap16(u16), u16be)
	back, err = UTF16BEToUTF8(u16be)
	require.NoError(t, err)
	require.Equal(t, text, back)

	u32, err := UTF8ToUTF32(text)
	require.NoError(t, err)
	require.Len(t, u32, len(runes))
	back, err = UTF32ToUTF8(u32)
	require.NoError(t, err)
	require.Equal(t, text, back)

	latin := randomLatin1(seededRand(), 300)
	u8 := Latin1ToUTF8(latin)
	back, err = UTF8ToLatin1(u8)
	require.NoError(t, err)
	require.Equal(t, latin, back)
}

func TestAllocatingConvertersErrors(t *testing.T) {
	_, err := UTF8ToUTF16LE([]byte("ab\xed\xa0\x80"))
	var uerr *Error
	require.ErrorAs(t, err, &uerr)
	require.Equal(t, Surrogate, uerr.Code)
	require.Equal(t, 2, uerr.Offset)
	require.EqualError(t, err, "rapidutf: surrogate at offset 2")

	_, err = UTF16LEToUTF8(inOrder([]uint16{'a', 0xdfff}, LittleEndian))
	require.ErrorIs(t, err, Surrogate)

	_, err = UTF32ToUTF8([]uint32{0x110000})
	require.ErrorIs(t, err, TooLarge)

	_, err = UTF8ToLatin1([]byte("\xe2\x82\xac"))
	require.ErrorIs(t, err, TooLarge)

	_, err = UTF8ToUTF32([]byte{0x80})
	require.ErrorIs(t, err, TooLong)
}
