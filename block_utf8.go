package rapidutf

// Error bits of the lookup validator. Each byte position is classified by
// three table lookups (high and low nibble of the previous byte, high nibble
// of the current byte); an error is any bit set in all three.
const (
	tooShort     = 1 << 0 // 11______ 0_______, 11______ 11______
	tooLong      = 1 << 1 // 0_______ 10______
	overlong3    = 1 << 2 // 11100000 100_____
	tooLarge     = 1 << 3 // 11110100 1001____, 11110101+ 10______
	surrogate    = 1 << 4 // 11101101 101_____
	overlong2    = 1 << 5 // 1100000_ 10______
	tooLarge1000 = 1 << 6 // 11110100 1010____ and beyond
	overlong4    = 1 << 6 // 11110000 1000____
	twoConts     = 1 << 7 // 10______ 10______
	carry        = tooShort | tooLong | twoConts
)

var (
	byte1High = [16]uint8{
		tooLong, tooLong, tooLong, tooLong, tooLong, tooLong, tooLong, tooLong,
		twoConts, twoConts, twoConts, twoConts,
		tooShort | overlong2,
		tooShort,
		tooShort | overlong3 | surrogate,
		tooShort | tooLarge | tooLarge1000 | overlong4,
	}
	byte1Low = [16]uint8{
		carry | overlong3 | overlong2 | overlong4,
		carry | overlong2,
		carry,
		carry,
		carry | tooLarge,
		carry | tooLarge | tooLarge1000,
		carry | tooLarge | tooLarge1000,
		carry | tooLarge | tooLarge1000,
		carry | tooLarge | tooLarge1000,
		carry | tooLarge | tooLarge1000,
		carry | tooLarge | tooLarge1000,
		carry | tooLarge | tooLarge1000,
		carry | tooLarge | tooLarge1000,
		carry | tooLarge | tooLarge1000 | surrogate,
		carry | tooLarge | tooLarge1000,
		carry | tooLarge | tooLarge1000,
	}
	byte2High = [16]uint8{
		tooShort, tooShort, tooShort, tooShort, tooShort, tooShort, tooShort, tooShort,
		tooLong | overlong2 | twoConts | overlong3 | tooLarge1000 | overlong4,
		tooLong | overlong2 | twoConts | overlong3 | tooLarge,
		tooLong | overlong2 | twoConts | surrogate | tooLarge,
		tooLong | overlong2 | twoConts | surrogate | tooLarge,
		tooShort, tooShort, tooShort, tooShort,
	}
)

// utf8BlockChecker validates UTF-8 one block at a time, carrying the last
// three bytes of the previous block so sequences may straddle blocks.
type utf8BlockChecker struct {
	prev       [3]byte // prev[2] is the byte just before the block
	err        uint8
	incomplete bool
}

func (c *utf8BlockChecker) back(block []byte, i, n int) byte {
	if i >= n {
		return block[i-n]
	}
	return c.prev[3-n+i]
}

// check folds one block into the error state.
func (c *utf8BlockChecker) check(block []byte) {
	if blockIsASCII(block) {
		if c.incomplete {
			c.err |= tooShort
		}
		c.incomplete = false
		c.prev = [3]byte{}
		return
	}
	for i, b := range block {
		p1, p2, p3 := c.back(block, i, 1), c.back(block, i, 2), c.back(block, i, 3)
		sc := byte1High[p1>>4] & byte1Low[p1&0x0f] & byte2High[b>>4]
		var must23 uint8
		if p2 >= 0xe0 || p3 >= 0xf0 {
			must23 = 0x80
		}
		c.err |= must23 ^ sc
	}
	n := len(block)
	c.incomplete = c.back(block, n, 1) >= 0xc0 || c.back(block, n, 2) >= 0xe0 || c.back(block, n, 3) >= 0xf0
	for k := 0; k < 3; k++ {
		c.prev[k] = c.back(block, n, 3-k)
	}
}

// finish reports whether the whole input was valid.
func (c *utf8BlockChecker) finish() bool {
	return c.err == 0 && !c.incomplete
}

func (c *utf8BlockChecker) failed() bool {
	return c.err != 0
}

func blockIsASCII(block []byte) bool {
	var acc byte
	i := 0
	for ; i+16 <= len(block); i += 16 {
		if !isASCII16(block[i:]) {
			return false
		}
	}
	for _, b := range block[i:] {
		acc |= b
	}
	return acc < 0x80
}
