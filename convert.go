package roaring16

// Conversion engine: array->bitset and bitset->inverted-array, run
// exactly at the two transition cardinalities (lowCutoff, highCutoff)
// and only when the item about to be added is not already present --
// the caller checks that precondition before calling these. Neither
// function touches the header word; they rewrite the payload region
// in place and leave the subsequent insert to bump the header.
//
// Both allocate their scratch buffer before touching the payload, so a
// failed allocation (unreachable in Go, since make does not return
// errors for bounded sizes like these) would leave c unchanged.

// convertArrayToBitset rewrites c's array payload (buf[1:n+1], for the
// n == lowCutoff items present) into the fixed 4096-word bitset
// representation, in place.
func (c *Container) convertArrayToBitset() {
	n := int(c.buf[0])
	c.growTo(bitsetWords)

	var scratch [bitsetWords]uint16
	for i := 1; i <= n; i++ {
		word, bit := bitsetWordAndBit(c.buf[i])
		scratch[word] |= bit
	}
	copy(c.buf[1:1+bitsetWords], scratch[:])
}

// convertBitsetToInvertedArray rewrites c's 4096-word bitset payload
// into a sorted list of the bitsetWords*16-highCutoff absent items, in
// place.
func (c *Container) convertBitsetToInvertedArray() {
	var scratch [bitsetWords]uint16
	pos := 0
	item := 0
	for w := 0; w < bitsetWords; w++ {
		word := c.buf[1+w]
		for b := uint(0); b < 16; b++ {
			if word&(1<<b) == 0 {
				scratch[pos] = uint16(item)
				pos++
			}
			item++
		}
	}
	copy(c.buf[1:1+bitsetWords], scratch[:])
}
