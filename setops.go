package roaring16

import "math/bits"

// Invert writes the complement of c (every item in {0,...,65535} not
// in c) into dst. dst must be a different Container than c.
//
// The naive recipe -- copy the source payload, flip the header, and
// word-flip the payload if the result lands in the bitset band --
// only works when source and destination share the same physical
// payload format. It does for most cardinalities, because of a
// duality in this encoding: an array's sorted list of present items
// is byte-identical to an inverted array's sorted list of absent
// items, just reinterpreted through a different header. That duality
// breaks down at the two cardinalities where the complement crosses
// from/to the bitset band (source cardinality exactly lowCutoff or
// exactly highCutoff): there, the payload has to actually be rebuilt
// in the destination's format, not merely reinterpreted. Both cases
// are handled explicitly below so the representation-canonicality
// invariant holds for every reachable cardinality, not just the common
// ones -- this is the complement-side analogue of the mixed-encoding
// canonicalization spec.md's Design Notes call out for intersection.
func (c *Container) Invert(dst *Container) error {
	if dst == c {
		return ErrAliasedDestination
	}

	switch c.kind() {
	case kindEmpty: // ~{} => U
		dst.Fill()
		return nil
	case kindFull: // ~U => {}
		dst.Truncate()
		return nil
	}

	srcCardinality := cardinalityOf(c.buf[0], c.slot1())
	newHeader := uint16(maxCardinality - srcCardinality)

	switch {
	case newHeader <= lowCutoff: // destination band: array
		switch c.kind() {
		case kindInverted:
			a := maxCardinality - int(c.buf[0])
			dst.growTo(a)
			copy(dst.buf[1:1+a], c.buf[1:1+a])
		default: // kindBitset, exactly at the highCutoff boundary
			dst.growTo(lowCutoff)
			n := 0
			for w := 0; w < bitsetWords; w++ {
				word := c.buf[1+w]
				for b := uint(0); b < 16; b++ {
					if word&(1<<b) == 0 {
						dst.buf[1+n] = uint16(w*16 + int(b))
						n++
					}
				}
			}
		}
		dst.buf[0] = newHeader
	case newHeader <= highCutoff: // destination band: bitset
		dst.growTo(bitsetWords)
		switch c.kind() {
		case kindBitset:
			for i := 1; i <= bitsetWords; i++ {
				dst.buf[i] = ^c.buf[i]
			}
		default: // kindArray, exactly at the lowCutoff boundary
			for i := 1; i <= bitsetWords; i++ {
				dst.buf[i] = 0xFFFF
			}
			n := int(c.buf[0])
			for i := 1; i <= n; i++ {
				word, bit := bitsetWordAndBit(c.buf[i])
				dst.buf[1+int(word)] &^= bit
			}
		}
		dst.buf[0] = newHeader
	default: // destination band: inverted array (source was an array)
		n := int(c.buf[0])
		dst.growTo(n)
		copy(dst.buf[1:1+n], c.buf[1:1+n])
		dst.buf[0] = newHeader
	}
	return nil
}

// copyFrom overwrites dst with an independent copy of src's header and
// payload, growing dst's capacity as needed. Used by Intersect's
// full-set identity shortcuts.
func (dst *Container) copyFrom(src *Container) {
	words := payloadWordsFor(src.buf[0], src.slot1())
	dst.growTo(words)
	copy(dst.buf[0:1+words], src.buf[0:1+words])
}

// Intersect computes c ∩ other and writes the result into dst. dst
// must differ from both c and other.
func (c *Container) Intersect(other, dst *Container) error {
	if dst == c || dst == other {
		return ErrAliasedDestination
	}
	if c.kind() == kindEmpty || other.kind() == kindEmpty {
		dst.Truncate()
		return nil
	}
	if c.kind() == kindFull {
		dst.copyFrom(other)
		return nil
	}
	if other.kind() == kindFull {
		dst.copyFrom(c)
		return nil
	}
	if c.kind() == kindArray && other.kind() == kindArray {
		return c.intersectArrays(other, dst)
	}
	return c.intersectMixed(other, dst)
}

// intersectArrays handles the array∧array case via
// intersectSortedArrays: a two-pointer merge, or on amd64 with SSE4.1 a
// galloping search whose output is bit-identical to the scalar merge.
// The result cardinality can never exceed either
// operand's, so it always fits the array band without further
// canonicalization.
func (c *Container) intersectArrays(other, dst *Container) error {
	n1, n2 := int(c.buf[0]), int(other.buf[0])
	maxLen := n1
	if n2 > maxLen {
		maxLen = n2
	}
	dst.growTo(maxLen)
	count := intersectSortedArrays(c.buf[1:1+n1], other.buf[1:1+n2], dst.buf[1:1+maxLen])
	if count == 0 {
		dst.Truncate()
		return nil
	}
	dst.buf[0] = uint16(count)
	return nil
}

// intersectMixed handles every pairing that isn't array∧array
// (including bitset∧bitset) by materializing both operands as 4096-word
// bit arrays, ANDing them, and re-canonicalizing the destination to
// whichever band the resulting cardinality dictates. spec.md's Design
// Notes leave mixed-encoding post-normalization as an open question;
// this module resolves it by always canonicalizing, so
// representation-canonicality holds unconditionally rather than only
// for the cases a particular intersection route happens to land on.
func (c *Container) intersectMixed(other, dst *Container) error {
	aw := materializeBitset(c)
	bw := materializeBitset(other)
	var result [bitsetWords]uint16
	var cardinality uint32
	for i := range result {
		result[i] = aw[i] & bw[i]
		cardinality += uint32(bits.OnesCount16(result[i]))
	}
	dst.setFromBitsetWords(result[:], cardinality)
	return nil
}

// materializeBitset returns c's membership as a 4096-word bit array,
// regardless of c's current encoding. Used only by the mixed-encoding
// intersection fallback, where correctness -- not the asymptotic cost
// of touching all 65536 possible items -- is the goal.
func materializeBitset(c *Container) [bitsetWords]uint16 {
	var bs [bitsetWords]uint16
	switch c.kind() {
	case kindFull:
		for i := range bs {
			bs[i] = 0xFFFF
		}
	case kindEmpty:
		// all zero
	case kindBitset:
		copy(bs[:], c.buf[1:1+bitsetWords])
	case kindArray:
		n := int(c.buf[0])
		for i := 1; i <= n; i++ {
			w, b := bitsetWordAndBit(c.buf[i])
			bs[w] |= b
		}
	case kindInverted:
		for i := range bs {
			bs[i] = 0xFFFF
		}
		a := maxCardinality - int(c.buf[0])
		for i := 1; i <= a; i++ {
			w, b := bitsetWordAndBit(c.buf[i])
			bs[w] &^= b
		}
	}
	return bs
}

// setFromBitsetWords overwrites dst with the set described by a
// 4096-word bit array of known cardinality, choosing whichever of the
// three encodings is canonical for that cardinality.
func (dst *Container) setFromBitsetWords(words []uint16, cardinality uint32) {
	switch {
	case cardinality == 0:
		dst.Truncate()
	case cardinality == maxCardinality:
		dst.Fill()
	case cardinality <= lowCutoff:
		dst.growTo(lowCutoff)
		n := 0
		for w := 0; w < bitsetWords; w++ {
			word := words[w]
			for b := uint(0); b < 16; b++ {
				if word&(1<<b) != 0 {
					dst.buf[1+n] = uint16(w*16 + int(b))
					n++
				}
			}
		}
		dst.buf[0] = uint16(cardinality)
	case cardinality <= highCutoff:
		dst.growTo(bitsetWords)
		copy(dst.buf[1:1+bitsetWords], words)
		dst.buf[0] = uint16(cardinality)
	default:
		dst.growTo(bitsetWords)
		var scratch [bitsetWords]uint16
		n := 0
		for w := 0; w < bitsetWords; w++ {
			word := words[w]
			for b := uint(0); b < 16; b++ {
				if word&(1<<b) == 0 {
					scratch[n] = uint16(w*16 + int(b))
					n++
				}
			}
		}
		copy(dst.buf[1:1+n], scratch[:n])
		dst.buf[0] = uint16(cardinality)
	}
}
