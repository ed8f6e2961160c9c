package roaring16

import "encoding/binary"

// Container is a single adaptive 16-bit set: one container of a
// Roaring Bitmap, holding a subset of {0, ..., 65535}. It owns one
// contiguous buffer whose first word is a cardinality header and whose
// remaining words are the encoding-specific payload -- sorted array,
// dense bitset, or sorted array of absences -- chosen by cardinality
// alone. See the package doc for the full header-word table.
//
// A Container is not safe for concurrent use; the caller owns it
// exclusively, the same way the reference C implementation's rset_t
// is exclusively owned by whichever code holds the pointer.
type Container struct {
	buf []uint16 // buf[0] is the header; buf[1:] is the payload
}

// New returns an empty container with the reference implementation's
// default starting capacity.
func New() *Container {
	c := &Container{buf: make([]uint16, 1+defaultCapacity)}
	c.Truncate()
	return c
}

// Close releases c's resources. Go's garbage collector reclaims the
// backing buffer on its own; Close is a documented no-op, kept for API
// symmetry with the reference's rset_free and as a place for callers
// migrating from that API to stop using c.
func (c *Container) Close() {}

func (c *Container) slot1() uint16 {
	if len(c.buf) > 1 {
		return c.buf[1]
	}
	return 0
}

func (c *Container) kind() kind { return classify(c.buf[0], c.slot1()) }

// Cardinality returns the number of items in c, 0..=65536.
func (c *Container) Cardinality() uint32 { return cardinalityOf(c.buf[0], c.slot1()) }

// Len returns c's serialized length in bytes: 2 + 2*payload_words.
func (c *Container) Len() int { return 2 + 2*payloadWordsFor(c.buf[0], c.slot1()) }

// growTo ensures c's payload capacity is at least size words, copying
// the existing buffer into a larger one if needed.
func (c *Container) growTo(size int) {
	if len(c.buf)-1 >= size {
		return
	}
	buf := make([]uint16, size+1)
	copy(buf, c.buf)
	c.buf = buf
}

// grow doubles c's payload capacity, capped at the array/bitset
// ceiling (lowCutoff), mirroring the reference's realloc-based growth.
func (c *Container) grow() {
	size := (len(c.buf) - 1) * growthFactor
	if size == 0 {
		size = defaultCapacity
	}
	if size > lowCutoff {
		size = lowCutoff
	}
	c.growTo(size)
}

// Truncate empties c: write the empty sentinel header and slot-1
// marker described in the package doc.
func (c *Container) Truncate() {
	c.growTo(1)
	c.buf[0] = emptyHeader
	c.buf[1] = emptySlot1
}

// Fill makes c contain every possible item.
func (c *Container) Fill() {
	c.buf[0] = 0
}

// Add inserts x into c. It always reports success: adding an item
// already present is a no-op that still succeeds, matching
// original_source/rset.c's
// rset_add, which returns true unconditionally once a full set is
// reached since every item is trivially already a member.
func (c *Container) Add(x uint16) bool {
	if c.kind() == kindFull {
		return true
	}
	if c.kind() == kindEmpty {
		c.buf[0] = 0
	}

	n := int(c.buf[0])
	if n == lowCutoff {
		if arrayContains(c.buf, n, x) {
			return true
		}
		c.convertArrayToBitset()
	} else if n == highCutoff {
		if bitsetContains(c.buf, x) {
			return true
		}
		c.convertBitsetToInvertedArray()
	}

	switch {
	case n < lowCutoff:
		c.arrayInsert(x)
	case n >= highCutoff:
		c.invertedInsert(x)
	default:
		if c.bitsetInsert(x) {
			c.buf[0]++
		}
	}
	return true
}

// Contains reports whether x is a member of c.
func (c *Container) Contains(x uint16) bool {
	switch c.kind() {
	case kindFull:
		return true
	case kindEmpty:
		return false
	case kindBitset:
		return bitsetContains(c.buf, x)
	case kindInverted:
		return invertedContains(c.buf, maxCardinality-int(c.buf[0]), x)
	default: // array
		return arrayContains(c.buf, int(c.buf[0]), x)
	}
}

// Equal reports whether c and other contain exactly the same items.
// Because every reachable container is in the canonical encoding for
// its cardinality (the representation-canonicality invariant), equal
// cardinalities imply equal encodings, so a byte-for-byte payload
// comparison is sufficient -- this mirrors rset_equals.
func (c *Container) Equal(other *Container) bool {
	if c.Cardinality() != other.Cardinality() {
		return false
	}
	words := payloadWordsFor(c.buf[0], c.slot1())
	for i := 1; i <= words; i++ {
		if c.buf[i] != other.buf[i] {
			return false
		}
	}
	return true
}

// Copy returns an independent duplicate of c, equivalent to
// Import(c.Export()).
func (c *Container) Copy() *Container {
	dup, err := Import(c.Export())
	if err != nil {
		// c.Export() always produces a well-formed buffer, so Import
		// on it cannot fail; panicking here would indicate a bug in
		// Export/Import's own invariants, not caller-supplied garbage.
		panic("roaring16: copy of a well-formed container failed: " + err.Error())
	}
	return dup
}

// Export returns c's byte-level serialization: a little-endian header
// word followed by the header-appropriate number of little-endian
// payload words. The result is a fresh copy, safe to retain.
func (c *Container) Export() []byte {
	header := c.buf[0]
	slot1 := c.slot1()
	words := payloadWordsFor(header, slot1)
	out := make([]byte, 2+2*words)
	binary.LittleEndian.PutUint16(out[0:2], header)
	for i := 0; i < words; i++ {
		binary.LittleEndian.PutUint16(out[2+2*i:], c.buf[1+i])
	}
	return out
}

// Import builds a container from bytes produced by Export. A nil or
// empty slice imports as the empty set. The caller warrants that a
// non-empty slice is a valid export; Import performs a cheap
// self-consistency check (the header's declared payload length must
// fit within the supplied bytes) and rejects the buffer with a typed
// error instead of reading out of bounds.
func Import(data []byte) (*Container, error) {
	if len(data) == 0 {
		// spec.md §4.7: capacity = min(length, 4096), treating a 0
		// length as 1 -- a bare 1-word payload capacity, not New's
		// default starting capacity of 8.
		c := &Container{buf: make([]uint16, 2)}
		c.Truncate()
		return c, nil
	}
	if len(data) < 2 {
		return nil, ErrImportTooShort
	}
	if len(data)%2 != 0 {
		return nil, ErrImportOddLength
	}

	// Capacity sizing mirrors rset_import: the byte length is used
	// directly as the word-capacity hint (capped at lowCutoff). For
	// every valid export this already provides enough capacity
	// (1+min(len, lowCutoff) words is at least the len/2 words a valid
	// export holds), but malformed input is still defensively re-grown
	// below before any data is read.
	size := len(data)
	if size > lowCutoff {
		size = lowCutoff
	}
	words := len(data) / 2
	bufLen := 1 + size
	if words > bufLen {
		bufLen = words
	}

	c := &Container{buf: make([]uint16, bufLen)}
	for i := 0; i < words; i++ {
		c.buf[i] = binary.LittleEndian.Uint16(data[2*i:])
	}

	declared := payloadWordsFor(c.buf[0], c.slot1())
	if words-1 < declared {
		return nil, ErrImportTruncated
	}
	return c, nil
}
