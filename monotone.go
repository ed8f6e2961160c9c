package roaring16

// arrayAppendAscending appends x to the end of the array payload
// without a positional search, on the assumption that x is strictly
// greater than every item already in the array. Returns false (and
// leaves c unchanged) if that assumption doesn't hold, mirroring
// original_source/rbit.c's rbit_add_array contract.
func (c *Container) arrayAppendAscending(x uint16) bool {
	n := int(c.buf[0])
	if n > 0 && c.buf[n] >= x {
		return false
	}
	if n == len(c.buf)-1 {
		c.grow()
	}
	c.buf[n+1] = x
	c.buf[0] = uint16(n + 1)
	return true
}

// AddAscending adds x to c using the monotone fast path described in
// the package doc: the caller promises x is strictly greater than
// every item previously added to c via AddAscending. Interleaving
// AddAscending with out-of-order values, or with Add calls that add
// something greater afterward, is undefined behavior at the contract
// level -- AddAscending trades the full-contract guarantees of Add for
// skipping Add's positional search, the same trade
// original_source/rbit.c's rbit_add makes relative to rset_add.
//
// Add remains the general-purpose, any-order, idempotent-on-duplicates
// entry point; AddAscending is an optional accelerator layered on top
// of the same state machine and conversion engine.
func (c *Container) AddAscending(x uint16) bool {
	if c.Cardinality() == maxCardinality {
		return false
	}
	if c.kind() == kindEmpty {
		c.buf[0] = 0
	}

	n := int(c.buf[0])
	if n == lowCutoff {
		if arrayContains(c.buf, n, x) {
			return false
		}
		c.convertArrayToBitset()
	} else if n == highCutoff {
		if bitsetContains(c.buf, x) {
			return false
		}
		c.convertBitsetToInvertedArray()
	}

	switch {
	case n < lowCutoff:
		return c.arrayAppendAscending(x)
	case n >= highCutoff:
		return c.invertedInsert(x)
	default:
		if c.bitsetInsert(x) {
			c.buf[0]++
			return true
		}
		return false
	}
}
