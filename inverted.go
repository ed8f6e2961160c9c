package roaring16

// Inverted-array encoding: the payload is a strictly ascending,
// duplicate-free sequence of *absent* items in c.buf[1 : a+1], where
// a = 65536 - header is the number of absences. Inserting x into the
// set means removing x from this absence list.

// invertedContains reports whether x is present in the set, i.e. x is
// NOT listed among the a absences in buf[1:a+1].
func invertedContains(buf []uint16, a int, x uint16) bool {
	return !arrayContains(buf, a, x)
}

// invertedInsert removes x from the absence list, i.e. adds x to the
// set. Returns false if x was already present (x was not in the
// absence list, a no-op); true if x was newly added, in which case the
// header word has already been incremented.
func (c *Container) invertedInsert(x uint16) bool {
	a := maxCardinality - int(c.buf[0])

	// Fast path: removing the maximum absence (descending-insertion
	// pattern) needs no shift -- dropping the last slot from the
	// logical absence count is enough.
	if a > 0 && c.buf[a] == x {
		c.buf[0]++
		return true
	}

	i, found := arraySearch(c.buf, a, x)
	if !found {
		return false // x is not listed as absent: already present
	}
	copy(c.buf[i:a], c.buf[i+1:a+1])
	c.buf[0]++
	return true
}
