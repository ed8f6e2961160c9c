package roaring16

// Test harness helpers, grounded on original_source/tests.c's pattern
// of building scenario containers from plain integer literals instead
// of driving every test through repeated Add calls.

// newFromInts builds a container holding exactly the given items,
// added in the order given. Duplicates are allowed (the second Add is
// a no-op).
func newFromInts(xs ...uint16) *Container {
	c := New()
	for _, x := range xs {
		c.Add(x)
	}
	return c
}

// allItems drains every present item from c in ascending order by
// linear probe over the full universe. Only used by tests, where
// O(65536) per call is cheap and the point is an encoding-agnostic
// oracle to compare against.
func allItems(c *Container) []uint16 {
	var out []uint16
	x := 0
	for x <= maxItem {
		if c.Contains(uint16(x)) {
			out = append(out, uint16(x))
		}
		x++
	}
	return out
}
