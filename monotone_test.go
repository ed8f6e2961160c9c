package roaring16

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAscendingBasic(t *testing.T) {
	c := New()
	for _, x := range []uint16{1, 5, 9, 100} {
		ok := c.AddAscending(x)
		require.True(t, ok)
	}
	assert.Equal(t, uint32(4), c.Cardinality())
	for _, x := range []uint16{1, 5, 9, 100} {
		assert.True(t, c.Contains(x))
	}
	assert.Equal(t, kindArray, c.kind())
}

func TestAddAscendingRejectsOutOfOrder(t *testing.T) {
	c := New()
	require.True(t, c.AddAscending(1))
	require.True(t, c.AddAscending(2))
	require.True(t, c.AddAscending(3))

	// Not strictly greater than the last item added: documented
	// out-of-order rejection, distinct from Add's any-order contract.
	ok := c.AddAscending(2)
	assert.False(t, ok)
	assert.Equal(t, uint32(3), c.Cardinality())

	ok = c.AddAscending(3)
	assert.False(t, ok)
	assert.Equal(t, uint32(3), c.Cardinality())
}

func TestAddAscendingRejectsOnFullContainer(t *testing.T) {
	c := New()
	c.Fill()
	// Unlike Add (idempotent success on a full container, per
	// original_source/rset.c's rset_add), AddAscending mirrors
	// original_source/rbit.c's rbit_add and reports false: there is no
	// "last item added" bookkeeping once full, so the ascending
	// contract can no longer be honored.
	ok := c.AddAscending(0)
	assert.False(t, ok)
	assert.Equal(t, uint32(maxCardinality), c.Cardinality())
}

func TestAddAscendingConvertsArrayToBitset(t *testing.T) {
	c := New()
	for x := 0; x < lowCutoff; x++ {
		require.True(t, c.AddAscending(uint16(x)))
	}
	require.Equal(t, kindArray, c.kind())

	ok := c.AddAscending(uint16(lowCutoff))
	require.True(t, ok)
	assert.Equal(t, kindBitset, c.kind())
	assert.Equal(t, uint32(lowCutoff+1), c.Cardinality())

	assert.True(t, c.Contains(0))
	assert.True(t, c.Contains(uint16(lowCutoff-1)))
	assert.True(t, c.Contains(uint16(lowCutoff)))
	assert.False(t, c.Contains(uint16(lowCutoff+1)))
}

func TestAddAscendingConvertsBitsetToInvertedArray(t *testing.T) {
	c := New()
	for x := 0; x < highCutoff; x++ {
		require.True(t, c.AddAscending(uint16(x)))
	}
	require.Equal(t, kindBitset, c.kind())

	ok := c.AddAscending(uint16(highCutoff))
	require.True(t, ok)
	assert.Equal(t, kindInverted, c.kind())
	assert.Equal(t, uint32(highCutoff+1), c.Cardinality())

	assert.True(t, c.Contains(0))
	assert.True(t, c.Contains(uint16(highCutoff-1)))
	assert.True(t, c.Contains(uint16(highCutoff)))
	assert.False(t, c.Contains(uint16(highCutoff+1)))
}
