package roaring16

// Layout constants for the header word at buf[0] and the fixed band
// boundaries between the three payload encodings. See the package doc
// for the full header-word table.
const (
	maxItem        = 0xFFFF
	maxCardinality = 1 << 16 // 65536, the size of U = {0, ..., 65535}

	lowCutoff  = 1 << 12        // 4096: array -> bitset boundary
	highCutoff = maxCardinality - lowCutoff // 61440: bitset -> inverted-array boundary

	bitsetWords = lowCutoff // 4096 uint16 words = 65536 bits

	// emptyHeader/emptySlot1 is the sentinel pair used to distinguish the
	// empty set from an inverted array of (65536-emptyHeader) = 4095
	// absences. Slot 1 holds an inverted array's smallest absence, and a
	// strictly ascending list of 4095 absences cannot start at the
	// maximum item (0xFFFF): there is no room above it for the other
	// 4094. That impossible state is reused to mean "empty."
	emptyHeader = highCutoff + 1 // 61441
	emptySlot1  = maxItem        // 65535

	defaultCapacity = 8
	growthFactor    = 2
)

// kind names the concrete encoding a header word (plus slot 1, for the
// empty/inverted-array disambiguation) selects. classify is the
// classifier the read, serialization and set-operation paths consult.
// Add and AddAscending do not use it to pick their insert branch: they
// compare the header word with lowCutoff/highCutoff directly, because
// at those two values a conversion leaves the header unchanged while
// the payload is already in the next encoding.
type kind uint8

const (
	kindEmpty kind = iota
	kindFull
	kindArray
	kindBitset
	kindInverted
)

func (k kind) String() string {
	switch k {
	case kindEmpty:
		return "empty"
	case kindFull:
		return "full"
	case kindArray:
		return "array"
	case kindBitset:
		return "bitset"
	case kindInverted:
		return "inverted"
	default:
		return "invalid"
	}
}

// classify maps a header word and slot 1 to the encoding it denotes.
// Full and empty are checked first, ahead of the numeric bands, since
// empty's header value (emptyHeader) would otherwise fall inside the
// inverted-array band.
func classify(header, slot1 uint16) kind {
	switch {
	case header == 0:
		return kindFull
	case header == emptyHeader && slot1 == emptySlot1:
		return kindEmpty
	case header <= lowCutoff:
		return kindArray
	case header <= highCutoff:
		return kindBitset
	default:
		return kindInverted
	}
}

// cardinalityOf returns the logical cardinality encoded by header/slot1,
// without needing the rest of the payload. Outside the empty/full
// sentinels, the header word IS the cardinality directly in all three
// bands -- including inverted array, where the header names the
// cardinality and the *absence count* (the payload length) is the
// derived quantity 65536-header, not the other way around. Scenario 4
// in the test suite pins this down: 61441 items added yields header
// 61441 and a 4095-word absence list.
func cardinalityOf(header, slot1 uint16) uint32 {
	switch classify(header, slot1) {
	case kindFull:
		return maxCardinality
	case kindEmpty:
		return 0
	default: // array, bitset, inverted array: header word IS the cardinality
		return uint32(header)
	}
}

// payloadWordsFor returns the number of uint16 payload words (excluding
// the header) for a header/slot1 pair.
//
// Full carries zero payload words (length 2 bytes: the header alone
// describes it) while empty carries exactly one (the emptySlot1
// sentinel at slot 1 is load-bearing, not filler). These differ even
// though both are degenerate cardinalities; scenario 2 in the test
// suite pins full's serialized length at 2 bytes, and
// original_source/rset.c's rset_length_for resolves the same way: it
// special-cases cardinality 0 (empty) to length 1 word, and separately
// computes full's contribution as max_cardinality-max_cardinality=0
// words by falling through its inverted-array branch.
func payloadWordsFor(header, slot1 uint16) int {
	switch classify(header, slot1) {
	case kindFull:
		return 0
	case kindEmpty:
		return 1
	case kindBitset:
		return bitsetWords
	case kindInverted:
		return maxCardinality - int(header)
	default: // array
		return int(header)
	}
}
