package roaring16

import "errors"

// Sentinel errors for the two failure kinds this package recognizes.
// Allocation failure
// has no Go-level analogue -- make/append do not return errors -- so
// growth paths here always succeed; these sentinels cover caller
// contract violations that spec.md allows a defensive implementation
// to detect and reject instead of leaving as undefined behavior.
var (
	// ErrImportTooShort is returned by Import when data is non-empty
	// but shorter than a valid header word (2 bytes).
	ErrImportTooShort = errors.New("roaring16: import buffer shorter than a header word")

	// ErrImportOddLength is returned by Import when data's length is
	// not a whole number of uint16 words.
	ErrImportOddLength = errors.New("roaring16: import buffer length is not a multiple of 2")

	// ErrImportTruncated is returned by Import when the header
	// declares more payload words than data actually contains.
	ErrImportTruncated = errors.New("roaring16: import buffer shorter than its header declares")

	// ErrAliasedDestination is returned by Invert and Intersect when
	// the destination container is also a source. The reference
	// implementation requires distinct destination buffers; this
	// package rejects aliasing instead of leaving it undefined.
	ErrAliasedDestination = errors.New("roaring16: destination container aliases a source")
)
