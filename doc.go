// Package roaring16 implements a single adaptive container for a
// 16-bit universe {0, ..., 65535}, the building block a Roaring
// Bitmap uses once a 32-bit key has been split into a high 16 bits
// (which container to use) and a low 16 bits (which item within it).
// This package is that container on its own: it does not manage the
// high-bits index, just the per-container encoding, conversion, and
// set-operation machinery.
//
// # Encodings
//
// A container holds one []uint16 buffer. The first word is a header
// that, together with word[1] for the empty case, determines which of
// five states the rest of the buffer is in:
//
//	header value          state                     payload
//	0                      full (all 65536 present)   none
//	1..4096                array                       header ascending present items
//	4097..61440            bitset                       4096 words, one bit per item
//	61441..65535           inverted array               (65536-header) ascending absent items
//	61441 w/ word[1]=65535 empty (0 present)            1 word: the 65535 sentinel in word[1]
//
// Array and inverted array both store sorted lists -- of members and
// of absences, respectively -- which is why converting between the
// two costs nothing beyond reinterpreting the header in most cases;
// see setops.go's Invert for the one place that symmetry breaks down.
//
// # Conversion
//
// Add walks a container through these encodings automatically: array
// up to 4096 items, bitset from 4097 up to 61440, inverted array
// above that. A conversion runs exactly once per threshold crossing,
// and only once the incoming item is confirmed absent -- re-adding an
// existing item never triggers a conversion it wouldn't otherwise
// need. AddAscending is a faster Add for callers who can guarantee
// items arrive in strictly increasing order (e.g. merging already-
// sorted sources); it skips the array encoding's positional search but
// otherwise drives the same conversion engine.
//
// # Set operations
//
// Intersect and Invert both restore the canonical encoding for their
// result's cardinality rather than leaving behind whatever encoding a
// particular code path happens to produce -- a container reached via
// Intersect or Invert is always in the same state a container built
// item-by-item via Add would be.
//
// # Serialization
//
// Export/Import round-trip a container through the same little-endian
// byte layout as the header table above: a 2-byte header followed by
// payload_words 2-byte words. Container also implements
// io.WriterTo/io.ReaderFrom and encoding.BinaryMarshaler/Unmarshaler
// over the same format.
//
// # Concurrency
//
// A Container is not safe for concurrent use. Callers synchronize
// externally, same as the reference C implementation this package is
// derived from.
package roaring16
