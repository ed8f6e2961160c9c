//go:build !amd64

package roaring16

// intersectSortedArrays writes the sorted intersection of a and b
// (both strictly ascending, no duplicates) into dst and returns the
// number of items written. dst must have room for at least
// min(len(a), len(b)) items. This is the portable two-pointer merge;
// see intersect_amd64.go for the SIMD-gated fast path, which must
// always agree with this function bit-for-bit.
func intersectSortedArrays(a, b, dst []uint16) int {
	i, j, n := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			dst[n] = a[i]
			n++
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return n
}
