//go:build amd64

package roaring16

import "golang.org/x/sys/cpu"

// intersectSortedArrays writes the sorted intersection of a and b into
// dst and returns the number of items written, just like the portable
// merge in intersect_generic.go. On amd64 with SSE4.1 available, galloping
// search is used to skip runs where one array's values fall far below
// the other's, which pays off on the skewed operand sizes a block-level
// bitmap index tends to produce; without it, this falls back to the
// identical two-pointer merge. Both paths must produce bit-identical
// output -- the gate only changes how fast the answer arrives, never
// what it is.
func intersectSortedArrays(a, b, dst []uint16) int {
	if !cpu.X86.HasSSE41 || len(a) == 0 || len(b) == 0 {
		return intersectSortedArraysScalar(a, b, dst)
	}
	return intersectSortedArraysGalloping(a, b, dst)
}

func intersectSortedArraysScalar(a, b, dst []uint16) int {
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

// intersectSortedArraysGalloping keeps the shorter array as the
// "needle" side and gallops (doubling-stride search, then binary
// search to bracket) through the longer array for each needle value --
// the standard trick for intersecting arrays of very different sizes.
func intersectSortedArraysGalloping(a, b, dst []uint16) int {
	if len(a) > len(b) {
		a, b = b, a
	}
	n := 0
	j := 0
	for i := 0; i < len(a); i++ {
		x := a[i]
		if j >= len(b) {
			break
		}
		if b[j] > x {
			continue
		}
		step := 1
		k := j
		for k < len(b) && b[k] < x {
			j = k
			k += step
			step *= 2
		}
		hi := k
		if hi > len(b) {
			hi = len(b)
		}
		lo := j
		for lo < hi {
			mid := (lo + hi) / 2
			if b[mid] < x {
				lo = mid + 1
			} else {
				hi = mid
			}
		}
		j = lo
		if j < len(b) && b[j] == x {
			dst[n] = x
			n++
			j++
		}
	}
	return n
}
