package roaring16

import "testing"

// Benchmarks grounded on original_source/benchmark.c's coverage of
// add/contains/intersect across the three encodings.

func BenchmarkAddArray(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		c := New()
		for x := 0; x < lowCutoff; x++ {
			c.Add(uint16(x))
		}
	}
}

func BenchmarkAddBitset(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		c := New()
		for x := 0; x < lowCutoff+1000; x++ {
			c.Add(uint16(x))
		}
	}
}

func BenchmarkAddInvertedArray(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		c := New()
		for x := 0; x < highCutoff+1000; x++ {
			c.Add(uint16(x))
		}
	}
}

func BenchmarkAddAscendingArray(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		c := New()
		for x := 0; x < lowCutoff; x++ {
			c.AddAscending(uint16(x))
		}
	}
}

func BenchmarkContainsArray(b *testing.B) {
	c := New()
	for x := 0; x < lowCutoff; x++ {
		c.Add(uint16(x))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Contains(uint16(i % lowCutoff))
	}
}

func BenchmarkContainsBitset(b *testing.B) {
	c := New()
	for x := 0; x < lowCutoff+1000; x++ {
		c.Add(uint16(x))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Contains(uint16(i % (lowCutoff + 1000)))
	}
}

func BenchmarkContainsInvertedArray(b *testing.B) {
	c := New()
	for x := 0; x < highCutoff+1000; x++ {
		c.Add(uint16(x))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Contains(uint16(i % (highCutoff + 1000)))
	}
}

func BenchmarkIntersectArrayArray(b *testing.B) {
	a := New()
	for x := 0; x < lowCutoff; x += 2 {
		a.Add(uint16(x))
	}
	c := New()
	for x := 0; x < lowCutoff; x += 3 {
		c.Add(uint16(x))
	}
	dst := New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Intersect(c, dst)
	}
}

func BenchmarkIntersectBitsetBitset(b *testing.B) {
	a := New()
	for x := 0; x < lowCutoff+2000; x += 2 {
		a.Add(uint16(x))
	}
	c := New()
	for x := 0; x < lowCutoff+2000; x += 3 {
		c.Add(uint16(x))
	}
	dst := New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Intersect(c, dst)
	}
}

func BenchmarkInvertBitset(b *testing.B) {
	s := New()
	for x := 0; x < lowCutoff+2000; x++ {
		s.Add(uint16(x))
	}
	dst := New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Invert(dst)
	}
}
