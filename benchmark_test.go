package jumphash

import (
	"fmt"
	"testing"
)

var benchSink int32

func benchmarkHashN(b *testing.B, buckets int32) {
	rng := newTestRNG(b)
	keys := make([]uint64, 1024)
	for i := range keys {
		keys[i] = rng.Uint64()
	}

	b.ReportAllocs()
	b.ResetTimer()
	var sink int32
	for i := 0; i < b.N; i++ {
		v, _ := Hash(keys[i&1023], buckets)
		sink += v
	}
	benchSink = sink
}

func BenchmarkHash8(b *testing.B)    { benchmarkHashN(b, 8) }
func BenchmarkHash128(b *testing.B)  { benchmarkHashN(b, 128) }
func BenchmarkHash8192(b *testing.B) { benchmarkHashN(b, 8192) }

func BenchmarkHashString(b *testing.B) {
	for _, kf := range keyFuncs {
		b.Run(kf.name, func(b *testing.B) {
			keys := make([]string, 1024)
			for i := range keys {
				keys[i] = fmt.Sprintf("object/%d", i)
			}

			b.ReportAllocs()
			b.ResetTimer()
			var sink int32
			for i := 0; i < b.N; i++ {
				v, _ := HashString(keys[i&1023], 128, kf.fn)
				sink += v
			}
			benchSink = sink
		})
	}
}

func BenchmarkHasher(b *testing.B) {
	h, err := NewHasher(128, XXH3)
	if err != nil {
		b.Fatal(err)
	}
	keys := make([][]byte, 1024)
	for i := range keys {
		keys[i] = []byte(fmt.Sprintf("object/%d", i))
	}

	b.ReportAllocs()
	b.ResetTimer()
	var sink int32
	for i := 0; i < b.N; i++ {
		sink += h.Hash(keys[i&1023])
	}
	benchSink = sink
}

func BenchmarkChooserChoose(b *testing.B) {
	c, err := NewChooser(XXH3)
	if err != nil {
		b.Fatal(err)
	}
	buckets := make([]string, 64)
	for i := range buckets {
		buckets[i] = fmt.Sprintf("shard-%03d", i)
	}
	if err := c.SetBuckets(buckets); err != nil {
		b.Fatal(err)
	}
	keys := make([]string, 1024)
	for i := range keys {
		keys[i] = fmt.Sprintf("object/%d", i)
	}

	b.ReportAllocs()
	b.ResetTimer()
	var n int
	for i := 0; i < b.N; i++ {
		s, _ := c.Choose(keys[i&1023])
		n += len(s)
	}
	if n < 0 {
		b.Fatal("impossible")
	}
}
