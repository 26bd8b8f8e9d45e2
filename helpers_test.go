package jumphash

import (
	"encoding/binary"
	"hash/fnv"
	"math/rand/v2"
	"testing"
)

// Named seeds for deterministic reproduction.
const (
	testSeed1 = 0x1234567890ABCDEF
	testSeed2 = 0xFEDCBA9876543210
)

// newTestRNG returns a deterministic RNG derived from the test name, so
// every test sees a stable key stream without tests sharing one.
func newTestRNG(t testing.TB) *rand.Rand {
	t.Helper()
	h := fnv.New128a()
	h.Write([]byte(t.Name()))
	sum := h.Sum(nil)
	s1 := binary.LittleEndian.Uint64(sum[:8])
	s2 := binary.LittleEndian.Uint64(sum[8:])
	return rand.New(rand.NewPCG(testSeed1^s1, testSeed2^s2))
}

// mustHash fails the test on a validation error; for call sites where the
// inputs are known-valid and the error path is just noise.
func mustHash(t testing.TB, key uint64, buckets int32) int32 {
	t.Helper()
	b, err := Hash(key, buckets)
	if err != nil {
		t.Fatalf("Hash(0x%X, %d): %v", key, buckets, err)
	}
	return b
}
