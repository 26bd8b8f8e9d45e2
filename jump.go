package jumphash

import (
	jumperrors "github.com/tamirms/jumphash/errors"
	"github.com/tamirms/jumphash/internal/lcg"
)

// Hash maps a 64-bit key to a bucket index in [0, buckets).
//
// The mapping is the jump consistent hash of Lamping & Veach
// (http://arxiv.org/abs/1406.2294): when the bucket count grows from N to
// N+1, only about 1/(N+1) of keys move, and every key that moves lands in
// the new bucket N. The function is pure — identical (key, buckets) inputs
// produce identical output across runs and platforms.
//
// buckets must be >= 1; otherwise Hash returns
// errors.ErrInvalidBucketCount before performing any computation. Keys are
// unconstrained.
func Hash(key uint64, buckets int32) (int32, error) {
	if buckets < 1 {
		return 0, jumperrors.ErrInvalidBucketCount
	}
	return jumpHash(key, buckets), nil
}

// jumpHash is the core loop. Callers must have validated buckets >= 1.
//
// The arithmetic here is the cross-language contract: the LCG state wraps
// modulo 2^64, the sample is shifted right by 33 bits as an unsigned
// value, and the division is IEEE-754 double precision. Any deviation
// (single-precision floats, an integer division shortcut, a different
// generator) silently diverges from other implementations at some inputs.
func jumpHash(key uint64, buckets int32) int32 {
	var b int64 = -1
	var j int64

	state := lcg.NewStream(key)
	for j < int64(buckets) {
		b = j
		r := state.Next()
		j = int64(float64(b+1) * (float64(int64(1)<<31) / float64((r>>33)+1)))
	}
	return int32(b)
}
