package jumphash

import (
	"hash/fnv"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"

	jumperrors "github.com/tamirms/jumphash/errors"
)

// KeyFunc derives the 64-bit jump key from raw key bytes.
//
// Jump hash consumes the key as the seed of its embedded generator, so the
// key should already be well mixed: hashing an identifier (a user ID, a
// URL, a cache key) through one of the provided functions gives uniform
// bucket assignments even when the identifiers themselves are highly
// structured.
//
// Pick one KeyFunc per deployment and keep it fixed — the whole point of
// the algorithm is stable placement, and changing the key derivation
// reshuffles everything.
type KeyFunc func(key []byte) uint64

// Provided key derivations. All are deterministic.
var (
	// XXH3 uses xxHash3-64. The fastest option on modern hardware and
	// the recommended default.
	XXH3 KeyFunc = xxh3.Hash

	// XXHash64 uses the original 64-bit xxHash.
	XXHash64 KeyFunc = xxhash.Sum64

	// Murmur3 uses 64 bits of MurmurHash3's 128-bit output.
	Murmur3 KeyFunc = murmur3.Sum64

	// FNV1a uses the standard library's 64-bit FNV-1a. Slower than the
	// others but dependency-free for callers that re-derive keys in
	// other environments.
	FNV1a KeyFunc = fnv1a64
)

func fnv1a64(key []byte) uint64 {
	h := fnv.New64a()
	h.Write(key)
	return h.Sum64()
}

// HashBytes derives a jump key from key using fn and returns its bucket
// index in [0, buckets). Same strict validation as Hash; a nil fn returns
// errors.ErrNilKeyFunc.
func HashBytes(key []byte, buckets int32, fn KeyFunc) (int32, error) {
	if fn == nil {
		return 0, jumperrors.ErrNilKeyFunc
	}
	if buckets < 1 {
		return 0, jumperrors.ErrInvalidBucketCount
	}
	return jumpHash(fn(key), buckets), nil
}

// HashString is HashBytes for string keys.
func HashString(key string, buckets int32, fn KeyFunc) (int32, error) {
	return HashBytes([]byte(key), buckets, fn)
}
