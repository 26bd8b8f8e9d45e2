package jumphash

import (
	jumperrors "github.com/tamirms/jumphash/errors"
)

// Hasher binds a fixed bucket count and key derivation, moving validation
// to construction so the per-key methods stay error-free.
//
// A Hasher is immutable after construction and safe for concurrent use:
// every call owns its own local generator state and no fields are mutated.
type Hasher struct {
	buckets int32
	fn      KeyFunc
}

// NewHasher returns a Hasher assigning keys to buckets in [0, buckets).
// buckets must be >= 1 and fn must be non-nil.
func NewHasher(buckets int32, fn KeyFunc) (*Hasher, error) {
	if buckets < 1 {
		return nil, jumperrors.ErrInvalidBucketCount
	}
	if fn == nil {
		return nil, jumperrors.ErrNilKeyFunc
	}
	return &Hasher{buckets: buckets, fn: fn}, nil
}

// Buckets returns the bucket count the hasher assigns into.
func (h *Hasher) Buckets() int32 {
	return h.buckets
}

// Hash returns the bucket index for key.
func (h *Hasher) Hash(key []byte) int32 {
	return jumpHash(h.fn(key), h.buckets)
}

// HashString returns the bucket index for a string key.
func (h *Hasher) HashString(key string) int32 {
	return jumpHash(h.fn([]byte(key)), h.buckets)
}

// HashUint64 returns the bucket index for a pre-derived 64-bit key,
// bypassing the key function.
func (h *Hasher) HashUint64(key uint64) int32 {
	return jumpHash(key, h.buckets)
}
