package jumphash

import (
	jumperrors "github.com/tamirms/jumphash/errors"
)

// Chooser maps keys to a caller-supplied list of named buckets (shard,
// node or partition identifiers). The bucket for a key depends only on the
// key, the key function and the list length, so appending a bucket moves
// roughly 1/(N+1) of keys, all of them onto the new bucket, and no key
// ever moves between pre-existing buckets.
//
// Bucket identity is positional: reordering the list reassigns keys.
// Grow the list by appending and shrink it by truncating the tail.
//
// Concurrent reads are safe; SetBuckets must not race with readers.
type Chooser struct {
	fn      KeyFunc
	buckets []string
}

// NewChooser returns a Chooser with an empty bucket set. fn must be
// non-nil.
func NewChooser(fn KeyFunc) (*Chooser, error) {
	if fn == nil {
		return nil, jumperrors.ErrNilKeyFunc
	}
	return &Chooser{fn: fn}, nil
}

// SetBuckets replaces the bucket list. The slice is copied; the caller may
// reuse it. An empty list returns errors.ErrNoBuckets and leaves the
// previous list in place.
func (c *Chooser) SetBuckets(buckets []string) error {
	if len(buckets) == 0 {
		return jumperrors.ErrNoBuckets
	}
	c.buckets = append(c.buckets[:0:0], buckets...)
	return nil
}

// Buckets returns the current bucket list. The returned slice is shared;
// callers must not modify it.
func (c *Chooser) Buckets() []string {
	return c.buckets
}

// Choose returns the bucket for key. SetBuckets must have been called with
// a non-empty list; otherwise Choose returns "" and
// errors.ErrNoBuckets.
func (c *Chooser) Choose(key string) (string, error) {
	if len(c.buckets) == 0 {
		return "", jumperrors.ErrNoBuckets
	}
	return c.buckets[jumpHash(c.fn([]byte(key)), int32(len(c.buckets)))], nil
}

// ChooseReplicas returns n distinct buckets for key, primary first. The
// selection is deterministic: after each pick the chosen bucket is removed
// from the candidate set and the key is re-derived with a xorshift
// multiply, so replica sets stay stable as unrelated buckets come and go.
// Returns errors.ErrTooManyReplicas if n exceeds the bucket count.
func (c *Chooser) ChooseReplicas(key string, n int) ([]string, error) {
	if n > len(c.buckets) {
		return nil, jumperrors.ErrTooManyReplicas
	}
	if n <= 0 {
		return nil, nil
	}

	hkey := c.fn([]byte(key))

	candidates := make([]int, len(c.buckets))
	for i := range candidates {
		candidates[i] = i
	}

	replicas := make([]string, n)
	for i := 0; i < n; i++ {
		b := jumpHash(hkey, int32(len(candidates)))
		replicas[i] = c.buckets[candidates[b]]

		// Swap-remove the chosen candidate, then reseed so the next
		// pick is independent of this one.
		candidates[b] = candidates[len(candidates)-1]
		candidates = candidates[:len(candidates)-1]
		hkey = xorshiftMult64(hkey)
	}
	return replicas, nil
}

// xorshiftMult64 is the 64-bit xorshift-multiply generator from
// http://vigna.di.unimi.it/ftp/papers/xorshift.pdf, used only to derive
// per-replica keys. It is not part of the jump hash contract.
func xorshiftMult64(x uint64) uint64 {
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	return x * 2685821657736338717
}
