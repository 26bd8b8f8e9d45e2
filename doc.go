// Package jumphash implements Google's Jump Consistent Hash, from
// "A Fast, Minimal Memory, Consistent Hash Algorithm" by John Lamping and
// Eric Veach (http://arxiv.org/abs/1406.2294).
//
// Jump hash maps a 64-bit key and a bucket count N to a bucket index in
// [0, N) with no lookup table and no per-bucket state. Its defining
// property is minimal disruption: growing the bucket count from N to N+1
// moves only about 1/(N+1) of keys, and every key that moves lands in the
// new bucket. The mapping is bit-for-bit reproducible across runs,
// platforms and implementations in other languages, which makes it
// suitable for sharding decisions that multiple systems must agree on.
//
// # Basic Usage
//
// Hashing a pre-derived 64-bit key:
//
//	bucket, err := jumphash.Hash(key, 32)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Hashing string identifiers (keys are first derived with a KeyFunc):
//
//	bucket, err := jumphash.HashString("user:1234", 32, jumphash.XXH3)
//
// Binding the bucket count once so the hot path returns no error:
//
//	h, err := jumphash.NewHasher(32, jumphash.XXH3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	bucket := h.HashString("user:1234")
//
// Routing to named shards, with replica selection:
//
//	c, err := jumphash.NewChooser(jumphash.XXH3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := c.SetBuckets([]string{"shard-a", "shard-b", "shard-c"}); err != nil {
//	    log.Fatal(err)
//	}
//	primary, _ := c.Choose("user:1234")
//	replicas, _ := c.ChooseReplicas("user:1234", 2)
//
// # Bucket count validation
//
// The bucket count must be >= 1 everywhere. Every entry point validates it
// up front and returns errors.ErrInvalidBucketCount (from
// github.com/tamirms/jumphash/errors) before computing anything; there is
// no unchecked mode.
//
// # Concurrency
//
// All functions and methods except Chooser.SetBuckets are safe for
// concurrent use with no synchronization. Each call keeps its generator
// state in locals; nothing is shared or cached between calls.
//
// # Latency
//
// The loop runs O(ln N) iterations in expectation but up to N in the worst
// case, so latency grows with the bucket count. Callers that need a hard
// bound should bound the bucket count they pass in.
//
// # Package Structure
//
//   - Core algorithm: jump.go (Hash)
//   - Key derivation: keyhash.go (KeyFunc, XXH3, XXHash64, Murmur3, FNV1a,
//     HashBytes, HashString)
//   - Fixed-count hashing: hasher.go (Hasher)
//   - Named-bucket routing: chooser.go (Chooser)
//   - Error sentinels: errors/
//   - Embedded generator: internal/lcg (the 64-bit LCG the algorithm is
//     defined over)
package jumphash
