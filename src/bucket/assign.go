// Package bucket maps keys to buckets and summarizes how evenly a pass filled
// them.
package bucket

import (
	"math/bits"

	"github.com/Blackdeer1524/BucketDist/src/hashing"
	"github.com/Blackdeer1524/BucketDist/src/pkg/pubkey"
)

// Hasher is the part of a hash instance Assign consumes.
type Hasher interface {
	Write(p []byte) (int, error)
	Sum64() uint64
}

// Assign returns floor(buckets * h / 2^64) where h is the digest of key.
// The result is always in [0, buckets). h must be fresh: Assign writes to it.
func Assign[H Hasher](buckets int, h H, key pubkey.Pubkey) int {
	_, _ = h.Write(key[:])
	return Index(buckets, h.Sum64())
}

// Index scales a 64-bit digest into [0, buckets) using the high word of the
// 128-bit product.
func Index(buckets int, digest uint64) int {
	hi, _ := bits.Mul64(uint64(buckets), digest)
	return int(hi)
}

// Fill assigns every key with its own clone of proto and increments the
// matching counter. counts must be zeroed by the caller.
func Fill[H hashing.Hasher[H]](counts []int, proto H, keys []pubkey.Pubkey) {
	for _, key := range keys {
		counts[Assign(len(counts), proto.Clone(), key)]++
	}
}
