package hashing

import (
	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/xxh3"
)

var (
	XXHash = NewKeyed("xxhash", NewXXHash)
	XXH3   = NewKeyed("xxh3", NewXXH3)
)

// XXHashHasher is seeded XXH64.
type XXHashHasher struct {
	d *xxhash.Digest
}

func NewXXHash(seed uint64) *XXHashHasher {
	return &XXHashHasher{d: xxhash.NewWithSeed(seed)}
}

func (x *XXHashHasher) Write(p []byte) (int, error) {
	return x.d.Write(p)
}

func (x *XXHashHasher) Sum64() uint64 {
	return x.d.Sum64()
}

// Clone copies the digest by value; it holds no references.
func (x *XXHashHasher) Clone() *XXHashHasher {
	d := *x.d
	return &XXHashHasher{d: &d}
}

// XXH3Hasher is seeded XXH3-64.
type XXH3Hasher struct {
	seed uint64
	buf  buffer
}

func NewXXH3(seed uint64) *XXH3Hasher {
	return &XXH3Hasher{seed: seed}
}

func (x *XXH3Hasher) Write(p []byte) (int, error) {
	return x.buf.Write(p)
}

func (x *XXH3Hasher) Sum64() uint64 {
	return xxh3.HashSeed(x.buf, x.seed)
}

func (x *XXH3Hasher) Clone() *XXH3Hasher {
	return &XXH3Hasher{seed: x.seed, buf: x.buf.clone()}
}
