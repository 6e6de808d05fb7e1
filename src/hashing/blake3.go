package hashing

import (
	"github.com/zeebo/blake3"

	"github.com/Blackdeer1524/BucketDist/src/pkg/utils"
)

const blake3KeySize = 32

var Blake3 = NewKeyed("blake3", NewBlake3)

// Blake3Hasher is keyed BLAKE3 truncated to its first 8 output bytes.
type Blake3Hasher struct {
	h *blake3.Hasher
}

func NewBlake3(seed uint64) *Blake3Hasher {
	var key [blake3KeySize]byte
	TileSeed(key[:], seed)

	// NewKeyed only fails on a key of the wrong length
	return &Blake3Hasher{h: utils.Must(blake3.NewKeyed(key[:]))}
}

func (b *Blake3Hasher) Write(p []byte) (int, error) {
	return b.h.Write(p)
}

func (b *Blake3Hasher) Sum64() uint64 {
	var out [blake3KeySize]byte
	return sum64LE(b.h.Sum(out[:0]))
}

func (b *Blake3Hasher) Clone() *Blake3Hasher {
	return &Blake3Hasher{h: b.h.Clone()}
}
