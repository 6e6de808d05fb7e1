package hashing

import (
	"golang.org/x/crypto/blake2b"

	"github.com/Blackdeer1524/BucketDist/src/pkg/utils"
)

var Blake2b = NewKeyed("blake2b", NewBlake2b)

// Blake2bHasher is keyed BLAKE2b-256 truncated to its first 8 output bytes.
// Keyed blake2b digests cannot be marshaled, so input is buffered and the MAC
// is computed on Sum64.
type Blake2bHasher struct {
	key [blake2b.Size256]byte
	buf buffer
}

func NewBlake2b(seed uint64) *Blake2bHasher {
	b := &Blake2bHasher{}
	TileSeed(b.key[:], seed)
	return b
}

func (b *Blake2bHasher) Write(p []byte) (int, error) {
	return b.buf.Write(p)
}

func (b *Blake2bHasher) Sum64() uint64 {
	h := utils.Must(blake2b.New256(b.key[:]))
	_, _ = h.Write(b.buf)

	var out [blake2b.Size256]byte
	return sum64LE(h.Sum(out[:0]))
}

func (b *Blake2bHasher) Clone() *Blake2bHasher {
	return &Blake2bHasher{key: b.key, buf: b.buf.clone()}
}
