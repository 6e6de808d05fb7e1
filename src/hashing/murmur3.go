package hashing

import "github.com/twmb/murmur3"

var Murmur3 = NewKeyed("murmur3", NewMurmur3)

// Murmur3Hasher is the x64 128-bit MurmurHash3 seeded with the low 32 bits of
// the seed in both lanes. Sum64 returns the first lane.
type Murmur3Hasher struct {
	seed uint64
	buf  buffer
}

func NewMurmur3(seed uint64) *Murmur3Hasher {
	return &Murmur3Hasher{seed: uint64(uint32(seed))}
}

func (m *Murmur3Hasher) Write(p []byte) (int, error) {
	return m.buf.Write(p)
}

func (m *Murmur3Hasher) Sum64() uint64 {
	h1, _ := murmur3.SeedSum128(m.seed, m.seed, m.buf)
	return h1
}

func (m *Murmur3Hasher) Clone() *Murmur3Hasher {
	return &Murmur3Hasher{seed: m.seed, buf: m.buf.clone()}
}
