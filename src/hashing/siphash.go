package hashing

import (
	"github.com/dchest/siphash"
	sip13 "github.com/dgryski/go-sip13"
)

var (
	SipHash24 = NewKeyed("siphash24", NewSipHash24)
	SipHash13 = NewKeyed("siphash13", NewSipHash13)
)

// SipHash24Hasher is SipHash-2-4 with both key halves set to the seed.
type SipHash24Hasher struct {
	k0, k1 uint64
	buf    buffer
}

func NewSipHash24(seed uint64) *SipHash24Hasher {
	return &SipHash24Hasher{k0: seed, k1: seed}
}

func (s *SipHash24Hasher) Write(p []byte) (int, error) {
	return s.buf.Write(p)
}

func (s *SipHash24Hasher) Sum64() uint64 {
	return siphash.Hash(s.k0, s.k1, s.buf)
}

func (s *SipHash24Hasher) Clone() *SipHash24Hasher {
	return &SipHash24Hasher{k0: s.k0, k1: s.k1, buf: s.buf.clone()}
}

// SipHash13Hasher is SipHash-1-3 with both key halves set to the seed.
type SipHash13Hasher struct {
	k0, k1 uint64
	buf    buffer
}

func NewSipHash13(seed uint64) *SipHash13Hasher {
	return &SipHash13Hasher{k0: seed, k1: seed}
}

func (s *SipHash13Hasher) Write(p []byte) (int, error) {
	return s.buf.Write(p)
}

func (s *SipHash13Hasher) Sum64() uint64 {
	return sip13.Sum64(s.k0, s.k1, s.buf)
}

func (s *SipHash13Hasher) Clone() *SipHash13Hasher {
	return &SipHash13Hasher{k0: s.k0, k1: s.k1, buf: s.buf.clone()}
}
