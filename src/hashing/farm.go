package hashing

import farm "github.com/dgryski/go-farm"

var Farm = NewKeyed("farm", NewFarm)

// FarmHasher is FarmHash Hash64WithSeed.
type FarmHasher struct {
	seed uint64
	buf  buffer
}

func NewFarm(seed uint64) *FarmHasher {
	return &FarmHasher{seed: seed}
}

func (f *FarmHasher) Write(p []byte) (int, error) {
	return f.buf.Write(p)
}

func (f *FarmHasher) Sum64() uint64 {
	return farm.Hash64WithSeed(f.buf, f.seed)
}

func (f *FarmHasher) Clone() *FarmHasher {
	return &FarmHasher{seed: f.seed, buf: f.buf.clone()}
}
