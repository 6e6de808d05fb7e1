// Package hashing provides seeded 64-bit hash families used to assign keys to
// buckets. Every family derives its key material from a single uint64 seed so
// that the same seed always yields the same digest for the same input.
package hashing

import "encoding/binary"

// Hasher is a streaming 64-bit hash instance.
//
// Write accumulates input, Sum64 finishes the digest without altering the
// state, and Clone returns an independent copy of the receiver's state. A
// clone of an unwritten, freshly seeded instance is the canonical way to get
// a clean hasher for every key.
type Hasher[H any] interface {
	Write(p []byte) (int, error)
	Sum64() uint64
	Clone() H
}

// Keyed is a named hash family that can build seeded instances.
type Keyed[H Hasher[H]] struct {
	name   string
	seeded func(seed uint64) H
}

func NewKeyed[H Hasher[H]](name string, seeded func(seed uint64) H) Keyed[H] {
	return Keyed[H]{name: name, seeded: seeded}
}

func (k Keyed[H]) Name() string {
	return k.name
}

// New returns an instance keyed by seed.
func (k Keyed[H]) New(seed uint64) H {
	return k.seeded(seed)
}

// TileSeed fills key with the little-endian bytes of seed repeated.
// len(key) must be a multiple of 8.
func TileSeed(key []byte, seed uint64) {
	for off := 0; off+8 <= len(key); off += 8 {
		binary.LittleEndian.PutUint64(key[off:], seed)
	}
}

// sum64LE interprets the first 8 bytes of a digest as a little-endian uint64.
func sum64LE(digest []byte) uint64 {
	return binary.LittleEndian.Uint64(digest[:8])
}
