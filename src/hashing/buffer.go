package hashing

import "slices"

// buffer accumulates input for families whose libraries only expose a
// one-shot digest function.
type buffer []byte

func (b *buffer) Write(p []byte) (int, error) {
	*b = append(*b, p...)
	return len(p), nil
}

func (b buffer) clone() buffer {
	return slices.Clone(b)
}
