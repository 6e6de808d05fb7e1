package epoch

import (
	"time"

	"github.com/go-faster/errors"

	"github.com/Blackdeer1524/BucketDist/src/bucket"
	"github.com/Blackdeer1524/BucketDist/src/hashing"
	"github.com/Blackdeer1524/BucketDist/src/pkg/pubkey"
)

var ErrUnknownAlgorithm = errors.New("unknown hash algorithm")

// Trial runs one assignment pass per seed for a single hash family.
type Trial interface {
	Name() string
	// Pass fills counts with the keys' buckets under seed and returns how
	// long the assignment took. counts must be zeroed.
	Pass(seed uint64, keys []pubkey.Pubkey, counts []int) time.Duration
}

type trial[H hashing.Hasher[H]] struct {
	family hashing.Keyed[H]
}

// NewTrial specializes the assignment loop for the family's hasher type.
func NewTrial[H hashing.Hasher[H]](family hashing.Keyed[H]) Trial {
	return trial[H]{family: family}
}

func (t trial[H]) Name() string {
	return t.family.Name()
}

func (t trial[H]) Pass(seed uint64, keys []pubkey.Pubkey, counts []int) time.Duration {
	proto := t.family.New(seed)

	start := time.Now()
	bucket.Fill(counts, proto, keys)
	return time.Since(start)
}

var registry = []Trial{
	NewTrial(hashing.Blake3),
	NewTrial(hashing.Blake2b),
	NewTrial(hashing.SipHash24),
	NewTrial(hashing.SipHash13),
	NewTrial(hashing.Murmur3),
	NewTrial(hashing.XXHash),
	NewTrial(hashing.XXH3),
	NewTrial(hashing.Farm),
}

// Registered lists every known algorithm name.
func Registered() []string {
	names := make([]string, len(registry))
	for i, t := range registry {
		names[i] = t.Name()
	}
	return names
}

// Lookup resolves names to trials, preserving their order.
func Lookup(names []string) ([]Trial, error) {
	trials := make([]Trial, 0, len(names))

	for _, name := range names {
		t, ok := find(name)
		if !ok {
			return nil, errors.Wrapf(ErrUnknownAlgorithm, "%q", name)
		}
		trials = append(trials, t)
	}

	return trials, nil
}

func find(name string) (Trial, bool) {
	for _, t := range registry {
		if t.Name() == name {
			return t, true
		}
	}
	return nil, false
}
