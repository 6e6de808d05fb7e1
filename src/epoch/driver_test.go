package epoch

import (
	"bytes"
	"context"
	"math"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Blackdeer1524/BucketDist/src/bucket"
	"github.com/Blackdeer1524/BucketDist/src/hashing"
	"github.com/Blackdeer1524/BucketDist/src/pkg/pubkey"
	"github.com/Blackdeer1524/BucketDist/src/report"
)

const testBuckets = 100

type row struct {
	epoch    uint64
	analysis bucket.Analysis
}

type recorder struct {
	headers   int
	rows      []row
	summaries []string
	flushed   bool
}

func (r *recorder) Header() error {
	r.headers++
	return nil
}

func (r *recorder) Row(epoch uint64, a bucket.Analysis) error {
	r.rows = append(r.rows, row{epoch: epoch, analysis: a})
	return nil
}

func (r *recorder) Summary(algorithm string, _ time.Duration) error {
	r.summaries = append(r.summaries, algorithm)
	return nil
}

func (r *recorder) Flush() error {
	r.flushed = true
	return nil
}

// permutationHasher sends the key whose first byte is i to bucket i
// regardless of the seed.
type permutationHasher struct {
	first int
}

func (p *permutationHasher) Write(b []byte) (int, error) {
	if p.first < 0 && len(b) > 0 {
		p.first = int(b[0])
	}
	return len(b), nil
}

func (p *permutationHasher) Sum64() uint64 {
	return uint64(p.first) * (math.MaxUint64/testBuckets + 1)
}

func (p *permutationHasher) Clone() *permutationHasher {
	c := *p
	return &c
}

var permutation = hashing.NewKeyed("permutation", func(uint64) *permutationHasher {
	return &permutationHasher{first: -1}
})

func randomKeys(n int) []pubkey.Pubkey {
	r := rand.New(rand.NewSource(42))
	keys := make([]pubkey.Pubkey, n)
	for i := range keys {
		_, _ = r.Read(keys[i][:])
	}
	return keys
}

func newDriver(t *testing.T, epochs uint64, trials []Trial, rep report.Reporter) *Driver {
	t.Helper()
	d, err := NewDriver(testBuckets, epochs, trials, rep, zap.NewNop().Sugar())
	require.NoError(t, err)
	return d
}

func TestDriver_Run(t *testing.T) {
	t.Run("perfect permutation", func(t *testing.T) {
		keys := make([]pubkey.Pubkey, testBuckets)
		for i := range keys {
			keys[i][0] = byte(i)
		}

		rec := &recorder{}
		d := newDriver(t, 1, []Trial{NewTrial(permutation)}, rec)

		timings, err := d.Run(context.Background(), keys)
		require.NoError(t, err)

		require.Len(t, rec.rows, 1)
		assert.Equal(t, uint64(0), rec.rows[0].epoch)
		assert.Equal(t, "1,1,0,1,1,1,100,0", rec.rows[0].analysis.String())
		assert.Equal(t, []string{"permutation"}, rec.summaries)
		assert.GreaterOrEqual(t, timings.Total("permutation"), time.Duration(0))
	})

	t.Run("one row per epoch and trial in evaluation order", func(t *testing.T) {
		keys := randomKeys(1000)
		trials, err := Lookup([]string{"blake3", "xxhash"})
		require.NoError(t, err)

		rec := &recorder{}
		d := newDriver(t, 5, trials, rec)

		_, err = d.Run(context.Background(), keys)
		require.NoError(t, err)

		assert.Equal(t, 1, rec.headers)
		assert.True(t, rec.flushed)
		require.Len(t, rec.rows, 10)
		for i, r := range rec.rows {
			assert.Equal(t, uint64(i/2), r.epoch)
			assert.Equal(t, 10, r.analysis.Mean)
			assert.LessOrEqual(t, r.analysis.Min, r.analysis.Median)
			assert.LessOrEqual(t, r.analysis.Median, r.analysis.Max)
		}
		assert.Equal(t, []string{"blake3", "xxhash"}, rec.summaries)
	})

	t.Run("reproducible across runs", func(t *testing.T) {
		keys := randomKeys(500)
		trials, err := Lookup([]string{"blake3"})
		require.NoError(t, err)

		first, second := &recorder{}, &recorder{}
		_, err = newDriver(t, 3, trials, first).Run(context.Background(), keys)
		require.NoError(t, err)
		_, err = newDriver(t, 3, trials, second).Run(context.Background(), keys)
		require.NoError(t, err)

		assert.Equal(t, first.rows, second.rows)
	})

	t.Run("seed changes distribution", func(t *testing.T) {
		keys := randomKeys(2000)
		counts0 := make([]int, testBuckets)
		counts1 := make([]int, testBuckets)

		NewTrial(hashing.Blake3).Pass(0, keys, counts0)
		NewTrial(hashing.Blake3).Pass(1, keys, counts1)

		assert.NotEqual(t, counts0, counts1)
	})

	t.Run("csv output", func(t *testing.T) {
		keys := randomKeys(300)
		trials, err := Lookup([]string{"blake3"})
		require.NoError(t, err)

		var buf bytes.Buffer
		_, err = newDriver(t, 4, trials, report.NewCSV(&buf)).Run(context.Background(), keys)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		require.Len(t, lines, 6)
		assert.Equal(t, "epoch,min,max,spread,mean,median,mode,mode_count,std_dev", lines[0])
		for i, l := range lines[1:5] {
			fields := strings.Split(l, ",")
			require.Len(t, fields, 9)
			assert.Equal(t, []string{string(rune('0' + i))}, fields[:1])
			assert.Equal(t, "3", fields[4])
		}
		assert.True(t, strings.HasPrefix(lines[5], "blake3: "))
	})

	t.Run("cancelled context stops between epochs", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		rec := &recorder{}
		trials, err := Lookup([]string{"blake3"})
		require.NoError(t, err)

		_, err = newDriver(t, 10, trials, rec).Run(ctx, randomKeys(10))
		require.Error(t, err)
		assert.True(t, errors.Is(err, context.Canceled))
		assert.Empty(t, rec.rows)
		assert.Empty(t, rec.summaries)
	})

	t.Run("zero epochs", func(t *testing.T) {
		rec := &recorder{}
		trials, err := Lookup([]string{"blake3"})
		require.NoError(t, err)

		timings, err := newDriver(t, 0, trials, rec).Run(context.Background(), randomKeys(10))
		require.NoError(t, err)
		assert.Empty(t, rec.rows)
		assert.Empty(t, timings.Averages(0))
	})
}

func TestLookup(t *testing.T) {
	t.Run("known names keep order", func(t *testing.T) {
		trials, err := Lookup([]string{"murmur3", "blake3"})
		require.NoError(t, err)
		require.Len(t, trials, 2)
		assert.Equal(t, "murmur3", trials[0].Name())
		assert.Equal(t, "blake3", trials[1].Name())
	})

	t.Run("sip hash variants", func(t *testing.T) {
		trials, err := Lookup([]string{"siphash13", "siphash24"})
		require.NoError(t, err)
		require.Len(t, trials, 2)
		assert.Equal(t, "siphash13", trials[0].Name())
		assert.Contains(t, Registered(), "siphash13")
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := Lookup([]string{"blake3", "ahash"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnknownAlgorithm))
	})

	t.Run("every registered family assigns in range", func(t *testing.T) {
		keys := randomKeys(1000)
		trials, err := Lookup(Registered())
		require.NoError(t, err)

		for _, tr := range trials {
			counts := make([]int, testBuckets)
			tr.Pass(7, keys, counts)

			total := 0
			for _, c := range counts {
				total += c
			}
			assert.Equal(t, len(keys), total, tr.Name())
		}
	})
}

func TestTimings(t *testing.T) {
	tm := NewTimings()
	tm.Add("b", 3*time.Millisecond)
	tm.Add("a", time.Millisecond)
	tm.Add("b", 3*time.Millisecond)

	assert.Equal(t, 6*time.Millisecond, tm.Total("b"))
	assert.Equal(t, 2*time.Millisecond, tm.Average("b", 3))
	assert.Equal(t, time.Duration(0), tm.Average("b", 0))

	avgs := tm.Averages(2)
	require.Len(t, avgs, 2)
	name, d := avgs[0].Destruct()
	assert.Equal(t, "b", name)
	assert.Equal(t, 3*time.Millisecond, d)
	assert.Equal(t, "a", avgs[1].First)
}
