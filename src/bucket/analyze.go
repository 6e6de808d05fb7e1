package bucket

import (
	"cmp"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/Blackdeer1524/BucketDist/src/pkg/assert"
)

var header = []string{"min", "max", "spread", "mean", "median", "mode", "mode_count", "std_dev"}

// Header names the Analysis fields in the order Fields renders them. The
// caller owns the returned slice.
func Header() []string {
	return slices.Clone(header)
}

// Analysis summarizes the distribution of counts across buckets.
//
// StdDev is the mean absolute deviation from the integer Mean, not a
// standard deviation. The name is kept for compatibility with existing
// reports.
type Analysis struct {
	Min       int
	Max       int
	Spread    int
	Mean      int
	Median    int
	Mode      int
	ModeCount int
	StdDev    float64
}

// Analyze sorts counts in place and summarizes it. Bucket identity is lost
// after the call; pass a copy if it is still needed.
//
// When several count values are equally frequent, Mode is the largest of
// them. Only ModeCount should be relied upon in that case.
func Analyze(counts []int) Analysis {
	assert.Assert(len(counts) > 0, "no buckets to analyze")

	slices.Sort(counts)

	n := len(counts)
	a := Analysis{
		Min:    counts[0],
		Max:    counts[n-1],
		Median: counts[n/2],
	}
	a.Spread = a.Max - a.Min

	sum := 0
	for _, c := range counts {
		sum += c
	}
	a.Mean = sum / n

	a.Mode, a.ModeCount = mode(counts)

	dev := 0.0
	for _, c := range counts {
		dev += math.Abs(float64(c) - float64(a.Mean))
	}
	a.StdDev = dev / float64(n)

	return a
}

type frequency struct {
	value int
	count int
}

// mode expects sorted input, so frequencies are gathered in ascending value
// order before the stable sort by count.
func mode(sorted []int) (value, count int) {
	freqs := make([]frequency, 0, len(sorted))
	for _, c := range sorted {
		if last := len(freqs) - 1; last >= 0 && freqs[last].value == c {
			freqs[last].count++
			continue
		}
		freqs = append(freqs, frequency{value: c, count: 1})
	}

	slices.SortStableFunc(freqs, func(a, b frequency) int {
		return cmp.Compare(a.count, b.count)
	})

	top := freqs[len(freqs)-1]
	return top.value, top.count
}

// Fields renders the analysis in Header order.
func (a Analysis) Fields() []string {
	return []string{
		strconv.Itoa(a.Min),
		strconv.Itoa(a.Max),
		strconv.Itoa(a.Spread),
		strconv.Itoa(a.Mean),
		strconv.Itoa(a.Median),
		strconv.Itoa(a.Mode),
		strconv.Itoa(a.ModeCount),
		strconv.FormatFloat(a.StdDev, 'f', -1, 64),
	}
}

func (a Analysis) String() string {
	return strings.Join(a.Fields(), ",")
}
