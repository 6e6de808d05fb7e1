package epoch

import (
	"time"

	"github.com/Blackdeer1524/BucketDist/src/pkg/utils"
)

// Timings accumulates assignment time per algorithm, remembering the order in
// which algorithms were first seen.
type Timings struct {
	order []string
	total map[string]time.Duration
}

func NewTimings() *Timings {
	return &Timings{total: make(map[string]time.Duration)}
}

func (t *Timings) Add(name string, d time.Duration) {
	if _, ok := t.total[name]; !ok {
		t.order = append(t.order, name)
	}
	t.total[name] += d
}

func (t *Timings) Total(name string) time.Duration {
	return t.total[name]
}

// Average returns the total divided by epochs, or zero when no epoch ran.
func (t *Timings) Average(name string, epochs uint64) time.Duration {
	if epochs == 0 {
		return 0
	}
	return t.total[name] / time.Duration(epochs)
}

// Averages returns per-epoch averages in first-seen order.
func (t *Timings) Averages(epochs uint64) []utils.Pair[string, time.Duration] {
	out := make([]utils.Pair[string, time.Duration], 0, len(t.order))
	for _, name := range t.order {
		out = append(out, utils.Pair[string, time.Duration]{First: name, Second: t.Average(name, epochs)})
	}
	return out
}
