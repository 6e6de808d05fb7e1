// Package epoch drives the per-seed evaluation of hash families over a fixed
// key set.
package epoch

import (
	"context"

	"github.com/go-faster/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/Blackdeer1524/BucketDist/src"
	"github.com/Blackdeer1524/BucketDist/src/bucket"
	"github.com/Blackdeer1524/BucketDist/src/pkg/pubkey"
	"github.com/Blackdeer1524/BucketDist/src/report"
)

const meterName = "github.com/Blackdeer1524/BucketDist/src/epoch"

type Driver struct {
	buckets int
	epochs  uint64
	trials  []Trial

	report report.Reporter
	log    src.Logger

	passDuration metric.Int64Histogram
}

func NewDriver(
	buckets int,
	epochs uint64,
	trials []Trial,
	rep report.Reporter,
	log src.Logger,
) (*Driver, error) {
	hist, err := otel.Meter(meterName).Int64Histogram(
		"bucketdist.pass.duration",
		metric.WithUnit("us"),
		metric.WithDescription("Time to assign every key to a bucket for one seed"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create pass duration histogram")
	}

	return &Driver{
		buckets:      buckets,
		epochs:       epochs,
		trials:       trials,
		report:       rep,
		log:          log,
		passDuration: hist,
	}, nil
}

// Run evaluates every trial for each epoch in [0, epochs) and reports one row
// per pair, followed by the per-epoch average time of each trial. The
// context is only consulted between epochs.
func (d *Driver) Run(ctx context.Context, keys []pubkey.Pubkey) (*Timings, error) {
	timings := NewTimings()

	if err := d.report.Header(); err != nil {
		return nil, err
	}

	for epoch := uint64(0); epoch < d.epochs; epoch++ {
		if err := ctx.Err(); err != nil {
			return timings, errors.Wrapf(err, "stopped before epoch %d", epoch)
		}

		for _, t := range d.trials {
			counts := make([]int, d.buckets)
			elapsed := t.Pass(epoch, keys, counts)

			if err := d.report.Row(epoch, bucket.Analyze(counts)); err != nil {
				return timings, err
			}

			timings.Add(t.Name(), elapsed)
			d.passDuration.Record(
				ctx,
				elapsed.Microseconds(),
				metric.WithAttributes(attribute.String("algorithm", t.Name())),
			)
		}
	}

	for _, avg := range timings.Averages(d.epochs) {
		name, perEpoch := avg.Destruct()
		d.log.Debugf("%s: %d epochs, %s per epoch", name, d.epochs, perEpoch)

		if err := d.report.Summary(name, perEpoch); err != nil {
			return timings, err
		}
	}

	if err := d.report.Flush(); err != nil {
		return timings, err
	}

	return timings, nil
}
