// Package report renders per-epoch analyses and timing summaries.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/go-faster/errors"

	"github.com/Blackdeer1524/BucketDist/src/bucket"
)

// Reporter receives results in the order they are produced.
type Reporter interface {
	Header() error
	Row(epoch uint64, a bucket.Analysis) error
	Summary(algorithm string, perEpoch time.Duration) error
	Flush() error
}

// CSV writes rows as comma separated values followed by "name: µs"
// summary lines.
type CSV struct {
	out io.Writer
	w   *csv.Writer
	row []string
}

var _ Reporter = &CSV{}

func NewCSV(out io.Writer) *CSV {
	return &CSV{
		out: out,
		w:   csv.NewWriter(out),
		row: make([]string, 0, len(bucket.Header())+1),
	}
}

func (c *CSV) Header() error {
	header := append([]string{"epoch"}, bucket.Header()...)
	if err := c.w.Write(header); err != nil {
		return errors.Wrap(err, "write header")
	}
	return nil
}

func (c *CSV) Row(epoch uint64, a bucket.Analysis) error {
	c.row = append(c.row[:0], strconv.FormatUint(epoch, 10))
	c.row = append(c.row, a.Fields()...)

	if err := c.w.Write(c.row); err != nil {
		return errors.Wrapf(err, "write epoch %d", epoch)
	}
	return nil
}

// Summary flushes pending rows first so the summary follows them.
func (c *CSV) Summary(algorithm string, perEpoch time.Duration) error {
	if err := c.Flush(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(c.out, "%s: %d\n", algorithm, perEpoch.Microseconds()); err != nil {
		return errors.Wrapf(err, "write %s summary", algorithm)
	}
	return nil
}

func (c *CSV) Flush() error {
	c.w.Flush()
	if err := c.w.Error(); err != nil {
		return errors.Wrap(err, "flush csv")
	}
	return nil
}
