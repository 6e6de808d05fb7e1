// Package dataset loads the list of public keys a run distributes over
// buckets.
package dataset

import (
	"bufio"
	"io"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/spf13/afero"

	"github.com/Blackdeer1524/BucketDist/src/pkg/pubkey"
)

// DefaultPath is where the dataset is looked up when none is configured.
const DefaultPath = "./addresses.json"

const readBufSize = 64 * 1024

var (
	ErrNotArray     = errors.New("dataset must be a JSON array")
	ErrNotString    = errors.New("dataset element must be a string")
	ErrTrailingData = errors.New("unexpected data after dataset array")
)

// Load reads and decodes the dataset at path. Any malformed element fails
// the whole load.
func Load(fs afero.Fs, path string) ([]pubkey.Pubkey, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open dataset")
	}
	defer f.Close()

	keys, err := Decode(bufio.NewReaderSize(f, readBufSize))
	if err != nil {
		return nil, errors.Wrapf(err, "decode dataset %q", path)
	}

	return keys, nil
}

// Decode parses a JSON array of base-58 encoded public keys.
func Decode(r io.Reader) ([]pubkey.Pubkey, error) {
	d := jx.Decode(r, readBufSize)

	if tt := d.Next(); tt != jx.Array {
		return nil, errors.Wrapf(ErrNotArray, "got %s", tt)
	}

	var keys []pubkey.Pubkey
	err := d.Arr(func(d *jx.Decoder) error {
		idx := len(keys)

		if tt := d.Next(); tt != jx.String {
			return errors.Wrapf(ErrNotString, "element %d is %s", idx, tt)
		}

		s, err := d.Str()
		if err != nil {
			return errors.Wrapf(err, "element %d", idx)
		}

		pk, err := pubkey.Parse(s)
		if err != nil {
			return errors.Wrapf(err, "element %d", idx)
		}

		keys = append(keys, pk)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if tt := d.Next(); tt != jx.Invalid {
		return nil, errors.Wrapf(ErrTrailingData, "got %s", tt)
	}

	return keys, nil
}
