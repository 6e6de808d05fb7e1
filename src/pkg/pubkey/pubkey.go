package pubkey

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcutil/base58"
	"github.com/go-faster/errors"
)

const (
	// Size is the length of a public key in bytes.
	Size = 32

	// MaxEncodedLen is the longest base-58 string that can hold Size bytes.
	MaxEncodedLen = 44
)

var (
	ErrInvalid   = errors.New("invalid base58 encoding")
	ErrWrongSize = errors.New("wrong public key size")
)

// ParseError reports a string that does not encode a public key.
type ParseError struct {
	Input  string
	Reason error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse pubkey %q: %v", e.Input, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Reason
}

// Pubkey is an opaque 32-byte identifier.
type Pubkey [Size]byte

// Parse decodes a base-58 string into a Pubkey.
func Parse(s string) (Pubkey, error) {
	var pk Pubkey

	if len(s) > MaxEncodedLen {
		return pk, &ParseError{Input: s, Reason: ErrWrongSize}
	}

	// base58.Decode signals a bad alphabet with an empty result
	raw := base58.Decode(s)
	if len(raw) == 0 && len(s) != 0 {
		return pk, &ParseError{Input: s, Reason: ErrInvalid}
	}

	if len(raw) != Size {
		return pk, &ParseError{Input: s, Reason: ErrWrongSize}
	}

	copy(pk[:], raw)
	return pk, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Pubkey {
	pk, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return pk
}

func (p Pubkey) Bytes() []byte {
	return p[:]
}

func (p Pubkey) String() string {
	return base58.Encode(p[:])
}

// Compare orders keys by their raw bytes.
func (p Pubkey) Compare(other Pubkey) int {
	return bytes.Compare(p[:], other[:])
}
