// Package flake implements 192-bit time-ordered identifiers: a
// nanosecond-precision timestamp word followed by 128 bits of
// cryptographically random entropy, with a custom order-preserving
// base-64 string form that stays lexically sortable.
//
// Flakes are the Flake analogue of this module's UUID v7: good database
// primary keys, good event ids, sortable by creation time without needing
// a type-aware comparator — the string form sorts exactly the way the
// underlying bytes do.
package flake

import (
	"database/sql/driver"
	"fmt"
	"io"

	"github.com/uidkit/guuid/internal/bitutil"
	"github.com/uidkit/guuid/internal/nanoclock"
	"github.com/uidkit/guuid/internal/randpool"
)

// Flake is an immutable 192-bit time-ordered identifier: a timestamp word
// followed by 128 bits of random entropy split into two 64-bit halves.
type Flake struct {
	Timestamp uint64
	RandHi    uint64
	RandLo    uint64
}

// New returns a new Flake using the current nanoclock reading and fresh
// entropy from the shared random pool. Within a single goroutine, repeated
// calls are strictly increasing because the nanoclock is.
func New() Flake {
	return Flake{
		Timestamp: nanoclock.Now(),
		RandHi:    randpool.U64(),
		RandLo:    randpool.U64(),
	}
}

// Generator produces Flakes from an injectable random source, mirroring
// this module's guuid.V7Generator: primarily useful for deterministic tests.
type Generator struct {
	randReader io.Reader
}

// NewGenerator returns a Generator that reads entropy from r instead of the
// shared pool.
func NewGenerator(r io.Reader) *Generator {
	return &Generator{randReader: r}
}

// New returns a new Flake using the generator's random source and the
// current nanoclock reading.
func (g *Generator) New() (Flake, error) {
	var buf [16]byte
	if _, err := io.ReadFull(g.randReader, buf[:]); err != nil {
		return Flake{}, err
	}
	return Flake{
		Timestamp: nanoclock.Now(),
		RandHi:    bitutil.U64BE(buf[:], 0),
		RandLo:    bitutil.U64BE(buf[:], 8),
	}, nil
}

// Bytes returns the canonical 24-byte big-endian form: timestamp, then
// rand-hi, then rand-lo.
func (f Flake) Bytes() [24]byte {
	var b [24]byte
	bitutil.PutU64BE(b[:], 0, f.Timestamp)
	bitutil.PutU64BE(b[:], 8, f.RandHi)
	bitutil.PutU64BE(b[:], 16, f.RandLo)
	return b
}

// FromBytes reconstructs a Flake from its 24-byte big-endian form.
func FromBytes(b []byte) (Flake, bool) {
	if len(b) != 24 {
		return Flake{}, false
	}
	return Flake{
		Timestamp: bitutil.U64BE(b, 0),
		RandHi:    bitutil.U64BE(b, 8),
		RandLo:    bitutil.U64BE(b, 16),
	}, true
}

// String returns the 32-character order-preserving base-64 form.
func (f Flake) String() string {
	return encode(f.Bytes())
}

// FromString parses the 32-character order-preserving base-64 form. It
// never returns an error: malformed input (wrong length, or any byte
// outside the alphabet) is reported as ok == false.
func FromString(s string) (f Flake, ok bool) {
	b, ok := decode(s)
	if !ok {
		return Flake{}, false
	}
	flake, _ := FromBytes(b[:])
	return flake, true
}

// Hex returns the 48-character lowercase hex form: the three 64-bit words
// concatenated, each formatted as 16 hex digits.
func (f Flake) Hex() string {
	return bitutil.Hex64(f.Timestamp) + bitutil.Hex64(f.RandHi) + bitutil.Hex64(f.RandLo)
}

// Compare returns -1, 0, or 1 comparing f to other, lexicographically over
// (Timestamp, RandHi, RandLo) — equivalently, over the 24-byte form, the
// encoded string, and the hex form, since all three preserve that order.
func (f Flake) Compare(other Flake) int {
	switch {
	case f.Timestamp != other.Timestamp:
		return cmpU64(f.Timestamp, other.Timestamp)
	case f.RandHi != other.RandHi:
		return cmpU64(f.RandHi, other.RandHi)
	default:
		return cmpU64(f.RandLo, other.RandLo)
	}
}

func cmpU64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Equal reports whether f and other represent the same Flake.
func (f Flake) Equal(other Flake) bool {
	return f == other
}

// MarshalText implements encoding.TextMarshaler.
func (f Flake) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Flake) UnmarshalText(data []byte) error {
	parsed, ok := FromString(string(data))
	if !ok {
		return ErrInvalidFlakeString
	}
	*f = parsed
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (f Flake) MarshalBinary() ([]byte, error) {
	b := f.Bytes()
	return b[:], nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (f *Flake) UnmarshalBinary(data []byte) error {
	parsed, ok := FromBytes(data)
	if !ok {
		return ErrInvalidFlakeString
	}
	*f = parsed
	return nil
}

// Scan implements sql.Scanner for database compatibility.
func (f *Flake) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		return nil
	case string:
		parsed, ok := FromString(src)
		if !ok {
			return ErrInvalidFlakeString
		}
		*f = parsed
		return nil
	case []byte:
		if len(src) == 0 {
			return nil
		}
		if len(src) == 24 {
			*f, _ = FromBytes(src)
			return nil
		}
		parsed, ok := FromString(string(src))
		if !ok {
			return ErrInvalidFlakeString
		}
		*f = parsed
		return nil
	default:
		return fmt.Errorf("flake: cannot scan type %T into Flake", src)
	}
}

// Value implements driver.Valuer for database compatibility.
func (f Flake) Value() (driver.Value, error) {
	return f.String(), nil
}
