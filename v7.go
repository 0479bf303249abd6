package guuid

import (
	"io"

	"github.com/uidkit/guuid/internal/bitutil"
	"github.com/uidkit/guuid/internal/randpool"
	"github.com/uidkit/guuid/internal/uclock"
)

// V7Generator mints UUID v7 values from the process-wide monotonic Unix
// clock (C5): a 48-bit millisecond timestamp plus a 12-bit counter
// reseeded with randomness every millisecond, per RFC 9562 §6.2 method 1.
// The remaining 62 random bits are drawn from randReader, defaulting to the
// shared CSPRNG pool.
type V7Generator struct {
	randReader io.Reader
}

// NewV7Generator returns a V7Generator using the shared CSPRNG pool.
func NewV7Generator() *V7Generator {
	return &V7Generator{}
}

// NewV7GeneratorWithReader returns a V7Generator that draws its random
// suffix from r instead of the shared pool. Primarily useful for
// deterministic tests.
func NewV7GeneratorWithReader(r io.Reader) *V7Generator {
	return &V7Generator{randReader: r}
}

// New mints a new UUID v7.
func (g *V7Generator) New() (UUID, error) {
	millis, counter := uclock.Next()

	hi := millis<<16 | bitutil.Dpb(bitutil.Mask(verNibbleWidth, verNibbleOffset), uint64(counter), uint64(VersionTimeSorted))

	var random uint64
	if g.randReader != nil {
		var buf [8]byte
		if _, err := io.ReadFull(g.randReader, buf[:]); err != nil {
			return UUID{}, err
		}
		random = bitutil.U64BE(buf[:], 0)
	} else {
		random = randpool.U64()
	}

	lo := bitutil.Dpb(bitutil.Mask(variantWidth, variantOffset), random, 0b10)

	return fromWords(hi, lo), nil
}

var defaultV7Generator = NewV7Generator()

// NewV7 mints a new UUID v7 using the default generator.
func NewV7() (UUID, error) {
	return defaultV7Generator.New()
}

// Must is a helper that wraps a call to a function returning (UUID, error)
// and panics if the error is non-nil. It is intended for use in variable
// initializations such as:
//
//	var id = guuid.Must(guuid.NewV7())
func Must(uuid UUID, err error) UUID {
	if err != nil {
		panic(err)
	}
	return uuid
}
