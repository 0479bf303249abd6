package guuid

import (
	"github.com/uidkit/guuid/internal/bitutil"
	"github.com/uidkit/guuid/internal/gclock"
	"github.com/uidkit/guuid/internal/nodeid"
)

// V6Generator mints UUID v6 values: the same Gregorian 100-ns clock as v1,
// but with the timestamp fields reordered most-significant-first for
// natural binary sortability, per RFC 9562 §5.6. The node field is a fresh
// random substitute rather than the real derived node id, per the RFC's
// recommendation for this version. Like V1Generator, it has no per-call
// randomness to inject: the substitute node value is drawn once at
// process startup, not on every New call, so there is no
// NewV6GeneratorWithReader.
type V6Generator struct{}

// NewV6Generator returns a new V6Generator.
func NewV6Generator() *V6Generator {
	return &V6Generator{}
}

// New mints a new UUID v6.
func (g *V6Generator) New() UUID {
	ts := gclock.Next()
	id := nodeid.Get()

	timeHigh32 := bitutil.Ldb(bitutil.Mask(32, 28), ts)
	timeMid16 := bitutil.Ldb(bitutil.Mask(16, 12), ts)
	timeLow12 := bitutil.Ldb(bitutil.Mask(12, 0), ts)

	hi := timeHigh32<<32 | timeMid16<<16
	hi |= bitutil.Dpb(bitutil.Mask(verNibbleWidth, verNibbleOffset), timeLow12, uint64(VersionReorderedTime))

	return fromWords(hi, id.V6LSB)
}

var defaultV6Generator = NewV6Generator()

// NewV6 mints a new UUID v6 using the default generator.
func NewV6() UUID {
	return defaultV6Generator.New()
}
