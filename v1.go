package guuid

import (
	"github.com/uidkit/guuid/internal/bitutil"
	"github.com/uidkit/guuid/internal/gclock"
	"github.com/uidkit/guuid/internal/nodeid"
)

// V1Generator mints UUID v1 values from the process-wide monotonic
// Gregorian clock (C4) and node identity (C3). The default generator, used
// by the package-level NewV1, is safe for concurrent use; callers can
// construct their own with NewV1Generator, which still draws on the same
// process-wide clock and node identity. Unlike V7Generator, V1Generator has no
// per-call randomness to inject: the node id is seeded once at process
// startup, not drawn fresh on every New call, so there is no
// NewV1GeneratorWithReader.
type V1Generator struct{}

// NewV1Generator returns a new V1Generator. All V1Generators share the same
// process-wide clock and node identity, so their output is globally
// ordered regardless of how many generators exist.
func NewV1Generator() *V1Generator {
	return &V1Generator{}
}

// New mints a new UUID v1.
func (g *V1Generator) New() UUID {
	ts := gclock.Next()
	id := nodeid.Get()

	timeLow := bitutil.Ldb(bitutil.Mask(32, 0), ts)
	timeMid := bitutil.Ldb(bitutil.Mask(16, 32), ts)
	timeHigh12 := bitutil.Ldb(bitutil.Mask(12, 48), ts)

	hi := timeLow<<32 | timeMid<<16 | timeHigh12
	hi = bitutil.Dpb(bitutil.Mask(verNibbleWidth, verNibbleOffset), hi, uint64(VersionTimeBased))

	return fromWords(hi, id.V1LSB)
}

var defaultV1Generator = NewV1Generator()

// NewV1 mints a new UUID v1 using the default generator.
func NewV1() UUID {
	return defaultV1Generator.New()
}
