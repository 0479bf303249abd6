package guuid

import (
	"time"

	"github.com/uidkit/guuid/internal/bitutil"
	"github.com/uidkit/guuid/internal/randpool"
)

// NewSQUUID mints a "sequential UUID": a UUID v4 with the top 32 bits of
// the hi word overlaid with the current POSIX time in seconds, leaving the
// low 32 bits of hi and all of lo untouched. The version nibble (still 4,
// since it lives in hi[12..16), below the overlay) and the variant bits
// (lo[62..64)) are unaffected by the overlay.
func NewSQUUID() UUID {
	hi := randpool.U64()
	lo := randpool.U64()
	hi, lo = withVersionVariant(hi, lo, VersionRandom)
	hi = bitutil.Dpb(bitutil.Mask(32, 32), hi, uint64(time.Now().Unix()))
	return fromWords(hi, lo)
}
