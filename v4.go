package guuid

import "github.com/uidkit/guuid/internal/randpool"

// NewV4 mints a new UUID v4: 122 random bits with the version nibble set
// to 4 and the RFC 9562 variant bits set to "10".
func NewV4() UUID {
	hi := randpool.U64()
	lo := randpool.U64()
	hi, lo = withVersionVariant(hi, lo, VersionRandom)
	return fromWords(hi, lo)
}

// NewV4FromWords mints a UUID v4 from caller-supplied words instead of the
// shared CSPRNG pool, overwriting the version nibble and variant bits the
// same way NewV4 does. Useful for deterministic tests and golden vectors.
func NewV4FromWords(hi, lo uint64) UUID {
	hi, lo = withVersionVariant(hi, lo, VersionRandom)
	return fromWords(hi, lo)
}
