package guuid

import "github.com/uidkit/guuid/internal/randpool"

// NewV8 mints a new UUID v8: 122 free-form bits with the version nibble
// set to 8 and the RFC 9562 variant bits set to "10". RFC 9562 leaves the
// 122 non-version/variant bits entirely to the implementation; this one
// fills them from the shared CSPRNG pool.
func NewV8() UUID {
	hi := randpool.U64()
	lo := randpool.U64()
	hi, lo = withVersionVariant(hi, lo, VersionCustom)
	return fromWords(hi, lo)
}

// NewV8FromWords mints a UUID v8 from caller-supplied words, overwriting
// the version nibble and variant bits the same way NewV8 does.
func NewV8FromWords(hi, lo uint64) UUID {
	hi, lo = withVersionVariant(hi, lo, VersionCustom)
	return fromWords(hi, lo)
}
