package guuid

import "crypto/sha1"

// NewV5 mints a name-based UUID v5: the first 16 bytes of the SHA-1
// digest of the namespace's wire form concatenated with the coerced name
// bytes, with the version nibble and variant bits overwritten per
// RFC 9562 §5.3.
func NewV5(namespace UUID, name any) (UUID, error) {
	nb, err := nameBytes(name)
	if err != nil {
		return UUID{}, err
	}

	h := sha1.New()
	h.Write(namespace.Bytes())
	h.Write(nb)
	digest := h.Sum(nil)

	var uuid UUID
	copy(uuid[:], digest[:16])
	hi, lo := withVersionVariant(uuid.hi(), uuid.lo(), VersionNameBasedSHA1)
	return fromWords(hi, lo), nil
}
