package guuid

import "crypto/md5"

// NewV3 mints a name-based UUID v3: the MD5 digest of the namespace's
// 16-byte wire form concatenated with the coerced name bytes, with the
// version nibble and variant bits overwritten per RFC 9562 §5.3.
func NewV3(namespace UUID, name any) (UUID, error) {
	nb, err := nameBytes(name)
	if err != nil {
		return UUID{}, err
	}

	h := md5.New()
	h.Write(namespace.Bytes())
	h.Write(nb)
	digest := h.Sum(nil)

	var uuid UUID
	copy(uuid[:], digest)
	hi, lo := withVersionVariant(uuid.hi(), uuid.lo(), VersionNameBasedMD5)
	return fromWords(hi, lo), nil
}
