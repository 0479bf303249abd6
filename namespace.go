package guuid

// Predefined namespace UUIDs for v3/v5 name-based generation, per RFC 9562
// Appendix A.
var (
	NamespaceDNS  = MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	NamespaceURL  = MustParse("6ba7b811-9dad-11d1-80b4-00c04fd430c8")
	NamespaceOID  = MustParse("6ba7b812-9dad-11d1-80b4-00c04fd430c8")
	NamespaceX500 = MustParse("6ba7b814-9dad-11d1-80b4-00c04fd430c8")
)

// NewNil returns the null UUID (all 128 bits zero).
func NewNil() UUID {
	return Nil
}

// NewMax returns the max UUID (all 128 bits one).
func NewMax() UUID {
	return Max
}
