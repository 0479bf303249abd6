package guuid

import (
	"encoding"
	"fmt"
	"net/url"
)

// nameBytes coerces the polymorphic "name" argument accepted by NewV3/NewV5
// into the byte string that gets hashed alongside the namespace. It
// recognizes strings, UUIDs, *url.URL, and raw byte slices as closed
// cases, falls back to encoding.TextMarshaler then fmt.Stringer for any
// other type the host program can make deterministically serializable,
// and rejects nil (and anything matching none of the above) with
// ErrInvalidName.
func nameBytes(name any) ([]byte, error) {
	switch v := name.(type) {
	case nil:
		return nil, ErrInvalidName
	case string:
		return []byte(v), nil
	case UUID:
		return v.Bytes(), nil
	case *url.URL:
		if v == nil {
			return nil, ErrInvalidName
		}
		return []byte(v.String()), nil
	case url.URL:
		return []byte(v.String()), nil
	case []byte:
		if v == nil {
			return nil, ErrInvalidName
		}
		return v, nil
	case encoding.TextMarshaler:
		return v.MarshalText()
	case fmt.Stringer:
		return []byte(v.String()), nil
	default:
		return nil, ErrInvalidName
	}
}
