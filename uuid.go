package guuid

import (
	"database/sql/driver"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/uidkit/guuid/internal/bitutil"
)

// UUID represents a 128-bit Universally Unique Identifier as defined by
// RFC 9562. The canonical in-memory form is two 64-bit words (hi, lo)
// interpreted as big-endian over the 16-byte wire form.
type UUID [16]byte

// Version represents the UUID version: the nibble at bits 48-51 of the
// wire form.
type Version byte

const (
	VersionNil           Version = 0
	VersionTimeBased     Version = 1
	VersionDCESecurity   Version = 2
	VersionNameBasedMD5  Version = 3
	VersionRandom        Version = 4
	VersionNameBasedSHA1 Version = 5
	VersionReorderedTime Version = 6
	VersionTimeSorted    Version = 7
	VersionCustom        Version = 8
	VersionMax           Version = 15
)

// Variant represents the RFC 9562 variant field: the top one, two, or
// three bits of the lo word.
type Variant byte

const (
	VariantNCS       Variant = 0
	VariantRFC9562   Variant = 2
	VariantMicrosoft Variant = 6
	VariantFuture    Variant = 7
)

// Nil is the null UUID: all 128 bits zero.
var Nil UUID

// Max is the max UUID: all 128 bits one.
var Max = UUID{
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
}

const (
	verNibbleWidth, verNibbleOffset = 4, 12
	variantWidth, variantOffset     = 2, 62
	variant3Width, variant3Offset   = 3, 61
)

// hi returns the upper 64 bits of the wire form, big-endian.
func (u UUID) hi() uint64 { return bitutil.U64BE(u[:], 0) }

// lo returns the lower 64 bits of the wire form, big-endian.
func (u UUID) lo() uint64 { return bitutil.U64BE(u[:], 8) }

func fromWords(hi, lo uint64) UUID {
	var u UUID
	bitutil.PutU64BE(u[:], 0, hi)
	bitutil.PutU64BE(u[:], 8, lo)
	return u
}

// Version returns the version nibble of the UUID.
func (u UUID) Version() Version {
	return Version(bitutil.Ldb(bitutil.Mask(verNibbleWidth, verNibbleOffset), u.hi()))
}

// Variant returns the RFC 9562 variant of the UUID, per RFC 9562 §4.1.
func (u UUID) Variant() Variant {
	top3 := byte(bitutil.Ldb(bitutil.Mask(variant3Width, variant3Offset), u.lo()))
	switch {
	case top3&0b100 == 0:
		return VariantNCS
	case top3&0b110 == 0b100:
		return VariantRFC9562
	case top3&0b111 == 0b110:
		return VariantMicrosoft
	default:
		return VariantFuture
	}
}

// withVersionVariant overwrites the version nibble and the RFC 9562
// variant bits ("10") of hi/lo, leaving every other bit untouched. Every
// constructor that mints an RFC 9562 UUID composes this with its own field
// layout.
func withVersionVariant(hi, lo uint64, version Version) (uint64, uint64) {
	hi = bitutil.Dpb(bitutil.Mask(verNibbleWidth, verNibbleOffset), hi, uint64(version))
	lo = bitutil.Dpb(bitutil.Mask(variantWidth, variantOffset), lo, 0b10)
	return hi, lo
}

// String returns the canonical 36-character lowercase string form:
// xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx.
func (u UUID) String() string {
	var buf [36]byte
	encodeCanonical(buf[:], u)
	return string(buf[:])
}

// URN returns the URN string form: "urn:uuid:" followed by the canonical
// string.
func (u UUID) URN() string {
	return "urn:uuid:" + u.String()
}

func encodeCanonical(dst []byte, u UUID) {
	hex.Encode(dst[0:8], u[0:4])
	dst[8] = '-'
	hex.Encode(dst[9:13], u[4:6])
	dst[13] = '-'
	hex.Encode(dst[14:18], u[6:8])
	dst[18] = '-'
	hex.Encode(dst[19:23], u[8:10])
	dst[23] = '-'
	hex.Encode(dst[24:36], u[10:16])
}

// Parse parses a UUID from its canonical string form
// (xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx) or its URN form
// (urn:uuid:xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx), case-insensitive. Any
// other input is rejected with ErrInvalidFormat.
func Parse(s string) (UUID, error) {
	var uuid UUID

	s = strings.TrimPrefix(strings.ToLower(s), "urn:uuid:")

	if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return uuid, ErrInvalidFormat
	}
	if err := decodeHexSegment(uuid[0:4], s[0:8]); err != nil {
		return uuid, err
	}
	if err := decodeHexSegment(uuid[4:6], s[9:13]); err != nil {
		return uuid, err
	}
	if err := decodeHexSegment(uuid[6:8], s[14:18]); err != nil {
		return uuid, err
	}
	if err := decodeHexSegment(uuid[8:10], s[19:23]); err != nil {
		return uuid, err
	}
	if err := decodeHexSegment(uuid[10:16], s[24:36]); err != nil {
		return uuid, err
	}
	return uuid, nil
}

// MustParse is like Parse but panics if the string cannot be parsed. It
// simplifies safe initialization of global variables.
func MustParse(s string) UUID {
	uuid, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("guuid: Parse(%q): %v", s, err))
	}
	return uuid
}

func decodeHexSegment(dst []byte, src string) error {
	if _, err := hex.Decode(dst, []byte(src)); err != nil {
		return ErrInvalidFormat
	}
	return nil
}

// Bytes returns the UUID's 16-byte big-endian wire form.
func (u UUID) Bytes() []byte {
	return u[:]
}

// FromBytes creates a UUID from a 16-byte big-endian slice.
func FromBytes(b []byte) (UUID, error) {
	var uuid UUID
	if len(b) != 16 {
		return uuid, ErrInvalidLength
	}
	copy(uuid[:], b)
	return uuid, nil
}

// MustFromBytes is like FromBytes but panics on error.
func MustFromBytes(b []byte) UUID {
	uuid, err := FromBytes(b)
	if err != nil {
		panic(err)
	}
	return uuid
}

// IsNil returns true if u is the null UUID (all zeros).
func (u UUID) IsNil() bool {
	return u == Nil
}

// MarshalText implements the encoding.TextMarshaler interface.
func (u UUID) MarshalText() ([]byte, error) {
	var buf [36]byte
	encodeCanonical(buf[:], u)
	return buf[:], nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (u *UUID) UnmarshalText(data []byte) error {
	id, err := Parse(string(data))
	if err != nil {
		return err
	}
	*u = id
	return nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface.
func (u UUID) MarshalBinary() ([]byte, error) {
	return u[:], nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (u *UUID) UnmarshalBinary(data []byte) error {
	if len(data) != 16 {
		return ErrInvalidLength
	}
	copy(u[:], data)
	return nil
}

// Scan implements the sql.Scanner interface for database compatibility.
func (u *UUID) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		return nil
	case string:
		id, err := Parse(src)
		if err != nil {
			return err
		}
		*u = id
		return nil
	case []byte:
		if len(src) == 16 {
			copy(u[:], src)
			return nil
		}
		if len(src) == 0 {
			return nil
		}
		id, err := Parse(string(src))
		if err != nil {
			return err
		}
		*u = id
		return nil
	default:
		return fmt.Errorf("guuid: cannot scan type %T into UUID", src)
	}
}

// Value implements the driver.Valuer interface for database compatibility.
func (u UUID) Value() (driver.Value, error) {
	return u.String(), nil
}

// Compare returns -1, 0, or 1 comparing u to other under unsigned
// lexicographic byte order over the 16-byte wire form.
func (u UUID) Compare(other UUID) int {
	if u.hi() != other.hi() {
		return cmpU64(u.hi(), other.hi())
	}
	return cmpU64(u.lo(), other.lo())
}

func cmpU64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Equal returns true if u and other represent the same UUID.
func (u UUID) Equal(other UUID) bool {
	return u == other
}
