package guuid

import "errors"

var (
	// ErrInvalidFormat indicates that the UUID string format is invalid
	ErrInvalidFormat = errors.New("guuid: invalid UUID format")

	// ErrInvalidLength indicates that the UUID byte slice has incorrect length
	ErrInvalidLength = errors.New("guuid: invalid UUID length (expected 16 bytes)")

	// ErrInvalidName indicates that a v3/v5 name argument could not be
	// coerced to bytes (e.g. a nil pointer or nil slice where bytes are
	// required).
	ErrInvalidName = errors.New("guuid: invalid name: cannot be coerced to bytes")
)
