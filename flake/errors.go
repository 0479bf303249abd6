package flake

import "errors"

// ErrInvalidFlakeString is returned by the encoding.TextUnmarshaler,
// encoding.BinaryUnmarshaler, and sql.Scanner adapters when the source
// cannot be decoded. FromString and FromBytes themselves never return an
// error; they report absence rather than throwing on malformed input.
var ErrInvalidFlakeString = errors.New("flake: invalid flake string")
