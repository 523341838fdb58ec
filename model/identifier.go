package model

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/viant/uuid4/format"
)

// ErrNotV4 is returned when a value is not a random RFC 4122 identifier.
var ErrNotV4 = errors.New("not a version 4 RFC 4122 identifier")

// ErrInvalidFormat is returned when text does not use the canonical v4 layout.
var ErrInvalidFormat = errors.New("invalid identifier format")

// Identifier is a 128-bit random identifier.
type Identifier [format.Size]byte

// Nil is the zero identifier; it is never a valid version 4 value.
var Nil Identifier

// String returns the canonical lowercase 8-4-4-4-12 rendering.
func (id Identifier) String() string {
	var dst [format.Length]byte
	b := [format.Size]byte(id)
	format.Encode(&dst, &b)
	return string(dst[:])
}

// Version returns the version number stored in the high nibble of byte 6.
func (id Identifier) Version() int {
	return int(id[format.VersionByte] >> 4)
}

// Variant returns the two variant bits stored at the top of byte 8.
func (id Identifier) Variant() int {
	return int(id[format.VariantByte] >> 6)
}

// IsV4 reports whether id carries version 4 and the RFC 4122 variant (binary 10).
func (id Identifier) IsV4() bool {
	return id.Version() == format.Version && id.Variant() == 0b10
}

// MarshalText implements encoding.TextMarshaler.
func (id Identifier) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Only the canonical
// lowercase v4 rendering is accepted.
func (id *Identifier) UnmarshalText(text []byte) error {
	var b [format.Size]byte
	if !format.Decode(&b, string(text)) {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, text)
	}
	*id = b
	return nil
}

// UUID converts id to a github.com/google/uuid value.
func (id Identifier) UUID() uuid.UUID {
	return uuid.UUID(id)
}

// FromUUID converts u into an Identifier, rejecting anything but version 4
// with the RFC 4122 variant.
func FromUUID(u uuid.UUID) (Identifier, error) {
	if u.Version() != format.Version || u.Variant() != uuid.RFC4122 {
		return Nil, fmt.Errorf("%w: %s (version %d, variant %s)", ErrNotV4, u.String(), u.Version(), u.Variant())
	}
	return Identifier(u), nil
}
