// Package format defines the textual layout shared by the generator and the
// validators: group widths, hyphen offsets and the version/variant markers of
// a random (version 4) RFC 4122 identifier.
package format

const (
	// Size is the number of raw bytes in an identifier.
	Size = 16
	// Length is the number of characters in the canonical rendering.
	Length = 36
	// Separator joins the five hex groups.
	Separator = '-'

	// VersionOffset is the offset of the version nibble in the rendering.
	VersionOffset = 14
	// VariantOffset is the offset of the variant nibble in the rendering.
	VariantOffset = 19

	// VersionByte holds the version nibble in its high four bits.
	VersionByte = 6
	// VariantByte holds the variant in its high two bits.
	VariantByte = 8

	// Version is the random-generation version number.
	Version = 4
	// VersionDigit is the rendered version nibble.
	VersionDigit = '4'

	versionMask = 0x0f
	versionBits = 0x40
	variantMask = 0x3f
	variantBits = 0x80
)

// Digits is the lowercase hexadecimal alphabet used for rendering.
const Digits = "0123456789abcdef"

// Pattern is the anchored regular expression equivalent of the layout.
const Pattern = `^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`

// Group describes one hyphen-delimited hex group.
type Group struct {
	Name   string
	Offset int // character offset of the first digit
	Width  int // number of hex digits
	Bytes  int // number of raw bytes rendered in the group
	Lead   func(c byte) bool
}

// Groups lists the 8-4-4-4-12 layout in rendering order.
var Groups = [5]Group{
	{Name: "time_low", Offset: 0, Width: 8, Bytes: 4},
	{Name: "time_mid", Offset: 9, Width: 4, Bytes: 2},
	{Name: "time_hi_and_version", Offset: 14, Width: 4, Bytes: 2, Lead: IsVersionDigit},
	{Name: "clock_seq", Offset: 19, Width: 4, Bytes: 2, Lead: IsVariantDigit},
	{Name: "node", Offset: 24, Width: 12, Bytes: 6},
}

// Hyphens lists the separator offsets in the canonical rendering.
var Hyphens = [4]int{8, 13, 18, 23}

// IsHyphenOffset reports whether offset i holds a separator.
func IsHyphenOffset(i int) bool {
	switch i {
	case 8, 13, 18, 23:
		return true
	}
	return false
}

// IsHexDigit reports whether c belongs to the lowercase hex alphabet.
func IsHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')
}

// IsVersionDigit reports whether c is the version 4 marker.
func IsVersionDigit(c byte) bool {
	return c == VersionDigit
}

// IsVariantDigit reports whether c encodes the RFC 4122 variant (binary 10xx).
func IsVariantDigit(c byte) bool {
	switch c {
	case '8', '9', 'a', 'b':
		return true
	}
	return false
}

// Mark stamps the version and variant bits onto a raw 16-byte buffer.
func Mark(b *[Size]byte) {
	b[VersionByte] = b[VersionByte]&versionMask | versionBits
	b[VariantByte] = b[VariantByte]&variantMask | variantBits
}

// Encode renders b into dst using the canonical 8-4-4-4-12 layout.
func Encode(dst *[Length]byte, b *[Size]byte) {
	d := 0
	for s := 0; s < Size; s++ {
		dst[d], dst[d+1] = Digits[b[s]>>4], Digits[b[s]&0x0f]
		switch s {
		case 3, 5, 7, 9:
			dst[d+2] = Separator
			d += 3
		default:
			d += 2
		}
	}
}

// HexValue returns the value of a lowercase hex digit; ok is false otherwise.
func HexValue(c byte) (v byte, ok bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}

// Decode parses the canonical lowercase rendering s into dst. It reports false
// when s violates any part of the layout, including the version and variant
// markers; dst is left partially written in that case.
func Decode(dst *[Size]byte, s string) bool {
	if len(s) != Length {
		return false
	}
	for _, offset := range Hyphens {
		if s[offset] != Separator {
			return false
		}
	}
	if !IsVersionDigit(s[VersionOffset]) || !IsVariantDigit(s[VariantOffset]) {
		return false
	}
	d := 0
	for i := 0; i < Length; {
		if IsHyphenOffset(i) {
			i++
			continue
		}
		hi, ok := HexValue(s[i])
		if !ok {
			return false
		}
		lo, ok := HexValue(s[i+1])
		if !ok {
			return false
		}
		dst[d] = hi<<4 | lo
		d++
		i += 2
	}
	return true
}
