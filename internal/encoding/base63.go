// Package encoding provides low-level, dependency-free encoding
// utilities shared by internal/idcodec.
package encoding

import "errors"

// Base-63 encoding constants.
const (
	Base63     = 63
	Alphabet63 = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_"
)

var (
	ErrEmptyString = errors.New("encoding: empty encoded string")
	ErrInvalidChar = errors.New("encoding: invalid character in encoded string")
	ErrOverflow    = errors.New("encoding: decoded value overflow")
)

// Base63Encode encodes a uint64 value to a base-63 string. Returns "A"
// for zero (minimum non-empty encoding).
func Base63Encode(value uint64) string {
	if value == 0 {
		return "A"
	}

	var buf [11]byte
	pos := len(buf)
	for value > 0 {
		pos--
		buf[pos] = Alphabet63[value%Base63]
		value /= Base63
	}
	return string(buf[pos:])
}

// Base63EncodeNoZero encodes value like Base63Encode, except zero
// encodes to the empty string instead of "A". Used where 0 already
// means "absent" and a reserved non-empty sentinel would be redundant
// (idcodec's variable and node/variable packing).
func Base63EncodeNoZero(value uint64) string {
	if value == 0 {
		return ""
	}
	return Base63Encode(value)
}

// Base63Decode decodes a base-63 string to a uint64 value.
func Base63Decode(encoded string) (uint64, error) {
	if encoded == "" {
		return 0, ErrEmptyString
	}

	var value uint64
	for _, c := range encoded {
		charVal, err := Base63CharToValue(c)
		if err != nil {
			return 0, err
		}
		if value > (^uint64(0)-charVal)/Base63 {
			return 0, ErrOverflow
		}
		value = value*Base63 + charVal
	}
	return value, nil
}

// Base63IsValid reports whether encoded is a valid base-63 string.
func Base63IsValid(encoded string) bool {
	if encoded == "" {
		return false
	}
	for _, c := range encoded {
		if _, err := Base63CharToValue(c); err != nil {
			return false
		}
	}
	return true
}

// Base63CharToValue converts a character to its base-63 numeric value (0-62).
func Base63CharToValue(c rune) (uint64, error) {
	switch {
	case c >= 'A' && c <= 'Z':
		return uint64(c - 'A'), nil
	case c >= 'a' && c <= 'z':
		return uint64(c-'a') + 26, nil
	case c >= '0' && c <= '9':
		return uint64(c-'0') + 52, nil
	case c == '_':
		return 62, nil
	default:
		return 0, ErrInvalidChar
	}
}

// PackUint32Pair packs two uint32 values into a single uint64: lo in the
// low bits, hi in the high bits.
func PackUint32Pair(lo, hi uint32) uint64 {
	return uint64(lo) | (uint64(hi) << 32)
}

// UnpackUint32Pair is the inverse of PackUint32Pair.
func UnpackUint32Pair(packed uint64) (lo, hi uint32) {
	return uint32(packed), uint32(packed >> 32)
}
