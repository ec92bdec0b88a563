// Package idcodec provides compact, human-typeable encodings of the
// handle types used throughout stackpath (NodeHandle, SymbolHandle,
// scope-stack variable numbers). It delegates the actual base-63
// algorithm to internal/encoding, and adds type-safe wrappers plus a
// packed encoding for (NodeHandle, ScopeStackVariable) pairs. The
// display package's compact output mode uses only the node and symbol
// encodings.
//
// Base-63 alphabet: A-Z (0-25), a-z (26-51), 0-9 (52-61), _ (62).
package idcodec

import (
	"github.com/standardbeagle/stackpath/internal/encoding"
	"github.com/standardbeagle/stackpath/internal/graph"
)

// Re-exported for convenience / errors.Is.
var (
	ErrEmptyString = encoding.ErrEmptyString
	ErrInvalidChar = encoding.ErrInvalidChar
	ErrOverflow    = encoding.ErrOverflow
)

// EncodeNode encodes a NodeHandle to a base-63 string.
func EncodeNode(h graph.NodeHandle) string {
	return encoding.Base63Encode(uint64(h))
}

// DecodeNode decodes a base-63 string to a NodeHandle.
func DecodeNode(encoded string) (graph.NodeHandle, error) {
	v, err := encoding.Base63Decode(encoded)
	if err != nil {
		return 0, err
	}
	if v > uint64(^uint32(0)) {
		return 0, encoding.ErrOverflow
	}
	return graph.NodeHandle(v), nil
}

// EncodeSymbol encodes a SymbolHandle to a base-63 string.
func EncodeSymbol(h graph.SymbolHandle) string {
	return encoding.Base63Encode(uint64(h))
}

// DecodeSymbol decodes a base-63 string to a SymbolHandle.
func DecodeSymbol(encoded string) (graph.SymbolHandle, error) {
	v, err := encoding.Base63Decode(encoded)
	if err != nil {
		return 0, err
	}
	if v > uint64(^uint32(0)) {
		return 0, encoding.ErrOverflow
	}
	return graph.SymbolHandle(v), nil
}

// EncodeVariable encodes a scope-stack variable number to a base-63
// string, with 0 ("no variable") encoding to the empty string so that
// variable-less scope stacks round-trip without a sentinel character.
func EncodeVariable(v uint32) string {
	return encoding.Base63EncodeNoZero(uint64(v))
}

// DecodeVariable decodes a base-63 string to a variable number. The
// empty string decodes to 0 ("no variable").
func DecodeVariable(encoded string) (uint32, error) {
	if encoded == "" {
		return 0, nil
	}
	v, err := encoding.Base63Decode(encoded)
	if err != nil {
		return 0, err
	}
	if v > uint64(^uint32(0)) {
		return 0, encoding.ErrOverflow
	}
	return uint32(v), nil
}

// IsValid reports whether encoded is a well-formed base-63 string.
func IsValid(encoded string) bool {
	return encoding.Base63IsValid(encoded)
}

// EncodeNodeVariable packs a NodeHandle and a variable number into a
// single compact string with no separator. Neither the display package
// nor the CLI calls it. Packing mirrors the teacher's CompositeSymbolID
// packing: node in the low 32 bits, variable in the high 32 bits.
func EncodeNodeVariable(node graph.NodeHandle, variable uint32) string {
	combined := encoding.PackUint32Pair(uint32(node), variable)
	return encoding.Base63EncodeNoZero(combined)
}

// DecodeNodeVariable is the inverse of EncodeNodeVariable.
func DecodeNodeVariable(encoded string) (graph.NodeHandle, uint32, error) {
	if encoded == "" {
		return 0, 0, ErrEmptyString
	}
	combined, err := encoding.Base63Decode(encoded)
	if err != nil {
		return 0, 0, err
	}
	lo, hi := encoding.UnpackUint32Pair(combined)
	return graph.NodeHandle(lo), hi, nil
}
