package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase63RoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 62, 63, 64, 1000, 1 << 40, ^uint64(0)} {
		encoded := Base63Encode(v)
		decoded, err := Base63Decode(encoded)
		require.NoError(t, err)
		assert.Equal(t, v, decoded, "round trip for %d via %q", v, encoded)
	}
}

func TestBase63DecodeEmpty(t *testing.T) {
	_, err := Base63Decode("")
	assert.ErrorIs(t, err, ErrEmptyString)
}

func TestBase63DecodeInvalidChar(t *testing.T) {
	_, err := Base63Decode("!!!")
	assert.ErrorIs(t, err, ErrInvalidChar)
}

func TestBase63IsValid(t *testing.T) {
	assert.True(t, Base63IsValid(Base63Encode(12345)))
	assert.False(t, Base63IsValid(""))
	assert.False(t, Base63IsValid("@"))
}

func TestPackUnpackUint32Pair(t *testing.T) {
	packed := PackUint32Pair(7, 42)
	a, b := UnpackUint32Pair(packed)
	assert.Equal(t, uint32(7), a)
	assert.Equal(t, uint32(42), b)
}
