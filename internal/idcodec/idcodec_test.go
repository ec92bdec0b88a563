package idcodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/stackpath/internal/graph"
)

func TestEncodeDecodeNode(t *testing.T) {
	h := graph.NodeHandle(12345)
	encoded := EncodeNode(h)
	decoded, err := DecodeNode(encoded)
	require.NoError(t, err)
	assert.Equal(t, h, decoded)
}

func TestEncodeDecodeSymbol(t *testing.T) {
	h := graph.SymbolHandle(42)
	encoded := EncodeSymbol(h)
	decoded, err := DecodeSymbol(encoded)
	require.NoError(t, err)
	assert.Equal(t, h, decoded)
}

func TestEncodeDecodeVariableZero(t *testing.T) {
	encoded := EncodeVariable(0)
	assert.Equal(t, "", encoded)

	decoded, err := DecodeVariable("")
	require.NoError(t, err)
	assert.Equal(t, uint32(0), decoded)
}

func TestEncodeDecodeVariableNonZero(t *testing.T) {
	encoded := EncodeVariable(7)
	assert.NotEmpty(t, encoded)

	decoded, err := DecodeVariable(encoded)
	require.NoError(t, err)
	assert.Equal(t, uint32(7), decoded)
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid(EncodeNode(99)))
	assert.False(t, IsValid("#@!"))
}

func TestEncodeDecodeNodeVariable(t *testing.T) {
	encoded := EncodeNodeVariable(graph.NodeHandle(5), 9)
	node, variable, err := DecodeNodeVariable(encoded)
	require.NoError(t, err)
	assert.Equal(t, graph.NodeHandle(5), node)
	assert.Equal(t, uint32(9), variable)
}

func TestDecodeNodeVariableEmpty(t *testing.T) {
	_, _, err := DecodeNodeVariable("")
	assert.ErrorIs(t, err, ErrEmptyString)
}
