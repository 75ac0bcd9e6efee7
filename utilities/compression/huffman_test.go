package compression_test

import (
	"testing"

	c "github.com/dargueta/uz1/utilities/compression"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHuffman__RoundTrip(t *testing.T) {
	cases := [][]byte{
		{},
		{0},
		[]byte("aaaaaaaaaa"),
		[]byte("the quick brown fox jumps over the lazy dog"),
		bytesRepeat(0xFF, 10000),
	}

	for i, input := range cases {
		encoded := c.EncodeHuffman(input)
		decoded, err := c.DecodeHuffman(encoded)
		require.NoError(t, err, "case %d", i)
		assert.Equal(t, input, decoded, "case %d", i)
	}
}

func TestHuffman__DegenerateSingleSymbolTree(t *testing.T) {
	input := bytesRepeat(7, 50)
	encoded := c.EncodeHuffman(input)
	decoded, err := c.DecodeHuffman(encoded)
	require.NoError(t, err)
	assert.Equal(t, input, decoded)
}

func TestDecodeHuffman__RejectsExhaustedBitStream(t *testing.T) {
	encoded := c.EncodeHuffman([]byte("ab"))
	truncated := encoded[:len(encoded)-1]
	_, err := c.DecodeHuffman(truncated)
	require.Error(t, err)
}
