package bitio_test

import (
	"testing"

	"github.com/dargueta/uz1/utilities/bitio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitWriter__RoundTrip(t *testing.T) {
	w := bitio.NewBitWriter()
	w.WriteBit(true)
	w.WriteBit(false)
	w.WriteBits(0x05, 3)
	w.WriteByte(0xAB)

	data := w.Bytes()
	r := bitio.NewBitReader(data)

	bit, ok := r.ReadBit()
	require.True(t, ok)
	assert.True(t, bit)

	bit, ok = r.ReadBit()
	require.True(t, ok)
	assert.False(t, bit)

	value, ok := r.ReadBits(3)
	require.True(t, ok)
	assert.Equal(t, uint32(0x05), value)

	b, err := r.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte(0xAB), b)
}

func TestBitWriter__GrowsPastInitialCapacity(t *testing.T) {
	w := bitio.NewBitWriter()
	for i := 0; i < 100000; i++ {
		w.WriteBit(i%3 == 0)
	}
	assert.Equal(t, 100000, w.Len())

	r := bitio.NewBitReader(w.Bytes())
	for i := 0; i < 100000; i++ {
		bit, ok := r.ReadBit()
		require.True(t, ok)
		assert.Equal(t, i%3 == 0, bit)
	}
}
