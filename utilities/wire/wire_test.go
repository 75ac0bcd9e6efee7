package wire_test

import (
	"bytes"
	"testing"

	"github.com/dargueta/uz1/utilities/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCompactIndex__Vectors(t *testing.T) {
	cases := []struct {
		Name  string
		Value int32
		Bytes []byte
	}{
		{"zero", 0, []byte{0x00}},
		{"small positive", 5, []byte{0x05}},
		{"small negative", -5, []byte{0x85}},
		{"needs continuation", 64, []byte{0x40, 0x01}},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, wire.WriteCompactIndex(&buf, tc.Value))
			assert.Equal(t, tc.Bytes, buf.Bytes())
		})
	}
}

func TestCompactIndex__RoundTrip(t *testing.T) {
	values := []int32{0, 1, -1, 63, 64, -64, 8191, -8191, 1 << 20, -(1 << 20), (1 << 31) - 1, -((1 << 31) - 1)}
	for _, v := range values {
		var buf bytes.Buffer
		require.NoError(t, wire.WriteCompactIndex(&buf, v))
		got, err := wire.ReadCompactIndex(&buf)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestReadCompactIndex__TooLong(t *testing.T) {
	buf := bytes.NewReader([]byte{0xC0, 0xFF, 0xFF, 0xFF, 0xFF})
	_, err := wire.ReadCompactIndex(buf)
	require.Error(t, err)
}

func TestReadCompactIndex__RejectsMagnitudeAbove31Bits(t *testing.T) {
	// Five bytes, none continuing past the fifth (so the "too long" check
	// never fires), but combining all five chunks yields a magnitude well
	// past 2^31-1.
	buf := bytes.NewReader([]byte{0xC0, 0xFF, 0xFF, 0xFF, 0x7F})
	_, err := wire.ReadCompactIndex(buf)
	require.Error(t, err)
}

func TestUint32__RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, wire.WriteUint32(&buf, 0xDEADBEEF))
	got, err := wire.ReadUint32(&buf)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xDEADBEEF), got)
}
