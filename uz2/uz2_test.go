package uz2_test

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/dargueta/uz1/uz2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUz2__RoundTrip(t *testing.T) {
	cases := map[string][]byte{
		"empty":      {},
		"homogenous": bytes.Repeat([]byte{0x42}, 9000),
	}

	randomData := make([]byte, uz2.ChunkSize*2+137)
	_, err := rand.Read(randomData)
	require.NoError(t, err)
	cases["multi_chunk_heterogenous"] = randomData

	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			var compressed bytes.Buffer
			_, err := uz2.Compress(bytes.NewReader(data), &compressed)
			require.NoError(t, err)

			decompressed := bytes.NewBuffer([]byte{})
			n, err := uz2.Decompress(&compressed, decompressed)
			require.NoError(t, err)
			assert.EqualValues(t, len(data), n)
			assert.Equal(t, data, decompressed.Bytes())
		})
	}
}
