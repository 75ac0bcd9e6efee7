// Package testfixture provides test helpers for loading uz1 fixtures as
// seekable streams, adapted from the disk-image loading helper this
// module's teacher used for its own compressed test fixtures.
package testfixture

import (
	"bytes"
	"io"
	"testing"

	"github.com/dargueta/uz1/uz1"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/bytesextra"
)

// LoadContainer decompresses a uz1 container held in memory and returns its
// payload as a seekable stream, along with the embedded filename.
//
//   - Writes to the returned stream do not affect compressedContainer.
//   - The stream's size is fixed to the decompressed payload's size;
//     writing past the end of it is an error.
func LoadContainer(t *testing.T, compressedContainer []byte) (io.ReadWriteSeeker, string) {
	t.Helper()
	require.Greater(t, len(compressedContainer), 0, "compressed container is empty")

	var decompressed bytes.Buffer
	filename, err := uz1.Decompress(bytes.NewReader(compressedContainer), &decompressed, nil)
	require.NoError(t, err)

	return bytesextra.NewReadWriteSeeker(decompressed.Bytes()), filename
}

// MakeContainer compresses payload into an in-memory uz1 container, for
// tests that need a fixture to feed back into LoadContainer.
func MakeContainer(t *testing.T, payload []byte, filename string, variant uz1.Variant) []byte {
	t.Helper()

	var compressed bytes.Buffer
	err := uz1.Compress(bytes.NewReader(payload), &compressed, filename, variant, nil)
	require.NoError(t, err)
	return compressed.Bytes()
}
