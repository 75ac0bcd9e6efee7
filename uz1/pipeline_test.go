package uz1_test

import (
	"bytes"
	"testing"

	"github.com/dargueta/uz1/uz1"
	"github.com/noxer/bytewriter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, data []byte, variant uz1.Variant, filename string) ([]byte, string) {
	t.Helper()

	var compressed bytes.Buffer
	err := uz1.Compress(bytes.NewReader(data), &compressed, filename, variant, nil)
	require.NoError(t, err)

	decompressed := bytes.NewBuffer([]byte{})
	gotFilename, err := uz1.Decompress(&compressed, decompressed, nil)
	require.NoError(t, err)

	return decompressed.Bytes(), gotFilename
}

func TestCompress__EmptyInput(t *testing.T) {
	data, name := roundTrip(t, []byte{}, uz1.VariantUT99, "a.u")
	assert.Equal(t, []byte{}, data)
	assert.Equal(t, "a.u", name)
}

func TestCompress__SingleByte(t *testing.T) {
	data, name := roundTrip(t, []byte{0x00}, uz1.VariantUT99, "a")
	assert.Equal(t, []byte{0x00}, data)
	assert.Equal(t, "a", name)
}

func TestCompress__PureRun(t *testing.T) {
	input := bytes.Repeat([]byte("X"), 10)
	data, _ := roundTrip(t, input, uz1.VariantUT99, "a")
	assert.Equal(t, input, data)
}

func TestCompress__BlockBoundary(t *testing.T) {
	// Bytes that cycle through 251 distinct values so the RLE stage never
	// forms a run of 5, keeping the BWT stage's input length equal to the
	// raw input length; this exercises the exact two-block split the
	// format's block boundary scenario calls for.
	input := make([]byte, 262145)
	for i := range input {
		input[i] = byte(i % 251) // 251 is prime relative to 256, avoids runs
	}
	data, _ := roundTrip(t, input, uz1.VariantUT99, "big.u")
	assert.Equal(t, input, data)
}

func TestCompress__VariantsAgreeOnDecodedContent(t *testing.T) {
	input := []byte("abababababababababababab")

	ut99Data, _ := roundTrip(t, input, uz1.VariantUT99, "f")
	extData, _ := roundTrip(t, input, uz1.VariantExtended, "f")

	assert.Equal(t, input, ut99Data)
	assert.Equal(t, input, extData)
	assert.Equal(t, ut99Data, extData)
}

func TestDecompress__RejectsBadSignature(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{0x99, 0x99, 0x99, 0x99})
	var out bytes.Buffer
	_, err := uz1.Decompress(&buf, &out, nil)
	require.Error(t, err)
}

func TestCompress__ToFixedCapacityBuffer(t *testing.T) {
	// Exercises Compress against a bounded-capacity io.Writer rather than
	// a growable bytes.Buffer, the way the pipeline is used when the
	// caller already knows an upper bound on the compressed size.
	input := []byte("a small file compressed into a fixed-size destination")

	var reference bytes.Buffer
	require.NoError(t, uz1.Compress(bytes.NewReader(input), &reference, "small.u", uz1.VariantUT99, nil))

	destination := make([]byte, 4096)
	writer := bytewriter.New(destination)
	err := uz1.Compress(bytes.NewReader(input), writer, "small.u", uz1.VariantUT99, nil)
	require.NoError(t, err)

	var decompressed bytes.Buffer
	filename, err := uz1.Decompress(bytes.NewReader(destination[:reference.Len()]), &decompressed, nil)
	require.NoError(t, err)
	assert.Equal(t, "small.u", filename)
	assert.Equal(t, input, decompressed.Bytes())
}

func TestCompress__CancellationStopsEarly(t *testing.T) {
	var compressed bytes.Buffer
	calls := 0
	progress := func(ev uz1.ProgressEvent) bool {
		calls++
		return false
	}
	err := uz1.Compress(bytes.NewReader([]byte("hello world")), &compressed, "f", uz1.VariantUT99, progress)
	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, compressed.Len())
}
