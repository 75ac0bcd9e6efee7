// Package uz2 implements the uz2 container: a chunked zlib block stream,
// unrelated to the uz1 pipeline beyond sharing an origin repository. Each
// chunk is framed by its compressed and uncompressed lengths so a reader
// can allocate the right buffer before inflating.
package uz2

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"io"

	uzerrors "github.com/dargueta/uz1/errors"
)

// ChunkSize is the number of uncompressed bytes per chunk.
const ChunkSize = 32768

// Compress reads all of input and writes it to output as a sequence of
// zlib-compressed chunks, each preceded by its compressed and uncompressed
// lengths (both little-endian u32).
func Compress(input io.Reader, output io.Writer) (int64, error) {
	var totalWritten int64
	buf := make([]byte, ChunkSize)

	for {
		n, readErr := io.ReadFull(input, buf)
		if n > 0 {
			written, err := writeChunk(output, buf[:n])
			totalWritten += written
			if err != nil {
				return totalWritten, err
			}
		}
		if readErr == io.EOF || readErr == io.ErrUnexpectedEOF {
			return totalWritten, nil
		}
		if readErr != nil {
			return totalWritten, uzerrors.NewFromError(uzerrors.IOError, readErr)
		}
	}
}

func writeChunk(output io.Writer, chunk []byte) (int64, error) {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(chunk); err != nil {
		return 0, uzerrors.NewFromError(uzerrors.IOError, err)
	}
	if err := zw.Close(); err != nil {
		return 0, uzerrors.NewFromError(uzerrors.IOError, err)
	}
	compressed := buf.Bytes()

	var header [8]byte
	binary.LittleEndian.PutUint32(header[0:4], uint32(len(compressed)))
	binary.LittleEndian.PutUint32(header[4:8], uint32(len(chunk)))

	n1, err := output.Write(header[:])
	if err != nil {
		return int64(n1), uzerrors.NewFromError(uzerrors.IOError, err)
	}
	n2, err := output.Write(compressed)
	if err != nil {
		return int64(n1 + n2), uzerrors.NewFromError(uzerrors.IOError, err)
	}
	return int64(n1 + n2), nil
}

// Decompress reverses Compress, writing the reassembled original bytes to
// output.
func Decompress(input io.Reader, output io.Writer) (int64, error) {
	var totalWritten int64

	for {
		var header [8]byte
		_, err := io.ReadFull(input, header[:])
		if err == io.EOF {
			return totalWritten, nil
		}
		if err != nil {
			return totalWritten, uzerrors.NewFromError(uzerrors.IOError, err)
		}

		compressedLen := binary.LittleEndian.Uint32(header[0:4])
		uncompressedLen := binary.LittleEndian.Uint32(header[4:8])

		compressed := make([]byte, compressedLen)
		if _, err := io.ReadFull(input, compressed); err != nil {
			return totalWritten, uzerrors.NewFromError(uzerrors.TruncatedInput, err)
		}

		zr, err := zlib.NewReader(bytes.NewReader(compressed))
		if err != nil {
			return totalWritten, uzerrors.NewFromError(uzerrors.CorruptBlock, err)
		}

		chunk := make([]byte, uncompressedLen)
		if _, err := io.ReadFull(zr, chunk); err != nil {
			zr.Close()
			return totalWritten, uzerrors.NewFromError(uzerrors.CorruptBlock, err)
		}
		zr.Close()

		n, err := output.Write(chunk)
		totalWritten += int64(n)
		if err != nil {
			return totalWritten, uzerrors.NewFromError(uzerrors.IOError, err)
		}
	}
}
