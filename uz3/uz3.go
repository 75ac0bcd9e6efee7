// Package uz3 implements the uz3 container: a single zlib-compressed blob
// with no internal framing, unrelated to the uz1 pipeline beyond sharing
// an origin repository.
package uz3

import (
	"compress/zlib"
	"io"

	uzerrors "github.com/dargueta/uz1/errors"
)

// Compress writes input to output as a single zlib stream.
func Compress(input io.Reader, output io.Writer) (int64, error) {
	zw := zlib.NewWriter(output)
	defer zw.Close()

	n, err := io.Copy(zw, input)
	if err != nil {
		return n, uzerrors.NewFromError(uzerrors.IOError, err)
	}
	return n, nil
}

// Decompress reverses Compress.
func Decompress(input io.Reader, output io.Writer) (int64, error) {
	zr, err := zlib.NewReader(input)
	if err != nil {
		return 0, uzerrors.NewFromError(uzerrors.CorruptBlock, err)
	}
	defer zr.Close()

	n, err := io.Copy(output, zr)
	if err != nil {
		return n, uzerrors.NewFromError(uzerrors.IOError, err)
	}
	return n, nil
}
