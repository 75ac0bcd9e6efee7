// Package uz1 implements the uz1 container format: a magic signature, an
// embedded filename, and a payload run through a fixed RLE/BWT/MTF/Huffman
// cascade (with an optional second RLE stage for the extended variant).
package uz1

import (
	"io"

	uzerrors "github.com/dargueta/uz1/errors"
	"github.com/dargueta/uz1/utilities/wire"
)

// Variant selects which pipeline arrangement a container uses.
type Variant uint32

const (
	// VariantUT99 is the four-stage pipeline: RLE -> BWT -> MTF -> Huffman.
	VariantUT99 Variant = 1234

	// VariantExtended is the five-stage pipeline, adding a second RLE
	// stage between MTF and Huffman.
	VariantExtended Variant = 5678
)

func (v Variant) valid() bool {
	return v == VariantUT99 || v == VariantExtended
}

// readSignature reads and validates the 4-byte variant signature.
func readSignature(r io.Reader) (Variant, error) {
	raw, err := wire.ReadUint32(r)
	if err != nil {
		return 0, err
	}
	v := Variant(raw)
	if !v.valid() {
		return 0, uzerrors.NewWithMessage(uzerrors.BadSignature, "unrecognized uz1 signature")
	}
	return v, nil
}

// writeSignature writes the 4-byte variant signature.
func writeSignature(w io.Writer, v Variant) error {
	return wire.WriteUint32(w, uint32(v))
}
