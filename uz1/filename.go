package uz1

import (
	"encoding/binary"
	"io"
	"unicode/utf16"

	uzerrors "github.com/dargueta/uz1/errors"
	"github.com/dargueta/uz1/utilities/wire"
)

// WriteFilename emits a filename record: a compact-index length whose sign
// selects the encoding, followed by that many code units and a terminating
// zero. ASCII-only names (every rune ≤ 0x7F) are always preferred, even if
// the caller's string round-tripped through UTF-16 upstream; only a name
// containing a rune above 0x7F forces the wide encoding.
func WriteFilename(w io.Writer, name string) error {
	if isASCII(name) {
		return writeASCIIFilename(w, name)
	}
	return writeWideFilename(w, name)
}

func isASCII(name string) bool {
	for _, r := range name {
		if r > 0x7F {
			return false
		}
	}
	return true
}

func writeASCIIFilename(w io.Writer, name string) error {
	length := int32(len(name) + 1) // + terminating NUL
	if length <= 0 {
		return uzerrors.New(uzerrors.BadFilename)
	}
	if err := wire.WriteCompactIndex(w, length); err != nil {
		return err
	}
	if _, err := w.Write([]byte(name)); err != nil {
		return uzerrors.NewFromError(uzerrors.IOError, err)
	}
	return wire.WriteByte(w, 0)
}

func writeWideFilename(w io.Writer, name string) error {
	units := utf16.Encode([]rune(name))
	length := int32(len(units) + 1)
	if err := wire.WriteCompactIndex(w, -length); err != nil {
		return err
	}
	for _, u := range units {
		if err := writeUint16LE(w, u); err != nil {
			return err
		}
	}
	return writeUint16LE(w, 0)
}

func writeUint16LE(w io.Writer, v uint16) error {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	if _, err := w.Write(buf[:]); err != nil {
		return uzerrors.NewFromError(uzerrors.IOError, err)
	}
	return nil
}

func readUint16LE(r io.Reader) (uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, uzerrors.NewFromError(uzerrors.TruncatedInput, err)
	}
	return binary.LittleEndian.Uint16(buf[:]), nil
}

// ReadFilename reverses WriteFilename: the sign of the length prefix
// selects 8-bit or 16-bit little-endian code units. A length of zero, or
// a missing terminator, is a BadFilename error.
func ReadFilename(r io.Reader) (string, error) {
	length, err := wire.ReadCompactIndex(r)
	if err != nil {
		return "", err
	}
	if length == 0 {
		return "", uzerrors.New(uzerrors.BadFilename)
	}
	if length > 0 {
		return readASCIIFilename(r, int(length))
	}
	return readWideFilename(r, int(-length))
}

func readASCIIFilename(r io.Reader, numUnits int) (string, error) {
	buf := make([]byte, numUnits)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", uzerrors.NewFromError(uzerrors.TruncatedInput, err)
	}
	if buf[numUnits-1] != 0 {
		return "", uzerrors.NewWithMessage(uzerrors.BadFilename, "missing NUL terminator")
	}
	return string(buf[:numUnits-1]), nil
}

func readWideFilename(r io.Reader, numUnits int) (string, error) {
	units := make([]uint16, numUnits)
	for i := 0; i < numUnits; i++ {
		u, err := readUint16LE(r)
		if err != nil {
			return "", err
		}
		units[i] = u
	}
	if units[numUnits-1] != 0 {
		return "", uzerrors.NewWithMessage(uzerrors.BadFilename, "missing NUL terminator")
	}
	return string(utf16.Decode(units[:numUnits-1])), nil
}
