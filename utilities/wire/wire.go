// Package wire implements the low-level integer encodings used on the uz1
// wire: plain little-endian 32-bit words, and the legacy "compact index"
// variable-length signed integer.
package wire

import (
	"encoding/binary"
	"io"

	uzerrors "github.com/dargueta/uz1/errors"
)

// ReadUint32 reads a 4-byte little-endian unsigned integer.
func ReadUint32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, uzerrors.NewFromError(uzerrors.TruncatedInput, err)
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// WriteUint32 writes a 4-byte little-endian unsigned integer.
func WriteUint32(w io.Writer, value uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], value)
	_, err := w.Write(buf[:])
	if err != nil {
		return uzerrors.NewFromError(uzerrors.IOError, err)
	}
	return nil
}

// ReadByte reads a single byte from r.
func ReadByte(r io.Reader) (byte, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, uzerrors.NewFromError(uzerrors.TruncatedInput, err)
	}
	return buf[0], nil
}

// WriteByte writes a single byte to w.
func WriteByte(w io.Writer, value byte) error {
	_, err := w.Write([]byte{value})
	if err != nil {
		return uzerrors.NewFromError(uzerrors.IOError, err)
	}
	return nil
}

// maxCompactIndexBytes is the longest a compact index can legally be: one
// sign/continuation byte plus four 7-bit continuation bytes covers the
// full 31-bit magnitude range the format allows.
const maxCompactIndexBytes = 5

// maxCompactIndexMagnitude is the largest magnitude the format allows: 2^31-1.
const maxCompactIndexMagnitude = (uint64(1) << 31) - 1

// ReadCompactIndex decodes a signed variable-length integer. Byte 0 carries
// the sign in bit 0x80, a continuation flag in bit 0x40, and 6 value bits.
// Each subsequent byte carries a continuation flag in bit 0x80 and 7 value
// bits, least significant chunk first.
//
// The chunks are accumulated in a 64-bit magnitude, wide enough to hold the
// full 6+7*4 = 34 bits a five-byte encoding can carry, so a magnitude past
// the format's 31-bit limit is detected explicitly instead of silently
// wrapping into int32's sign bit.
func ReadCompactIndex(r io.Reader) (int32, error) {
	b0, err := ReadByte(r)
	if err != nil {
		return 0, err
	}

	negative := b0&0x80 != 0
	magnitude := uint64(b0 & 0x3F)
	shift := uint(6)

	if b0&0x40 != 0 {
		for i := 0; i < maxCompactIndexBytes-1; i++ {
			b, err := ReadByte(r)
			if err != nil {
				return 0, err
			}
			magnitude |= uint64(b&0x7F) << shift
			shift += 7
			if b&0x80 == 0 {
				break
			}
			if i == maxCompactIndexBytes-2 {
				return 0, uzerrors.New(uzerrors.BadCompactIndex)
			}
		}
	}

	if magnitude > maxCompactIndexMagnitude {
		return 0, uzerrors.NewWithMessage(uzerrors.BadCompactIndex, "magnitude exceeds the format's 31-bit limit")
	}

	value := int32(magnitude)
	if negative {
		value = -value
	}
	return value, nil
}

// WriteCompactIndex encodes value using the same layout ReadCompactIndex
// decodes.
func WriteCompactIndex(w io.Writer, value int32) error {
	negative := value < 0
	magnitude := uint32(value)
	if negative {
		magnitude = uint32(-value)
	}

	b0 := byte(magnitude & 0x3F)
	magnitude >>= 6
	if negative {
		b0 |= 0x80
	}
	if magnitude != 0 {
		b0 |= 0x40
	}
	if err := WriteByte(w, b0); err != nil {
		return err
	}
	if magnitude == 0 {
		return nil
	}

	for i := 0; i < maxCompactIndexBytes-1; i++ {
		b := byte(magnitude & 0x7F)
		magnitude >>= 7
		if magnitude != 0 {
			b |= 0x80
		}
		if err := WriteByte(w, b); err != nil {
			return err
		}
		if magnitude == 0 {
			break
		}
	}
	return nil
}
