package compression

import (
	"io"

	uzerrors "github.com/dargueta/uz1/errors"
)

// rleThreshold is the run length at which the encoder switches from
// literal copies to a literal run plus an explicit count byte.
const rleThreshold = 5

// EncodeRLE run-length encodes data using the uz1 pipeline's threshold-5
// scheme: runs shorter than 5 are copied literally; a run of 5 or more of
// the same byte is written as 5 literal copies followed by one byte giving
// the total run length (capped at 255 per emitted run, so longer runs are
// split into consecutive segments).
//
// This reproduces the algorithm the decoder inverts; the reference
// encoder's own emitter was left unimplemented in the source it was
// distilled from (see DESIGN.md).
func EncodeRLE(data []byte) []byte {
	out := make([]byte, 0, len(data))

	var prevByte byte
	runCount := 0

	flush := func() {
		if runCount == 0 {
			return
		}
		literals := runCount
		if literals > rleThreshold {
			literals = rleThreshold
		}
		for i := 0; i < literals; i++ {
			out = append(out, prevByte)
		}
		if runCount >= rleThreshold {
			out = append(out, byte(runCount))
		}
	}

	for _, b := range data {
		if b != prevByte || runCount == 255 {
			flush()
			prevByte = b
			runCount = 0
		}
		runCount++
	}
	flush()

	return out
}

// DecodeRLE reverses EncodeRLE. It returns a CorruptBlock error if a run's
// count byte is present but less than 5, or a TruncatedInput error if the
// stream ends while a count byte is still expected.
func DecodeRLE(data []byte) ([]byte, error) {
	out := make([]byte, 0, len(data))

	var prevByte byte
	repeatCount := 0

	for i := 0; i < len(data); i++ {
		b := data[i]
		out = append(out, b)

		if repeatCount > 0 && b == prevByte {
			repeatCount++
		} else {
			prevByte = b
			repeatCount = 1
		}

		if repeatCount == rleThreshold {
			i++
			if i >= len(data) {
				return nil, uzerrors.NewFromError(uzerrors.TruncatedInput, io.ErrUnexpectedEOF)
			}
			n := data[i]
			if n < rleThreshold {
				return nil, uzerrors.NewWithMessage(
					uzerrors.CorruptBlock,
					"RLE run length byte is less than the encoding threshold",
				)
			}
			for k := byte(0); k < n-rleThreshold; k++ {
				out = append(out, prevByte)
			}
			repeatCount = 0
		}
	}

	return out, nil
}
