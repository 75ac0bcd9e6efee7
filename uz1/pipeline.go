package uz1

import (
	"bytes"
	"io"

	uzerrors "github.com/dargueta/uz1/errors"
	"github.com/dargueta/uz1/utilities/compression"
	"github.com/dargueta/uz1/utilities/wire"
)

// Compress reads all of input, runs it through the pipeline stages variant
// selects, and writes a complete uz1 container (signature, filename
// record, Huffman payload) to output. filename is encoded per §4.7
// (ASCII when possible, UTF-16LE otherwise).
func Compress(input io.Reader, output io.Writer, filename string, variant Variant, progress ProgressFunc) error {
	if !variant.valid() {
		return uzerrors.NewWithMessage(uzerrors.BadSignature, "unsupported variant")
	}

	raw, err := io.ReadAll(input)
	if err != nil {
		return uzerrors.NewFromError(uzerrors.IOError, err)
	}

	if !checkProgress(progress, ProgressEvent{Stage: StageRLE1, BlockIndex: -1, TotalBlocks: -1}) {
		return uzerrors.New(uzerrors.Cancelled)
	}
	rleOut := compression.EncodeRLE(raw)

	totalBlocks := (len(rleOut) + compression.MaxBlockSize - 1) / compression.MaxBlockSize
	if len(rleOut) == 0 {
		totalBlocks = 1
	}

	var bwtOut bytes.Buffer
	for i := 0; i < totalBlocks; i++ {
		if !checkProgress(progress, ProgressEvent{Stage: StageBWT, BlockIndex: i, TotalBlocks: totalBlocks}) {
			return uzerrors.New(uzerrors.Cancelled)
		}
		start := i * compression.MaxBlockSize
		end := start + compression.MaxBlockSize
		if end > len(rleOut) {
			end = len(rleOut)
		}
		block, err := compression.ForwardBWT(rleOut[start:end])
		if err != nil {
			return err
		}
		if err := writeBWTBlock(&bwtOut, block); err != nil {
			return err
		}
	}

	if !checkProgress(progress, ProgressEvent{Stage: StageMTF, BlockIndex: -1, TotalBlocks: -1}) {
		return uzerrors.New(uzerrors.Cancelled)
	}
	mtfOut := compression.EncodeMTF(bwtOut.Bytes())

	final := mtfOut
	if variant == VariantExtended {
		if !checkProgress(progress, ProgressEvent{Stage: StageRLE2, BlockIndex: -1, TotalBlocks: -1}) {
			return uzerrors.New(uzerrors.Cancelled)
		}
		final = compression.EncodeRLE(mtfOut)
	}

	if !checkProgress(progress, ProgressEvent{Stage: StageHuffman, BlockIndex: -1, TotalBlocks: -1}) {
		return uzerrors.New(uzerrors.Cancelled)
	}
	huffmanOut := compression.EncodeHuffman(final)

	if err := writeSignature(output, variant); err != nil {
		return err
	}
	if err := WriteFilename(output, filename); err != nil {
		return err
	}
	if _, err := output.Write(huffmanOut); err != nil {
		return uzerrors.NewFromError(uzerrors.IOError, err)
	}
	return nil
}

// Decompress reads a complete uz1 container from input, reverses the
// pipeline stages, and writes the recovered original bytes to output. It
// returns the filename embedded in the container.
func Decompress(input io.Reader, output io.Writer, progress ProgressFunc) (string, error) {
	variant, err := readSignature(input)
	if err != nil {
		return "", err
	}

	filename, err := ReadFilename(input)
	if err != nil {
		return "", err
	}

	huffmanPayload, err := io.ReadAll(input)
	if err != nil {
		return "", uzerrors.NewFromError(uzerrors.IOError, err)
	}

	if !checkProgress(progress, ProgressEvent{Stage: StageHuffman, BlockIndex: -1, TotalBlocks: -1}) {
		return "", uzerrors.New(uzerrors.Cancelled)
	}
	final, err := compression.DecodeHuffman(huffmanPayload)
	if err != nil {
		return "", err
	}

	mtfOut := final
	if variant == VariantExtended {
		if !checkProgress(progress, ProgressEvent{Stage: StageRLE2, BlockIndex: -1, TotalBlocks: -1}) {
			return "", uzerrors.New(uzerrors.Cancelled)
		}
		mtfOut, err = compression.DecodeRLE(final)
		if err != nil {
			return "", err
		}
	}

	if !checkProgress(progress, ProgressEvent{Stage: StageMTF, BlockIndex: -1, TotalBlocks: -1}) {
		return "", uzerrors.New(uzerrors.Cancelled)
	}
	bwtOut := compression.DecodeMTF(mtfOut)

	var rleOut bytes.Buffer
	r := bytes.NewReader(bwtOut)
	blockIndex := 0
	for r.Len() > 0 {
		if !checkProgress(progress, ProgressEvent{Stage: StageBWT, BlockIndex: blockIndex, TotalBlocks: -1}) {
			return "", uzerrors.New(uzerrors.Cancelled)
		}
		block, err := readBWTBlock(r)
		if err != nil {
			return "", err
		}
		chunk, err := compression.InverseBWT(block)
		if err != nil {
			return "", err
		}
		rleOut.Write(chunk)
		blockIndex++
	}

	if !checkProgress(progress, ProgressEvent{Stage: StageRLE1, BlockIndex: -1, TotalBlocks: -1}) {
		return "", uzerrors.New(uzerrors.Cancelled)
	}
	raw, err := compression.DecodeRLE(rleOut.Bytes())
	if err != nil {
		return "", err
	}

	if _, err := output.Write(raw); err != nil {
		return "", uzerrors.NewFromError(uzerrors.IOError, err)
	}
	return filename, nil
}

// writeBWTBlock writes a BWT block record: length, first, last (each a
// plain u32, not a compact index - they pass through MTF and the optional
// second RLE as ordinary bytes) followed by the payload.
func writeBWTBlock(w io.Writer, b compression.BWTBlock) error {
	if err := wire.WriteUint32(w, b.Length); err != nil {
		return err
	}
	if err := wire.WriteUint32(w, b.First); err != nil {
		return err
	}
	if err := wire.WriteUint32(w, b.Last); err != nil {
		return err
	}
	_, err := w.Write(b.Payload)
	if err != nil {
		return uzerrors.NewFromError(uzerrors.IOError, err)
	}
	return nil
}

// readBWTBlock reads one BWT block record from r.
func readBWTBlock(r io.Reader) (compression.BWTBlock, error) {
	length, err := wire.ReadUint32(r)
	if err != nil {
		return compression.BWTBlock{}, err
	}
	if length > compression.MaxBlockSize {
		return compression.BWTBlock{}, uzerrors.NewWithMessage(uzerrors.CorruptBlock, "BWT block length exceeds maximum size")
	}
	first, err := wire.ReadUint32(r)
	if err != nil {
		return compression.BWTBlock{}, err
	}
	last, err := wire.ReadUint32(r)
	if err != nil {
		return compression.BWTBlock{}, err
	}
	payload := make([]byte, length+1)
	if _, err := io.ReadFull(r, payload); err != nil {
		return compression.BWTBlock{}, uzerrors.NewFromError(uzerrors.TruncatedInput, err)
	}
	return compression.BWTBlock{Length: length, First: first, Last: last, Payload: payload}, nil
}
