package uz1

// Stage names reported through ProgressFunc, in pipeline order.
const (
	StageRLE1    = "rle"
	StageBWT     = "bwt"
	StageMTF     = "mtf"
	StageRLE2    = "rle2"
	StageHuffman = "huffman"
)

// ProgressEvent describes one point at which a caller-supplied ProgressFunc
// may inspect progress and request cancellation. BlockIndex is -1 outside
// the BWT stage's per-block reporting; TotalBlocks is -1 whenever the
// total isn't yet known (during compression, block count isn't known
// until the RLE stage has already produced its full output).
type ProgressEvent struct {
	Stage       string
	BlockIndex  int
	TotalBlocks int
}

// ProgressFunc is invoked at stage boundaries and before each BWT block is
// processed. Returning false requests cancellation: the operation stops
// without further reads or writes and returns a Cancelled error. Partial
// output already written to the destination is the caller's to discard.
type ProgressFunc func(ProgressEvent) bool

// checkProgress calls fn if non-nil and reports whether processing should
// continue.
func checkProgress(fn ProgressFunc, ev ProgressEvent) bool {
	if fn == nil {
		return true
	}
	return fn(ev)
}
