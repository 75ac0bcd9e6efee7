package compression

import (
	"sort"

	uzerrors "github.com/dargueta/uz1/errors"
)

// MaxBlockSize is the largest number of bytes the BWT stage will accept in
// a single block.
const MaxBlockSize = 262144

// BWTBlock is one forward-transformed block: the header fields plus the
// transformed payload, which is always length+1 bytes.
type BWTBlock struct {
	Length  uint32
	First   uint32
	Last    uint32
	Payload []byte
}

// sentinelRank is the virtual byte value appended once past the end of the
// block for suffix-array construction: strictly greater than any real byte
// (0-255), so the all-sentinel suffix at position n is the unique global
// maximum and every real suffix that runs out of bytes before another
// compares as larger than the one that kept going. This reproduces
// spec §4.4's clamped-comparator tie-break ("the suffix with the larger
// starting index sorts after, once both have run out of real bytes")
// without special-casing it: two suffixes that exhaust their real bytes at
// the same offset diverge only at the sentinel-extended position, and the
// shorter one (larger starting index, since every suffix ends at the same
// block boundary) sees the sentinel there while the longer one still has a
// real byte, so the shorter one sorts after.
const sentinelRank = 256

// buildSuffixArray computes the suffix array of block extended with one
// virtual sentinel character, via prefix doubling: starting from
// single-character ranks, each round doubles the compared prefix length by
// pairing every suffix's current rank with the rank of the suffix
// starting 2^round positions later, until ranks are fully distinct. This
// is the standard O(n log^2 n) suffix-sort spec.md §4.4 calls for in place
// of a generic comparison sort, which degrades toward O(n^2) on inputs
// with long repeated runs.
func buildSuffixArray(block []byte) []int {
	n := len(block)
	m := n + 1

	rank := make([]int, m)
	for i := 0; i < n; i++ {
		rank[i] = int(block[i])
	}
	rank[n] = sentinelRank

	sa := make([]int, m)
	for i := range sa {
		sa[i] = i
	}

	secondRank := func(i, k int) int {
		if i+k < m {
			return rank[i+k]
		}
		return -1
	}

	next := make([]int, m)
	for k := 1; ; k *= 2 {
		sort.Slice(sa, func(x, y int) bool {
			a, b := sa[x], sa[y]
			if rank[a] != rank[b] {
				return rank[a] < rank[b]
			}
			return secondRank(a, k) < secondRank(b, k)
		})

		next[sa[0]] = 0
		for i := 1; i < m; i++ {
			prev, cur := sa[i-1], sa[i]
			same := rank[prev] == rank[cur] && secondRank(prev, k) == secondRank(cur, k)
			if same {
				next[cur] = next[prev]
			} else {
				next[cur] = next[prev] + 1
			}
		}
		copy(rank, next)

		if rank[sa[m-1]] == m-1 {
			break
		}
	}

	return sa
}

// ForwardBWT suffix-sorts block (at most MaxBlockSize bytes) and returns
// the block header plus transformed payload described in the BWT block
// record.
func ForwardBWT(block []byte) (BWTBlock, error) {
	n := len(block)
	if n > MaxBlockSize {
		return BWTBlock{}, uzerrors.NewWithMessage(uzerrors.CorruptBlock, "block exceeds maximum size")
	}

	if n == 0 {
		return BWTBlock{Length: 0, First: 0, Last: 0, Payload: []byte{0}}, nil
	}

	// P is the full n+1 index array; sa[n] always ends up holding the
	// fixed sentinel value n, since the all-sentinel suffix is the global
	// maximum under buildSuffixArray's ranking.
	sa := buildSuffixArray(block)

	posOfValue := make([]int, n+1)
	for i, v := range sa {
		posOfValue[v] = i
	}

	first := posOfValue[1]
	last := posOfValue[0]

	payload := make([]byte, n+1)
	for i, v := range sa {
		if v != 0 {
			payload[i] = block[v-1]
		} else {
			payload[i] = block[0]
		}
	}

	return BWTBlock{
		Length:  uint32(n),
		First:   uint32(first),
		Last:    uint32(last),
		Payload: payload,
	}, nil
}

// InverseBWT reverses ForwardBWT, reconstructing the original block from
// its header fields and transformed payload via a 257-way counting sort.
func InverseBWT(b BWTBlock) ([]byte, error) {
	n := int(b.Length)
	if n > MaxBlockSize {
		return nil, uzerrors.NewWithMessage(uzerrors.CorruptBlock, "block length exceeds maximum size")
	}
	if n == 0 {
		return []byte{}, nil
	}

	m := n + 1
	if len(b.Payload) != m {
		return nil, uzerrors.NewWithMessage(uzerrors.TruncatedInput, "BWT payload shorter than declared length")
	}
	if int(b.First) < 0 || int(b.First) > n || int(b.Last) < 0 || int(b.Last) > n {
		return nil, uzerrors.NewWithMessage(uzerrors.CorruptBlock, "BWT first/last index out of range")
	}
	if b.First == b.Last {
		return nil, uzerrors.NewWithMessage(uzerrors.CorruptBlock, "BWT first and last indices must differ for a nonempty block")
	}

	last := int(b.Last)
	first := int(b.First)
	d := b.Payload

	var count [257]int
	symbolOf := func(i int) int {
		if i == last {
			return 256
		}
		return int(d[i])
	}

	for i := 0; i < m; i++ {
		count[symbolOf(i)]++
	}

	var running [257]int
	sum := 0
	for c := 0; c < 257; c++ {
		running[c] = sum
		sum += count[c]
		count[c] = 0
	}

	next := make([]int, m)
	for i := 0; i < m; i++ {
		s := symbolOf(i)
		next[running[s]+count[s]] = i
		count[s]++
	}

	out := make([]byte, n)
	i := first
	for j := 0; j < n; j++ {
		out[j] = d[i]
		i = next[i]
	}

	return out, nil
}
