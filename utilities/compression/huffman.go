package compression

import (
	"bytes"
	"sort"

	uzerrors "github.com/dargueta/uz1/errors"
	"github.com/dargueta/uz1/utilities/bitio"
	"github.com/dargueta/uz1/utilities/wire"
)

// MaxHuffmanTreeNodes bounds the tree built from at most 256 leaves: a
// full binary tree over 256 leaves has at most 511 internal+leaf nodes.
const MaxHuffmanTreeNodes = 512

// node is a Huffman tree node. Leaves have Symbol set and both children
// nil; internal nodes have both children set. The tree owns its nodes:
// there is no separate structure with its own claim on them. A separate
// map built after the tree is finalized (see codeTable) answers "what is
// the code word for symbol s", so the tree and the lookup never alias the
// same ownership.
type node struct {
	weight int
	symbol byte
	isLeaf bool
	child0 *node
	child1 *node
}

// bitpath is a leaf's code word, read left to right, most-significant bit
// (the one nearest the root) first.
type bitpath struct {
	bits []bool
}

func (p bitpath) appendBit(bit bool) bitpath {
	out := make([]bool, len(p.bits)+1)
	copy(out, p.bits)
	out[len(p.bits)] = bit
	return bitpath{bits: out}
}

// buildTree constructs the canonical Huffman tree from 256 symbol
// frequencies, following the reference algorithm: start from one leaf per
// symbol with nonzero frequency, kept sorted descending by weight
// (ties broken by the existing stable order); repeatedly take the two
// smallest-weight nodes as the children of a new internal node and
// reinsert it in sorted position, until one node remains.
//
// The list is kept sorted with sort.SliceStable rather than a generic
// heap because the exact tie-break the wire format depends on is "stable
// descending order, reinsert new nodes in sorted position" - a
// container/heap does not reproduce that ordering.
func buildTree(freq [256]int) *node {
	leaves := make([]*node, 0, 256)
	for symbol := 0; symbol < 256; symbol++ {
		if freq[symbol] > 0 {
			leaves = append(leaves, &node{weight: freq[symbol], symbol: byte(symbol), isLeaf: true})
		}
	}
	if len(leaves) == 0 {
		// No input bytes at all; still need a tree so the wire format has
		// something to serialize. Symbol 0 gets a phantom single leaf.
		leaves = append(leaves, &node{weight: 0, symbol: 0, isLeaf: true})
	}

	sortDescendingStable(leaves)

	for len(leaves) > 1 {
		n := len(leaves)
		// leaves is sorted descending by weight, so the back of the list
		// is the smallest; the first node popped (the absolute smallest)
		// becomes child 0, the second popped (second-smallest) child 1.
		child0 := leaves[n-1]
		child1 := leaves[n-2]
		leaves = leaves[:n-2]

		parent := &node{
			weight: child0.weight + child1.weight,
			child0: child0,
			child1: child1,
		}

		leaves = insertSortedDescending(leaves, parent)
	}

	return leaves[0]
}

func sortDescendingStable(nodes []*node) {
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].weight > nodes[j].weight
	})
}

// insertSortedDescending inserts n into nodes (already sorted descending
// by weight) so the result stays sorted descending, placing n after any
// existing nodes of equal weight to preserve stability.
func insertSortedDescending(nodes []*node, n *node) []*node {
	i := sort.Search(len(nodes), func(i int) bool {
		return nodes[i].weight < n.weight
	})
	nodes = append(nodes, nil)
	copy(nodes[i+1:], nodes[i:])
	nodes[i] = n
	return nodes
}

// codeTable maps each symbol present in the tree to its code word,
// computed by a single post-order walk after the tree is finalized.
func codeTable(root *node) map[byte]bitpath {
	table := make(map[byte]bitpath)
	var walk func(n *node, path bitpath)
	walk = func(n *node, path bitpath) {
		if n.isLeaf {
			table[n.symbol] = path
			return
		}
		walk(n.child0, path.appendBit(false))
		walk(n.child1, path.appendBit(true))
	}
	walk(root, bitpath{})
	return table
}

// serializeTree writes the tree in pre-order: 1 + children for an
// internal node, 0 + 8-bit LSB-first symbol for a leaf.
func serializeTree(w *bitio.BitWriter, n *node) {
	if n.isLeaf {
		w.WriteBit(false)
		w.WriteBits(uint32(n.symbol), 8)
		return
	}
	w.WriteBit(true)
	serializeTree(w, n.child0)
	serializeTree(w, n.child1)
}

// deserializeTree reads a tree written by serializeTree. It bounds the
// number of nodes read to MaxHuffmanTreeNodes to avoid runaway recursion
// on a corrupt bit stream.
func deserializeTree(r *bitio.BitReader) (*node, error) {
	count := 0
	var read func() (*node, error)
	read = func() (*node, error) {
		count++
		if count > MaxHuffmanTreeNodes {
			return nil, uzerrors.NewWithMessage(uzerrors.CorruptBlock, "Huffman tree exceeds maximum node count")
		}
		bit, ok := r.ReadBit()
		if !ok {
			return nil, uzerrors.NewWithMessage(uzerrors.TruncatedInput, "Huffman tree truncated")
		}
		if !bit {
			symbol, ok := r.ReadBits(8)
			if !ok {
				return nil, uzerrors.NewWithMessage(uzerrors.TruncatedInput, "Huffman leaf symbol truncated")
			}
			return &node{isLeaf: true, symbol: byte(symbol)}, nil
		}
		child0, err := read()
		if err != nil {
			return nil, err
		}
		child1, err := read()
		if err != nil {
			return nil, err
		}
		return &node{child0: child0, child1: child1}, nil
	}
	return read()
}

// EncodeHuffman runs the two-pass canonical Huffman encoder over data,
// returning a byte-aligned total count followed by the tree and coded
// symbols packed into a bit stream.
func EncodeHuffman(data []byte) []byte {
	var freq [256]int
	for _, b := range data {
		freq[b]++
	}

	root := buildTree(freq)
	codes := codeTable(root)

	w := bitio.NewBitWriter()
	serializeTree(w, root)

	for _, b := range data {
		path := codes[b]
		for _, bit := range path.bits {
			w.WriteBit(bit)
		}
	}

	packed := w.Bytes()

	var buf bytes.Buffer
	_ = wire.WriteUint32(&buf, uint32(len(data)))
	buf.Write(packed)
	return buf.Bytes()
}

// DecodeHuffman reverses EncodeHuffman.
func DecodeHuffman(data []byte) ([]byte, error) {
	buf := bytes.NewReader(data)
	total, err := wire.ReadUint32(buf)
	if err != nil {
		return nil, err
	}

	remaining := data[len(data)-buf.Len():]
	r := bitio.NewBitReader(remaining)

	root, err := deserializeTree(r)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, total)
	for i := uint32(0); i < total; i++ {
		n := root
		for !n.isLeaf {
			bit, ok := r.ReadBit()
			if !ok {
				return nil, uzerrors.NewWithMessage(uzerrors.CorruptBlock, "Huffman bit stream exhausted before all symbols were decoded")
			}
			if bit {
				n = n.child1
			} else {
				n = n.child0
			}
		}
		out = append(out, n.symbol)
	}

	return out, nil
}
