// Package compression implements the codec stages used by the uz1 pipeline:
// run-length encoding, move-to-front, the Burrows-Wheeler transform, and
// canonical Huffman coding.
//
// Each stage is a self-contained transform over a byte stream (Huffman is
// the exception: its output is a bit stream framed by a byte-aligned
// length). The uz1 package wires these stages together in the order a
// given container variant requires; none of them know about the uz1
// container format itself.
package compression
