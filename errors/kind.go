package errors

// Kind identifies the category of failure a Uz1Error represents. Unlike the
// POSIX errno space this replaces, the set is closed and specific to the
// uz1 container format: every failure a compressor or decompressor can
// report fits exactly one of these.
type Kind int

const (
	// BadSignature means the four-byte magic at the start of a container
	// did not match any known variant.
	BadSignature Kind = iota + 1

	// BadFilename means the embedded filename record was malformed: a
	// zero-length compact index, or a last code unit that is not the
	// terminating zero. A record cut short by the end of the stream is
	// reported as TruncatedInput instead.
	BadFilename

	// TruncatedInput means the stream ended before a record that was
	// declared complete (by a preceding length field) could be read in
	// full.
	TruncatedInput

	// CorruptBlock means a decoded BWT or Huffman block failed one of its
	// internal consistency checks: an out-of-range index, a block larger
	// than the maximum, or a Huffman tree that could not be walked to a
	// leaf.
	CorruptBlock

	// BadCompactIndex means a compact index could not be decoded: more
	// than five bytes were consumed without terminating, or the encoded
	// magnitude exceeded the format's 31-bit limit.
	BadCompactIndex

	// Cancelled means the operation's ProgressFunc returned false and
	// processing stopped at the next stage or block boundary.
	Cancelled

	// IOError wraps a failure from the underlying reader or writer.
	IOError
)

var kindMessages = map[Kind]string{
	BadSignature:    "unrecognized uz1 signature",
	BadFilename:     "malformed filename record",
	TruncatedInput:  "input ended before a declared record was complete",
	CorruptBlock:    "block failed a consistency check",
	BadCompactIndex: "malformed compact index",
	Cancelled:       "operation cancelled",
	IOError:         "I/O failure",
}

// String returns the human-readable description of a Kind, or "unknown
// error kind" if the value isn't one of the named constants.
func (k Kind) String() string {
	msg, ok := kindMessages[k]
	if !ok {
		return "unknown error kind"
	}
	return msg
}
