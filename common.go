// This package defines (yet another) bencode encoding/decoding library. Instead of mapping
// bencode values onto Go structs, it decodes a byte buffer into a tree of typed items
// (byte strings, integers, lists and dictionaries) which can be inspected, rebuilt and
// encoded back to canonical bencode bytes.
//
// Decoded byte strings are sub-slices of the input buffer, so the decoded tree must not
// outlive the buffer unless the strings are copied first.
package yabel

const (
	numberStart    = 0x69
	dictStart      = 0x64
	listStart      = 0x6c
	bencodeEnd     = 0x65
	bytesLengthSep = 0x3a
)
