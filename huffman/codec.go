package huffman

import (
	"fmt"
	"unicode/utf8"
)

// Compressed is the result of compressing one text.
type Compressed struct {
	// Data holds the packed stream: one pad-count byte, followed by the
	// encoded bits and the pad bits.
	Data []byte

	// Tree and Codes are needed to decompress Data.
	Tree  *Tree
	Codes CodeTable

	// EncodedBits holds the length of the encoded bit string, excluding
	// the header and the pad bits.
	EncodedBits int
}

// BitsPerSymbol returns the average number of encoded bits per symbol of the
// original text, or 0 for the empty text.
func (c *Compressed) BitsPerSymbol() float64 {
	n := c.Tree.Weight()
	if n == 0 {
		return 0
	}
	return float64(c.EncodedBits) / float64(n)
}

// Compress runs the whole Huffman pipeline over text: count frequencies,
// build the tree, assign codes, encode, pad and pack.
func Compress(text string) (*Compressed, error) {
	if !utf8.ValidString(text) {
		return nil, ErrInvalidText
	}

	tree := BuildTree(Frequency(text))
	codes := AssignCodes(tree)

	bits, err := Encode(text, codes)
	if err != nil {
		return nil, err
	}

	data, err := Pack(Pad(bits))
	if err != nil {
		return nil, err
	}

	return &Compressed{
		Data:        data,
		Tree:        tree,
		Codes:       codes,
		EncodedBits: len(bits),
	}, nil
}

// Decompress reverses Compress, using the Tree returned alongside the data.
func Decompress(data []byte, t *Tree) (string, error) {
	bits, err := unpackPayload(data)
	if err != nil {
		return "", err
	}
	return Decode(bits, t)
}

// DecompressWithCodes reverses Compress, using the CodeTable returned
// alongside the data.
func DecompressWithCodes(data []byte, codes CodeTable) (string, error) {
	bits, err := unpackPayload(data)
	if err != nil {
		return "", err
	}
	return DecodeWithCodes(bits, codes)
}

func unpackPayload(data []byte) (string, error) {
	bits, err := Unpad(Unpack(data))
	if err != nil {
		return "", fmt.Errorf("unpack %d bytes: %w", len(data), err)
	}
	return bits, nil
}
