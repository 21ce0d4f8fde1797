package huffman

import (
	"fmt"
	"strings"
)

// Decode converts a bit string produced by Encode back into text, by walking
// the tree from the root once per symbol.  A nil tree is the empty tree.
func Decode(bits string, t *Tree) (string, error) {
	var root *Node
	if t != nil {
		root = t.root
	}
	if root == nil {
		if len(bits) != 0 {
			return "", fmt.Errorf("%w: %d bits for an empty tree", ErrMalformedPayload, len(bits))
		}
		return "", nil
	}

	var buf strings.Builder

	// A single-leaf tree has the implicit code "0".
	if root.IsLeaf() {
		for i := 0; i < len(bits); i++ {
			if bits[i] != '0' {
				return "", fmt.Errorf("%w: unexpected %q at bit %d", ErrMalformedPayload, bits[i], i)
			}
			buf.WriteRune(rune(root.Symbol))
		}
		return buf.String(), nil
	}

	n := root
	for i := 0; i < len(bits); i++ {
		switch bits[i] {
		case '0':
			n = n.Left
		case '1':
			n = n.Right
		default:
			return "", fmt.Errorf("%w: %q at bit %d", ErrInvalidBit, bits[i], i)
		}
		if n == nil {
			return "", fmt.Errorf("%w: dead end at bit %d", ErrMalformedPayload, i)
		}
		if n.IsLeaf() {
			buf.WriteRune(rune(n.Symbol))
			n = root
		}
	}
	if n != root {
		return "", fmt.Errorf("%w: truncated code at end of input", ErrMalformedPayload)
	}
	return buf.String(), nil
}

// DecodeWithCodes is like Decode, but needs only the CodeTable.  Bits are
// accumulated until they form a known Code; because the table is prefix-free
// the first match is the only one.
func DecodeWithCodes(bits string, codes CodeTable) (string, error) {
	var buf strings.Builder
	start := 0
	for i := 0; i < len(bits); i++ {
		if c := bits[i]; c != '0' && c != '1' {
			return "", fmt.Errorf("%w: %q at bit %d", ErrInvalidBit, c, i)
		}
		hc := Code(bits[start : i+1])
		if hc.Size() < codes.MinSize() {
			continue
		}
		if sym := codes.Decode(hc); sym != InvalidSymbol {
			buf.WriteRune(rune(sym))
			start = i + 1
			continue
		}
		if hc.Size() >= codes.MaxSize() {
			return "", fmt.Errorf("%w: no code matches %s", ErrMalformedPayload, hc)
		}
	}
	if start != len(bits) {
		return "", fmt.Errorf("%w: truncated code at end of input", ErrMalformedPayload)
	}
	return buf.String(), nil
}
