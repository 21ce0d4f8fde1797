package huffman

import (
	"bytes"
	"encoding"
	"encoding/binary"
	"fmt"
	"unicode/utf8"

	"github.com/icza/bitio"
)

// symbolBits is the width of a serialized leaf symbol; MaxSymbol fits in 21
// bits.
const symbolBits = 21

// maxTreeDepth bounds the depth of a restored tree.  Building a tree deeper
// than about 92 levels needs a total weight beyond the range of uint64.
const maxTreeDepth = 64 * 2

// MarshalBinary serializes the shape of the tree and its symbols.
//
// The encoding is a single presence bit (0 for the empty tree), followed by
// the nodes in pre-order: an internal node is a 0 bit followed by its left
// and right subtrees, and a leaf is a 1 bit followed by its Symbol in 21
// bits.  The final byte is padded with zero bits.  Weights are not stored.
//
func (t *Tree) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)

	if err := w.WriteBool(t.root != nil); err != nil {
		return nil, err
	}

	var err error
	walkPreorder(t.root, func(n *Node, _ int) {
		if err != nil {
			return
		}
		if !n.IsLeaf() {
			err = w.WriteBool(false)
			return
		}
		if err = w.WriteBool(true); err == nil {
			err = w.WriteBits(uint64(n.Symbol), symbolBits)
		}
	})
	if err != nil {
		return nil, err
	}

	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary restores a tree serialized by MarshalBinary.  Every node of
// the restored tree has weight 0.
func (t *Tree) UnmarshalBinary(data []byte) error {
	r := bitio.NewReader(bytes.NewReader(data))

	present, err := r.ReadBool()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedTree, err)
	}
	if !present {
		*t = Tree{}
		return nil
	}

	seen := make(map[Symbol]struct{})
	root, err := readNode(r, seen, 0)
	if err != nil {
		return err
	}

	*t = Tree{root: root, numSymbols: len(seen)}
	return nil
}

func readNode(r *bitio.Reader, seen map[Symbol]struct{}, depth int) (*Node, error) {
	if depth > maxTreeDepth {
		return nil, fmt.Errorf("%w: deeper than %d levels", ErrMalformedTree, maxTreeDepth)
	}

	isLeaf, err := r.ReadBool()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedTree, err)
	}

	if isLeaf {
		u, err := r.ReadBits(symbolBits)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedTree, err)
		}
		sym := Symbol(u)
		if !utf8.ValidRune(rune(sym)) {
			return nil, fmt.Errorf("%w: symbol %#x out of range", ErrMalformedTree, u)
		}
		if _, found := seen[sym]; found {
			return nil, fmt.Errorf("%w: duplicate symbol %s", ErrMalformedTree, sym)
		}
		seen[sym] = struct{}{}
		return &Node{Symbol: sym}, nil
	}

	left, err := readNode(r, seen, depth+1)
	if err != nil {
		return nil, err
	}
	right, err := readNode(r, seen, depth+1)
	if err != nil {
		return nil, err
	}
	return &Node{Symbol: InvalidSymbol, Left: left, Right: right}, nil
}

var (
	_ encoding.BinaryMarshaler   = (*Tree)(nil)
	_ encoding.BinaryUnmarshaler = (*Tree)(nil)
)

// CompressArchive compresses text into a self-contained archive that can be
// decompressed without the in-memory Tree.  The layout is the length of the
// serialized tree as an unsigned varint, the serialized tree, and the packed
// stream produced by Compress.
func CompressArchive(text string) ([]byte, error) {
	c, err := Compress(text)
	if err != nil {
		return nil, err
	}

	treeData, err := c.Tree.MarshalBinary()
	if err != nil {
		return nil, err
	}

	var header [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(header[:], uint64(len(treeData)))

	out := make([]byte, 0, n+len(treeData)+len(c.Data))
	out = append(out, header[:n]...)
	out = append(out, treeData...)
	out = append(out, c.Data...)
	return out, nil
}

// DecompressArchive reverses CompressArchive.
func DecompressArchive(data []byte) (string, error) {
	size, n := binary.Uvarint(data)
	if n <= 0 {
		return "", fmt.Errorf("%w: bad tree length header", ErrMalformedTree)
	}
	data = data[n:]
	if size > uint64(len(data)) {
		return "", fmt.Errorf("%w: tree length %d exceeds %d remaining bytes", ErrMalformedTree, size, len(data))
	}

	var t Tree
	if err := t.UnmarshalBinary(data[:size]); err != nil {
		return "", err
	}
	return Decompress(data[size:], &t)
}
