package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Code represents a sequence of bits.  Each bit is stored as one of the ASCII
// digits '0' and '1', first bit first.
type Code string

// Size returns the number of bits in this Code.
func (hc Code) Size() int {
	return len(hc)
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(string(hc))
}

var _ fmt.Stringer = Code("")

// CodeTable maps each Symbol of a Huffman tree to its Code, and back.
type CodeTable struct {
	codes   map[Symbol]Code
	symbols map[Code]Symbol
	minSize int
	maxSize int
}

// AssignCodes walks the tree depth-first and assigns every leaf the path
// taken to reach it: '0' for each left edge, '1' for each right edge.
//
// A tree consisting of a single leaf has no edges, so that leaf is assigned
// the one-bit code "0".
//
func AssignCodes(t *Tree) CodeTable {
	ct := CodeTable{
		codes:   make(map[Symbol]Code, t.numSymbols),
		symbols: make(map[Code]Symbol, t.numSymbols),
	}

	root := t.root
	if root == nil {
		return ct
	}
	if root.IsLeaf() {
		ct.add(root.Symbol, "0")
		return ct
	}

	// The stack holds the internal nodes on the path from the root.  The
	// path bits accumulate in path; len(path) == len(stack)-1 on entry to
	// each node.
	//
	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children

	type stackItem struct {
		n *Node
		x byte
	}

	stack := []stackItem{{n: root}}
	path := make([]byte, 0, 32)

	processChild := func(child *Node, bit byte) {
		path = append(path, bit)
		if child.IsLeaf() {
			ct.add(child.Symbol, Code(path))
			path = path[:len(path)-1]
			return
		}
		stack = append(stack, stackItem{n: child})
	}

	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			processChild(top.n.Left, '0')
		case 1:
			processChild(top.n.Right, '1')
		case 2:
			stack = stack[:len(stack)-1]
			if len(path) != 0 {
				path = path[:len(path)-1]
			}
		}
	}

	return ct
}

func (ct *CodeTable) add(sym Symbol, hc Code) {
	size := hc.Size()
	if len(ct.codes) == 0 {
		ct.minSize = size
		ct.maxSize = size
	} else if ct.minSize > size {
		ct.minSize = size
	} else if ct.maxSize < size {
		ct.maxSize = size
	}
	ct.codes[sym] = hc
	ct.symbols[hc] = sym
}

// Encode returns the Code assigned to the given Symbol.  The second result is
// false if the Symbol has no Code.
func (ct CodeTable) Encode(sym Symbol) (Code, bool) {
	hc, found := ct.codes[sym]
	return hc, found
}

// Decode returns the Symbol whose Code is exactly hc, or InvalidSymbol if
// there is none.
func (ct CodeTable) Decode(hc Code) Symbol {
	sym, found := ct.symbols[hc]
	if !found {
		return InvalidSymbol
	}
	return sym
}

// Len returns the number of symbols in the table.
func (ct CodeTable) Len() int {
	return len(ct.codes)
}

// MinSize is the bit length of the shortest legal code.
func (ct CodeTable) MinSize() int {
	return ct.minSize
}

// MaxSize is the bit length of the longest legal code.
func (ct CodeTable) MaxSize() int {
	return ct.maxSize
}

// Symbols returns the symbols of the table in ascending order.
func (ct CodeTable) Symbols() []Symbol {
	out := make([]Symbol, 0, len(ct.codes))
	for sym := range ct.codes {
		out = append(out, sym)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer.
func (ct CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for _, sym := range ct.Symbols() {
		fmt.Fprintf(&buf, "\tEncode(%s) = %s\n", sym, ct.codes[sym])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DebugString returns the output of Dump as a string.
func (ct CodeTable) DebugString() string {
	var buf strings.Builder
	_, _ = ct.Dump(&buf)
	return buf.String()
}

// String returns a brief human-readable description of the CodeTable.
func (ct CodeTable) String() string {
	return fmt.Sprintf("(Huffman code with %d symbols, with coded lengths of %d .. %d bits)", len(ct.codes), ct.minSize, ct.maxSize)
}
