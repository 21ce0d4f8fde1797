package huffman

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Node is a node of a Huffman tree.  A leaf has no children and holds a
// Symbol; an internal node has exactly two children and its Symbol is
// InvalidSymbol.  The Weight of an internal node is the sum of the weights of
// its children.
type Node struct {
	Symbol Symbol
	Weight uint64
	Left   *Node
	Right  *Node
}

// IsLeaf returns true iff this node has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Tree is a Huffman tree.  The zero value is the empty tree, which is the
// tree of the empty text.
type Tree struct {
	root       *Node
	numSymbols int
}

// BuildTree constructs the Huffman tree for the given frequencies.
//
// Nodes of equal weight are taken in insertion order: leaves are inserted in
// ascending Symbol order, and each merged node is inserted after every node
// created before it.  The first node taken becomes the left child.  The
// resulting tree depends only on the contents of freq.
//
func BuildTree(freq FrequencyTable) *Tree {
	symbols := freq.Symbols()
	numSymbols := len(symbols)
	if numSymbols == 0 {
		return &Tree{}
	}

	// Step 1: build a minheap of leaves.

	h := nodeHeap{list: make([]heapItem, 0, numSymbols)}
	var seq uint64
	for _, sym := range symbols {
		h.list = append(h.list, heapItem{&Node{Symbol: sym, Weight: freq[sym]}, seq})
		seq++
	}
	h.Init()

	// Step 2: pop the two lightest nodes, merge them under a new internal
	// node, and push that back, until only the root is left.

	for h.Len() > 1 {
		a := heap.Pop(&h).(heapItem)
		b := heap.Pop(&h).(heapItem)
		merged := &Node{
			Symbol: InvalidSymbol,
			Weight: a.node.Weight + b.node.Weight,
			Left:   a.node,
			Right:  b.node,
		}
		heap.Push(&h, heapItem{merged, seq})
		seq++
	}

	root := heap.Pop(&h).(heapItem).node
	total := freq.Total()
	assert.Assertf(root.Weight == total, "root weight %d != total frequency %d", root.Weight, total)

	return &Tree{root: root, numSymbols: numSymbols}
}

// Root returns the root node, or nil for the empty tree.
func (t *Tree) Root() *Node {
	return t.root
}

// IsEmpty returns true iff the tree has no symbols.
func (t *Tree) IsEmpty() bool {
	return t.root == nil
}

// NumSymbols returns the number of leaves.
func (t *Tree) NumSymbols() int {
	return t.numSymbols
}

// Weight returns the weight of the root, which for a freshly built tree is
// the number of symbols in the text it was built from.  Trees restored by
// UnmarshalBinary have weight 0.
func (t *Tree) Weight() uint64 {
	if t.root == nil {
		return 0
	}
	return t.root.Weight
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer.  Each line is one node in pre-order, indented by depth.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	walkPreorder(t.root, func(n *Node, depth int) {
		buf.WriteString(strings.Repeat("\t", depth+1))
		if n.IsLeaf() {
			fmt.Fprintf(&buf, "%s [%d]\n", n.Symbol, n.Weight)
		} else {
			fmt.Fprintf(&buf, "[%d]\n", n.Weight)
		}
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DebugString returns the output of Dump as a string.
func (t *Tree) DebugString() string {
	var buf strings.Builder
	_, _ = t.Dump(&buf)
	return buf.String()
}

// String returns a brief human-readable description of the tree.
func (t *Tree) String() string {
	return fmt.Sprintf("(Huffman tree with %d symbols, total weight %d)", t.numSymbols, t.Weight())
}

var _ fmt.Stringer = (*Tree)(nil)

// walkPreorder visits every node reachable from root, parents before
// children and left before right.
func walkPreorder(root *Node, fn func(n *Node, depth int)) {
	if root == nil {
		return
	}

	type stackItem struct {
		n     *Node
		depth int
	}

	stack := []stackItem{{root, 0}}
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fn(top.n, top.depth)
		if !top.n.IsLeaf() {
			stack = append(stack, stackItem{top.n.Right, top.depth + 1})
			stack = append(stack, stackItem{top.n.Left, top.depth + 1})
		}
	}
}

// type heapItem + type nodeHeap {{{

type heapItem struct {
	node *Node
	seq  uint64
}

type nodeHeap struct {
	list []heapItem
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.Weight != b.node.Weight {
		return a.node.Weight < b.node.Weight
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(heapItem))
}

func (h *nodeHeap) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	h.list[last] = heapItem{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
