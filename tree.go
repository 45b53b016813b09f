package huffman

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"

	"github.com/chronos-tachyon/hufftree/internal/minheap"
)

var (
	// ErrEmptyInput is returned when building a tree from no symbols.
	ErrEmptyInput = errors.New("cannot build Huffman tree from empty input")

	// ErrInvalidSymbol is returned when a frequency table contains a
	// symbol outside 0 .. MaxSymbol.
	ErrInvalidSymbol = errors.New("invalid symbol")

	// ErrEmptyTree is returned when an operation needs a tree but the
	// given tree is nil or has been Reset.
	ErrEmptyTree = errors.New("empty Huffman tree")
)

// Builder constructs Huffman trees from symbol frequencies.  The zero value is
// ready to use and selects roots ByFrequency.
type Builder struct {
	// Order overrides the priority relation used to select the two roots
	// merged at each step.  If nil, ByFrequency is used.
	Order Order
}

// Build constructs a Huffman tree from freqs.
//
// The queue is seeded with one leaf per symbol in freqs (including symbols
// with a frequency of 0).  While more than one root remains, the two roots of
// highest priority a and b are removed, in that order, and replaced by a
// branch with Left = a and Right = b.
//
// If freqs has exactly one entry, the result is a single leaf and every code
// derived from it is the empty string.  See Tree.IsDegenerate.
func (builder Builder) Build(freqs Frequencies) (*Tree, error) {
	if len(freqs) == 0 {
		return nil, ErrEmptyInput
	}

	order := builder.Order
	if order == nil {
		order = ByFrequency
	}

	q := minheap.New(order.entryLess)
	var seq uint64
	for _, symbol := range freqs.Symbols() {
		if !symbol.IsValid() {
			return nil, fmt.Errorf("%w: got %d, max %d", ErrInvalidSymbol, symbol, MaxSymbol)
		}
		q.Insert(queueEntry{NewLeaf(symbol, freqs[symbol]), seq})
		seq++
	}

	for q.Size() > 1 {
		a, _ := q.RemoveMin()
		b, _ := q.RemoveMin()
		q.Insert(queueEntry{NewBranch(a.node, b.node), seq})
		seq++
	}

	root, ok := q.RemoveMin()
	assert.Assertf(ok, "Huffman queue drained before producing a root")
	return &Tree{root: root.node}, nil
}

// BuildTree is shorthand for Builder{}.Build(freqs).
func BuildTree(freqs Frequencies) (*Tree, error) {
	return Builder{}.Build(freqs)
}

// Tree is a Huffman tree.  It exclusively owns its nodes.
type Tree struct {
	root *Node
}

// Root returns the root Node, or nil if the tree is empty.
func (t *Tree) Root() *Node {
	if t == nil {
		return nil
	}
	return t.root
}

// IsEmpty returns true iff the tree has no nodes.
func (t *Tree) IsEmpty() bool {
	return t.Root() == nil
}

// IsDegenerate returns true iff the tree consists of a single leaf.  A
// degenerate tree assigns the empty code to its only symbol, so its encoding
// carries no information and it cannot be used for decoding.
func (t *Tree) IsDegenerate() bool {
	root := t.Root()
	return root != nil && root.IsLeaf()
}

// Reset releases every node of the tree, leaving it empty.
func (t *Tree) Reset() {
	t.root = nil
}

// Leaves returns the leaf symbols in left-to-right order.
func (t *Tree) Leaves() []Symbol {
	var out []Symbol
	var walk func(*Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		if n.IsLeaf() {
			out = append(out, n.Symbol)
			return
		}
		walk(n.Left)
		walk(n.Right)
	}
	walk(t.Root())
	return out
}

// Depth returns the depth of the leaf holding symbol, i.e. the length of its
// code.
func (t *Tree) Depth(symbol Symbol) (int, bool) {
	var walk func(*Node, int) (int, bool)
	walk = func(n *Node, depth int) (int, bool) {
		if n == nil {
			return 0, false
		}
		if n.IsLeaf() {
			return depth, n.Symbol == symbol
		}
		if d, found := walk(n.Left, depth+1); found {
			return d, true
		}
		return walk(n.Right, depth+1)
	}
	return walk(t.Root(), 0)
}

// Equal returns true iff both trees have the same shape and the same leaf
// symbols at the same positions.  Frequencies are not compared.
func (t *Tree) Equal(other *Tree) bool {
	var eq func(a, b *Node) bool
	eq = func(a, b *Node) bool {
		if a == nil || b == nil {
			return a == b
		}
		if a.IsLeaf() != b.IsLeaf() {
			return false
		}
		if a.IsLeaf() {
			return a.Symbol == b.Symbol
		}
		return eq(a.Left, b.Left) && eq(a.Right, b.Right)
	}
	return eq(t.Root(), other.Root())
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer, one node per line, indented by depth.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	var walk func(*Node, int)
	walk = func(n *Node, depth int) {
		if n == nil {
			return
		}
		for i := 0; i <= depth; i++ {
			buf.WriteByte('\t')
		}
		if n.IsLeaf() {
			fmt.Fprintf(&buf, "Leaf(%d) freq=%d\n", n.Symbol, n.Freq)
			return
		}
		fmt.Fprintf(&buf, "Branch freq=%d\n", n.Freq)
		walk(n.Left, depth+1)
		walk(n.Right, depth+1)
	}
	walk(t.Root(), 0)
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
