package huffman

import (
	"math"

	"github.com/chronos-tachyon/assert"
)

// Node is a vertex of a Huffman tree.  A leaf has no children and carries a
// payload Symbol.  A branch always has exactly two children and carries
// InvalidSymbol.
type Node struct {
	// Symbol is the payload of a leaf, or InvalidSymbol for a branch.
	Symbol Symbol

	// Freq is the leaf's frequency, or the sum of the leaf frequencies in
	// a branch's subtree.
	Freq uint64

	Left  *Node
	Right *Node
}

// NewLeaf constructs a leaf Node.
func NewLeaf(symbol Symbol, freq uint64) *Node {
	assert.Assertf(symbol.IsValid(), "leaf symbol %d out of range 0 .. %d", symbol, MaxSymbol)
	return &Node{Symbol: symbol, Freq: freq}
}

// NewBranch constructs a branch Node over the two given children.  The
// frequency is the saturating sum of the children's frequencies.
func NewBranch(left, right *Node) *Node {
	assert.Assertf(left != nil, "branch left child is nil")
	assert.Assertf(right != nil, "branch right child is nil")

	freqSum := left.Freq + right.Freq
	if freqSum < left.Freq {
		freqSum = math.MaxUint64
	}

	return &Node{Symbol: InvalidSymbol, Freq: freqSum, Left: left, Right: right}
}

// IsLeaf returns true iff this Node has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// IsBranch returns true iff this Node has children.
func (n *Node) IsBranch() bool {
	return !n.IsLeaf()
}
