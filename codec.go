package huffman

import (
	"encoding"
	"errors"
	"fmt"

	"github.com/indigo-web/utils/uf"
	json "github.com/json-iterator/go"
)

// Markers of the serialized tree topology.
//
//	tree    := node
//	node    := leaf | branch
//	leaf    := LiteralMarker payload
//	branch  := node node BranchMarker
//
// The payload is always exactly one byte and is never interpreted as a marker,
// so every byte value (including the markers themselves) is a valid payload.
const (
	LiteralMarker = 'L'
	BranchMarker  = 'B'
)

var (
	// ErrMalformedTopology is wrapped by every error returned from
	// Deserialize.
	ErrMalformedTopology = errors.New("malformed Huffman tree topology")

	// ErrMalformedTree is returned by Serialize when the tree's nodes have
	// been modified into something that is not a Huffman tree: a branch
	// with a single child, or a leaf with a symbol outside 0 .. MaxSymbol.
	ErrMalformedTree = errors.New("malformed Huffman tree")
)

// Serialize returns the post-order topology of t: each leaf is written as
// LiteralMarker followed by its symbol byte, each branch as its left subtree,
// its right subtree, then BranchMarker.  Frequencies are not written.
func Serialize(t *Tree) (string, error) {
	if t.IsEmpty() {
		return "", ErrEmptyTree
	}
	out, err := appendTopology(nil, t.Root(), "")
	if err != nil {
		return "", err
	}
	return uf.B2S(out), nil
}

func appendTopology(out []byte, n *Node, path Code) ([]byte, error) {
	if n.IsLeaf() {
		if !n.Symbol.IsValid() {
			return nil, fmt.Errorf("%w: leaf %s has symbol %d, max %d", ErrMalformedTree, path, n.Symbol, MaxSymbol)
		}
		return append(out, LiteralMarker, byte(n.Symbol)), nil
	}
	if n.Left == nil || n.Right == nil {
		return nil, fmt.Errorf("%w: branch %s has a single child", ErrMalformedTree, path)
	}

	var err error
	if out, err = appendTopology(out, n.Left, path.Append('0')); err != nil {
		return nil, err
	}
	if out, err = appendTopology(out, n.Right, path.Append('1')); err != nil {
		return nil, err
	}
	return append(out, BranchMarker), nil
}

// Deserialize reconstructs a tree from a topology produced by Serialize.  The
// leaves of the result have a frequency of 0 and each branch's frequency is
// the sum of its children's.
//
// Each symbol may appear in at most one leaf: a topology that repeats a leaf
// symbol, such as "LaLaB", is rejected as malformed because its code table
// would be ambiguous.
//
// The returned tree is independent of any other tree.
func Deserialize(s string) (*Tree, error) {
	if len(s) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedTopology)
	}

	stack := make([]*Node, 0, depthHint(len(s)/2))
	var seen [MaxSymbol + 1]bool

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case LiteralMarker:
			if i+1 >= len(s) {
				return nil, fmt.Errorf("%w: literal at offset %d has no payload", ErrMalformedTopology, i)
			}
			i++
			symbol := Symbol(s[i])
			if seen[symbol] {
				return nil, fmt.Errorf("%w: duplicate leaf symbol %d at offset %d", ErrMalformedTopology, symbol, i)
			}
			seen[symbol] = true
			stack = append(stack, NewLeaf(symbol, 0))

		case BranchMarker:
			stackLen := len(stack)
			if stackLen < 2 {
				return nil, fmt.Errorf("%w: branch at offset %d needs 2 subtrees, have %d", ErrMalformedTopology, i, stackLen)
			}
			right := stack[stackLen-1]
			left := stack[stackLen-2]
			stack[stackLen-1] = nil
			stack = stack[:stackLen-2]
			stack = append(stack, NewBranch(left, right))

		default:
			return nil, fmt.Errorf("%w: unexpected byte 0x%02x at offset %d", ErrMalformedTopology, s[i], i)
		}
	}

	if len(stack) != 1 {
		return nil, fmt.Errorf("%w: expected 1 root, got %d", ErrMalformedTopology, len(stack))
	}
	return &Tree{root: stack[0]}, nil
}

// MarshalText returns the serialized topology of this tree.
func (t *Tree) MarshalText() ([]byte, error) {
	s, err := Serialize(t)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText replaces this tree with the one described by the given
// serialized topology.
func (t *Tree) UnmarshalText(raw []byte) error {
	parsed, err := Deserialize(string(raw))
	if err != nil {
		return err
	}
	*t = *parsed
	return nil
}

// MarshalJSON encodes the serialized topology as a base64 JSON string, since
// the topology may contain arbitrary bytes.
func (t *Tree) MarshalJSON() ([]byte, error) {
	raw, err := t.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(raw)
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (t *Tree) UnmarshalJSON(data []byte) error {
	var raw []byte
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	return t.UnmarshalText(raw)
}

var (
	_ encoding.TextMarshaler   = (*Tree)(nil)
	_ encoding.TextUnmarshaler = (*Tree)(nil)
)
