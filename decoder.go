package huffman

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/indigo-web/utils/uf"
)

var (
	// ErrDegenerateTree is returned when decoding with a tree that is a
	// single leaf.  Such a tree encodes every symbol as the empty Code, so
	// the number of symbols cannot be recovered from the bits.
	ErrDegenerateTree = errors.New("cannot decode with a single-leaf Huffman tree")

	// ErrInvalidBit is returned when the encoded input contains a byte
	// other than '0' or '1'.
	ErrInvalidBit = errors.New("invalid bit")

	// ErrMissingChild is returned when the encoded input walks off the
	// tree, i.e. the bits were not produced from this tree.
	ErrMissingChild = errors.New("bit string does not match Huffman tree")

	// ErrTruncatedCode is returned when the encoded input ends in the
	// middle of a code.
	ErrTruncatedCode = errors.New("bit string ends inside a code")
)

// Decoder implements a decoder for the prefix code of a Huffman tree.
type Decoder struct {
	root  *Node
	table CodeTable
}

// Init initializes this Decoder with the given tree.  The Decoder walks the
// tree's nodes directly; the tree must not be modified afterward.
//
// Degenerate trees consisting of a single leaf are rejected with
// ErrDegenerateTree.
func (d *Decoder) Init(t *Tree) error {
	if t.IsEmpty() {
		return ErrEmptyTree
	}
	if t.IsDegenerate() {
		return ErrDegenerateTree
	}

	*d = Decoder{
		root:  t.Root(),
		table: GenerateCodes(t.Root()),
	}
	return nil
}

// Decode decodes a string of '0' and '1' characters into the symbols it
// encodes.
//
// Starting at the root, each '0' moves to the left child and each '1' to the
// right child.  Whenever a leaf is reached its symbol is emitted and the walk
// restarts at the root.  Decoding fails if the walk leaves the tree, if a
// character is not a bit, or if the input ends anywhere but at the root.
func (d Decoder) Decode(bits string) ([]byte, error) {
	if d.root == nil {
		return nil, ErrEmptyTree
	}

	out := make([]byte, 0, len(bits)/max(d.MinSize(), 1))
	cursor := d.root
	start := 0
	for i := 0; i < len(bits); i++ {
		var next *Node
		switch bits[i] {
		case '0':
			next = cursor.Left
		case '1':
			next = cursor.Right
		default:
			return nil, fmt.Errorf("%w: got 0x%02x at offset %d", ErrInvalidBit, bits[i], i)
		}
		if next == nil {
			return nil, fmt.Errorf("%w: no child for code %q at offset %d", ErrMissingChild, bits[start:i+1], i)
		}

		if next.IsLeaf() {
			out = append(out, byte(next.Symbol))
			cursor = d.root
			start = i + 1
			continue
		}
		cursor = next
	}

	if cursor != d.root {
		return nil, fmt.Errorf("%w: %d trailing bits %q", ErrTruncatedCode, len(bits)-start, bits[start:])
	}
	return out, nil
}

// DecodeString is like Decode, but returns the result as a string.
func (d Decoder) DecodeString(bits string) (string, error) {
	out, err := d.Decode(bits)
	if err != nil {
		return "", err
	}
	return uf.B2S(out), nil
}

// Table returns the code table of the Decoder's tree.
func (d Decoder) Table() CodeTable {
	return d.table
}

// MinSize is the bit length of the shortest legal code.
func (d Decoder) MinSize() int {
	return d.table.MinSize()
}

// MaxSize is the bit length of the longest legal code.
func (d Decoder) MaxSize() int {
	return d.table.MaxSize()
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", d.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", d.MaxSize())
	symbols := make(map[Code]Symbol, len(d.table))
	keys := make(byCode, 0, len(d.table))
	for symbol, hc := range d.table {
		symbols[hc] = symbol
		keys = append(keys, hc)
	}
	keys.Sort()
	for _, hc := range keys {
		fmt.Fprintf(&buf, "\tDecode(%s) = %d\n", hc, symbols[hc])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// Decompress reconstructs the tree described by topology and uses it to
// decode bits.  It is the inverse of Compress for any input with at least two
// distinct bytes.
func Decompress(bits string, topology string) ([]byte, error) {
	t, err := Deserialize(topology)
	if err != nil {
		return nil, err
	}

	var d Decoder
	if err := d.Init(t); err != nil {
		return nil, err
	}
	return d.Decode(bits)
}
