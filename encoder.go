package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Encoder implements an encoder for the prefix code of a Huffman tree.
type Encoder struct {
	table   CodeTable
	minSize int
	maxSize int
}

// Init initializes this Encoder with the codes of the given tree.
//
// A degenerate tree (a single leaf) is accepted; its only symbol is encoded
// as the empty Code.
func (e *Encoder) Init(t *Tree) error {
	if t.IsEmpty() {
		return ErrEmptyTree
	}

	table := GenerateCodes(t.Root())
	*e = Encoder{
		table:   table,
		minSize: table.MinSize(),
		maxSize: table.MaxSize(),
	}
	return nil
}

// Encode encodes a Symbol into a Huffman-coded bit string.  Encoding a Symbol
// that is not a leaf of the tree is a programming error.
func (e Encoder) Encode(symbol Symbol) Code {
	hc, found := e.table[symbol]
	assert.Assertf(found, "symbol %d has no code in this Encoder", symbol)
	return hc
}

// EncodeAll encodes each byte of data in order and returns the concatenation
// of their codes.
func (e Encoder) EncodeAll(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data) * e.maxSize)
	for _, b := range data {
		sb.WriteString(string(e.Encode(Symbol(b))))
	}
	return sb.String()
}

// Table returns the code table used by this Encoder.
func (e Encoder) Table() CodeTable {
	return e.table
}

// MinSize is the bit length of the shortest legal code.
func (e Encoder) MinSize() int {
	return e.minSize
}

// MaxSize is the bit length of the longest legal code.
func (e Encoder) MaxSize() int {
	return e.maxSize
}

// MaxSymbol is the last Symbol that has a code, or InvalidSymbol if the
// Encoder has not been initialized.
func (e Encoder) MaxSymbol() Symbol {
	max := InvalidSymbol
	for symbol := range e.table {
		if symbol > max {
			max = symbol
		}
	}
	return max
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	for _, symbol := range e.table.Symbols() {
		fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, e.table[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// Compressed is the result of Compress.
type Compressed struct {
	// Bits is the encoded input, one '0' or '1' per bit.
	Bits string

	// Topology is the serialized shape of Tree, see Serialize.
	Topology string

	// Tree is the tree that was built from the input's frequencies.
	Tree *Tree
}

// Compress counts the byte frequencies of input, builds a Huffman tree from
// them, and returns the encoded input together with the serialized tree.
//
// Input with a single distinct byte produces a degenerate tree and an empty
// Bits string; such output cannot be passed to Decompress.
func Compress(input []byte) (Compressed, error) {
	t, err := BuildTree(Count(input))
	if err != nil {
		return Compressed{}, err
	}

	var e Encoder
	if err := e.Init(t); err != nil {
		return Compressed{}, err
	}

	topology, err := Serialize(t)
	if err != nil {
		return Compressed{}, err
	}

	return Compressed{
		Bits:     e.EncodeAll(input),
		Topology: topology,
		Tree:     t,
	}, nil
}
