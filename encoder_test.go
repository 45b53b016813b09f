package huffman

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func makeTestTree() *Tree {
	t, err := BuildTree(Frequencies{0: 5, 1: 9, 2: 12, 3: 13, 4: 16, 5: 45})
	if err != nil {
		panic(err)
	}
	return t
}

func makeAbracadabraTree() *Tree {
	t, err := BuildTree(Count([]byte("abracadabra")))
	if err != nil {
		panic(err)
	}
	return t
}

func TestEncoder(t *testing.T) {
	var e Encoder
	require.NoError(t, e.Init(makeTestTree()))

	expectDump := strings.Join([]string{
		"Encoder{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tEncode(0) = \"1100\"\n",
		"\tEncode(1) = \"1101\"\n",
		"\tEncode(2) = \"100\"\n",
		"\tEncode(3) = \"101\"\n",
		"\tEncode(4) = \"111\"\n",
		"\tEncode(5) = \"0\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = e.Dump(&buf)
	require.Equal(t, expectDump, buf.String())

	require.Equal(t, Symbol(5), e.MaxSymbol())
	require.True(t, e.Table().IsPrefixFree())
}

func TestEncoder_Abracadabra(t *testing.T) {
	var e Encoder
	require.NoError(t, e.Init(makeAbracadabraTree()))

	expectTable := CodeTable{
		'a': "0",
		'c': "100",
		'd': "101",
		'b': "110",
		'r': "111",
	}
	require.Equal(t, expectTable, e.Table())
	require.Equal(t, "01101110100010101101110", e.EncodeAll([]byte("abracadabra")))
}

func TestEncoder_Degenerate(t *testing.T) {
	tree, err := BuildTree(Count([]byte("aaaa")))
	require.NoError(t, err)
	require.True(t, tree.IsDegenerate())

	var e Encoder
	require.NoError(t, e.Init(tree))

	// The only symbol of a single-leaf tree has the empty code, so the
	// encoded output carries no bits at all.
	require.Equal(t, CodeTable{'a': ""}, e.Table())
	require.Equal(t, Code(""), e.Encode('a'))
	require.Equal(t, "", e.EncodeAll([]byte("aaaa")))
	require.Equal(t, 0, e.MinSize())
	require.Equal(t, 0, e.MaxSize())
}

func TestEncoder_EmptyTree(t *testing.T) {
	var e Encoder
	require.ErrorIs(t, e.Init(nil), ErrEmptyTree)

	tree := makeTestTree()
	tree.Reset()
	require.ErrorIs(t, e.Init(tree), ErrEmptyTree)
}

func TestEncoder_UnknownSymbolPanics(t *testing.T) {
	var e Encoder
	require.NoError(t, e.Init(makeAbracadabraTree()))

	require.Panics(t, func() { e.Encode('z') })
	require.Panics(t, func() { e.EncodeAll([]byte("abz")) })
}

func TestCompress(t *testing.T) {
	c, err := Compress([]byte("abracadabra"))
	require.NoError(t, err)
	require.Equal(t, "01101110100010101101110", c.Bits)
	require.Equal(t, "LaLcLdBLbLrBBB", c.Topology)
	require.True(t, c.Tree.Equal(makeAbracadabraTree()))

	_, err = Compress(nil)
	require.ErrorIs(t, err, ErrEmptyInput)
}
