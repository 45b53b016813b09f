package huffman

import (
	"strconv"
	"strings"
	"testing"

	"github.com/dchest/uniuri"
	"github.com/stretchr/testify/require"
)

func allBytes() []byte {
	out := make([]byte, 256)
	for i := range out {
		out[i] = byte(i)
	}
	return out
}

func checkRoundTrip(t *testing.T, input []byte) {
	t.Helper()

	c, err := Compress(input)
	require.NoError(t, err)

	if len(Count(input)) == 1 {
		require.True(t, c.Tree.IsDegenerate())
		require.Empty(t, c.Bits)
		_, err := Decompress(c.Bits, c.Topology)
		require.ErrorIs(t, err, ErrDegenerateTree)
		return
	}

	table := GenerateCodes(c.Tree.Root())
	require.True(t, table.IsPrefixFree())
	require.Len(t, table, len(Count(input)))

	out, err := Decompress(c.Bits, c.Topology)
	require.NoError(t, err)
	require.Equal(t, input, out)

	rebuilt, err := Deserialize(c.Topology)
	require.NoError(t, err)
	require.True(t, c.Tree.Equal(rebuilt))
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"abracadabra",
		"ab",
		"aaaa",
		"a",
		"LB",
		strings.Repeat("ab", 1000),
		strings.Repeat("abcde", 2000),
		"this is a test for compression",
		"\x00\x01\x02\x00\xff\xfe",
	}
	for _, input := range inputs {
		t.Run(strconv.Quote(input[:min(len(input), 16)]), func(t *testing.T) {
			checkRoundTrip(t, []byte(input))
		})
	}
}

func TestRoundTrip_Random(t *testing.T) {
	charsets := map[string][]byte{
		"binary":  allBytes(),
		"alnum":   uniuri.StdChars,
		"markers": []byte("LB"),
		"skewed":  []byte("aaaaaaaaaaaaaaaabbbbbbbbccccdde"),
	}
	for name, chars := range charsets {
		t.Run(name, func(t *testing.T) {
			for _, n := range []int{1, 2, 3, 17, 256, 4096} {
				input := uniuri.NewLenChars(n, chars)
				checkRoundTrip(t, []byte(input))
			}
		})
	}
}

func TestRoundTrip_AllSymbols(t *testing.T) {
	checkRoundTrip(t, allBytes())

	// Fibonacci frequencies produce the deepest possible tree.
	var input []byte
	a, b := 1, 1
	for symbol := 0; symbol < 20; symbol++ {
		input = append(input, []byte(strings.Repeat(string(rune('A'+symbol)), a))...)
		a, b = b, a+b
	}
	checkRoundTrip(t, input)

	tree, err := BuildTree(Count(input))
	require.NoError(t, err)
	require.Equal(t, 19, GenerateCodes(tree.Root()).MaxSize())
}
