package huffman

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateCodes(t *testing.T) {
	table := GenerateCodes(makeTestTree().Root())
	require.Equal(t, CodeTable{
		0: "1100",
		1: "1101",
		2: "100",
		3: "101",
		4: "111",
		5: "0",
	}, table)
	require.Equal(t, []Symbol{0, 1, 2, 3, 4, 5}, table.Symbols())
	require.Equal(t, 1, table.MinSize())
	require.Equal(t, 4, table.MaxSize())

	require.Empty(t, GenerateCodes(nil))
	require.Equal(t, CodeTable{'q': ""}, GenerateCodes(NewLeaf('q', 9)))
}

func TestCodeTable_IsPrefixFree(t *testing.T) {
	type testRow struct {
		name   string
		table  CodeTable
		expect bool
	}

	testData := [...]testRow{
		{"empty", CodeTable{}, true},
		{"single-empty-code", CodeTable{'a': ""}, true},
		{"huffman", GenerateCodes(makeAbracadabraTree().Root()), true},
		{"prefix", CodeTable{'a': "0", 'b': "01", 'c': "1"}, false},
		{"distant-prefix", CodeTable{'a': "01", 'b': "0100", 'c': "0101", 'd': "011"}, false},
		{"duplicate", CodeTable{'a': "10", 'b': "10"}, false},
		{"siblings", CodeTable{'a': "00", 'b': "01", 'c': "10", 'd': "11"}, true},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			require.Equal(t, row.expect, row.table.IsPrefixFree())
		})
	}
}

func TestCode(t *testing.T) {
	hc := Code("110")
	require.Equal(t, 3, hc.Len())
	require.Equal(t, Code("1101"), hc.Append('1'))
	require.Equal(t, `"110"`, hc.String())
	require.Equal(t, `""`, Code("").String())
	require.True(t, hc.HasPrefix("11"))
	require.True(t, hc.HasPrefix(""))
	require.False(t, hc.HasPrefix("10"))

	codes := byCode{"111", "0", "10", "01", "1100"}
	codes.Sort()
	require.Equal(t, byCode{"0", "01", "10", "111", "1100"}, codes)
}
