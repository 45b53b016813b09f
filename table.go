package huffman

import (
	"sort"
)

// CodeTable maps each leaf Symbol of a tree to its Code.
type CodeTable map[Symbol]Code

// GenerateCodes walks the tree rooted at root and assigns each leaf the path
// leading to it: '0' for every left edge, '1' for every right edge.
//
// A root that is itself a leaf receives the empty Code.  A nil root yields an
// empty table.
func GenerateCodes(root *Node) CodeTable {
	table := make(CodeTable)
	assignCodes(table, root, "")
	return table
}

func assignCodes(table CodeTable, n *Node, path Code) {
	if n == nil {
		return
	}
	if n.IsLeaf() {
		table[n.Symbol] = path
		return
	}
	assignCodes(table, n.Left, path.Append('0'))
	assignCodes(table, n.Right, path.Append('1'))
}

// Symbols returns the symbols in the table, in ascending order.
func (table CodeTable) Symbols() []Symbol {
	out := make([]Symbol, 0, len(table))
	for symbol := range table {
		out = append(out, symbol)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// IsPrefixFree returns true iff no Code in the table is a prefix of another.
func (table CodeTable) IsPrefixFree() bool {
	codes := make([]Code, 0, len(table))
	for _, hc := range table {
		codes = append(codes, hc)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })

	// After a lexicographic sort, a prefix always sorts immediately
	// before some code it prefixes.
	for i := 1; i < len(codes); i++ {
		if codes[i].HasPrefix(codes[i-1]) {
			return false
		}
	}
	return true
}

// MinSize is the bit length of the shortest code in the table.
func (table CodeTable) MinSize() int {
	min, _ := table.sizeRange()
	return min
}

// MaxSize is the bit length of the longest code in the table.
func (table CodeTable) MaxSize() int {
	_, max := table.sizeRange()
	return max
}

func (table CodeTable) sizeRange() (min int, max int) {
	first := true
	for _, hc := range table {
		size := hc.Len()
		if first {
			min, max = size, size
			first = false
		} else if min > size {
			min = size
		} else if max < size {
			max = size
		}
	}
	return min, max
}
