package huffman

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Code represents a sequence of bits, written as the characters '0' and '1'.
// The first character is the first bit, i.e. the edge taken from the root.
type Code string

// Len returns the number of bits in this Code.
func (hc Code) Len() int {
	return len(hc)
}

// Append returns this Code extended by one bit.
func (hc Code) Append(bit byte) Code {
	return hc + Code(bit)
}

// HasPrefix returns true iff prefix is a (not necessarily proper) prefix of
// this Code.
func (hc Code) HasPrefix(prefix Code) bool {
	return strings.HasPrefix(string(hc), string(prefix))
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(string(hc))
}

var _ fmt.Stringer = Code("")

// type byCode {{{

type byCode []Code

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	a, b := list[i], list[j]
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

var _ sort.Interface = byCode(nil)

// }}}
