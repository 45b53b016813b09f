package huffman

import (
	"sort"
)

// Frequencies maps each Symbol to its number of occurrences.
type Frequencies map[Symbol]uint64

// Count tallies the occurrences of each byte in data.  The counts sum to
// len(data); an empty input yields an empty Frequencies.
func Count(data []byte) Frequencies {
	var counts [MaxSymbol + 1]uint64
	for _, b := range data {
		counts[b]++
	}

	freqs := make(Frequencies)
	for symbol := Symbol(0); symbol <= MaxSymbol; symbol++ {
		if n := counts[symbol]; n != 0 {
			freqs[symbol] = n
		}
	}
	return freqs
}

// Total returns the sum of all frequencies.
func (freqs Frequencies) Total() uint64 {
	var total uint64
	for _, n := range freqs {
		total += n
	}
	return total
}

// Symbols returns the symbols present in freqs, in ascending order.
func (freqs Frequencies) Symbols() []Symbol {
	out := make([]Symbol, 0, len(freqs))
	for symbol := range freqs {
		out = append(out, symbol)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
