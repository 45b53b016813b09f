package huffman

// Order is the comparison relation used by the tree builder to select the next
// two roots to merge.  Order(a, b) reports whether a has strictly higher
// priority (is extracted earlier) than b.
//
// Roots that compare equal under an Order are extracted in insertion order,
// so every Order yields a deterministic tree.
type Order func(a, b *Node) bool

// ByFrequency is the default Order: ascending frequency, then ascending
// symbol.  Symbols are compared as uint32, so the InvalidSymbol carried by
// branches compares as the highest possible payload and a branch sorts after
// every leaf of equal frequency.
func ByFrequency(a, b *Node) bool {
	if a.Freq != b.Freq {
		return a.Freq < b.Freq
	}
	return uint32(a.Symbol) < uint32(b.Symbol)
}

var _ Order = ByFrequency

type queueEntry struct {
	node *Node
	seq  uint64
}

func (order Order) entryLess(a, b queueEntry) bool {
	if order(a.node, b.node) {
		return true
	}
	if order(b.node, a.node) {
		return false
	}
	return a.seq < b.seq
}
