package huffman

// Symbol represents a symbol in the byte alphabet.  Negative symbols are not
// valid payload symbols.
type Symbol int32

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(255)

// InvalidSymbol is carried by branch nodes and returned by some functions to
// clearly indicate that no symbol is being returned.
const InvalidSymbol = Symbol(-1)

// IsValid reports whether this Symbol is a payload symbol, i.e. in the range
// 0 .. MaxSymbol.
func (sym Symbol) IsValid() bool {
	return sym >= 0 && sym <= MaxSymbol
}
