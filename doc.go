// Package huffman implements Huffman prefix codes over the byte alphabet.
//
// A tree is built from symbol frequencies (see Count, Builder and BuildTree),
// turned into a code table (GenerateCodes, Encoder) and used to encode input
// as a string of '0' and '1' characters.  The shape of the tree can be
// serialized without its frequencies (Serialize), so that a receiver can
// rebuild it (Deserialize) and decode the bits (Decoder, Decompress).
//
// Ties between roots of equal priority are broken by an explicit Order, so a
// given frequency table always yields the same tree.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
package huffman
