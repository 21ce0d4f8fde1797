// Package huffman implements Huffman coding of Unicode text.  A prefix code
// is derived from the symbol frequencies of the input, the text is encoded
// into a bit string, and the bit string is packed into bytes behind a
// one-byte pad-count header.
//
// The packed stream does not carry the tree.  Callers either keep the Tree
// (or CodeTable) returned by Compress, or use CompressArchive, which prefixes
// the stream with a serialized copy of the tree.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
package huffman
