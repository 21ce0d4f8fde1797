package huffman

import "errors"

var (
	// ErrMalformedBitLength is returned when a bit string that must be
	// byte-aligned has a length that is not a multiple of 8.
	ErrMalformedBitLength = errors.New("huffman: bit string length is not a multiple of 8")

	// ErrInvalidBit is returned when a bit string contains a character
	// other than '0' or '1'.
	ErrInvalidBit = errors.New("huffman: bit string contains a digit other than 0 or 1")

	// ErrMalformedPadding is returned when the pad-count header of a padded
	// bit string is out of range or the pad bits are not all zero.
	ErrMalformedPadding = errors.New("huffman: malformed padding")

	// ErrUnknownSymbol is returned when encoding a symbol that has no code.
	ErrUnknownSymbol = errors.New("huffman: symbol has no code")

	// ErrMalformedPayload is returned when an encoded bit string does not
	// decode to a whole number of symbols.
	ErrMalformedPayload = errors.New("huffman: malformed payload")

	// ErrMalformedTree is returned by Tree.UnmarshalBinary and
	// DecompressArchive for a serialized tree that cannot be restored.
	ErrMalformedTree = errors.New("huffman: malformed tree")

	// ErrInvalidText is returned when compressing a string that is not
	// valid UTF-8.
	ErrInvalidText = errors.New("huffman: text is not valid UTF-8")
)
