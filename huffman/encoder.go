package huffman

import (
	"fmt"
	"strings"
)

// Encode replaces every symbol of text with its Code and returns the
// concatenated bit string.
func Encode(text string, codes CodeTable) (string, error) {
	var buf strings.Builder
	buf.Grow(len(text) * codes.MaxSize())
	for _, ch := range text {
		hc, found := codes.Encode(Symbol(ch))
		if !found {
			return "", fmt.Errorf("%w: %s", ErrUnknownSymbol, Symbol(ch))
		}
		buf.WriteString(string(hc))
	}
	return buf.String(), nil
}
