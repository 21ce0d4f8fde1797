package huffman

import (
	"sort"
	"strconv"
	"unicode"
)

// Symbol represents a single Unicode code point.  Negative symbols are not
// valid.
type Symbol rune

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(unicode.MaxRune)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// String returns the Go-quoted form of the symbol, e.g. 'A'.
func (sym Symbol) String() string {
	if sym < 0 || sym > MaxSymbol {
		return strconv.Itoa(int(sym))
	}
	return strconv.QuoteRune(rune(sym))
}

// FrequencyTable maps each symbol to its number of occurrences.
type FrequencyTable map[Symbol]uint64

// Frequency counts the occurrences of every symbol in text.
func Frequency(text string) FrequencyTable {
	freq := make(FrequencyTable)
	for _, ch := range text {
		freq[Symbol(ch)]++
	}
	return freq
}

// Total returns the sum of all counts, i.e. the length of the counted text
// in symbols.
func (freq FrequencyTable) Total() uint64 {
	var sum uint64
	for _, n := range freq {
		sum += n
	}
	return sum
}

// Symbols returns the symbols with a non-zero count in ascending order.
func (freq FrequencyTable) Symbols() []Symbol {
	out := make([]Symbol, 0, len(freq))
	for sym, n := range freq {
		if n != 0 {
			out = append(out, sym)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
