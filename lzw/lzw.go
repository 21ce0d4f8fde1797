package lzw

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// InitialDictSize is the number of single-byte entries the dictionary starts
// with.  It is also the first code assigned to a multi-byte string.
const InitialDictSize = 256

var (
	// ErrEmptyInput is returned when decompressing an empty code sequence.
	ErrEmptyInput = errors.New("lzw: empty code sequence")

	// ErrInvalidCode is returned when a code is neither in the dictionary
	// nor the next code to be assigned.
	ErrInvalidCode = errors.New("lzw: bad compressed code")
)

// Compress encodes the bytes of text as a sequence of dictionary codes.  The
// empty text yields an empty sequence.
func Compress(text string) []int {
	dict := make(map[string]int, InitialDictSize+len(text)/2)
	for i := 0; i < InitialDictSize; i++ {
		dict[string([]byte{byte(i)})] = i
	}
	next := InitialDictSize

	var out []int
	emit := func(code int) {
		assert.Assertf(code < next, "emitted code %d >= next code %d", code, next)
		out = append(out, code)
	}

	start, end := 0, 0
	for end < len(text) {
		candidate := text[start : end+1]
		if _, found := dict[candidate]; found {
			end++
			continue
		}
		emit(dict[text[start:end]])
		dict[candidate] = next
		next++
		start = end
	}
	if start < end {
		emit(dict[text[start:end]])
	}
	return out
}

// Decompress rebuilds the text from a sequence produced by Compress.
func Decompress(codes []int) (string, error) {
	if len(codes) == 0 {
		return "", ErrEmptyInput
	}

	dict := make([]string, InitialDictSize, InitialDictSize+len(codes))
	for i := range dict {
		dict[i] = string([]byte{byte(i)})
	}

	first := codes[0]
	if first < 0 || first >= InitialDictSize {
		return "", fmt.Errorf("%w: %d at position 0", ErrInvalidCode, first)
	}

	var buf strings.Builder
	previous := dict[first]
	buf.WriteString(previous)

	for i, code := range codes[1:] {
		next := len(dict)
		var entry string
		switch {
		case code >= 0 && code < next:
			entry = dict[code]
		case code == next:
			// The encoder defined this code in the step that emitted the
			// previous one, so it must be previous plus its own first byte.
			entry = previous + previous[:1]
		default:
			return "", fmt.Errorf("%w: %d at position %d, next code is %d", ErrInvalidCode, code, i+1, next)
		}

		buf.WriteString(entry)
		dict = append(dict, previous+entry[:1])
		previous = entry
	}
	return buf.String(), nil
}
