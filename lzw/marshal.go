package lzw

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrMalformedStream is returned by Unmarshal for a truncated or overlong
// varint.
var ErrMalformedStream = errors.New("lzw: malformed code stream")

// Marshal serializes a code sequence as one unsigned varint per code.  Codes
// below 128 take one byte and codes below 16384 take two.
func Marshal(codes []int) []byte {
	out := make([]byte, 0, 2*len(codes))
	var tmp [binary.MaxVarintLen64]byte
	for _, code := range codes {
		n := binary.PutUvarint(tmp[:], uint64(code))
		out = append(out, tmp[:n]...)
	}
	return out
}

// Unmarshal reverses Marshal.
func Unmarshal(data []byte) ([]int, error) {
	var codes []int
	for offset := 0; offset < len(data); {
		u, n := binary.Uvarint(data[offset:])
		if n <= 0 || u > maxCode {
			return nil, fmt.Errorf("%w: at byte %d", ErrMalformedStream, offset)
		}
		codes = append(codes, int(u))
		offset += n
	}
	return codes, nil
}

const maxCode = uint64(^uint(0) >> 1)
