package huffman

import (
	"fmt"
	"strings"
)

const bitsPerByte = 8

// Pad aligns an encoded bit string to a byte boundary.  It appends
// 8 - len(bits)%8 zero bits, which is between 1 and 8 bits, and prepends that
// count as an 8-bit big-endian header.  A bit string that is already aligned
// therefore gains a full byte of padding.
func Pad(bits string) string {
	padCount := bitsPerByte - len(bits)%bitsPerByte

	var buf strings.Builder
	buf.Grow(bitsPerByte + len(bits) + padCount)
	fmt.Fprintf(&buf, "%08b", padCount)
	buf.WriteString(bits)
	buf.WriteString(strings.Repeat("0", padCount))
	return buf.String()
}

// Unpad reverses Pad, returning the original bit string.
func Unpad(padded string) (string, error) {
	n := len(padded)
	if n == 0 || n%bitsPerByte != 0 {
		return "", fmt.Errorf("%w: got %d bits", ErrMalformedBitLength, n)
	}

	padCount, err := parseByte(padded[:bitsPerByte])
	if err != nil {
		return "", err
	}
	if padCount < 1 || padCount > bitsPerByte {
		return "", fmt.Errorf("%w: pad count %d outside 1 .. %d", ErrMalformedPadding, padCount, bitsPerByte)
	}

	end := n - int(padCount)
	if end < bitsPerByte {
		return "", fmt.Errorf("%w: pad count %d exceeds %d payload bits", ErrMalformedPadding, padCount, n-bitsPerByte)
	}
	if strings.Trim(padded[end:], "0") != "" {
		return "", fmt.Errorf("%w: non-zero pad bits %q", ErrMalformedPadding, padded[end:])
	}
	return padded[bitsPerByte:end], nil
}

// Pack converts a byte-aligned bit string into bytes, 8 bits at a time, most
// significant bit first.
func Pack(padded string) ([]byte, error) {
	n := len(padded)
	if n%bitsPerByte != 0 {
		return nil, fmt.Errorf("%w: got %d bits", ErrMalformedBitLength, n)
	}

	out := make([]byte, 0, n/bitsPerByte)
	for i := 0; i < n; i += bitsPerByte {
		b, err := parseByte(padded[i : i+bitsPerByte])
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

// Unpack reverses Pack.
func Unpack(data []byte) string {
	var buf strings.Builder
	buf.Grow(len(data) * bitsPerByte)
	for _, b := range data {
		fmt.Fprintf(&buf, "%08b", b)
	}
	return buf.String()
}

func parseByte(chunk string) (byte, error) {
	var b byte
	for i := 0; i < len(chunk); i++ {
		switch chunk[i] {
		case '0':
			b <<= 1
		case '1':
			b = b<<1 | 1
		default:
			return 0, fmt.Errorf("%w: %q", ErrInvalidBit, chunk[i])
		}
	}
	return b, nil
}
