package huffman

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
)

var roundTripTexts = [...]string{
	"",
	"A",
	"AAAAA",
	"AB",
	"AAABBC",
	"AAABBBCCCDDD",
	"Hello, World! 123 @#$%",
	"TOBEORNOTTOBEORTOBEORNOT",
	"héllo wörld ✓ 日本語 🎉",
	strings.Repeat("A", 100) + strings.Repeat("B", 50) + strings.Repeat("C", 25),
	strings.Repeat("The quick brown fox jumps over the lazy dog.\n", 50),
}

func TestCompress_RoundTrip(t *testing.T) {
	for _, text := range roundTripTexts {
		c, err := Compress(text)
		if err != nil {
			t.Fatalf("%q: Compress failed: %v", text, err)
		}
		if len(c.Data) == 0 || int(c.Data[0]) != 8-c.EncodedBits%8 {
			t.Errorf("%q: bad pad-count header in %#v", text, c.Data)
		}

		actual, err := Decompress(c.Data, c.Tree)
		if err != nil {
			t.Fatalf("%q: Decompress failed: %v", text, err)
		}
		if actual != text {
			t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", text, actual)
		}

		actual, err = DecompressWithCodes(c.Data, c.Codes)
		if err != nil {
			t.Fatalf("%q: DecompressWithCodes failed: %v", text, err)
		}
		if actual != text {
			t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", text, actual)
		}
	}
}

func TestCompress_Bytes(t *testing.T) {
	type testRow struct {
		text       string
		expectData []byte
		expectBits int
	}

	testData := [...]testRow{
		{"", []byte{8, 0}, 0},
		{"AAAAA", []byte{3, 0}, 5},
		{"AAABBC", []byte{7, 31, 0}, 9},
	}
	for _, row := range testData {
		t.Run(row.text, func(t *testing.T) {
			c, err := Compress(row.text)
			if err != nil {
				t.Fatalf("Compress failed: %v", err)
			}
			if !bytes.Equal(row.expectData, c.Data) {
				t.Errorf("wrong bytes:\n\texpect: %#v\n\tactual: %#v", row.expectData, c.Data)
			}
			if c.EncodedBits != row.expectBits {
				t.Errorf("expected %d encoded bits, got %d", row.expectBits, c.EncodedBits)
			}
		})
	}
}

func TestCompress_BitsPerSymbol(t *testing.T) {
	c, err := Compress("AAABBC")
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	if expect, actual := 1.5, c.BitsPerSymbol(); expect != actual {
		t.Errorf("expected %v bits per symbol, got %v", expect, actual)
	}

	c, err = Compress("")
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	if actual := c.BitsPerSymbol(); actual != 0 {
		t.Errorf("expected 0 bits per symbol, got %v", actual)
	}
}

func TestCompress_ReducesSize(t *testing.T) {
	text := strings.Repeat("A", 100) + strings.Repeat("B", 50) + strings.Repeat("C", 25)
	c, err := Compress(text)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	if len(c.Data) >= len(text) {
		t.Errorf("expected fewer than %d bytes, got %d", len(text), len(c.Data))
	}
}

func TestCompress_InvalidText(t *testing.T) {
	if _, err := Compress("ab\xffcd"); !errors.Is(err, ErrInvalidText) {
		t.Errorf("expected ErrInvalidText, got %v", err)
	}
}

func TestDecompress_Errors(t *testing.T) {
	c, err := Compress("AAABBC")
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	type testRow struct {
		name   string
		data   []byte
		tree   *Tree
		expect error
	}

	testData := [...]testRow{
		{"no-data", nil, c.Tree, ErrMalformedBitLength},
		{"bad-header", []byte{0, 0}, c.Tree, ErrMalformedPadding},
		// "1" then 7 pad bits: the code "1" is a proper prefix of "10" and "11".
		{"truncated", []byte{7, 0x80}, c.Tree, ErrMalformedPayload},
		{"empty-tree", []byte{7, 0x00}, &Tree{}, ErrMalformedPayload},
		// "1" then 7 pad bits against the single-leaf tree of "AAAAA".
		{"single-leaf", []byte{7, 0x80}, BuildTree(Frequency("AAAAA")), ErrMalformedPayload},
		{"nil-tree", []byte{7, 0x00}, nil, ErrMalformedPayload},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			_, err := Decompress(row.data, row.tree)
			if !errors.Is(err, row.expect) {
				t.Errorf("expected %v, got %v", row.expect, err)
			}
		})
	}

	if _, err := DecompressWithCodes([]byte{7, 0x80}, c.Codes); !errors.Is(err, ErrMalformedPayload) {
		t.Errorf("expected ErrMalformedPayload, got %v", err)
	}
}

func TestDecompress_NilTree(t *testing.T) {
	actual, err := Decompress([]byte{8, 0}, nil)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if actual != "" {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", "", actual)
	}
}

func TestCompress_Concurrent(t *testing.T) {
	const numWorkers = 8

	var wg sync.WaitGroup
	for worker := 0; worker < numWorkers; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, text := range roundTripTexts {
				c, err := Compress(text)
				if err != nil {
					t.Errorf("%q: Compress failed: %v", text, err)
					return
				}
				actual, err := Decompress(c.Data, c.Tree)
				if err != nil {
					t.Errorf("%q: Decompress failed: %v", text, err)
					return
				}
				if actual != text {
					t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", text, actual)
				}

				data, err := CompressArchive(text)
				if err != nil {
					t.Errorf("%q: CompressArchive failed: %v", text, err)
					return
				}
				if actual, err = DecompressArchive(data); err != nil || actual != text {
					t.Errorf("%q: archive round trip gave %q, %v", text, actual, err)
				}
			}
		}()
	}
	wg.Wait()
}
