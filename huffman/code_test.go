package huffman

import (
	"errors"
	"strings"
	"testing"
)

func TestAssignCodes(t *testing.T) {
	codes := AssignCodes(BuildTree(Frequency("AAABBC")))

	expectDump := strings.Join([]string{
		"CodeTable{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 2\n",
		"\tEncode('A') = \"0\"\n",
		"\tEncode('B') = \"11\"\n",
		"\tEncode('C') = \"10\"\n",
		"}\n",
	}, "")
	actualDump := codes.DebugString()
	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	expectString := "(Huffman code with 3 symbols, with coded lengths of 1 .. 2 bits)"
	actualString := codes.String()
	if expectString != actualString {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectString, actualString)
	}

	type testRow struct {
		hc  Code
		sym Symbol
	}

	testData := [...]testRow{
		{hc: "", sym: InvalidSymbol},
		{hc: "0", sym: 'A'},
		{hc: "1", sym: InvalidSymbol},
		{hc: "10", sym: 'C'},
		{hc: "11", sym: 'B'},
		{hc: "00", sym: InvalidSymbol},
	}
	for _, row := range testData {
		t.Run(row.hc.String(), func(t *testing.T) {
			if sym := codes.Decode(row.hc); sym != row.sym {
				t.Errorf("expected symbol %s, got %s", row.sym, sym)
			}
		})
	}
}

func TestAssignCodes_SingleSymbol(t *testing.T) {
	codes := AssignCodes(BuildTree(Frequency("AAAAA")))
	if codes.Len() != 1 {
		t.Fatalf("expected 1 code, got %d", codes.Len())
	}
	hc, found := codes.Encode('A')
	if !found || hc != "0" {
		t.Errorf("expected code \"0\" for 'A', got %s (found=%v)", hc, found)
	}
}

func TestAssignCodes_Empty(t *testing.T) {
	codes := AssignCodes(BuildTree(Frequency("")))
	if codes.Len() != 0 {
		t.Errorf("expected no codes, got %d", codes.Len())
	}
}

func TestAssignCodes_PrefixFree(t *testing.T) {
	texts := []string{
		"abracadabra",
		"Hello, World! 123 @#$%",
		"aaaaaaaabbbbccd" + "efghijklmnopqrstuvwxyz",
		"ünïcödé ✓ 日本語 日本",
	}
	for _, text := range texts {
		codes := AssignCodes(BuildTree(Frequency(text)))
		symbols := codes.Symbols()
		if len(symbols) != len(Frequency(text)) {
			t.Errorf("%q: %d codes for %d symbols", text, len(symbols), len(Frequency(text)))
		}
		for _, a := range symbols {
			ca, _ := codes.Encode(a)
			if ca.Size() == 0 {
				t.Errorf("%q: empty code for %s", text, a)
			}
			if codes.Decode(ca) != a {
				t.Errorf("%q: code table is not a bijection at %s", text, a)
			}
			for _, b := range symbols {
				cb, _ := codes.Encode(b)
				if a != b && strings.HasPrefix(string(cb), string(ca)) {
					t.Errorf("%q: code %s of %s is a prefix of code %s of %s", text, ca, a, cb, b)
				}
			}
		}
	}
}

func TestEncode(t *testing.T) {
	codes := AssignCodes(BuildTree(Frequency("AAABBC")))

	bits, err := Encode("AAABBC", codes)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if expect := "000111110"; bits != expect {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expect, bits)
	}

	_, err = Encode("ABD", codes)
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("expected ErrUnknownSymbol, got %v", err)
	}
}
