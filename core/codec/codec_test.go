package codec

import (
	"bytes"
	"testing"

	"github.com/kochabx/ripe/errors"
)

func TestBase64RoundTrip(t *testing.T) {
	inputs := [][]byte{
		nil,
		[]byte("a"),
		[]byte("ab"),
		[]byte("abc"),
		[]byte{0x00, 0xff, 0x10, 0x80},
		bytes.Repeat([]byte("x"), 1000),
	}
	for _, input := range inputs {
		encoded := Base64Encode(input)
		decoded, err := Base64Decode(encoded)
		if err != nil {
			t.Fatalf("Base64Decode(%q) failed: %v", encoded, err)
		}
		if !bytes.Equal(decoded, input) {
			t.Errorf("round trip mismatch: got %v, want %v", decoded, input)
		}
		if len(encoded) != ExpectedBase64Length(len(input)) {
			t.Errorf("encoded length %d does not match ExpectedBase64Length(%d)=%d",
				len(encoded), len(input), ExpectedBase64Length(len(input)))
		}
	}
}

func TestBase64DecodeRejectsGarbage(t *testing.T) {
	for _, encoded := range []string{"!!!", "abc", "ab=c", "a b c d"} {
		_, err := Base64Decode(encoded)
		if err == nil {
			t.Errorf("Base64Decode(%q) accepted malformed input", encoded)
			continue
		}
		if errors.KindOf(err) != errors.KindDecode {
			t.Errorf("Base64Decode(%q): got kind %v, want decode", encoded, errors.KindOf(err))
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	raw := []byte{0x00, 0x01, 0xab, 0xcd, 0xef, 0xff}
	encoded := HexEncode(raw)
	if encoded != "0001abcdefff" {
		t.Fatalf("HexEncode produced %q, want lowercase digits", encoded)
	}

	decoded, err := HexDecode(encoded)
	if err != nil {
		t.Fatalf("HexDecode failed: %v", err)
	}
	if !bytes.Equal(decoded, raw) {
		t.Errorf("round trip mismatch: got %v, want %v", decoded, raw)
	}

	// Upper case digits decode to the same bytes.
	upper, err := HexDecode("0001ABCDEFFF")
	if err != nil {
		t.Fatalf("HexDecode of upper case failed: %v", err)
	}
	if !bytes.Equal(upper, raw) {
		t.Errorf("upper case decode mismatch: got %v, want %v", upper, raw)
	}
}

func TestHexDecodeRejectsGarbage(t *testing.T) {
	for _, encoded := range []string{"0g", "abc", "zz"} {
		_, err := HexDecode(encoded)
		if err == nil {
			t.Errorf("HexDecode(%q) accepted malformed input", encoded)
			continue
		}
		if errors.KindOf(err) != errors.KindDecode {
			t.Errorf("HexDecode(%q): got kind %v, want decode", encoded, errors.KindOf(err))
		}
	}
}

func TestExpectedCipherLength(t *testing.T) {
	tests := []struct {
		plainLen, want int
	}{
		{0, 16},
		{1, 16},
		{15, 16},
		{16, 32}, // block-aligned input still gains a padding block
		{17, 32},
		{31, 32},
		{32, 48},
		{100, 112},
	}
	for _, tt := range tests {
		if got := ExpectedCipherLength(tt.plainLen); got != tt.want {
			t.Errorf("ExpectedCipherLength(%d) = %d, want %d", tt.plainLen, got, tt.want)
		}
	}
}

func TestExpectedBase64Length(t *testing.T) {
	tests := []struct {
		rawLen, want int
	}{
		{0, 0},
		{1, 4},
		{2, 4},
		{3, 4},
		{4, 8},
		{16, 24},
		{32, 44},
	}
	for _, tt := range tests {
		if got := ExpectedBase64Length(tt.rawLen); got != tt.want {
			t.Errorf("ExpectedBase64Length(%d) = %d, want %d", tt.rawLen, got, tt.want)
		}
	}
}
