package envelope

import (
	"strings"
	"testing"

	"github.com/kochabx/ripe/core/codec"
	"github.com/kochabx/ripe/errors"
)

// TestParseUnframedShapes checks the three input shapes the parser accepts:
// framed, base64 with explicit IV, and raw/hex with explicit IV.
func TestParseUnframedShapes(t *testing.T) {
	plaintext := []byte("three shapes")
	ciphertext, iv, err := EncryptRaw(plaintext, testKey)
	if err != nil {
		t.Fatalf("EncryptRaw failed: %v", err)
	}
	ivHex := codec.HexEncode(iv)

	tests := []struct {
		name string
		blob string
		opts []ParseOption
	}{
		{
			name: "base64 with explicit iv",
			blob: codec.Base64Encode(ciphertext),
			opts: []ParseOption{WithIV(ivHex)},
		},
		{
			name: "hex with explicit iv",
			blob: codec.HexEncode(ciphertext),
			opts: []ParseOption{WithIV(ivHex), WithEncoding(EncodingHex)},
		},
		{
			name: "raw with explicit iv",
			blob: string(ciphertext),
			opts: []ParseOption{WithIV(ivHex), WithEncoding(EncodingRaw)},
		},
		{
			name: "explicit iv with separators",
			blob: codec.Base64Encode(ciphertext),
			opts: []ParseOption{WithIV(spacedHex(ivHex))},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParsePacket(tt.blob, testKey, tt.opts...)
			if err != nil {
				t.Fatalf("ParsePacket failed: %v", err)
			}
			if string(parsed.Plaintext) != string(plaintext) {
				t.Errorf("got %q, want %q", parsed.Plaintext, plaintext)
			}
		})
	}
}

// spacedHex renders a condensed hex string in the separator-normalized form.
func spacedHex(condensed string) string {
	var b strings.Builder
	for i := 0; i < len(condensed); i += 2 {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(condensed[i : i+2])
	}
	return b.String()
}

// TestFixedOffsetDiscrimination checks the framing rule: an IV field is
// recognized if and only if the first delimiter sits at offset 32.
func TestFixedOffsetDiscrimination(t *testing.T) {
	if !hasFramedIV("0123456789abcdef0123456789abcdef:rest") {
		t.Error("delimiter at offset 32 not recognized as framed")
	}
	if hasFramedIV("0123456789abcdef0123456789abcde:rest") {
		t.Error("delimiter at offset 31 recognized as framed")
	}
	if hasFramedIV("0123456789abcdef0123456789abcdeff:rest") {
		t.Error("delimiter at offset 33 recognized as framed")
	}
	if hasFramedIV("no delimiter at all") {
		t.Error("blob without delimiter recognized as framed")
	}
	// Content is deliberately not validated; only the offset matters.
	if !hasFramedIV("zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz:rest") {
		t.Error("non-hex 32-char prefix not recognized as framed")
	}
}

// TestAmbiguousIdentifierRegression pins the known fragility of the
// fixed-offset rule: a blob whose first field is a 32-character identifier
// (not valid hex) is misread as framed, the identifier is consumed as the IV
// field, and parsing fails downstream. This is documented wire behavior, not
// a desired property; the test exists so a change in acceptance behavior is
// noticed.
func TestAmbiguousIdentifierRegression(t *testing.T) {
	const trickyID = "abcd1234abcd1234abcd1234abcd123x" // 32 chars, not hex

	ciphertext, _, err := EncryptRaw([]byte("payload"), testKey)
	if err != nil {
		t.Fatalf("EncryptRaw failed: %v", err)
	}

	// An identifier-first blob, as a sender without an IV field would emit.
	blob := trickyID + ":" + codec.Base64Encode(ciphertext)

	_, err = ParsePacket(blob, testKey)
	if err == nil {
		t.Fatal("expected the misframed blob to fail parsing")
	}
	// The identifier was consumed as the IV field and fails hex decoding.
	if kind := errors.KindOf(err); kind != errors.KindDecode {
		t.Errorf("got kind %v, want decode", kind)
	}
}

// TestParseErrors checks the error taxonomy of the parse path.
func TestParseErrors(t *testing.T) {
	validPacket, err := BuildPacket([]byte("x"), testKey, "")
	if err != nil {
		t.Fatalf("BuildPacket failed: %v", err)
	}
	ivHex := validPacket[:IVHexLength]

	tests := []struct {
		name string
		blob string
		opts []ParseOption
		kind errors.Kind
	}{
		{
			name: "empty input",
			blob: "",
			kind: errors.KindFormat,
		},
		{
			name: "unframed without iv",
			blob: codec.Base64Encode([]byte("some ciphertext!")),
			kind: errors.KindFormat,
		},
		{
			name: "iv of wrong width",
			blob: codec.Base64Encode([]byte("some ciphertext!")),
			opts: []ParseOption{WithIV("abcdef")},
			kind: errors.KindFormat,
		},
		{
			name: "broken base64 field",
			blob: ivHex + ":!!!not-base64!!!",
			kind: errors.KindDecode,
		},
		{
			name: "truncated ciphertext",
			blob: codec.Base64Encode([]byte("short")),
			opts: []ParseOption{WithIV(ivHex)},
			kind: errors.KindCrypto,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePacket(tt.blob, testKey, tt.opts...)
			if err == nil {
				t.Fatal("expected an error")
			}
			if kind := errors.KindOf(err); kind != tt.kind {
				t.Errorf("got kind %v, want %v", kind, tt.kind)
			}
		})
	}
}

// TestParseWrongKey checks that a wrong key surfaces as a crypto error, not
// as a distinguishable "wrong key" condition.
func TestParseWrongKey(t *testing.T) {
	packet, err := BuildPacket([]byte("secret"), testKey, "")
	if err != nil {
		t.Fatalf("BuildPacket failed: %v", err)
	}

	wrongKey := mustHex("ffffffffffffffffffffffffffffffff")
	parsed, err := ParsePacket(packet, wrongKey)
	if err != nil {
		if errors.KindOf(err) != errors.KindCrypto {
			t.Errorf("got kind %v, want crypto", errors.KindOf(err))
		}
		return
	}
	// CBC without a MAC cannot always detect a wrong key; if unpadding
	// happened to succeed the plaintext must still be wrong.
	if string(parsed.Plaintext) == "secret" {
		t.Error("wrong key produced the original plaintext")
	}
}

// TestPacketStream checks that concatenated packets split cleanly on the
// terminator.
func TestPacketStream(t *testing.T) {
	messages := []string{"first", "second", "third"}

	var stream strings.Builder
	for _, m := range messages {
		packet, err := BuildPacket([]byte(m), testKey, "client-42")
		if err != nil {
			t.Fatalf("BuildPacket failed: %v", err)
		}
		stream.WriteString(packet)
	}

	parts := strings.Split(stream.String(), PacketDelimiter)
	if parts[len(parts)-1] != "" {
		t.Fatalf("stream does not end on a terminator")
	}
	parts = parts[:len(parts)-1]
	if len(parts) != len(messages) {
		t.Fatalf("got %d packets, want %d", len(parts), len(messages))
	}

	for i, part := range parts {
		parsed, err := ParsePacket(part, testKey)
		if err != nil {
			t.Fatalf("packet %d failed to parse: %v", i, err)
		}
		if string(parsed.Plaintext) != messages[i] {
			t.Errorf("packet %d: got %q, want %q", i, parsed.Plaintext, messages[i])
		}
		if parsed.ClientID != "client-42" {
			t.Errorf("packet %d: client id %q", i, parsed.ClientID)
		}
	}
}

// TestExpectedPacketSizeFormula cross-checks the size helper against its
// components.
func TestExpectedPacketSizeFormula(t *testing.T) {
	tests := []struct {
		plainLen, idLen, want int
	}{
		{0, 0, 32 + 1 + codec.ExpectedBase64Length(16) + 4},
		{5, 4, 32 + 1 + 5 + codec.ExpectedBase64Length(16) + 4},
		{16, 0, 32 + 1 + codec.ExpectedBase64Length(32) + 4},
	}
	for _, tt := range tests {
		if got := ExpectedPacketSize(tt.plainLen, tt.idLen); got != tt.want {
			t.Errorf("ExpectedPacketSize(%d, %d) = %d, want %d", tt.plainLen, tt.idLen, got, tt.want)
		}
	}
}

// TestParseRejectsIVFromHexMode checks that framed IV detection only happens
// in base64 mode, matching the wire protocol.
func TestParseRejectsIVFromHexMode(t *testing.T) {
	ciphertext, iv, err := EncryptRaw([]byte("x"), testKey)
	if err != nil {
		t.Fatalf("EncryptRaw failed: %v", err)
	}
	blob := codec.HexEncode(iv) + ":" + codec.HexEncode(ciphertext)

	_, err = ParsePacket(blob, testKey, WithEncoding(EncodingHex))
	if err == nil {
		t.Fatal("expected hex-mode input with a frame to fail")
	}
	if kind := errors.KindOf(err); kind != errors.KindFormat {
		t.Errorf("got kind %v, want format", kind)
	}
}
