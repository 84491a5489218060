package envelope

import (
	"strings"

	"github.com/kochabx/ripe/core/codec"
	"github.com/kochabx/ripe/core/crypto/aes"
	"github.com/kochabx/ripe/errors"
)

// CiphertextEncoding describes how the ciphertext field of the input is
// encoded.
type CiphertextEncoding int

const (
	// EncodingBase64 is the framed/condensed form; the only mode in which a
	// leading IV field is detected and stripped.
	EncodingBase64 CiphertextEncoding = iota
	// EncodingHex marks a hex-encoded ciphertext field.
	EncodingHex
	// EncodingRaw marks a raw byte ciphertext field with no text encoding.
	EncodingRaw
)

// Parsed is the structured result of ParsePacket.
type Parsed struct {
	// Plaintext is the decrypted payload.
	Plaintext []byte
	// ClientID is the identifier field of a framed packet, empty when the
	// packet carried none. Multi-tenant callers use it to pick the key for a
	// second pass; it plays no part in decryption itself.
	ClientID string
	// IV is the resolved 16-byte initialization vector that was used.
	IV []byte
}

// ParseOption configures ParsePacket.
type ParseOption func(*parseConfig)

type parseConfig struct {
	ivHex    string
	encoding CiphertextEncoding
}

// WithIV supplies an out-of-band IV as a hex string, for inputs that are not
// framed. A 32-character condensed string and a separator-normalized form are
// both accepted. When an IV is supplied no framed IV detection takes place.
func WithIV(ivHex string) ParseOption {
	return func(c *parseConfig) {
		c.ivHex = ivHex
	}
}

// WithEncoding sets the ciphertext field encoding. The default is
// EncodingBase64.
func WithEncoding(encoding CiphertextEncoding) ParseOption {
	return func(c *parseConfig) {
		c.encoding = encoding
	}
}

// ParsePacket decrypts a received blob under key. The same routine accepts
// three input shapes: a fully framed packet, a base64 ciphertext with an IV
// supplied via WithIV, and a raw or hex ciphertext with a supplied IV.
//
// Tokenization is pure: the input is never mutated, and the identifier field
// is returned to the caller rather than discarded.
func ParsePacket(blob string, key []byte, opts ...ParseOption) (*Parsed, error) {
	cfg := parseConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	// A trailing packet terminator is part of the frame, not of the
	// ciphertext field.
	rest := strings.TrimSuffix(blob, PacketDelimiter)

	ivHex := cfg.ivHex
	clientID := ""

	if ivHex == "" && cfg.encoding == EncodingBase64 {
		if hasFramedIV(rest) {
			ivHex = rest[:IVHexLength]
			rest = rest[IVHexLength+1:]
			if idx := strings.IndexByte(rest, DataDelimiter); idx >= 0 {
				clientID = rest[:idx]
				rest = rest[idx+1:]
			}
		}
	}

	if rest == "" {
		return nil, errors.Format("no ciphertext field could be isolated")
	}
	if ivHex == "" {
		return nil, errors.Format("input is not framed and no iv was supplied")
	}

	iv, err := parseIVHex(ivHex)
	if err != nil {
		return nil, err
	}

	var ciphertext []byte
	switch cfg.encoding {
	case EncodingBase64:
		ciphertext, err = codec.Base64Decode(rest)
	case EncodingHex:
		ciphertext, err = codec.HexDecode(rest)
	case EncodingRaw:
		ciphertext = []byte(rest)
	default:
		return nil, errors.Argument("unknown ciphertext encoding %d", cfg.encoding)
	}
	if err != nil {
		return nil, err
	}

	plaintext, err := aes.DecryptCBC(ciphertext, key, iv)
	if err != nil {
		return nil, err
	}

	return &Parsed{
		Plaintext: plaintext,
		ClientID:  clientID,
		IV:        iv,
	}, nil
}

// hasFramedIV is the framing discriminator: a blob carries an IV field if and
// only if its first field delimiter sits at offset IVHexLength. The content
// of the prefix is deliberately NOT validated as hex; the fixed offset is the
// rule the wire format defines, and replacing it with a content check would
// change acceptance behavior for edge-case inputs. The known consequence: an
// identifier-first blob whose first field happens to be 32 characters long is
// misread as framed.
func hasFramedIV(blob string) bool {
	return strings.IndexByte(blob, DataDelimiter) == IVHexLength
}

// parseIVHex resolves an IV from its textual form to raw bytes. The
// 32-character condensed form is normalized by reading it as byte pairs;
// forms carrying whitespace separators between pairs are accepted as already
// normalized.
func parseIVHex(ivHex string) ([]byte, error) {
	condensed := strings.Join(strings.Fields(ivHex), "")
	if len(condensed) != IVHexLength {
		return nil, errors.Format("iv field must be %d hex characters, got %d", IVHexLength, len(condensed))
	}

	iv, err := codec.HexDecode(condensed)
	if err != nil {
		return nil, err
	}
	return iv, nil
}
