// Package codec provides the text encodings and size arithmetic shared by the
// envelope and crypto packages: standard Base64 (no line wrapping), lowercase
// hex, and the deterministic length relations of CBC padding and Base64.
package codec

import (
	"encoding/base64"
	"encoding/hex"

	"github.com/kochabx/ripe/errors"
)

// Base64Encode encodes raw bytes using the standard Base64 alphabet with
// padding and no line breaks.
func Base64Encode(raw []byte) string {
	return base64.StdEncoding.EncodeToString(raw)
}

// Base64Decode decodes a standard Base64 string.
func Base64Decode(encoded string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.DecodeWrap(err, "malformed base64 input")
	}
	return raw, nil
}

// HexEncode encodes raw bytes as lowercase hex, two digits per byte.
func HexEncode(raw []byte) string {
	return hex.EncodeToString(raw)
}

// HexDecode decodes a hex string. Upper and lower case digits are accepted.
func HexDecode(encoded string) ([]byte, error) {
	raw, err := hex.DecodeString(encoded)
	if err != nil {
		return nil, errors.DecodeWrap(err, "malformed hex input")
	}
	return raw, nil
}
