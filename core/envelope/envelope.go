// Package envelope implements the framed symmetric encryption protocol: a
// plaintext payload becomes the self-describing packet
//
//	IV_hex ':' [clientID ':'] base64(AES-CBC(plaintext, key, IV)) "\r\n\r\n"
//
// and ParsePacket runs the inverse path, accepting either this condensed
// framed form or caller-managed IV/ciphertext. The protocol provides
// confidentiality only; there is no MAC, so a tampered packet surfaces as a
// decode or padding failure at best and as garbage plaintext at worst.
package envelope

import (
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/kochabx/ripe/core/codec"
	"github.com/kochabx/ripe/core/crypto/aes"
	"github.com/kochabx/ripe/errors"
)

// BuildPacket encrypts plaintext under key with a fresh random IV and frames
// it as a packet. clientID may be empty; when present it is inserted between
// the IV and ciphertext fields so a multi-tenant receiver can select the
// right key. The result's length always equals
// ExpectedPacketSize(len(plaintext), len(clientID)).
func BuildPacket(plaintext, key []byte, clientID string) (string, error) {
	if err := validateClientID(clientID); err != nil {
		return "", err
	}

	ciphertext, iv, err := EncryptRaw(plaintext, key)
	if err != nil {
		return "", err
	}

	var packet strings.Builder
	packet.Grow(ExpectedPacketSize(len(plaintext), len(clientID)))
	packet.WriteString(codec.HexEncode(iv))
	packet.WriteByte(DataDelimiter)
	if clientID != "" {
		packet.WriteString(clientID)
		packet.WriteByte(DataDelimiter)
	}
	packet.WriteString(codec.Base64Encode(ciphertext))
	packet.WriteString(PacketDelimiter)

	return packet.String(), nil
}

// EncryptRaw encrypts plaintext under key without any framing and returns the
// ciphertext together with the generated IV, for callers that manage their
// own transport framing and carry the IV out of band.
func EncryptRaw(plaintext, key []byte) (ciphertext, iv []byte, err error) {
	iv, err = aes.NewIV()
	if err != nil {
		return nil, nil, err
	}

	ciphertext, err = aes.EncryptCBC(plaintext, key, iv)
	if err != nil {
		return nil, nil, err
	}

	return ciphertext, iv, nil
}

// BuildPacketFile encrypts plaintext under key, writes the raw ciphertext to
// path and returns the hex-encoded IV for out-of-band delivery.
func BuildPacketFile(plaintext, key []byte, path string) (string, error) {
	ciphertext, iv, err := EncryptRaw(plaintext, key)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, ciphertext, 0o644); err != nil {
		return "", errors.Wrap(err, errors.KindArgument, "failed to write ciphertext file").
			WithMetadata(map[string]string{"path": path})
	}

	return codec.HexEncode(iv), nil
}

// NewClientID returns a fresh client identifier that is safe to embed in a
// packet: it contains no field delimiter and, being 36 characters with
// dashes, can never collide with the 32-character IV field.
func NewClientID() string {
	return uuid.NewString()
}

// validateClientID rejects identifiers that would corrupt the frame: a
// delimiter inside the identifier shifts the ciphertext field, and an
// identifier that is itself 32 characters of hex would be misread as the IV
// field by receivers of a packet whose IV field was stripped in transit.
func validateClientID(clientID string) error {
	if strings.IndexByte(clientID, DataDelimiter) >= 0 {
		return errors.Argument("client id must not contain %q", string(DataDelimiter))
	}
	if isCondensedHex(clientID) {
		return errors.Argument("client id must not be exactly %d hex characters, it would be ambiguous with the iv field", IVHexLength)
	}
	return nil
}

// isCondensedHex reports whether s is exactly IVHexLength hex digits, the
// shape of a condensed IV field.
func isCondensedHex(s string) bool {
	if len(s) != IVHexLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
