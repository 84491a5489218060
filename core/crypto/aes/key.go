package aes

import (
	"crypto/rand"

	"github.com/kochabx/ripe/core/codec"
	"github.com/kochabx/ripe/errors"
)

// GenerateKey generates a new random AES key of the given length in bytes and
// returns it hex encoded, the interchange form used for raw keys. Acceptable
// lengths are 16, 24 and 32.
func GenerateKey(length int) (string, error) {
	if !ValidKeySize(length) {
		return "", errors.Argument("invalid key length %d, acceptable lengths are 16, 24 or 32", length)
	}

	key := make([]byte, length)
	if _, err := rand.Read(key); err != nil {
		return "", errors.KeyWrap(err, "failed to generate key material")
	}

	return codec.HexEncode(key), nil
}

// ParseKey resolves caller-supplied key material to raw bytes. It accepts
// either a raw 16/24/32-byte key or its 32/48/64-character hex encoding. The
// hex form is tried first so a 32-character input is always read as a
// 16-byte hex key, never as a raw 32-byte key.
func ParseKey(key string) ([]byte, error) {
	if key == "" {
		return nil, errors.Argument("key must not be empty")
	}

	if len(key) == 2*KeySize128 || len(key) == 2*KeySize192 || len(key) == 2*KeySize256 {
		if raw, err := codec.HexDecode(key); err == nil {
			return raw, nil
		}
	}

	if ValidKeySize(len(key)) {
		return []byte(key), nil
	}

	return nil, errors.Key("invalid key: not a 16/24/32-byte key or its hex encoding")
}

// NewIV generates a fresh random 16-byte initialization vector.
func NewIV() ([]byte, error) {
	iv := make([]byte, BlockSize)
	if _, err := rand.Read(iv); err != nil {
		return nil, errors.CryptoWrap(err, "failed to generate iv")
	}
	return iv, nil
}
