// Package aes implements the raw AES-CBC block cipher operations used by the
// envelope protocol: PKCS#7-padded encryption and decryption with a
// caller-visible 16-byte IV, plus key generation and validation.
//
// The package holds no state; every call builds its own key schedule, so
// concurrent use needs no coordination.
package aes

import (
	stdaes "crypto/aes"
	"crypto/cipher"

	"github.com/kochabx/ripe/errors"
)

// EncryptCBC encrypts plaintext with AES-CBC under key and iv, applying
// PKCS#7 padding. The key must be 16, 24 or 32 bytes and the iv exactly 16.
func EncryptCBC(plaintext, key, iv []byte) ([]byte, error) {
	if !ValidKeySize(len(key)) {
		return nil, errors.Key("invalid key length %d, acceptable lengths are 16, 24 or 32", len(key))
	}
	if len(iv) != BlockSize {
		return nil, errors.Argument("iv must be exactly %d bytes, got %d", BlockSize, len(iv))
	}

	block, err := stdaes.NewCipher(key)
	if err != nil {
		return nil, errors.KeyWrap(err, "failed to initialize cipher")
	}

	padded := pkcs7Pad(plaintext)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	return ciphertext, nil
}

// DecryptCBC decrypts AES-CBC ciphertext under key and iv and strips the
// PKCS#7 padding. A wrong key, a wrong IV and corrupted ciphertext are
// indistinguishable here; all surface as a crypto error.
func DecryptCBC(ciphertext, key, iv []byte) ([]byte, error) {
	if !ValidKeySize(len(key)) {
		return nil, errors.Key("invalid key length %d, acceptable lengths are 16, 24 or 32", len(key))
	}
	if len(iv) != BlockSize {
		return nil, errors.Argument("iv must be exactly %d bytes, got %d", BlockSize, len(iv))
	}
	if len(ciphertext) == 0 || len(ciphertext)%BlockSize != 0 {
		return nil, errors.Crypto("ciphertext length %d is not a positive multiple of the block size", len(ciphertext))
	}

	block, err := stdaes.NewCipher(key)
	if err != nil {
		return nil, errors.KeyWrap(err, "failed to initialize cipher")
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	return pkcs7Unpad(plaintext)
}

// pkcs7Pad pads data to a whole number of blocks. A full padding block is
// appended when data is already block-aligned, so padding is always present.
func pkcs7Pad(data []byte) []byte {
	padLen := BlockSize - len(data)%BlockSize
	padded := make([]byte, len(data)+padLen)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(padLen)
	}
	return padded
}

func pkcs7Unpad(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, errors.Crypto("cannot unpad empty data")
	}

	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > BlockSize || padLen > len(data) {
		return nil, errors.Crypto("invalid padding")
	}
	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, errors.Crypto("invalid padding")
		}
	}

	return data[:len(data)-padLen], nil
}
