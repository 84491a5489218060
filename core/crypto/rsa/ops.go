package rsa

import (
	"crypto"
	"crypto/rand"
	stdrsa "crypto/rsa"
	"crypto/sha1"

	"github.com/kochabx/ripe/core/codec"
	"github.com/kochabx/ripe/errors"
)

// Encrypt encrypts plaintext with PKCS#1 v1.5 under the PEM public key.
// Plaintext longer than MaxBlockSize of the key's modulus fails with a
// crypto error.
func Encrypt(plaintext []byte, publicPEM []byte) ([]byte, error) {
	publicKey, err := DecodePublicPEM(publicPEM)
	if err != nil {
		return nil, err
	}

	ciphertext, err := stdrsa.EncryptPKCS1v15(rand.Reader, publicKey, plaintext)
	if err != nil {
		return nil, errors.CryptoWrap(err, "encryption failed")
	}
	return ciphertext, nil
}

// EncryptBase64 encrypts plaintext and returns the ciphertext base64 encoded.
func EncryptBase64(plaintext []byte, publicPEM []byte) (string, error) {
	ciphertext, err := Encrypt(plaintext, publicPEM)
	if err != nil {
		return "", err
	}
	return codec.Base64Encode(ciphertext), nil
}

// Decrypt decrypts PKCS#1 v1.5 ciphertext with the PEM private key,
// decrypting the key itself with passphrase when needed. Ciphertext that does
// not correspond to the key fails with a crypto error.
func Decrypt(ciphertext []byte, privatePEM []byte, passphrase string) ([]byte, error) {
	privateKey, err := DecodePrivatePEM(privatePEM, passphrase)
	if err != nil {
		return nil, err
	}

	plaintext, err := stdrsa.DecryptPKCS1v15(rand.Reader, privateKey, ciphertext)
	if err != nil {
		return nil, errors.CryptoWrap(err, "decryption failed")
	}
	return plaintext, nil
}

// DecryptEncoded decrypts ciphertext that was base64 or hex encoded for
// transport. When both flags are set the base64 layer is removed first,
// matching the encoding order used by the CLI tools.
func DecryptEncoded(encoded string, privatePEM []byte, passphrase string, isBase64, isHex bool) ([]byte, error) {
	data := []byte(encoded)

	if isBase64 {
		raw, err := codec.Base64Decode(string(data))
		if err != nil {
			return nil, err
		}
		data = raw
	}
	if isHex {
		raw, err := codec.HexDecode(string(data))
		if err != nil {
			return nil, err
		}
		data = raw
	}

	return Decrypt(data, privatePEM, passphrase)
}

// Sign signs data with PKCS#1 v1.5 over SHA-1 and returns the signature hex
// encoded.
func Sign(data []byte, privatePEM []byte, passphrase string) (string, error) {
	privateKey, err := DecodePrivatePEM(privatePEM, passphrase)
	if err != nil {
		return "", err
	}

	digest := sha1.Sum(data)
	signature, err := stdrsa.SignPKCS1v15(rand.Reader, privateKey, crypto.SHA1, digest[:])
	if err != nil {
		return "", errors.CryptoWrap(err, "signing failed")
	}

	return codec.HexEncode(signature), nil
}

// Verify checks a hex signature produced by Sign against data and the PEM
// public key. A mismatched or malformed signature returns false with a nil
// error; only unusable key material produces an error.
func Verify(data []byte, hexSignature string, publicPEM []byte) (bool, error) {
	publicKey, err := DecodePublicPEM(publicPEM)
	if err != nil {
		return false, err
	}

	signature, err := codec.HexDecode(hexSignature)
	if err != nil {
		return false, nil
	}

	digest := sha1.Sum(data)
	if err := stdrsa.VerifyPKCS1v15(publicKey, crypto.SHA1, digest[:], signature); err != nil {
		return false, nil
	}
	return true, nil
}
