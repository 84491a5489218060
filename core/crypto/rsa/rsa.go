// Package rsa implements the asymmetric operations of the envelope protocol:
// key-pair generation with PEM interchange (optionally passphrase-protected),
// PKCS1v15 encryption and decryption, and PKCS1v15 SHA-1 signatures with hex
// interchange. SHA-1 is kept for wire compatibility with existing peers.
//
// RSA can only encrypt a single block of at most MaxBlockSize(bits) bytes;
// chunking larger payloads is the caller's concern.
package rsa

import (
	"crypto/rand"
	stdrsa "crypto/rsa"
	"strings"

	"github.com/kochabx/ripe/core/codec"
	"github.com/kochabx/ripe/errors"
	"github.com/kochabx/ripe/log"
)

const (
	// DefaultKeyLength is the default modulus size in bits.
	DefaultKeyLength = 2048

	// MinKeyLength is the smallest modulus accepted for generation.
	MinKeyLength = 512

	bitsPerByte = 8

	// pkcs1v15Overhead is the PKCS#1 v1.5 padding overhead in bytes.
	pkcs1v15Overhead = 11

	// keyPairDelimiter separates the private and public halves in the
	// compact base64 key-pair transport form.
	keyPairDelimiter = ":"
)

// KeyPair holds a PEM-encoded private key and its matching public key.
type KeyPair struct {
	PrivatePEM string
	PublicPEM  string
}

// MaxBlockSize returns the largest plaintext in bytes that a key of the given
// modulus size can encrypt under PKCS#1 v1.5 padding.
func MaxBlockSize(bits int) int {
	return bits/bitsPerByte - pkcs1v15Overhead
}

// GenerateKeyPair generates a new RSA key pair with the given modulus size
// and returns both halves PEM encoded. The private key is validated before it
// is returned. If passphrase is non-empty the private key PEM is encrypted
// with it.
func GenerateKeyPair(bits int, passphrase string) (*KeyPair, error) {
	if bits < MinKeyLength {
		return nil, errors.Argument("key length %d is too small, minimum is %d", bits, MinKeyLength)
	}

	log.Info().
		Int("bits", bits).
		Int("max_block_size", MaxBlockSize(bits)).
		Msg("generating rsa key pair")

	privateKey, err := stdrsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return nil, errors.KeyWrap(err, "key generation failed")
	}
	if err := privateKey.Validate(); err != nil {
		return nil, errors.KeyWrap(err, "generated key failed validation")
	}

	privatePEM, err := EncodePrivatePEM(privateKey, passphrase)
	if err != nil {
		return nil, err
	}
	publicPEM, err := EncodePublicPEM(&privateKey.PublicKey)
	if err != nil {
		return nil, err
	}

	return &KeyPair{
		PrivatePEM: string(privatePEM),
		PublicPEM:  string(publicPEM),
	}, nil
}

// GenerateKeyPairBase64 generates a key pair and returns it in the compact
// transport form base64(privatePEM) ":" base64(publicPEM).
func GenerateKeyPairBase64(bits int, passphrase string) (string, error) {
	pair, err := GenerateKeyPair(bits, passphrase)
	if err != nil {
		return "", err
	}
	return codec.Base64Encode([]byte(pair.PrivatePEM)) +
		keyPairDelimiter +
		codec.Base64Encode([]byte(pair.PublicPEM)), nil
}

// ParseKeyPairBase64 parses the compact transport form produced by
// GenerateKeyPairBase64.
func ParseKeyPairBase64(s string) (*KeyPair, error) {
	private, public, found := strings.Cut(s, keyPairDelimiter)
	if !found {
		return nil, errors.Format("key pair transport form has no %q delimiter", keyPairDelimiter)
	}

	privatePEM, err := codec.Base64Decode(private)
	if err != nil {
		return nil, err
	}
	publicPEM, err := codec.Base64Decode(public)
	if err != nil {
		return nil, err
	}

	return &KeyPair{
		PrivatePEM: string(privatePEM),
		PublicPEM:  string(publicPEM),
	}, nil
}
