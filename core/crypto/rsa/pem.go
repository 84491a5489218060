package rsa

import (
	stdrsa "crypto/rsa"
	"crypto/x509"
	"encoding/pem"

	"github.com/youmark/pkcs8"

	"github.com/kochabx/ripe/errors"
)

// PEM block types accepted by the decoders.
const (
	pemTypePrivate          = "PRIVATE KEY"
	pemTypeEncryptedPrivate = "ENCRYPTED PRIVATE KEY"
	pemTypePKCS1Private     = "RSA PRIVATE KEY"
	pemTypePublic           = "PUBLIC KEY"
	pemTypePKCS1Public      = "RSA PUBLIC KEY"
)

// EncodePrivatePEM encodes a private key as PKCS#8 PEM. A non-empty
// passphrase produces an encrypted PKCS#8 block.
func EncodePrivatePEM(key *stdrsa.PrivateKey, passphrase string) ([]byte, error) {
	if key == nil {
		return nil, errors.Key("private key is nil")
	}

	var password []byte
	blockType := pemTypePrivate
	if passphrase != "" {
		password = []byte(passphrase)
		blockType = pemTypeEncryptedPrivate
	}

	der, err := pkcs8.MarshalPrivateKey(key, password, nil)
	if err != nil {
		return nil, errors.KeyWrap(err, "failed to marshal private key")
	}

	return pem.EncodeToMemory(&pem.Block{Type: blockType, Bytes: der}), nil
}

// EncodePublicPEM encodes a public key as PKIX PEM.
func EncodePublicPEM(key *stdrsa.PublicKey) ([]byte, error) {
	if key == nil {
		return nil, errors.Key("public key is nil")
	}

	der, err := x509.MarshalPKIXPublicKey(key)
	if err != nil {
		return nil, errors.KeyWrap(err, "failed to marshal public key")
	}

	return pem.EncodeToMemory(&pem.Block{Type: pemTypePublic, Bytes: der}), nil
}

// DecodePrivatePEM parses a PEM private key, decrypting it with passphrase
// when the block is an encrypted PKCS#8 container. The key is validated
// before it is returned; a wrong passphrase and corrupt key material both
// surface as key errors.
func DecodePrivatePEM(pemBytes []byte, passphrase string) (*stdrsa.PrivateKey, error) {
	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, errors.Key("no PEM block found in private key input")
	}

	var (
		key *stdrsa.PrivateKey
		err error
	)
	switch block.Type {
	case pemTypeEncryptedPrivate:
		if passphrase == "" {
			return nil, errors.Key("private key is encrypted but no passphrase was supplied")
		}
		key, err = pkcs8.ParsePKCS8PrivateKeyRSA(block.Bytes, []byte(passphrase))
		if err != nil {
			return nil, errors.KeyWrap(err, "could not decrypt private key")
		}
	case pemTypePKCS1Private:
		key, err = x509.ParsePKCS1PrivateKey(block.Bytes)
		if err != nil {
			return nil, errors.KeyWrap(err, "could not parse private key")
		}
	case pemTypePrivate:
		parsed, perr := x509.ParsePKCS8PrivateKey(block.Bytes)
		if perr != nil {
			return nil, errors.KeyWrap(perr, "could not parse private key")
		}
		rsaKey, ok := parsed.(*stdrsa.PrivateKey)
		if !ok {
			return nil, errors.Key("private key is not an RSA key")
		}
		key = rsaKey
	default:
		return nil, errors.Key("unsupported private key PEM type %q", block.Type)
	}

	if err := key.Validate(); err != nil {
		return nil, errors.KeyWrap(err, "private key failed validation")
	}

	return key, nil
}

// DecodePublicPEM parses a PEM public key.
func DecodePublicPEM(pemBytes []byte) (*stdrsa.PublicKey, error) {
	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, errors.Key("no PEM block found in public key input")
	}

	switch block.Type {
	case pemTypePKCS1Public:
		key, err := x509.ParsePKCS1PublicKey(block.Bytes)
		if err != nil {
			return nil, errors.KeyWrap(err, "could not parse public key")
		}
		return key, nil
	case pemTypePublic:
		parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
		if err != nil {
			return nil, errors.KeyWrap(err, "could not parse public key")
		}
		key, ok := parsed.(*stdrsa.PublicKey)
		if !ok {
			return nil, errors.Key("public key is not an RSA key")
		}
		return key, nil
	default:
		return nil, errors.Key("unsupported public key PEM type %q", block.Type)
	}
}
