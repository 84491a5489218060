package rsa

import (
	stdrsa "crypto/rsa"
	"os"
	"path/filepath"

	"github.com/kochabx/ripe/errors"
	"github.com/kochabx/ripe/log"
)

// KeyOption contains options for key generation and file I/O.
type KeyOption struct {
	Dirpath            string
	PrivateKeyFilename string
	PublicKeyFilename  string
	Bits               int
	Passphrase         string
}

// WithDirpath sets the directory path for key file operations.
func WithDirpath(dirpath string) func(*KeyOption) {
	return func(o *KeyOption) {
		o.Dirpath = dirpath
	}
}

// WithPrivateKeyFilename sets the filename for the private key.
func WithPrivateKeyFilename(filename string) func(*KeyOption) {
	return func(o *KeyOption) {
		o.PrivateKeyFilename = filename
	}
}

// WithPublicKeyFilename sets the filename for the public key.
func WithPublicKeyFilename(filename string) func(*KeyOption) {
	return func(o *KeyOption) {
		o.PublicKeyFilename = filename
	}
}

// WithBits sets the modulus size in bits.
func WithBits(bits int) func(*KeyOption) {
	return func(o *KeyOption) {
		o.Bits = bits
	}
}

// WithPassphrase encrypts the private key PEM with the given passphrase.
func WithPassphrase(passphrase string) func(*KeyOption) {
	return func(o *KeyOption) {
		o.Passphrase = passphrase
	}
}

func (o *KeyOption) applyDefaults() {
	if o.Dirpath == "" {
		o.Dirpath = "."
	}
	if o.PrivateKeyFilename == "" {
		o.PrivateKeyFilename = "private.pem"
	}
	if o.PublicKeyFilename == "" {
		o.PublicKeyFilename = "public.pem"
	}
	if o.Bits == 0 {
		o.Bits = DefaultKeyLength
	}
}

// WriteKeyPairFiles generates a new key pair and saves both halves as PEM
// files. When the private key was written but the public key write fails, the
// error is reported without rolling back; callers must treat any failure as
// "state may be inconsistent on disk".
func WriteKeyPairFiles(opts ...func(*KeyOption)) error {
	option := &KeyOption{}
	for _, opt := range opts {
		opt(option)
	}
	option.applyDefaults()

	pair, err := GenerateKeyPair(option.Bits, option.Passphrase)
	if err != nil {
		return err
	}

	privatePath := filepath.Join(option.Dirpath, option.PrivateKeyFilename)
	if err := os.WriteFile(privatePath, []byte(pair.PrivatePEM), 0o600); err != nil {
		log.Error().Err(err).Str("path", privatePath).Msg("failed to write private key")
		return errors.KeyWrap(err, "failed to write private key").
			WithMetadata(map[string]string{"path": privatePath})
	}

	publicPath := filepath.Join(option.Dirpath, option.PublicKeyFilename)
	if err := os.WriteFile(publicPath, []byte(pair.PublicPEM), 0o644); err != nil {
		log.Error().Err(err).Str("path", publicPath).Msg("failed to write public key")
		return errors.KeyWrap(err, "failed to write public key").
			WithMetadata(map[string]string{"path": publicPath})
	}

	log.Info().Str("private", privatePath).Str("public", publicPath).Msg("key pair saved")
	return nil
}

// LoadPrivateKey loads and validates an RSA private key from a PEM file.
func LoadPrivateKey(path, passphrase string) (*stdrsa.PrivateKey, error) {
	pemBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.KeyWrap(err, "failed to read private key file").
			WithMetadata(map[string]string{"path": path})
	}
	return DecodePrivatePEM(pemBytes, passphrase)
}

// LoadPublicKey loads an RSA public key from a PEM file.
func LoadPublicKey(path string) (*stdrsa.PublicKey, error) {
	pemBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.KeyWrap(err, "failed to read public key file").
			WithMetadata(map[string]string{"path": path})
	}
	return DecodePublicPEM(pemBytes)
}
