package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kochabx/ripe/core/crypto/aes"
	"github.com/kochabx/ripe/core/crypto/rsa"
	"github.com/kochabx/ripe/core/envelope"
	"github.com/kochabx/ripe/errors"
	"github.com/kochabx/ripe/log"
)

var (
	decryptKey    string
	decryptIV     string
	decryptRSAKey string
	decryptSecret string
	decryptHex    bool
	decryptRaw    bool
	decryptIn     string
	decryptOut    string
)

var decryptCmd = &cobra.Command{
	Use:   "decrypt [blob]",
	Short: "decrypt a framed AES packet, or RSA ciphertext with a private key",
	RunE: func(cmd *cobra.Command, args []string) error {
		blob, err := readInput(args, decryptIn)
		if err != nil {
			return err
		}

		if decryptRSAKey != "" {
			privatePEM, err := readKeyFile(decryptRSAKey)
			if err != nil {
				return err
			}
			plaintext, err := rsa.DecryptEncoded(string(blob), privatePEM, decryptSecret, !decryptRaw, decryptHex)
			if err != nil {
				return err
			}
			return writeOutput(plaintext, decryptOut)
		}

		if decryptKey == "" {
			return errors.Argument("an AES key (--key) or an RSA private key (--rsa) is required")
		}
		key, err := aes.ParseKey(decryptKey)
		if err != nil {
			return err
		}

		opts := []envelope.ParseOption{}
		if decryptIV != "" {
			opts = append(opts, envelope.WithIV(decryptIV))
		}
		switch {
		case decryptHex:
			opts = append(opts, envelope.WithEncoding(envelope.EncodingHex))
		case decryptRaw:
			opts = append(opts, envelope.WithEncoding(envelope.EncodingRaw))
		}

		parsed, err := envelope.ParsePacket(string(blob), key, opts...)
		if err != nil {
			return err
		}
		if parsed.ClientID != "" {
			log.Debug().Str("client_id", parsed.ClientID).Msg("packet carried a client id")
		}
		return writeOutput(parsed.Plaintext, decryptOut)
	},
}

func init() {
	rootCmd.AddCommand(decryptCmd)
	decryptCmd.Flags().StringVar(&decryptKey, "key", "", "AES key, raw or hex encoded")
	decryptCmd.Flags().StringVar(&decryptIV, "iv", "", "explicit IV as 32 hex characters, for unframed input")
	decryptCmd.Flags().StringVar(&decryptRSAKey, "rsa", "", "RSA private key PEM file; switches to RSA mode")
	decryptCmd.Flags().StringVar(&decryptSecret, "secret", "", "passphrase of the private key PEM")
	decryptCmd.Flags().BoolVar(&decryptHex, "hex", false, "ciphertext field is hex encoded")
	decryptCmd.Flags().BoolVar(&decryptRaw, "raw", false, "ciphertext field is raw bytes, not base64")
	decryptCmd.Flags().StringVar(&decryptIn, "in", "", "read the input from this file")
	decryptCmd.Flags().StringVar(&decryptOut, "out", "", "write the plaintext to this file")
}

// readKeyFile loads a PEM key file for the RSA modes.
func readKeyFile(path string) ([]byte, error) {
	pemBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.KeyWrap(err, "failed to read key file").
			WithMetadata(map[string]string{"path": path})
	}
	return pemBytes, nil
}
