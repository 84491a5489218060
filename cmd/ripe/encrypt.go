package main

import (
	"github.com/spf13/cobra"

	"github.com/kochabx/ripe/core/crypto/aes"
	"github.com/kochabx/ripe/core/crypto/rsa"
	"github.com/kochabx/ripe/core/envelope"
	"github.com/kochabx/ripe/errors"
)

var (
	encryptKey      string
	encryptClientID string
	encryptRSAKey   string
	encryptRaw      bool
	encryptIn       string
	encryptOut      string
)

var encryptCmd = &cobra.Command{
	Use:   "encrypt [plaintext]",
	Short: "encrypt a payload as a framed AES packet, or with an RSA public key",
	RunE: func(cmd *cobra.Command, args []string) error {
		plaintext, err := readInput(args, encryptIn)
		if err != nil {
			return err
		}

		if encryptRSAKey != "" {
			publicPEM, err := readKeyFile(encryptRSAKey)
			if err != nil {
				return err
			}
			if encryptRaw {
				ciphertext, err := rsa.Encrypt(plaintext, publicPEM)
				if err != nil {
					return err
				}
				return writeOutput(ciphertext, encryptOut)
			}
			encoded, err := rsa.EncryptBase64(plaintext, publicPEM)
			if err != nil {
				return err
			}
			return writeOutput([]byte(encoded+"\n"), encryptOut)
		}

		if encryptKey == "" {
			return errors.Argument("an AES key (--key) or an RSA public key (--rsa) is required")
		}
		key, err := aes.ParseKey(encryptKey)
		if err != nil {
			return err
		}

		packet, err := envelope.BuildPacket(plaintext, key, encryptClientID)
		if err != nil {
			return err
		}
		return writeOutput([]byte(packet), encryptOut)
	},
}

func init() {
	rootCmd.AddCommand(encryptCmd)
	encryptCmd.Flags().StringVar(&encryptKey, "key", "", "AES key, raw or hex encoded")
	encryptCmd.Flags().StringVar(&encryptClientID, "client-id", "", "client identifier embedded in the packet")
	encryptCmd.Flags().StringVar(&encryptRSAKey, "rsa", "", "RSA public key PEM file; switches to RSA mode")
	encryptCmd.Flags().BoolVar(&encryptRaw, "raw", false, "RSA mode: emit raw ciphertext instead of base64")
	encryptCmd.Flags().StringVar(&encryptIn, "in", "", "read the plaintext from this file")
	encryptCmd.Flags().StringVar(&encryptOut, "out", "", "write the result to this file")
}
