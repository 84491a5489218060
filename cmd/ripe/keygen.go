package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kochabx/ripe/core/crypto/aes"
	"github.com/kochabx/ripe/core/crypto/rsa"
)

var (
	keygenAESLength  int
	keygenRSABits    int
	keygenOutPublic  string
	keygenOutPrivate string
	keygenSecret     string
	keygenBase64     bool
)

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "generate an AES key or an RSA key pair",
	RunE: func(cmd *cobra.Command, args []string) error {
		if keygenAESLength > 0 {
			key, err := aes.GenerateKey(keygenAESLength)
			if err != nil {
				return err
			}
			fmt.Println(key)
			return nil
		}

		bits := keygenRSABits
		if bits == 0 {
			bits = cfg.RSABits
		}
		if bits == 0 {
			bits = rsa.DefaultKeyLength
		}

		if keygenOutPublic != "" || keygenOutPrivate != "" {
			return rsa.WriteKeyPairFiles(
				rsa.WithBits(bits),
				rsa.WithPassphrase(keygenSecret),
				rsa.WithPublicKeyFilename(keygenOutPublic),
				rsa.WithPrivateKeyFilename(keygenOutPrivate),
			)
		}

		if keygenBase64 {
			pair, err := rsa.GenerateKeyPairBase64(bits, keygenSecret)
			if err != nil {
				return err
			}
			fmt.Println(pair)
			return nil
		}

		pair, err := rsa.GenerateKeyPair(bits, keygenSecret)
		if err != nil {
			return err
		}
		fmt.Print(pair.PrivatePEM)
		fmt.Print(pair.PublicPEM)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(keygenCmd)
	keygenCmd.Flags().IntVar(&keygenAESLength, "aes", 0, "generate an AES key of this many bytes (16, 24 or 32)")
	keygenCmd.Flags().IntVar(&keygenRSABits, "rsa", 0, "generate an RSA key pair with this modulus size in bits")
	keygenCmd.Flags().StringVar(&keygenOutPublic, "out-public", "", "write the public key PEM to this file")
	keygenCmd.Flags().StringVar(&keygenOutPrivate, "out-private", "", "write the private key PEM to this file")
	keygenCmd.Flags().StringVar(&keygenSecret, "secret", "", "passphrase protecting the private key PEM")
	keygenCmd.Flags().BoolVar(&keygenBase64, "base64", false, "print the pair as base64(private):base64(public)")
}
