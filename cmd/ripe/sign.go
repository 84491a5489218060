package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kochabx/ripe/core/crypto/rsa"
)

var (
	signKeyFile string
	signSecret  string
	signIn      string

	verifyKeyFile   string
	verifySignature string
	verifyIn        string
)

var signCmd = &cobra.Command{
	Use:   "sign [data]",
	Short: "sign data with an RSA private key, printing a hex signature",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(args, signIn)
		if err != nil {
			return err
		}
		privatePEM, err := readKeyFile(signKeyFile)
		if err != nil {
			return err
		}

		signature, err := rsa.Sign(data, privatePEM, signSecret)
		if err != nil {
			return err
		}
		fmt.Println(signature)
		return nil
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify [data]",
	Short: "verify a hex signature against data and an RSA public key",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(args, verifyIn)
		if err != nil {
			return err
		}
		publicPEM, err := readKeyFile(verifyKeyFile)
		if err != nil {
			return err
		}

		ok, err := rsa.Verify(data, verifySignature, publicPEM)
		if err != nil {
			return err
		}
		if ok {
			fmt.Println("OK")
			return nil
		}
		fmt.Println("FAILED")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(signCmd)
	signCmd.Flags().StringVar(&signKeyFile, "key", "", "RSA private key PEM file")
	signCmd.Flags().StringVar(&signSecret, "secret", "", "passphrase of the private key PEM")
	signCmd.Flags().StringVar(&signIn, "in", "", "read the data from this file")
	_ = signCmd.MarkFlagRequired("key")

	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().StringVar(&verifyKeyFile, "key", "", "RSA public key PEM file")
	verifyCmd.Flags().StringVar(&verifySignature, "signature", "", "hex signature to check")
	verifyCmd.Flags().StringVar(&verifyIn, "in", "", "read the data from this file")
	_ = verifyCmd.MarkFlagRequired("key")
	_ = verifyCmd.MarkFlagRequired("signature")
}
