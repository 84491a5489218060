package main

import (
	"github.com/spf13/cobra"

	"github.com/kochabx/ripe/core/compress"
)

var (
	compressIn    string
	compressOut   string
	decompressIn  string
	decompressOut string
)

var compressCmd = &cobra.Command{
	Use:   "compress [data]",
	Short: "deflate data (zlib for strings, gzip for --in/--out files)",
	RunE: func(cmd *cobra.Command, args []string) error {
		// File-to-file mode produces a gzip container; string mode a zlib
		// stream, as peers of the envelope protocol expect.
		if compressIn != "" && compressOut != "" {
			return compress.CompressFile(compressOut, compressIn)
		}

		data, err := readInput(args, compressIn)
		if err != nil {
			return err
		}
		out, err := compress.Compress(data)
		if err != nil {
			return err
		}
		return writeOutput(out, compressOut)
	},
}

var decompressCmd = &cobra.Command{
	Use:   "decompress",
	Short: "inflate data (zlib for strings, gzip for --in/--out files)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if decompressIn != "" && decompressOut != "" {
			return compress.DecompressFile(decompressOut, decompressIn)
		}

		data, err := readInput(args, decompressIn)
		if err != nil {
			return err
		}
		out, err := compress.Decompress(data)
		if err != nil {
			return err
		}
		return writeOutput(out, decompressOut)
	},
}

func init() {
	rootCmd.AddCommand(compressCmd)
	compressCmd.Flags().StringVar(&compressIn, "in", "", "read the input from this file")
	compressCmd.Flags().StringVar(&compressOut, "out", "", "write the result to this file")

	rootCmd.AddCommand(decompressCmd)
	decompressCmd.Flags().StringVar(&decompressIn, "in", "", "read the input from this file")
	decompressCmd.Flags().StringVar(&decompressOut, "out", "", "write the result to this file")
}
