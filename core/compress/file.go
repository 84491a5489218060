package compress

import (
	"io"
	"os"

	"github.com/klauspost/compress/gzip"

	"github.com/kochabx/ripe/errors"
)

// CompressFile reads inputPath and writes it as a gzip file at gzPath, at
// best compression.
func CompressFile(gzPath, inputPath string) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return errors.CompressionWrap(err, "unable to open input file").
			WithMetadata(map[string]string{"path": inputPath})
	}
	defer in.Close()

	out, err := os.Create(gzPath)
	if err != nil {
		return errors.CompressionWrap(err, "unable to open output file").
			WithMetadata(map[string]string{"path": gzPath})
	}
	defer out.Close()

	w, err := gzip.NewWriterLevel(out, gzip.BestCompression)
	if err != nil {
		return errors.CompressionWrap(err, "failed to initialize gzip stream")
	}

	if _, err := io.Copy(w, in); err != nil {
		w.Close()
		return errors.CompressionWrap(err, "compression failed")
	}
	if err := w.Close(); err != nil {
		return errors.CompressionWrap(err, "compression failed")
	}

	return nil
}

// DecompressFile reads the gzip file at gzPath and writes the inflated
// content to outputPath.
func DecompressFile(outputPath, gzPath string) error {
	in, err := os.Open(gzPath)
	if err != nil {
		return errors.CompressionWrap(err, "unable to open input file").
			WithMetadata(map[string]string{"path": gzPath})
	}
	defer in.Close()

	r, err := gzip.NewReader(in)
	if err != nil {
		return errors.CompressionWrap(err, "failed to initialize gzip stream")
	}
	defer r.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		return errors.CompressionWrap(err, "unable to open output file").
			WithMetadata(map[string]string{"path": outputPath})
	}
	defer out.Close()

	if _, err := io.Copy(out, r); err != nil {
		return errors.CompressionWrap(err, "decompression failed or stream ended prematurely")
	}

	return nil
}
