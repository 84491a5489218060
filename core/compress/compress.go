// Package compress wraps DEFLATE stream compression for the envelope
// protocol's payloads: zlib streams for in-memory byte strings and gzip
// containers for file-to-file operation. Maximum compression is always
// requested; the level is a fixed policy, not a knob.
package compress

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/kochabx/ripe/errors"
)

// Compress deflates data into a zlib stream at best compression.
func Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	w, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return nil, errors.CompressionWrap(err, "failed to initialize deflate stream")
	}

	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, errors.CompressionWrap(err, "deflate failed")
	}
	if err := w.Close(); err != nil {
		return nil, errors.CompressionWrap(err, "deflate failed")
	}

	return buf.Bytes(), nil
}

// Decompress inflates a zlib stream produced by Compress. A truncated or
// corrupt stream fails with a compression error.
func Decompress(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.CompressionWrap(err, "failed to initialize inflate stream")
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.CompressionWrap(err, "inflate failed or stream ended prematurely")
	}

	return out, nil
}
