package errors

// Per-kind constructors providing better semantic meaning and consistency

// Key reports invalid or failed-validation key material.
func Key(format string, args ...any) *Error {
	return New(KindKey, format, args...)
}

// Format reports input that cannot be tokenized into the expected fields.
func Format(format string, args ...any) *Error {
	return New(KindFormat, format, args...)
}

// Decode reports a Base64 or Hex decoding failure.
func Decode(format string, args ...any) *Error {
	return New(KindDecode, format, args...)
}

// Crypto reports a failed cipher operation.
func Crypto(format string, args ...any) *Error {
	return New(KindCrypto, format, args...)
}

// Compression reports a compression stream failure.
func Compression(format string, args ...any) *Error {
	return New(KindCompression, format, args...)
}

// Argument reports an invalid argument.
func Argument(format string, args ...any) *Error {
	return New(KindArgument, format, args...)
}

// KeyWrap wraps err as key-material failure context.
func KeyWrap(err error, format string, args ...any) *Error {
	return Wrap(err, KindKey, format, args...)
}

// DecodeWrap wraps err as a decoding failure.
func DecodeWrap(err error, format string, args ...any) *Error {
	return Wrap(err, KindDecode, format, args...)
}

// CryptoWrap wraps err as a cipher-operation failure.
func CryptoWrap(err error, format string, args ...any) *Error {
	return Wrap(err, KindCrypto, format, args...)
}

// CompressionWrap wraps err as a compression failure.
func CompressionWrap(err error, format string, args ...any) *Error {
	return Wrap(err, KindCompression, format, args...)
}
