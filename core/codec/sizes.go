package codec

const (
	aesBlockSize = 16
	base64Group  = 3
	base64Quad   = 4
)

// ExpectedCipherLength returns the exact AES-CBC ciphertext length for a
// plaintext of plainLen bytes. PKCS#7 always appends at least one padding
// byte, so a full extra block is added when plainLen is block-aligned.
func ExpectedCipherLength(plainLen int) int {
	return ((plainLen / aesBlockSize) + 1) * aesBlockSize
}

// ExpectedBase64Length returns the exact Base64 text length for rawLen input
// bytes, padding included.
func ExpectedBase64Length(rawLen int) int {
	return ((rawLen + base64Group - 1) / base64Group) * base64Quad
}
