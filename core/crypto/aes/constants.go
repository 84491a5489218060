package aes

// Cipher parameters
const (
	// BlockSize is the AES block size in bytes, which is also the IV size.
	BlockSize = 16

	// KeySize128, KeySize192 and KeySize256 are the accepted raw key lengths
	// in bytes. Any other length is rejected.
	KeySize128 = 16
	KeySize192 = 24
	KeySize256 = 32
)

// ValidKeySize reports whether n is an accepted raw key length.
func ValidKeySize(n int) bool {
	return n == KeySize128 || n == KeySize192 || n == KeySize256
}
