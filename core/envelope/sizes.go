package envelope

import (
	"github.com/kochabx/ripe/core/codec"
)

// ExpectedPacketSize returns the exact size of the packet BuildPacket
// produces for a plaintext of plainLen bytes and a client identifier of
// clientIDLen bytes. The CBC padding scheme is deterministic, so callers can
// use this to pre-size buffers; it is not an upper bound, it is the size.
func ExpectedPacketSize(plainLen, clientIDLen int) int {
	size := IVHexLength + 1 // IV field and its delimiter
	if clientIDLen > 0 {
		size += clientIDLen + 1
	}
	size += codec.ExpectedBase64Length(codec.ExpectedCipherLength(plainLen))
	return size + PacketDelimiterSize
}
