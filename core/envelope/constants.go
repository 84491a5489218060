package envelope

// Wire format parameters
const (
	// PacketDelimiter terminates a framed packet. A stream of packets is the
	// plain concatenation of framed packets split on this terminator.
	PacketDelimiter = "\r\n\r\n"

	// PacketDelimiterSize is the length of PacketDelimiter in bytes.
	PacketDelimiterSize = len(PacketDelimiter)

	// DataDelimiter separates the IV, client identifier and ciphertext fields.
	DataDelimiter = ':'

	// IVHexLength is the fixed width of the hex-encoded IV field. The framing
	// discriminator depends on this width being exact.
	IVHexLength = 32
)
