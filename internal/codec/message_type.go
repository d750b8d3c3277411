package codec

import (
	"encoding/binary"
)

const longTypeLength = 4

// PackMessageType encodes a message type id.
// With short encoding enabled, ids in 1..255 take a single byte; everything
// else is a 4-byte big-endian integer.
func PackMessageType(id uint32, short bool) []byte {
	if short && id > 0 && id < 256 {
		return []byte{byte(id)}
	}
	b := make([]byte, longTypeLength)
	binary.BigEndian.PutUint32(b, id)
	return b
}

// UnpackMessageType splits a message into its type id and body.
// A leading zero byte always selects the 4-byte form, so both encodings
// can be read when short encoding is enabled.
func UnpackMessageType(data []byte, short bool) (uint32, []byte, error) {
	if len(data) == 0 {
		return 0, nil, tooShort("empty message")
	}
	if short && data[0] != 0 {
		return uint32(data[0]), data[1:], nil
	}
	if len(data) < longTypeLength {
		return 0, nil, tooShort("message type needs %d bytes, got %d", longTypeLength, len(data))
	}
	return binary.BigEndian.Uint32(data[:longTypeLength]), data[longTypeLength:], nil
}
