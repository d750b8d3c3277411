package codec

import (
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	// TriggerMessageID is the message type id of trigger messages
	TriggerMessageID uint32 = 120

	// TargetHashLength is the size of the fixed target hash field
	TargetHashLength = 32
)

// TargetHash is the 32-byte identifier of the entity a trigger acts upon
type TargetHash [TargetHashLength]byte

// String returns the lowercase hex form used as the lookup key in the store
func (h TargetHash) String() string {
	return hex.EncodeToString(h[:])
}

// ParseTargetHash decodes a 64 character hex string
func ParseTargetHash(s string) (TargetHash, error) {
	var h TargetHash
	b, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return h, fmt.Errorf("invalid target hash: %w", err)
	}
	if len(b) != TargetHashLength {
		return h, fmt.Errorf("invalid target hash length: %d", len(b))
	}
	copy(h[:], b)
	return h, nil
}

// TriggerMessage is the decoded body of a trigger message
type TriggerMessage struct {
	TargetHash TargetHash
	Payload    []byte // opaque, possibly empty
}

// UnpackTrigger decodes a trigger body (message type prefix already removed).
// The first 32 bytes are the target hash, everything after them is the payload.
func UnpackTrigger(data []byte) (TriggerMessage, error) {
	var m TriggerMessage
	if len(data) < TargetHashLength {
		return m, tooShort("trigger body has %d bytes, need at least %d", len(data), TargetHashLength)
	}

	copy(m.TargetHash[:], data[:TargetHashLength])
	m.Payload = make([]byte, len(data)-TargetHashLength)
	copy(m.Payload, data[TargetHashLength:])
	return m, nil
}

// PackTrigger encodes a trigger body, the inverse of UnpackTrigger
func PackTrigger(target TargetHash, payload []byte) []byte {
	data := make([]byte, 0, TargetHashLength+len(payload))
	data = append(data, target[:]...)
	return append(data, payload...)
}

// Pack encodes the message body
func (m TriggerMessage) Pack() []byte {
	return PackTrigger(m.TargetHash, m.Payload)
}
