package codec

import (
	"encoding/binary"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Opcode selects the asset metadata operation carried by a trigger payload
type Opcode byte

const (
	OpcodeStore     Opcode = 1
	OpcodeLock      Opcode = 2
	OpcodeStoreLock Opcode = 3
	OpcodeDelete    Opcode = 4
)

// Valid reports whether the opcode is one of the known operations
func (o Opcode) Valid() bool {
	return o >= OpcodeStore && o <= OpcodeDelete
}

func (o Opcode) String() string {
	switch o {
	case OpcodeStore:
		return "store"
	case OpcodeLock:
		return "lock"
	case OpcodeStoreLock:
		return "storelock"
	case OpcodeDelete:
		return "delete"
	default:
		return fmt.Sprintf("opcode(%d)", byte(o))
	}
}

// ParseOpcode maps an operation name to its opcode
func ParseOpcode(name string) (Opcode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "store":
		return OpcodeStore, nil
	case "lock":
		return OpcodeLock, nil
	case "storelock", "store_lock", "store-lock":
		return OpcodeStoreLock, nil
	case "delete":
		return OpcodeDelete, nil
	default:
		return 0, fmt.Errorf("unknown metadata operation: %q", name)
	}
}

// MetadataEntry is one key of a decoded metadata document, in document order
type MetadataEntry struct {
	Key   string
	Value bson.RawValue
}

// MetadataPayload is a decoded asset metadata payload
type MetadataPayload struct {
	Opcode  Opcode
	Entries []MetadataEntry
}

// Keys returns the document keys in order
func (p MetadataPayload) Keys() []string {
	keys := make([]string, 0, len(p.Entries))
	for _, e := range p.Entries {
		keys = append(keys, e.Key)
	}
	return keys
}

const minDocumentLength = 5 // int32 length + terminating zero

// UnpackMetadata decodes an opcode byte followed by a BSON document.
// Unknown opcodes are returned as-is; callers decide how to report them.
func UnpackMetadata(data []byte) (MetadataPayload, error) {
	var p MetadataPayload
	if len(data) < 1 {
		return p, tooShort("metadata payload is empty")
	}
	p.Opcode = Opcode(data[0])

	doc := data[1:]
	if len(doc) < minDocumentLength {
		return p, tooShort("metadata document has %d bytes", len(doc))
	}
	if declared := binary.LittleEndian.Uint32(doc[:4]); int64(declared) != int64(len(doc)) {
		return p, malformed("metadata document declares %d bytes, has %d", declared, len(doc))
	}

	raw := bson.Raw(doc)
	if err := raw.Validate(); err != nil {
		return p, malformed("invalid metadata document: %v", err)
	}
	elements, err := raw.Elements()
	if err != nil {
		return p, malformed("invalid metadata document: %v", err)
	}

	p.Entries = make([]MetadataEntry, 0, len(elements))
	for _, el := range elements {
		p.Entries = append(p.Entries, MetadataEntry{Key: el.Key(), Value: el.Value()})
	}
	return p, nil
}

// PackMetadata encodes an opcode and an already serialized BSON document
func PackMetadata(op Opcode, document []byte) []byte {
	data := make([]byte, 0, 1+len(document))
	data = append(data, byte(op))
	return append(data, document...)
}

// ComposeMetadata serializes document as BSON and prefixes the opcode.
// Use bson.D to keep key order stable.
func ComposeMetadata(op Opcode, document interface{}) ([]byte, error) {
	doc, err := bson.Marshal(document)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata document: %w", err)
	}
	return PackMetadata(op, doc), nil
}

// ComposeMetadataJSON converts a JSON object into BSON, keeping key order, and prefixes the opcode
func ComposeMetadataJSON(op Opcode, jsonDocument []byte) ([]byte, error) {
	var doc bson.D
	if err := bson.UnmarshalExtJSON(jsonDocument, false, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse metadata document: %w", err)
	}
	return ComposeMetadata(op, doc)
}

// EncodeValue serializes a single metadata value for storage: the BSON type byte followed by the value bytes
func EncodeValue(v bson.RawValue) []byte {
	b := make([]byte, 0, 1+len(v.Value))
	b = append(b, byte(v.Type))
	return append(b, v.Value...)
}

// DecodeValue is the inverse of EncodeValue
func DecodeValue(b []byte) (bson.RawValue, error) {
	if len(b) < 1 {
		return bson.RawValue{}, tooShort("stored value is empty")
	}
	v := bson.RawValue{Type: bsontype.Type(b[0]), Value: b[1:]}
	if err := v.Validate(); err != nil {
		return bson.RawValue{}, malformed("invalid stored value: %v", err)
	}
	return v, nil
}
