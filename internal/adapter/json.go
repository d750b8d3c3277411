package adapter

import (
	"bytes"
	"encoding/json"
	"errors"
)

// JSON encodes and decodes transaction envelopes and command output
//
//go:generate mockgen -source=json.go -destination=../mocks/json.go -package=mocks -mock_names=JSON=MockJSON
type JSON interface {
	// Marshal encodes v without HTML escaping
	Marshal(v interface{}) ([]byte, error)
	// Unmarshal decodes exactly one JSON value; trailing data is an error
	Unmarshal(data []byte, v interface{}) error
}

// RealJSON implements JSON with encoding/json
type RealJSON struct{}

// NewJSON creates a new real JSON implementation
func NewJSON() JSON {
	return &RealJSON{}
}

func (j *RealJSON) Marshal(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func (j *RealJSON) Unmarshal(data []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("unexpected data after JSON value")
	}
	return nil
}
