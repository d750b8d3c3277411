package assetmetadata

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/feral-file/ff-trigger-ledger/internal/codec"
	"github.com/feral-file/ff-trigger-ledger/internal/store"
)

// Compose builds an asset metadata payload.
//
// A hex payload must already be an opcode byte followed by a BSON document.
// A text payload has the form "<operation>:<json object>", e.g. `store:{"color":"red"}`.
func (k *kind) Compose(ctx context.Context, st store.Store, source string, targetHash string, payload string, payloadIsHex bool) ([]byte, error) {
	var data []byte
	if payloadIsHex {
		b, err := hex.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to convert the payload: %w", err)
		}
		data = b
	} else {
		op, document, found := strings.Cut(payload, ":")
		if !found {
			return nil, errors.New("metadata payload must look like <operation>:<json object>")
		}
		opcode, err := codec.ParseOpcode(op)
		if err != nil {
			return nil, err
		}
		data, err = codec.ComposeMetadataJSON(opcode, []byte(document))
		if err != nil {
			return nil, err
		}
	}

	decoded, err := codec.UnpackMetadata(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ProblemParsePayload, err)
	}
	if !decoded.Opcode.Valid() {
		return nil, errors.New(problemUnknownOpcode(decoded.Opcode))
	}
	if len(decoded.Entries) == 0 {
		return nil, errors.New(ProblemEmptyDocument)
	}
	if duplicates := duplicateKeyProblems(decoded.Keys()); !duplicates.Empty() {
		return nil, errors.New(duplicates.Join())
	}

	return data, nil
}
