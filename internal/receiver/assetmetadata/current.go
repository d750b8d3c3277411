package assetmetadata

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/feral-file/ff-trigger-ledger/internal/codec"
	"github.com/feral-file/ff-trigger-ledger/internal/store"
)

// Entry is the current state of one metadata key
type Entry struct {
	Key string
	// Value is nil when the key was locked before any value was stored
	Value   *bson.RawValue
	Locked  bool
	TxIndex int64
}

// Current derives the current metadata of an asset from its history.
// Deleted keys are omitted unless they were locked afterwards.
func Current(ctx context.Context, st store.Store, asset string) ([]Entry, error) {
	rows, err := st.GetCurrentAssetMetadata(ctx, asset)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(rows))
	for _, row := range rows {
		if row.Payload == nil && !row.Locked {
			continue
		}

		entry := Entry{Key: row.Key, Locked: row.Locked, TxIndex: row.TxIndex}
		if row.Payload != nil {
			v, err := codec.DecodeValue(row.Payload)
			if err != nil {
				return nil, fmt.Errorf("failed to decode value of %q: %w", row.Key, err)
			}
			entry.Value = &v
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
