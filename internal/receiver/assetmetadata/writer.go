package assetmetadata

import (
	"context"
	"fmt"

	"github.com/feral-file/ff-trigger-ledger/internal/codec"
	"github.com/feral-file/ff-trigger-ledger/internal/domain"
	"github.com/feral-file/ff-trigger-ledger/internal/store"
	"github.com/feral-file/ff-trigger-ledger/internal/store/schema"
)

// writer runs one opcode for one asset. Without a transaction it only checks.
type writer struct {
	st    store.Store
	asset string
	tx    *domain.Transaction

	// next message_index within tx
	next int
}

func (w *writer) dryRun() bool {
	return w.tx == nil
}

func (w *writer) apply(ctx context.Context, payload codec.MetadataPayload) (domain.Problems, error) {
	var problems domain.Problems

	if !payload.Opcode.Valid() {
		return problems.Add(problemUnknownOpcode(payload.Opcode)), nil
	}
	if len(payload.Entries) == 0 {
		return problems.Add(ProblemEmptyDocument), nil
	}
	if duplicates := duplicateKeyProblems(payload.Keys()); !duplicates.Empty() {
		return duplicates, nil
	}

	switch payload.Opcode {
	case codec.OpcodeStore:
		return w.storeEntries(ctx, payload.Entries)
	case codec.OpcodeLock:
		return w.lock(ctx, payload.Keys())
	case codec.OpcodeStoreLock:
		storeProblems, err := w.storeEntries(ctx, payload.Entries)
		if err != nil {
			return nil, err
		}
		problems = problems.Add(storeProblems...)

		lockProblems, err := w.lock(ctx, payload.Keys())
		if err != nil {
			return nil, err
		}
		return problems.Add(lockProblems...), nil
	case codec.OpcodeDelete:
		return w.delete(ctx, payload.Keys())
	}

	return problems, nil
}

// duplicateKeyProblems reports every key named more than once, so no key is written twice by one payload
func duplicateKeyProblems(keys []string) domain.Problems {
	var problems domain.Problems
	seen := make(map[string]int, len(keys))
	for _, key := range keys {
		seen[key]++
		if seen[key] == 2 {
			problems = problems.Add(problemDuplicateKey(key))
		}
	}
	return problems
}

func (w *writer) lockedProblems(ctx context.Context, keys []string) (domain.Problems, error) {
	var problems domain.Problems
	for _, key := range keys {
		locked, err := w.st.IsAssetMetadataLocked(ctx, w.asset, key)
		if err != nil {
			return nil, err
		}
		if locked {
			problems = problems.Add(problemLocked(key, w.asset))
		}
	}
	return problems, nil
}

func (w *writer) storeEntries(ctx context.Context, entries []codec.MetadataEntry) (domain.Problems, error) {
	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Key)
	}

	problems, err := w.lockedProblems(ctx, keys)
	if err != nil {
		return nil, err
	}
	if !problems.Empty() || w.dryRun() {
		return problems, nil
	}

	for _, e := range entries {
		if err := w.append(ctx, e.Key, codec.EncodeValue(e.Value), false); err != nil {
			return nil, err
		}
	}
	return problems, nil
}

// lock freezes the latest value of each key
func (w *writer) lock(ctx context.Context, keys []string) (domain.Problems, error) {
	problems, err := w.lockedProblems(ctx, keys)
	if err != nil {
		return nil, err
	}
	if !problems.Empty() || w.dryRun() {
		return problems, nil
	}

	for _, key := range keys {
		latest, err := w.st.GetLatestAssetMetadata(ctx, w.asset, key)
		if err != nil {
			return nil, err
		}

		var payload []byte
		if latest != nil {
			payload = latest.Payload
		}
		if err := w.append(ctx, key, payload, true); err != nil {
			return nil, err
		}
	}
	return problems, nil
}

// delete writes a tombstone for each key
func (w *writer) delete(ctx context.Context, keys []string) (domain.Problems, error) {
	problems, err := w.lockedProblems(ctx, keys)
	if err != nil {
		return nil, err
	}
	if !problems.Empty() || w.dryRun() {
		return problems, nil
	}

	for _, key := range keys {
		if err := w.append(ctx, key, nil, false); err != nil {
			return nil, err
		}
	}
	return problems, nil
}

func (w *writer) append(ctx context.Context, key string, payload []byte, locked bool) error {
	row := &schema.AssetMetadata{
		TxIndex:      w.tx.TxIndex,
		MessageIndex: w.next,
		TxHash:       w.tx.TxHash,
		BlockIndex:   w.tx.BlockIndex,
		Asset:        w.asset,
		Key:          key,
		Payload:      payload,
		Locked:       locked,
	}
	if err := w.st.CreateAssetMetadata(ctx, row); err != nil {
		return fmt.Errorf("failed to append %q: %w", key, err)
	}
	w.next++
	return nil
}
