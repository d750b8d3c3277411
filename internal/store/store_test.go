package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-trigger-ledger/internal/domain"
	"github.com/feral-file/ff-trigger-ledger/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

func stringPtr(s string) *string {
	return &s
}

func buildTestTrigger(txIndex int64, txHash string, blockIndex int64, source string) *schema.Trigger {
	return &schema.Trigger{
		TxIndex:    txIndex,
		TxHash:     txHash,
		BlockIndex: blockIndex,
		Source:     source,
		TargetHash: stringPtr("aa11223344556677889900aabbccddeeff00112233445566778899aabbccddee"),
		Payload:    []byte{0x01, 0x05, 0x00, 0x00, 0x00, 0x00},
		Status:     domain.StatusValid,
	}
}

func buildTestMetadata(txIndex int64, messageIndex int, asset, key string, payload []byte, locked bool) *schema.AssetMetadata {
	return &schema.AssetMetadata{
		TxIndex:      txIndex,
		MessageIndex: messageIndex,
		TxHash:       fmt.Sprintf("metadatatx%d", txIndex),
		BlockIndex:   txIndex,
		Asset:        asset,
		Key:          key,
		Payload:      payload,
		Locked:       locked,
	}
}

// =============================================================================
// Test: Triggers
// =============================================================================

func testTriggers(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("create and get by tx hash", func(t *testing.T) {
		trigger := buildTestTrigger(100, "txhash100", 10, "addr1")
		require.NoError(t, store.CreateTrigger(ctx, trigger))

		got, err := store.GetTriggerByTxHash(ctx, "txhash100")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, int64(100), got.TxIndex)
		assert.Equal(t, "addr1", got.Source)
		assert.Equal(t, domain.StatusValid, got.Status)
		assert.Equal(t, trigger.Payload, got.Payload)
		require.NotNil(t, got.TargetHash)
		assert.Equal(t, *trigger.TargetHash, *got.TargetHash)
	})

	t.Run("unknown tx hash returns nil", func(t *testing.T) {
		got, err := store.GetTriggerByTxHash(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("unpack failure row keeps nil target and payload", func(t *testing.T) {
		trigger := &schema.Trigger{
			TxIndex:    101,
			TxHash:     "txhash101",
			BlockIndex: 10,
			Source:     "addr1",
			Status:     domain.StatusCouldNotUnpack,
		}
		require.NoError(t, store.CreateTrigger(ctx, trigger))

		got, err := store.GetTriggerByTxHash(ctx, "txhash101")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Nil(t, got.TargetHash)
		assert.Nil(t, got.Payload)
		assert.Equal(t, domain.StatusCouldNotUnpack, got.Status)
	})

	t.Run("duplicate tx hash is rejected", func(t *testing.T) {
		require.NoError(t, store.CreateTrigger(ctx, buildTestTrigger(102, "txhash102", 11, "addr2")))

		// savepoint keeps the surrounding test transaction usable
		err := store.WithTx(ctx, func(tx Store) error {
			return tx.CreateTrigger(ctx, buildTestTrigger(103, "txhash102", 11, "addr2"))
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrTriggerExists)
	})

	t.Run("by block and by source in tx order", func(t *testing.T) {
		require.NoError(t, store.CreateTrigger(ctx, buildTestTrigger(202, "txhash202", 20, "addr3")))
		require.NoError(t, store.CreateTrigger(ctx, buildTestTrigger(201, "txhash201", 20, "addr3")))
		require.NoError(t, store.CreateTrigger(ctx, buildTestTrigger(210, "txhash210", 21, "addr3")))

		byBlock, err := store.GetTriggersByBlock(ctx, 20)
		require.NoError(t, err)
		require.Len(t, byBlock, 2)
		assert.Equal(t, int64(201), byBlock[0].TxIndex)
		assert.Equal(t, int64(202), byBlock[1].TxIndex)

		bySource, err := store.GetTriggersBySource(ctx, "addr3", 0, 0)
		require.NoError(t, err)
		require.Len(t, bySource, 3)
		assert.Equal(t, int64(210), bySource[2].TxIndex)

		page, err := store.GetTriggersBySource(ctx, "addr3", 1, 1)
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.Equal(t, int64(202), page[0].TxIndex)
	})

	t.Run("count by tx hash", func(t *testing.T) {
		count, err := store.CountByTxHash(ctx, "triggers", "txhash100")
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		count, err = store.CountByTxHash(ctx, "triggers", "missing")
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})
}

// =============================================================================
// Test: Issuances
// =============================================================================

func testIssuances(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("find valid issuance", func(t *testing.T) {
		require.NoError(t, store.CreateIssuance(ctx, &schema.Issuance{
			TxIndex:    1,
			TxHash:     "issuance1",
			BlockIndex: 1,
			Asset:      "ASSETONE",
			AssetGroup: stringPtr("group1"),
			Source:     "issuer",
			Quantity:   1,
			Status:     schema.IssuanceStatusValid,
		}))

		got, err := store.FindIssuanceByTxHash(ctx, "issuance1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "ASSETONE", got.Asset)
		require.NotNil(t, got.AssetGroup)
		assert.Equal(t, "group1", *got.AssetGroup)
	})

	t.Run("invalid issuance is ignored", func(t *testing.T) {
		require.NoError(t, store.CreateIssuance(ctx, &schema.Issuance{
			TxIndex:    2,
			TxHash:     "issuance2",
			BlockIndex: 1,
			Asset:      "ASSETTWO",
			Source:     "issuer",
			Status:     "invalid: insufficient funds",
		}))

		got, err := store.FindIssuanceByTxHash(ctx, "issuance2")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("count by tx hash on issuances", func(t *testing.T) {
		count, err := store.CountByTxHash(ctx, "issuances", "issuance1")
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}

// =============================================================================
// Test: Asset metadata
// =============================================================================

func testAssetMetadata(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("latest row wins", func(t *testing.T) {
		require.NoError(t, store.CreateAssetMetadata(ctx, buildTestMetadata(10, 0, "A1", "name", []byte{0x02, 0x01}, false)))
		require.NoError(t, store.CreateAssetMetadata(ctx, buildTestMetadata(12, 0, "A1", "name", []byte{0x02, 0x03}, false)))
		require.NoError(t, store.CreateAssetMetadata(ctx, buildTestMetadata(11, 0, "A1", "name", []byte{0x02, 0x02}, false)))

		latest, err := store.GetLatestAssetMetadata(ctx, "A1", "name")
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, int64(12), latest.TxIndex)
		assert.Equal(t, []byte{0x02, 0x03}, latest.Payload)

		history, err := store.GetAssetMetadataHistory(ctx, "A1", "name")
		require.NoError(t, err)
		require.Len(t, history, 3)
		assert.Equal(t, int64(10), history[0].TxIndex)
		assert.Equal(t, int64(12), history[2].TxIndex)
	})

	t.Run("message index orders rows of one transaction", func(t *testing.T) {
		first := buildTestMetadata(20, 0, "A2", "k", []byte{0x10, 0x01, 0x00, 0x00, 0x00}, false)
		second := buildTestMetadata(20, 1, "A2", "k", []byte{0x10, 0x01, 0x00, 0x00, 0x00}, true)
		require.NoError(t, store.CreateAssetMetadata(ctx, first))
		require.NoError(t, store.CreateAssetMetadata(ctx, second))

		latest, err := store.GetLatestAssetMetadata(ctx, "A2", "k")
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, 1, latest.MessageIndex)
		assert.True(t, latest.Locked)
	})

	t.Run("missing key returns nil", func(t *testing.T) {
		latest, err := store.GetLatestAssetMetadata(ctx, "A1", "missing")
		require.NoError(t, err)
		assert.Nil(t, latest)
	})

	t.Run("lock state", func(t *testing.T) {
		locked, err := store.IsAssetMetadataLocked(ctx, "A1", "name")
		require.NoError(t, err)
		assert.False(t, locked)

		locked, err = store.IsAssetMetadataLocked(ctx, "A2", "k")
		require.NoError(t, err)
		assert.True(t, locked)

		locked, err = store.IsAssetMetadataLocked(ctx, "A2", "other")
		require.NoError(t, err)
		assert.False(t, locked)
	})

	t.Run("current state lists newest row per key", func(t *testing.T) {
		require.NoError(t, store.CreateAssetMetadata(ctx, buildTestMetadata(30, 0, "A3", "b", []byte{0x08, 0x01}, false)))
		require.NoError(t, store.CreateAssetMetadata(ctx, buildTestMetadata(31, 0, "A3", "a", []byte{0x08, 0x00}, false)))
		require.NoError(t, store.CreateAssetMetadata(ctx, buildTestMetadata(32, 0, "A3", "b", nil, false)))

		current, err := store.GetCurrentAssetMetadata(ctx, "A3")
		require.NoError(t, err)
		require.Len(t, current, 2)
		assert.Equal(t, "a", current[0].Key)
		assert.Equal(t, "b", current[1].Key)
		assert.Equal(t, int64(32), current[1].TxIndex)
		assert.Nil(t, current[1].Payload)
	})
}

// =============================================================================
// Test: Asset groups
// =============================================================================

func testAssetGroups(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("valid claims in tx order", func(t *testing.T) {
		for _, g := range []schema.AssetGroup{
			{TxIndex: 5, TxHash: "g5", BlockIndex: 1, AssetGroup: "art", Owner: "addrB", Status: schema.AssetGroupStatusValid},
			{TxIndex: 3, TxHash: "g3", BlockIndex: 1, AssetGroup: "art", Owner: "addrA", Status: schema.AssetGroupStatusValid},
			{TxIndex: 4, TxHash: "g4", BlockIndex: 1, AssetGroup: "art", Owner: "addrC", Status: "invalid: asset group owned by another address"},
		} {
			g := g
			require.NoError(t, store.CreateAssetGroup(ctx, &g))
		}

		groups, err := store.GetValidAssetGroups(ctx, "art")
		require.NoError(t, err)
		require.Len(t, groups, 2)
		assert.Equal(t, "addrA", groups[0].Owner)
		assert.Equal(t, "addrB", groups[1].Owner)
	})

	t.Run("unknown group has no claims", func(t *testing.T) {
		groups, err := store.GetValidAssetGroups(ctx, "nothing")
		require.NoError(t, err)
		assert.Empty(t, groups)
	})
}

// =============================================================================
// Test: Balances
// =============================================================================

func testBalances(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("credit creates and increments", func(t *testing.T) {
		require.NoError(t, store.Credit(ctx, CreditInput{BlockIndex: 1, Address: "rich", Asset: "XCP", Quantity: 1000, Action: "issuance", Event: "e1"}))
		require.NoError(t, store.Credit(ctx, CreditInput{BlockIndex: 2, Address: "rich", Asset: "XCP", Quantity: 500, Action: "send", Event: "e2"}))

		balance, err := store.GetBalance(ctx, "rich", "XCP")
		require.NoError(t, err)
		require.NotNil(t, balance)
		assert.Equal(t, int64(1500), balance.Quantity)
	})

	t.Run("debit decrements", func(t *testing.T) {
		require.NoError(t, store.Debit(ctx, DebitInput{BlockIndex: 3, Address: "rich", Asset: "XCP", Quantity: 1500, Action: "trigger fee", Event: "e3"}))

		balance, err := store.GetBalance(ctx, "rich", "XCP")
		require.NoError(t, err)
		require.NotNil(t, balance)
		assert.Equal(t, int64(0), balance.Quantity)
	})

	t.Run("debit never goes below zero", func(t *testing.T) {
		err := store.Debit(ctx, DebitInput{BlockIndex: 4, Address: "rich", Asset: "XCP", Quantity: 1, Action: "trigger fee", Event: "e4"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

		err = store.Debit(ctx, DebitInput{BlockIndex: 4, Address: "nobody", Asset: "XCP", Quantity: 1, Action: "trigger fee", Event: "e5"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	})

	t.Run("negative quantities are rejected", func(t *testing.T) {
		err := store.Debit(ctx, DebitInput{Address: "rich", Asset: "XCP", Quantity: -1})
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

		err = store.Credit(ctx, CreditInput{Address: "rich", Asset: "XCP", Quantity: -1})
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	})

	t.Run("credit overflow is rejected", func(t *testing.T) {
		require.NoError(t, store.Credit(ctx, CreditInput{Address: "whale", Asset: "XCP", Quantity: 9223372036854775807}))

		err := store.Credit(ctx, CreditInput{Address: "whale", Asset: "XCP", Quantity: 1})
		assert.ErrorIs(t, err, domain.ErrIntegerOverflow)

		balance, err := store.GetBalance(ctx, "whale", "XCP")
		require.NoError(t, err)
		require.NotNil(t, balance)
		assert.Equal(t, int64(9223372036854775807), balance.Quantity)
	})

	t.Run("unknown balance returns nil", func(t *testing.T) {
		balance, err := store.GetBalance(ctx, "nobody", "XCP")
		require.NoError(t, err)
		assert.Nil(t, balance)
	})
}

// =============================================================================
// Test: Transactions and cursors
// =============================================================================

func testWithTx(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("error rolls back every write", func(t *testing.T) {
		err := store.WithTx(ctx, func(tx Store) error {
			if err := tx.CreateTrigger(ctx, buildTestTrigger(300, "txhash300", 30, "addr")); err != nil {
				return err
			}
			return tx.Debit(ctx, DebitInput{Address: "broke", Asset: "XCP", Quantity: 100000})
		})
		require.ErrorIs(t, err, domain.ErrInsufficientBalance)

		got, err := store.GetTriggerByTxHash(ctx, "txhash300")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("success commits every write", func(t *testing.T) {
		err := store.WithTx(ctx, func(tx Store) error {
			return tx.CreateTrigger(ctx, buildTestTrigger(301, "txhash301", 30, "addr"))
		})
		require.NoError(t, err)

		got, err := store.GetTriggerByTxHash(ctx, "txhash301")
		require.NoError(t, err)
		assert.NotNil(t, got)
	})
}

func testTxCursor(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("get non-existent cursor", func(t *testing.T) {
		_, ok, err := store.GetTxCursor(ctx, "nonexistent")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("set and update cursor", func(t *testing.T) {
		require.NoError(t, store.SetTxCursor(ctx, "trigger", 100))
		require.NoError(t, store.SetTxCursor(ctx, "trigger", 200))

		cursor, ok, err := store.GetTxCursor(ctx, "trigger")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, int64(200), cursor)
	})
}

func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"Triggers", testTriggers},
		{"Issuances", testIssuances},
		{"AssetMetadata", testAssetMetadata},
		{"AssetGroups", testAssetGroups},
		{"Balances", testBalances},
		{"WithTx", testWithTx},
		{"TxCursor", testTxCursor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
