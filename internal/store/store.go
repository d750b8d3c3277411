package store

import (
	"context"

	"github.com/feral-file/ff-trigger-ledger/internal/store/schema"
)

// CreditInput describes a balance increment
type CreditInput struct {
	BlockIndex int64
	Address    string
	Asset      string
	Quantity   int64
	Action     string
	Event      string
}

// DebitInput describes a balance decrement
type DebitInput struct {
	BlockIndex int64
	Address    string
	Asset      string
	Quantity   int64
	Action     string
	Event      string
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	CursorStore

	// WithTx runs fn inside a database transaction. Every write made through the Store
	// handed to fn is rolled back if fn returns an error or panics.
	WithTx(ctx context.Context, fn func(tx Store) error) error
	// Migrate creates or updates the tables backing the given models
	Migrate(ctx context.Context, models ...interface{}) error
	// CountByTxHash counts the rows of table whose tx_hash equals txHash
	CountByTxHash(ctx context.Context, table string, txHash string) (int64, error)

	// CreateTrigger appends a trigger outcome row
	CreateTrigger(ctx context.Context, trigger *schema.Trigger) error
	// GetTriggerByTxHash retrieves the outcome row of a transaction, nil if not processed
	GetTriggerByTxHash(ctx context.Context, txHash string) (*schema.Trigger, error)
	// GetTriggersByBlock retrieves the outcome rows of a block in transaction order
	GetTriggersByBlock(ctx context.Context, blockIndex int64) ([]schema.Trigger, error)
	// GetTriggersBySource retrieves the outcome rows sent by an address in transaction order
	GetTriggersBySource(ctx context.Context, source string, limit, offset int) ([]schema.Trigger, error)

	// CreateIssuance appends an issuance row
	CreateIssuance(ctx context.Context, issuance *schema.Issuance) error
	// FindIssuanceByTxHash retrieves the valid issuance created by a transaction, nil if none
	FindIssuanceByTxHash(ctx context.Context, txHash string) (*schema.Issuance, error)

	// CreateAssetMetadata appends a metadata history row
	CreateAssetMetadata(ctx context.Context, metadata *schema.AssetMetadata) error
	// GetLatestAssetMetadata retrieves the newest row for (asset, key), nil if the key was never written
	GetLatestAssetMetadata(ctx context.Context, asset string, key string) (*schema.AssetMetadata, error)
	// IsAssetMetadataLocked reports whether any row for (asset, key) is locked
	IsAssetMetadataLocked(ctx context.Context, asset string, key string) (bool, error)
	// GetAssetMetadataHistory retrieves every row for (asset, key), oldest first
	GetAssetMetadataHistory(ctx context.Context, asset string, key string) ([]schema.AssetMetadata, error)
	// GetCurrentAssetMetadata retrieves the newest row of every key of an asset, ordered by key
	GetCurrentAssetMetadata(ctx context.Context, asset string) ([]schema.AssetMetadata, error)

	// CreateAssetGroup appends an asset group claim
	CreateAssetGroup(ctx context.Context, group *schema.AssetGroup) error
	// GetValidAssetGroups retrieves the valid claims on a group, oldest first
	GetValidAssetGroups(ctx context.Context, assetGroup string) ([]schema.AssetGroup, error)

	// GetBalance retrieves the balance of an address in an asset, nil if it never held any
	GetBalance(ctx context.Context, address string, asset string) (*schema.Balance, error)
	// Credit increments a balance and records the reason
	Credit(ctx context.Context, input CreditInput) error
	// Debit decrements a balance and records the reason; it fails with domain.ErrInsufficientBalance
	// instead of going below zero
	Debit(ctx context.Context, input DebitInput) error
}

// SharedModels returns the models of the tables the pipeline reads and writes
// regardless of which receivers are registered
func SharedModels() []interface{} {
	return []interface{}{
		&schema.Trigger{},
		&schema.Issuance{},
		&schema.AssetGroup{},
		&schema.Balance{},
		&schema.Debit{},
		&schema.Credit{},
		&schema.KeyValueStore{},
	}
}

// Initialise creates or updates the shared tables. It is idempotent.
func Initialise(ctx context.Context, st Store) error {
	return st.Migrate(ctx, SharedModels()...)
}
