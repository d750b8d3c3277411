package receiver

import (
	"context"

	"github.com/feral-file/ff-trigger-ledger/internal/domain"
	"github.com/feral-file/ff-trigger-ledger/internal/store"
)

// Kind is a target type that trigger transactions can address.
// Each kind owns exactly one target table; a target hash identifies a row of that table by tx_hash.
//
//go:generate mockgen -source=receiver.go -destination=../mocks/receiver.go -package=mocks -mock_names=Kind=MockReceiverKind,Receiver=MockReceiver
type Kind interface {
	// Name identifies the kind in logs and metrics
	Name() string
	// TargetTableName is the table searched for a matching tx_hash
	TargetTableName() string
	// Initialise creates the tables the kind writes to. It is idempotent.
	Initialise(ctx context.Context, st store.Store) error
	// New binds a receiver to one trigger
	New(st store.Store, source string, targetHash string, payload []byte) Receiver
	// Compose builds a trigger payload for this kind without touching storage
	Compose(ctx context.Context, st store.Store, source string, targetHash string, payload string, payloadIsHex bool) ([]byte, error)
}

// Receiver applies one trigger to its target
type Receiver interface {
	// Validate checks the trigger against current state and never writes.
	// A non-nil error means the state could not be read, not that the trigger is invalid.
	Validate(ctx context.Context) (domain.Problems, error)
	// Execute applies the trigger inside a scoped database transaction.
	// Every write is rolled back when problems are returned.
	Execute(ctx context.Context, tx domain.Transaction) (domain.Problems, error)
}
