package trigger

import (
	"context"
	"fmt"

	"github.com/feral-file/ff-trigger-ledger/internal/domain"
	"github.com/feral-file/ff-trigger-ledger/internal/receiver"
	"github.com/feral-file/ff-trigger-ledger/internal/receiver/assetmetadata"
	"github.com/feral-file/ff-trigger-ledger/internal/store"
)

// Registry is the ordered, fixed set of receiver kinds a trigger can address
type Registry struct {
	kinds []receiver.Kind
}

// NewRegistry creates a registry consulting kinds in the given order
func NewRegistry(kinds ...receiver.Kind) *Registry {
	return &Registry{kinds: kinds}
}

// DefaultRegistry returns the registry of every built-in receiver kind
func DefaultRegistry() *Registry {
	return NewRegistry(
		assetmetadata.NewKind(),
	)
}

// Kinds returns the registered kinds in order
func (r *Registry) Kinds() []receiver.Kind {
	return r.kinds
}

// Initialise creates the tables of every registered kind
func (r *Registry) Initialise(ctx context.Context, st store.Store) error {
	for _, kind := range r.kinds {
		if err := kind.Initialise(ctx, st); err != nil {
			return err
		}
	}
	return nil
}

// Resolve finds the kind whose target table holds targetHash.
// It returns nil when no kind matches, and an error wrapping domain.ErrRegistryConflict
// when the hash is ambiguous.
func (r *Registry) Resolve(ctx context.Context, st store.Store, targetHash string) (receiver.Kind, error) {
	var found receiver.Kind
	for _, kind := range r.kinds {
		count, err := st.CountByTxHash(ctx, kind.TargetTableName(), targetHash)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s targets: %w", kind.Name(), err)
		}
		if count == 0 {
			continue
		}
		if count > 1 {
			return nil, fmt.Errorf("%w: %d rows of %s have tx_hash %s",
				domain.ErrRegistryConflict, count, kind.TargetTableName(), targetHash)
		}
		if found != nil {
			return nil, fmt.Errorf("%w: %s and %s both claim %s",
				domain.ErrRegistryConflict, found.Name(), kind.Name(), targetHash)
		}
		found = kind
	}
	return found, nil
}
