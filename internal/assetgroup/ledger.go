package assetgroup

import (
	"context"
	"fmt"

	"github.com/feral-file/ff-trigger-ledger/internal/domain"
	"github.com/feral-file/ff-trigger-ledger/internal/store"
	"github.com/feral-file/ff-trigger-ledger/internal/store/schema"
)

// ProblemOwnedByAnother is reported when a group is claimed by someone other than its owner
const ProblemOwnedByAnother = "asset group owned by another address"

// Claim is one ownership claim on an asset group
type Claim struct {
	TxIndex    int64
	TxHash     string
	BlockIndex int64
	AssetGroup string
	Owner      string
	Status     string
}

// Ledger tracks asset group ownership as an append-only list of claims.
// The owner of a group is the owner of its latest valid claim.
type Ledger struct {
	store store.Store
}

// NewLedger creates a new asset group ledger
func NewLedger(st store.Store) *Ledger {
	return &Ledger{store: st}
}

// Owner returns the current owner of a group; ok is false if the group was never validly claimed
func (l *Ledger) Owner(ctx context.Context, group string) (owner string, ok bool, err error) {
	claims, err := l.store.GetValidAssetGroups(ctx, group)
	if err != nil {
		return "", false, fmt.Errorf("failed to get asset group claims: %w", err)
	}
	if len(claims) == 0 {
		return "", false, nil
	}
	return claims[len(claims)-1].Owner, true, nil
}

// Validate checks that source may claim group
func (l *Ledger) Validate(ctx context.Context, group string, source string) (domain.Problems, error) {
	var problems domain.Problems

	owner, ok, err := l.Owner(ctx, group)
	if err != nil {
		return nil, err
	}
	if ok && owner != source {
		problems = problems.Add(ProblemOwnedByAnother)
	}

	return problems, nil
}

// Create appends a claim. It does not re-validate; call Validate first.
func (l *Ledger) Create(ctx context.Context, claim Claim) error {
	row := &schema.AssetGroup{
		TxIndex:    claim.TxIndex,
		MsgIndex:   0,
		TxHash:     claim.TxHash,
		BlockIndex: claim.BlockIndex,
		AssetGroup: claim.AssetGroup,
		Owner:      claim.Owner,
		Status:     claim.Status,
	}
	if err := l.store.CreateAssetGroup(ctx, row); err != nil {
		return fmt.Errorf("failed to create asset group claim: %w", err)
	}
	return nil
}
