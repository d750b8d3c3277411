package trigger

import (
	"context"
	"fmt"

	"github.com/feral-file/ff-trigger-ledger/internal/domain"
	"github.com/feral-file/ff-trigger-ledger/internal/receiver"
	"github.com/feral-file/ff-trigger-ledger/internal/store"
)

const (
	ProblemNoTarget          = "no trigger target with that hash"
	ProblemInsufficientFunds = "insufficient funds"
)

// Validation is the outcome of validating one trigger
type Validation struct {
	// Kind and Receiver are nil when no target matched
	Kind     receiver.Kind
	Receiver receiver.Receiver
	Fee      int64
	Problems domain.Problems
}

// Validator checks a trigger against the target registry and the source's balance
type Validator struct {
	registry *Registry
	config   Config
}

// NewValidator creates a new trigger validator
func NewValidator(registry *Registry, cfg Config) *Validator {
	return &Validator{registry: registry, config: cfg}
}

// Validate never writes. Problems are ordered: receiver or target problems first, funds last.
func (v *Validator) Validate(ctx context.Context, st store.Store, source string, targetHash string, payload []byte) (*Validation, error) {
	result := &Validation{}

	kind, err := v.registry.Resolve(ctx, st, targetHash)
	if err != nil {
		return nil, err
	}

	if kind == nil {
		result.Problems = result.Problems.Add(ProblemNoTarget)
	} else {
		result.Kind = kind
		result.Receiver = kind.New(st, source, targetHash, payload)

		problems, err := result.Receiver.Validate(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to validate %s trigger: %w", kind.Name(), err)
		}
		result.Problems = result.Problems.Add(problems...)
	}

	result.Fee = domain.TriggerFee(v.config.Unit)
	balance, err := st.GetBalance(ctx, source, v.config.BaseAsset)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	if balance == nil || balance.Quantity < result.Fee {
		result.Problems = result.Problems.Add(ProblemInsufficientFunds)
	}

	return result, nil
}
