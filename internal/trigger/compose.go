package trigger

import (
	"context"
	"encoding/hex"

	"github.com/feral-file/ff-trigger-ledger/internal/codec"
	"github.com/feral-file/ff-trigger-ledger/internal/domain"
	"github.com/feral-file/ff-trigger-ledger/internal/store"
)

const (
	ProblemConvertPayload    = "failed to convert the payload"
	ProblemInvalidTargetHash = "invalid target hash"
)

// ComposeError is returned when a trigger cannot be composed
type ComposeError struct {
	Problems domain.Problems
}

func (e *ComposeError) Error() string {
	return "failed to compose trigger: " + e.Problems.Join()
}

// Composer builds trigger messages ready to be embedded in a transaction
type Composer struct {
	store     store.Store
	registry  *Registry
	validator *Validator
	config    Config
}

// NewComposer creates a new trigger composer
func NewComposer(cfg Config, st store.Store, registry *Registry) *Composer {
	return &Composer{
		store:     st,
		registry:  registry,
		validator: NewValidator(registry, cfg),
		config:    cfg,
	}
}

// Compose validates the trigger and returns the message type prefix, the target hash and the payload.
// payload is hex when payloadIsHex is set and UTF-8 text otherwise.
func (c *Composer) Compose(ctx context.Context, source string, targetHash string, payload string, payloadIsHex bool) ([]byte, error) {
	var payloadBytes []byte
	if payloadIsHex {
		b, err := hex.DecodeString(payload)
		if err != nil {
			return nil, &ComposeError{Problems: domain.Problems{ProblemConvertPayload}}
		}
		payloadBytes = b
	} else {
		payloadBytes = []byte(payload)
	}

	target, err := codec.ParseTargetHash(targetHash)
	if err != nil {
		return nil, &ComposeError{Problems: domain.Problems{ProblemInvalidTargetHash}}
	}

	result, err := c.validator.Validate(ctx, c.store, source, target.String(), payloadBytes)
	if err != nil {
		return nil, err
	}
	if !result.Problems.Empty() {
		return nil, &ComposeError{Problems: result.Problems}
	}

	data := codec.PackMessageType(codec.TriggerMessageID, c.config.ShortTxTypeEncoding)
	return append(data, codec.PackTrigger(target, payloadBytes)...), nil
}

// ComposeForTarget lets the target's receiver kind build the payload, then composes the trigger
func (c *Composer) ComposeForTarget(ctx context.Context, source string, targetHash string, payload string, payloadIsHex bool) ([]byte, error) {
	target, err := codec.ParseTargetHash(targetHash)
	if err != nil {
		return nil, &ComposeError{Problems: domain.Problems{ProblemInvalidTargetHash}}
	}

	kind, err := c.registry.Resolve(ctx, c.store, target.String())
	if err != nil {
		return nil, err
	}
	if kind == nil {
		return nil, &ComposeError{Problems: domain.Problems{ProblemNoTarget}}
	}

	receiverPayload, err := kind.Compose(ctx, c.store, source, target.String(), payload, payloadIsHex)
	if err != nil {
		return nil, &ComposeError{Problems: domain.Problems{err.Error()}}
	}

	return c.Compose(ctx, source, target.String(), hex.EncodeToString(receiverPayload), true)
}
