package trigger

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/ff-trigger-ledger/internal/adapter"
	"github.com/feral-file/ff-trigger-ledger/internal/codec"
	"github.com/feral-file/ff-trigger-ledger/internal/domain"
	"github.com/feral-file/ff-trigger-ledger/internal/logger"
	"github.com/feral-file/ff-trigger-ledger/internal/metrics"
	"github.com/feral-file/ff-trigger-ledger/internal/receiver"
	"github.com/feral-file/ff-trigger-ledger/internal/store"
	"github.com/feral-file/ff-trigger-ledger/internal/store/schema"
)

// Processor turns trigger transactions into outcome rows
//
//go:generate mockgen -source=processor.go -destination=../mocks/trigger_processor.go -package=mocks -mock_names=Processor=MockTriggerProcessor
type Processor interface {
	// Initialise creates every table the pipeline writes to
	Initialise(ctx context.Context) error
	// Parse decodes, validates, executes and persists one trigger transaction.
	// It returns nil for unconfirmed transactions and for suppressed overflow statuses.
	// Errors are infrastructure failures, domain.ErrTriggerExists or domain.ErrRegistryConflict;
	// invalid input is never an error.
	Parse(ctx context.Context, tx domain.Transaction, message []byte) (*schema.Trigger, error)
}

type processor struct {
	store     store.Store
	registry  *Registry
	validator *Validator
	config    Config
	clock     adapter.Clock
}

// NewProcessor creates a new trigger processor
func NewProcessor(cfg Config, st store.Store, registry *Registry, clock adapter.Clock) Processor {
	return &processor{
		store:     st,
		registry:  registry,
		validator: NewValidator(registry, cfg),
		config:    cfg,
		clock:     clock,
	}
}

func (p *processor) Initialise(ctx context.Context) error {
	if err := store.Initialise(ctx, p.store); err != nil {
		return err
	}
	return p.registry.Initialise(ctx, p.store)
}

func (p *processor) Parse(ctx context.Context, tx domain.Transaction, message []byte) (*schema.Trigger, error) {
	if tx.Unconfirmed() {
		if msg, err := codec.UnpackTrigger(message); err == nil {
			logger.DebugCtx(ctx, "Ignoring unconfirmed trigger",
				zap.String("txHash", tx.TxHash),
				zap.Stringer("targetHash", msg.TargetHash))
		}
		return nil, nil
	}

	ctx = logger.WithFields(ctx, zap.String("txHash", tx.TxHash), zap.Int64("txIndex", tx.TxIndex))
	started := p.clock.Now()

	var row *schema.Trigger
	err := p.store.WithTx(ctx, func(st store.Store) error {
		existing, err := st.GetTriggerByTxHash(ctx, tx.TxHash)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("%w: %s", domain.ErrTriggerExists, tx.TxHash)
		}

		row, err = p.process(ctx, st, tx, message)
		return err
	})
	if err != nil {
		return nil, err
	}

	elapsed := p.clock.Since(started)
	if row == nil {
		metrics.ObserveTrigger(metrics.OutcomeSuppressed, elapsed)
		return nil, nil
	}

	metrics.ObserveTrigger(metrics.Outcome(row.Status), elapsed)
	logger.DebugCtx(ctx, "Processed trigger",
		zap.String("status", row.Status),
		zap.Duration("duration", elapsed))

	return row, nil
}

func (p *processor) process(ctx context.Context, st store.Store, tx domain.Transaction, message []byte) (*schema.Trigger, error) {
	row := &schema.Trigger{
		TxIndex:    tx.TxIndex,
		TxHash:     tx.TxHash,
		BlockIndex: tx.BlockIndex,
		Source:     tx.Source,
	}

	var fee int64
	msg, err := codec.UnpackTrigger(message)
	if err != nil {
		row.Status = domain.StatusCouldNotUnpack
	} else {
		targetHash := msg.TargetHash.String()
		row.TargetHash = &targetHash
		row.Payload = msg.Payload

		result, err := p.validator.Validate(ctx, st, tx.Source, targetHash, msg.Payload)
		if err != nil {
			return nil, err
		}

		fee = result.Fee
		row.Status = result.Problems.Status()
		if result.Problems.Empty() {
			row.Status = p.execute(ctx, result.Receiver, tx)
		}
	}

	if domain.IsOverflowStatus(row.Status) && !p.config.PersistOverflowStatus {
		logger.WarnCtx(ctx, "Not storing trigger transaction", zap.String("status", row.Status))
		return nil, nil
	}

	if err := st.CreateTrigger(ctx, row); err != nil {
		return nil, err
	}

	if row.Status == domain.StatusValid {
		err := st.Debit(ctx, store.DebitInput{
			BlockIndex: tx.BlockIndex,
			Address:    tx.Source,
			Asset:      p.config.BaseAsset,
			Quantity:   fee,
			Action:     FeeAction,
			Event:      tx.TxHash,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to debit trigger fee: %w", err)
		}
	}

	return row, nil
}

// execute runs the receiver and maps any fault to StatusExecutionFailed
func (p *processor) execute(ctx context.Context, rcv receiver.Receiver, tx domain.Transaction) (status string) {
	defer func() {
		if r := recover(); r != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("receiver panicked: %v", r))
			metrics.ObserveFault()
			status = domain.StatusExecutionFailed
		}
	}()

	problems, err := rcv.Execute(ctx, tx)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to execute trigger: %w", err))
		metrics.ObserveFault()
		return domain.StatusExecutionFailed
	}

	return problems.Status()
}
