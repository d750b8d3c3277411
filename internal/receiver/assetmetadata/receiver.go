package assetmetadata

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/ff-trigger-ledger/internal/codec"
	"github.com/feral-file/ff-trigger-ledger/internal/domain"
	"github.com/feral-file/ff-trigger-ledger/internal/logger"
	"github.com/feral-file/ff-trigger-ledger/internal/metrics"
	"github.com/feral-file/ff-trigger-ledger/internal/receiver"
	"github.com/feral-file/ff-trigger-ledger/internal/store"
	"github.com/feral-file/ff-trigger-ledger/internal/store/schema"
)

const (
	// Name identifies the asset metadata kind
	Name = "asset_metadata"
	// TargetTable holds the issuances whose tx_hash addresses an asset
	TargetTable = "issuances"
)

const (
	ProblemMessageLength = "invalid message length"
	ProblemParsePayload  = "failed to parse payload"
	ProblemMissingAsset  = "Cannot find target asset"
	ProblemEmptyDocument = "empty metadata document"
	ProblemDatabase      = "Database related error"
)

// errRollback aborts the scoped transaction once a problem has been collected
var errRollback = errors.New("asset metadata rolled back")

func problemLocked(key, asset string) string {
	return fmt.Sprintf("the key \"%s\" bound to the asset \"%s\" has been locked", key, asset)
}

func problemDuplicateKey(key string) string {
	return fmt.Sprintf("duplicate key \"%s\"", key)
}

func problemUnknownOpcode(op codec.Opcode) string {
	return fmt.Sprintf("unknown query type %d", byte(op))
}

type kind struct{}

// NewKind returns the asset metadata receiver kind
func NewKind() receiver.Kind {
	return &kind{}
}

func (k *kind) Name() string {
	return Name
}

func (k *kind) TargetTableName() string {
	return TargetTable
}

// Initialise creates the asset_metadatas table
func (k *kind) Initialise(ctx context.Context, st store.Store) error {
	if err := st.Migrate(ctx, &schema.AssetMetadata{}); err != nil {
		return fmt.Errorf("failed to initialise %s: %w", Name, err)
	}
	return nil
}

func (k *kind) New(st store.Store, source string, targetHash string, payload []byte) receiver.Receiver {
	return &assetMetadataReceiver{
		store:      st,
		source:     source,
		targetHash: targetHash,
		payload:    payload,
	}
}

type assetMetadataReceiver struct {
	store      store.Store
	source     string
	targetHash string
	payload    []byte
}

// unpack decodes the payload. fatal is set when nothing else should be checked.
func (r *assetMetadataReceiver) unpack() (payload codec.MetadataPayload, problems domain.Problems, fatal bool) {
	if len(r.payload) <= 1 {
		return payload, problems.Add(ProblemMessageLength), false
	}

	payload, err := codec.UnpackMetadata(r.payload)
	if err != nil {
		return payload, problems.Add(ProblemParsePayload), true
	}

	return payload, problems, false
}

func (r *assetMetadataReceiver) resolveAsset(ctx context.Context, st store.Store) (string, error) {
	issuance, err := st.FindIssuanceByTxHash(ctx, r.targetHash)
	if err != nil {
		return "", err
	}
	if issuance == nil {
		return "", nil
	}
	return issuance.Asset, nil
}

// Validate runs the opcode against current state without writing
func (r *assetMetadataReceiver) Validate(ctx context.Context) (domain.Problems, error) {
	payload, problems, fatal := r.unpack()
	if fatal {
		return problems, nil
	}

	asset, err := r.resolveAsset(ctx, r.store)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve target asset: %w", err)
	}
	if asset == "" {
		problems = problems.Add(ProblemMissingAsset)
	}

	if problems.Empty() {
		w := &writer{st: r.store, asset: asset}
		queryProblems, err := w.apply(ctx, payload)
		if err != nil {
			return nil, err
		}
		problems = problems.Add(queryProblems...)
	}

	return problems, nil
}

// Execute applies the opcode inside one scoped transaction
func (r *assetMetadataReceiver) Execute(ctx context.Context, tx domain.Transaction) (domain.Problems, error) {
	payload, problems, fatal := r.unpack()
	if fatal {
		return problems, nil
	}

	asset, err := r.resolveAsset(ctx, r.store)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve target asset: %w", err)
	}
	if asset == "" {
		problems = problems.Add(ProblemMissingAsset)
	}
	if !problems.Empty() {
		return problems, nil
	}

	err = r.store.WithTx(ctx, func(st store.Store) (err error) {
		defer func() {
			if rec := recover(); rec != nil {
				err = fmt.Errorf("panic while applying asset metadata: %v", rec)
			}
		}()

		w := &writer{st: st, asset: asset, tx: &tx}
		queryProblems, err := w.apply(ctx, payload)
		if err != nil {
			return err
		}

		problems = problems.Add(queryProblems...)
		if !problems.Empty() {
			return errRollback
		}
		return nil
	})
	if err != nil && !errors.Is(err, errRollback) {
		metrics.ObserveFault()
		logger.ErrorCtx(ctx, fmt.Errorf("failed to apply asset metadata: %w", err),
			zap.String("asset", asset),
			zap.Stringer("opcode", payload.Opcode))
		if problems.Empty() {
			problems = problems.Add(ProblemDatabase)
		}
	}

	return problems, nil
}
