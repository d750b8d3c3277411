package store

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/feral-file/ff-trigger-ledger/internal/domain"
	"github.com/feral-file/ff-trigger-ledger/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// Open connects to PostgreSQL. Duplicate key violations are translated to gorm.ErrDuplicatedKey.
func Open(dsn string, debug bool) (*gorm.DB, error) {
	logLevel := gormlogger.Warn
	if debug {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// ConfigureConnectionPool configures the connection pool of a GORM connection.
// Zero values fall back to the defaults of NormalizeConnectionPoolSettings.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings.
//
// Defaults (when zero):
//   - MaxOpenConns: 4 (processing is sequential, a handful of connections is plenty)
//   - MaxIdleConns: 2
//   - ConnMaxLifetime: 30 minutes
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 4
	}
	if maxIdleConns == 0 {
		maxIdleConns = 2
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 30 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// WithTx runs fn inside a transaction; nested calls use savepoints
func (s *pgStore) WithTx(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&pgStore{db: tx})
	})
}

// Migrate creates or updates the tables backing the given models
func (s *pgStore) Migrate(ctx context.Context, models ...interface{}) error {
	if err := s.db.WithContext(ctx).AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// CountByTxHash counts the rows of table whose tx_hash equals txHash
func (s *pgStore) CountByTxHash(ctx context.Context, table string, txHash string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Table(table).
		Where("tx_hash = ?", txHash).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count %s rows: %w", table, err)
	}
	return count, nil
}

// CreateTrigger appends a trigger outcome row
func (s *pgStore) CreateTrigger(ctx context.Context, trigger *schema.Trigger) error {
	err := s.db.WithContext(ctx).Create(trigger).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s", domain.ErrTriggerExists, trigger.TxHash)
		}
		return fmt.Errorf("failed to create trigger: %w", err)
	}
	return nil
}

// GetTriggerByTxHash retrieves the outcome row of a transaction
func (s *pgStore) GetTriggerByTxHash(ctx context.Context, txHash string) (*schema.Trigger, error) {
	var trigger schema.Trigger
	err := s.db.WithContext(ctx).Where("tx_hash = ?", txHash).First(&trigger).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get trigger: %w", err)
	}
	return &trigger, nil
}

// GetTriggersByBlock retrieves the outcome rows of a block in transaction order
func (s *pgStore) GetTriggersByBlock(ctx context.Context, blockIndex int64) ([]schema.Trigger, error) {
	var triggers []schema.Trigger
	err := s.db.WithContext(ctx).
		Where("block_index = ?", blockIndex).
		Order("tx_index ASC").
		Find(&triggers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get triggers by block: %w", err)
	}
	return triggers, nil
}

// GetTriggersBySource retrieves the outcome rows sent by an address in transaction order
func (s *pgStore) GetTriggersBySource(ctx context.Context, source string, limit, offset int) ([]schema.Trigger, error) {
	var triggers []schema.Trigger
	query := s.db.WithContext(ctx).
		Where("source = ?", source).
		Order("tx_index ASC").
		Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&triggers).Error; err != nil {
		return nil, fmt.Errorf("failed to get triggers by source: %w", err)
	}
	return triggers, nil
}

// CreateIssuance appends an issuance row
func (s *pgStore) CreateIssuance(ctx context.Context, issuance *schema.Issuance) error {
	if err := s.db.WithContext(ctx).Create(issuance).Error; err != nil {
		return fmt.Errorf("failed to create issuance: %w", err)
	}
	return nil
}

// FindIssuanceByTxHash retrieves the valid issuance created by a transaction
func (s *pgStore) FindIssuanceByTxHash(ctx context.Context, txHash string) (*schema.Issuance, error) {
	var issuance schema.Issuance
	err := s.db.WithContext(ctx).
		Where("tx_hash = ? AND status = ?", txHash, schema.IssuanceStatusValid).
		First(&issuance).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find issuance: %w", err)
	}
	return &issuance, nil
}

// CreateAssetMetadata appends a metadata history row
func (s *pgStore) CreateAssetMetadata(ctx context.Context, metadata *schema.AssetMetadata) error {
	if err := s.db.WithContext(ctx).Create(metadata).Error; err != nil {
		return fmt.Errorf("failed to create asset metadata: %w", err)
	}
	return nil
}

// GetLatestAssetMetadata retrieves the newest row for (asset, key)
func (s *pgStore) GetLatestAssetMetadata(ctx context.Context, asset string, key string) (*schema.AssetMetadata, error) {
	var metadata schema.AssetMetadata
	err := s.db.WithContext(ctx).
		Where("asset = ? AND key = ?", asset, key).
		Order("tx_index DESC").
		Order("message_index DESC").
		First(&metadata).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest asset metadata: %w", err)
	}
	return &metadata, nil
}

// IsAssetMetadataLocked reports whether any row for (asset, key) is locked
func (s *pgStore) IsAssetMetadataLocked(ctx context.Context, asset string, key string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.AssetMetadata{}).
		Where("asset = ? AND key = ? AND locked = ?", asset, key, true).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check asset metadata lock: %w", err)
	}
	return count > 0, nil
}

// GetAssetMetadataHistory retrieves every row for (asset, key), oldest first
func (s *pgStore) GetAssetMetadataHistory(ctx context.Context, asset string, key string) ([]schema.AssetMetadata, error) {
	var history []schema.AssetMetadata
	err := s.db.WithContext(ctx).
		Where("asset = ? AND key = ?", asset, key).
		Order("tx_index ASC").
		Order("message_index ASC").
		Find(&history).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get asset metadata history: %w", err)
	}
	return history, nil
}

// GetCurrentAssetMetadata retrieves the newest row of every key of an asset
func (s *pgStore) GetCurrentAssetMetadata(ctx context.Context, asset string) ([]schema.AssetMetadata, error) {
	var current []schema.AssetMetadata
	err := s.db.WithContext(ctx).
		Raw(`SELECT DISTINCT ON (key) * FROM asset_metadatas
			WHERE asset = ?
			ORDER BY key ASC, tx_index DESC, message_index DESC`, asset).
		Scan(&current).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get current asset metadata: %w", err)
	}
	return current, nil
}

// CreateAssetGroup appends an asset group claim
func (s *pgStore) CreateAssetGroup(ctx context.Context, group *schema.AssetGroup) error {
	if err := s.db.WithContext(ctx).Create(group).Error; err != nil {
		return fmt.Errorf("failed to create asset group: %w", err)
	}
	return nil
}

// GetValidAssetGroups retrieves the valid claims on a group, oldest first
func (s *pgStore) GetValidAssetGroups(ctx context.Context, assetGroup string) ([]schema.AssetGroup, error) {
	var groups []schema.AssetGroup
	err := s.db.WithContext(ctx).
		Where("status = ? AND asset_group = ?", schema.AssetGroupStatusValid, assetGroup).
		Order("tx_index ASC").
		Find(&groups).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get asset groups: %w", err)
	}
	return groups, nil
}

// GetBalance retrieves the balance of an address in an asset
func (s *pgStore) GetBalance(ctx context.Context, address string, asset string) (*schema.Balance, error) {
	var balance schema.Balance
	err := s.db.WithContext(ctx).
		Where("address = ? AND asset = ?", address, asset).
		First(&balance).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	return &balance, nil
}

// Credit increments a balance and records a credits row in a single transaction
func (s *pgStore) Credit(ctx context.Context, input CreditInput) error {
	if input.Quantity < 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, input.Quantity)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var balance schema.Balance
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("address = ? AND asset = ?", input.Address, input.Asset).
			First(&balance).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			balance = schema.Balance{Address: input.Address, Asset: input.Asset, Quantity: input.Quantity}
			if err := tx.Create(&balance).Error; err != nil {
				return fmt.Errorf("failed to create balance: %w", err)
			}
		case err != nil:
			return fmt.Errorf("failed to get balance: %w", err)
		default:
			if balance.Quantity > math.MaxInt64-input.Quantity {
				return fmt.Errorf("%w: crediting %d to %s", domain.ErrIntegerOverflow, input.Quantity, input.Address)
			}
			err := tx.Model(&schema.Balance{}).
				Where("address = ? AND asset = ?", input.Address, input.Asset).
				Update("quantity", gorm.Expr("quantity + ?", input.Quantity)).Error
			if err != nil {
				return fmt.Errorf("failed to update balance: %w", err)
			}
		}

		credit := schema.Credit{
			BlockIndex: input.BlockIndex,
			Address:    input.Address,
			Asset:      input.Asset,
			Quantity:   input.Quantity,
			Action:     input.Action,
			Event:      input.Event,
		}
		if err := tx.Create(&credit).Error; err != nil {
			return fmt.Errorf("failed to create credit: %w", err)
		}

		return nil
	})
}

// Debit decrements a balance and records a debits row in a single transaction
func (s *pgStore) Debit(ctx context.Context, input DebitInput) error {
	if input.Quantity < 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, input.Quantity)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&schema.Balance{}).
			Where("address = ? AND asset = ? AND quantity >= ?", input.Address, input.Asset, input.Quantity).
			Update("quantity", gorm.Expr("quantity - ?", input.Quantity))
		if result.Error != nil {
			return fmt.Errorf("failed to update balance: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: debiting %d %s from %s", domain.ErrInsufficientBalance, input.Quantity, input.Asset, input.Address)
		}

		debit := schema.Debit{
			BlockIndex: input.BlockIndex,
			Address:    input.Address,
			Asset:      input.Asset,
			Quantity:   input.Quantity,
			Action:     input.Action,
			Event:      input.Event,
		}
		if err := tx.Create(&debit).Error; err != nil {
			return fmt.Errorf("failed to create debit: %w", err)
		}

		return nil
	})
}
