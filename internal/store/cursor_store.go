package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/feral-file/ff-trigger-ledger/internal/store/schema"
)

// CursorStore defines the interface for storing and retrieving processing cursors
//
//go:generate mockgen -source=cursor_store.go -destination=../mocks/cursor_store.go -package=mocks -mock_names=CursorStore=MockCursorStore
type CursorStore interface {
	// GetTxCursor retrieves the last processed tx_index of a named feed; ok is false if none was saved
	GetTxCursor(ctx context.Context, name string) (txIndex int64, ok bool, err error)
	// SetTxCursor stores the last processed tx_index of a named feed
	SetTxCursor(ctx context.Context, name string, txIndex int64) error
}

func txCursorKey(name string) string {
	return fmt.Sprintf("tx_cursor:%s", name)
}

// GetTxCursor retrieves the last processed tx_index of a named feed
func (s *pgStore) GetTxCursor(ctx context.Context, name string) (int64, bool, error) {
	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", txCursorKey(name)).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to get tx cursor: %w", err)
	}

	txIndex, err := strconv.ParseInt(kv.Value, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("failed to parse tx cursor: %w", err)
	}

	return txIndex, true, nil
}

// SetTxCursor stores the last processed tx_index of a named feed
func (s *pgStore) SetTxCursor(ctx context.Context, name string, txIndex int64) error {
	kv := schema.KeyValueStore{
		Key:   txCursorKey(name),
		Value: strconv.FormatInt(txIndex, 10),
	}

	if err := s.db.WithContext(ctx).Save(&kv).Error; err != nil {
		return fmt.Errorf("failed to set tx cursor: %w", err)
	}

	return nil
}
