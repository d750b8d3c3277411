package schema

import (
	"time"
)

// Debit represents the debits table - audit trail of balance decrements
type Debit struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// BlockIndex is the block of the transaction that caused the debit
	BlockIndex int64 `gorm:"column:block_index;not null;index:idx_debits_block_index"`
	// Address is the debited address
	Address string `gorm:"column:address;not null;type:text;index:idx_debits_address_asset,priority:1"`
	// Asset is the debited asset
	Asset string `gorm:"column:asset;not null;type:text;index:idx_debits_address_asset,priority:2"`
	// Quantity is the debited amount
	Quantity int64 `gorm:"column:quantity;not null"`
	// Action describes why, e.g. "trigger fee"
	Action string `gorm:"column:action;not null;type:text"`
	// Event is the hash of the transaction that caused the debit
	Event string `gorm:"column:event;not null;type:text"`
	// CreatedAt is the timestamp when this row was written
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Debit model
func (Debit) TableName() string {
	return "debits"
}

// Credit represents the credits table - audit trail of balance increments
type Credit struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	BlockIndex int64     `gorm:"column:block_index;not null;index:idx_credits_block_index"`
	Address    string    `gorm:"column:address;not null;type:text;index:idx_credits_address_asset,priority:1"`
	Asset      string    `gorm:"column:asset;not null;type:text;index:idx_credits_address_asset,priority:2"`
	Quantity   int64     `gorm:"column:quantity;not null"`
	Action     string    `gorm:"column:action;not null;type:text"`
	Event      string    `gorm:"column:event;not null;type:text"`
	CreatedAt  time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Credit model
func (Credit) TableName() string {
	return "credits"
}
