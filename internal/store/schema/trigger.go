package schema

import (
	"time"
)

// Trigger represents the triggers table - one outcome row per processed trigger transaction
type Trigger struct {
	// TxIndex is the position of the transaction in the chain order
	TxIndex int64 `gorm:"column:tx_index;primaryKey;autoIncrement:false"`
	// TxHash is the transaction hash; a transaction is processed at most once
	TxHash string `gorm:"column:tx_hash;not null;type:text;uniqueIndex:idx_triggers_tx_hash"`
	// BlockIndex is the block that confirmed the transaction
	BlockIndex int64 `gorm:"column:block_index;not null;index:idx_triggers_block_index"`
	// Source is the address that sent the transaction
	Source string `gorm:"column:source;not null;type:text;index:idx_triggers_source"`
	// TargetHash is the hex identifier of the triggered entity (nil when the body could not be unpacked)
	TargetHash *string `gorm:"column:target_hash;type:text"`
	// Payload is the opaque receiver payload (nil when the body could not be unpacked)
	Payload []byte `gorm:"column:payload;type:bytea"`
	// Status is "valid" or "invalid: <reasons>"
	Status string `gorm:"column:status;not null;type:text"`
	// CreatedAt is the timestamp when this row was written
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Trigger model
func (Trigger) TableName() string {
	return "triggers"
}
