package schema

import (
	"time"
)

// AssetMetadata represents the asset_metadatas table - append-only history of metadata values per (asset, key).
// The current value of a key is the row with the greatest (tx_index, message_index).
type AssetMetadata struct {
	// TxIndex is the position of the trigger transaction that wrote this row
	TxIndex int64 `gorm:"column:tx_index;primaryKey;autoIncrement:false"`
	// MessageIndex numbers the rows written by one transaction, starting at 0
	MessageIndex int `gorm:"column:message_index;primaryKey;autoIncrement:false;uniqueIndex:idx_asset_metadatas_tx_hash_message,priority:2"`
	// TxHash is the hash of the trigger transaction
	TxHash string `gorm:"column:tx_hash;not null;type:text;uniqueIndex:idx_asset_metadatas_tx_hash_message,priority:1"`
	// BlockIndex is the block that confirmed the trigger transaction
	BlockIndex int64 `gorm:"column:block_index;not null;index:idx_asset_metadatas_block_index"`
	// Asset is the asset resolved from the trigger's target hash
	Asset string `gorm:"column:asset;not null;type:text;index:idx_asset_metadatas_asset_key,priority:1"`
	// Key is the metadata key
	Key string `gorm:"column:key;not null;type:text;index:idx_asset_metadatas_asset_key,priority:2"`
	// Payload is the serialized value; nil for a deleted or never-stored key
	Payload []byte `gorm:"column:payload;type:bytea"`
	// Locked freezes the key; no later row may store or lock it again
	Locked bool `gorm:"column:locked;not null"`
	// CreatedAt is the timestamp when this row was written
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the AssetMetadata model
func (AssetMetadata) TableName() string {
	return "asset_metadatas"
}
