package schema

import (
	"time"
)

// AssetGroupStatusValid marks a claim that counts towards ownership
const AssetGroupStatusValid = "valid"

// AssetGroup represents the assetgroups table - append-only ownership claims on asset groups
type AssetGroup struct {
	// TxIndex is the position of the claiming transaction
	TxIndex int64 `gorm:"column:tx_index;primaryKey;autoIncrement:false"`
	// MsgIndex is reserved for several claims in one transaction; always 0 today
	MsgIndex int `gorm:"column:msg_index;primaryKey;autoIncrement:false;default:0;uniqueIndex:idx_assetgroups_tx_hash_msg,priority:2"`
	// TxHash is the hash of the claiming transaction
	TxHash string `gorm:"column:tx_hash;not null;type:text;uniqueIndex:idx_assetgroups_tx_hash_msg,priority:1"`
	// BlockIndex is the block that confirmed the claim
	BlockIndex int64 `gorm:"column:block_index;not null"`
	// AssetGroup is the group identifier
	AssetGroup string `gorm:"column:asset_group;not null;type:text;index:idx_assetgroups_asset_group"`
	// Owner is the claiming address
	Owner string `gorm:"column:owner;not null;type:text"`
	// Status is "valid" for claims that count towards ownership
	Status string `gorm:"column:status;not null;type:text"`
	// CreatedAt is the timestamp when this row was written
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the AssetGroup model
func (AssetGroup) TableName() string {
	return "assetgroups"
}
