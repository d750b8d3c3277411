package schema

// IssuanceStatusValid marks an issuance that created or updated an asset
const IssuanceStatusValid = "valid"

// Issuance represents the issuances table, owned by the issuance message type.
// The trigger pipeline only reads it: an issuance's tx_hash is the target hash of asset metadata triggers.
type Issuance struct {
	// TxIndex is the position of the issuance transaction
	TxIndex int64 `gorm:"column:tx_index;primaryKey;autoIncrement:false"`
	// TxHash is the hash of the issuance transaction
	TxHash string `gorm:"column:tx_hash;not null;type:text;uniqueIndex:idx_issuances_tx_hash"`
	// BlockIndex is the block that confirmed the issuance
	BlockIndex int64 `gorm:"column:block_index;not null"`
	// Asset is the issued asset name
	Asset string `gorm:"column:asset;not null;type:text;index:idx_issuances_asset"`
	// AssetGroup is the optional group the asset belongs to
	AssetGroup *string `gorm:"column:asset_group;type:text;index:idx_issuances_asset_group"`
	// Source is the issuing address
	Source string `gorm:"column:source;not null;type:text"`
	// Quantity is the number of units issued
	Quantity int64 `gorm:"column:quantity;not null"`
	// Status is "valid" for applied issuances
	Status string `gorm:"column:status;not null;type:text"`
}

// TableName specifies the table name for the Issuance model
func (Issuance) TableName() string {
	return "issuances"
}
