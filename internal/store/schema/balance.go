package schema

// Balance represents the balances table - current quantity per (address, asset)
type Balance struct {
	// Address is the holder's address
	Address string `gorm:"column:address;primaryKey;type:text"`
	// Asset is the asset name
	Asset string `gorm:"column:asset;primaryKey;type:text"`
	// Quantity is the amount held, in indivisible units
	Quantity int64 `gorm:"column:quantity;not null"`
}

// TableName specifies the table name for the Balance model
func (Balance) TableName() string {
	return "balances"
}
