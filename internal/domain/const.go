package domain

const (
	// DefaultBaseAsset is the ledger's native asset, used to pay fees
	DefaultBaseAsset = "XCP"

	// DefaultUnit is the number of indivisible units in one base asset
	DefaultUnit int64 = 100000000

	// TriggerFeeDivisor sets the trigger fee to 0.1% of one unit
	TriggerFeeDivisor int64 = 1000
)

// TriggerFee returns the fixed trigger fee for the given unit
func TriggerFee(unit int64) int64 {
	return unit / TriggerFeeDivisor
}
