package trigger

// FeeAction is recorded on the debit of every valid trigger
const FeeAction = "trigger fee"

// Config holds the ledger settings of the trigger pipeline
type Config struct {
	// BaseAsset is the asset fees are paid in
	BaseAsset string
	// Unit is the number of indivisible units in one BaseAsset
	Unit int64
	// ShortTxTypeEncoding packs message ids below 256 as a single byte
	ShortTxTypeEncoding bool
	// PersistOverflowStatus records rows whose status reports an integer overflow.
	// When false those rows are skipped and logged.
	PersistOverflowStatus bool
}
