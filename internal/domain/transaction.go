package domain

// MempoolBlockHash is the block hash carried by transactions that are not yet
// included in a block
const MempoolBlockHash = "mempool"

// Transaction is a chain transaction handed over by the ingestion layer.
// It is read-only for the trigger pipeline.
type Transaction struct {
	TxIndex    int64  `json:"tx_index"` // monotonic position in the chain's transaction order
	TxHash     string `json:"tx_hash"`  // unique transaction identifier
	BlockIndex int64  `json:"block_index"`
	BlockHash  string `json:"block_hash"` // MempoolBlockHash while unconfirmed
	Source     string `json:"source"`     // sending address
	Data       []byte `json:"data"`       // message bytes including the message type prefix
}

// Unconfirmed reports whether the transaction belongs to the mempool view
func (t Transaction) Unconfirmed() bool {
	return t.BlockHash == MempoolBlockHash
}
