package store

import "testing"

// NewTestStore returns a Store bound to a transaction that is rolled back when t ends
func NewTestStore(t *testing.T) Store {
	return initPGTestDB(t)
}
