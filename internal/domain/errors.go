package domain

import "errors"

var (
	// ErrTriggerExists is returned when a transaction hash has already been processed
	ErrTriggerExists = errors.New("trigger already exists")

	// ErrRegistryConflict is returned when a target hash resolves to more than one receiver.
	// It indicates a defect in the set of registered receivers and is fatal.
	ErrRegistryConflict = errors.New("target hash claimed by more than one receiver")

	// ErrInsufficientBalance is returned when a debit would take a balance below zero
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrIntegerOverflow is returned when a quantity no longer fits in 64 bits
	ErrIntegerOverflow = errors.New("integer overflow")

	// ErrInvalidQuantity is returned for negative quantities
	ErrInvalidQuantity = errors.New("invalid quantity")
)
