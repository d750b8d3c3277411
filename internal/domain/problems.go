package domain

import (
	"strings"
)

const (
	// StatusValid is the status of a fully applied message
	StatusValid = "valid"
	// StatusInvalidPrefix prefixes every rejected status
	StatusInvalidPrefix = "invalid: "
	// StatusCouldNotUnpack is recorded when the message body cannot be decoded
	StatusCouldNotUnpack = StatusInvalidPrefix + "could not unpack"
	// StatusExecutionFailed is recorded when a receiver faults while executing
	StatusExecutionFailed = StatusInvalidPrefix + "execution failed"
)

// Problems is an ordered list of human-readable reasons a message is invalid.
// An empty list means the message is valid.
type Problems []string

// Add appends problems and returns the extended list
func (p Problems) Add(problems ...string) Problems {
	return append(p, problems...)
}

// Empty reports whether there are no problems
func (p Problems) Empty() bool {
	return len(p) == 0
}

// Join concatenates the problems with "; "
func (p Problems) Join() string {
	return strings.Join(p, "; ")
}

// Status renders the problems as a persisted status string
func (p Problems) Status() string {
	if p.Empty() {
		return StatusValid
	}
	return StatusInvalidPrefix + p.Join()
}

// IsOverflowStatus reports whether a status describes an integer overflow
func IsOverflowStatus(status string) bool {
	return strings.Contains(status, "integer overflow")
}
