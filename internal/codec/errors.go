package codec

import "fmt"

// DecodeErrorKind classifies decode failures
type DecodeErrorKind int

const (
	// TooShort means the input ended before a fixed-length field was complete
	TooShort DecodeErrorKind = iota + 1
	// Malformed means the input has the right length but cannot be interpreted
	Malformed
)

func (k DecodeErrorKind) String() string {
	switch k {
	case TooShort:
		return "too short"
	case Malformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// DecodeError is returned by every unpack function for untrusted input
type DecodeError struct {
	Kind   DecodeErrorKind
	Reason string
}

func (e *DecodeError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("decode error: %s", e.Kind)
	}
	return fmt.Sprintf("decode error: %s: %s", e.Kind, e.Reason)
}

// Is matches any DecodeError of the same kind, so errors.Is(err, ErrTooShort) works
func (e *DecodeError) Is(target error) bool {
	t, ok := target.(*DecodeError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

var (
	// ErrTooShort matches every TooShort decode error
	ErrTooShort = &DecodeError{Kind: TooShort}
	// ErrMalformed matches every Malformed decode error
	ErrMalformed = &DecodeError{Kind: Malformed}
)

func tooShort(format string, args ...interface{}) error {
	return &DecodeError{Kind: TooShort, Reason: fmt.Sprintf(format, args...)}
}

func malformed(format string, args ...interface{}) error {
	return &DecodeError{Kind: Malformed, Reason: fmt.Sprintf(format, args...)}
}
