package byteconv

import (
	"errors"
)

var (
	// ErrNilInput gets returned when the input byte slice is nil.
	ErrNilInput = errors.New("input is nil")
	// ErrSyntax gets returned when the input text is not a well-formed number
	// under the given style and conventions.
	ErrSyntax = errors.New("malformed number")
	// ErrRange gets returned when a well-formed number does not fit into 8 bits.
	ErrRange = errors.New("value out of range")
	// ErrInvalidFormat gets returned when a format token is not recognized.
	ErrInvalidFormat = errors.New("invalid format token")
)
