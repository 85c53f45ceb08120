package yabel

import (
	"errors"
	"fmt"
)

// Decode failures are drawn from a fixed set. All of them abort the decode at
// the first malformed item; there is no resynchronization.
var (
	// ErrUnexpectedEndOfBuffer is returned when a decode operation could not be
	// completed because the end of the buffer was reached prematurely.
	ErrUnexpectedEndOfBuffer = errors.New("unexpected end of buffer")
	// ErrUnsortedDictionary is returned when an encoded dictionary is unsorted.
	ErrUnsortedDictionary = errors.New("unsorted dictionary")
	// ErrInvalidDictionaryKey is returned when a dictionary key is not a byte string.
	ErrInvalidDictionaryKey = errors.New("invalid dictionary key")
	// ErrLeadingZeros is returned for integers with leading zeros.
	ErrLeadingZeros = errors.New("leading zeros")
	// ErrNegativeZero is returned for the integer -0.
	ErrNegativeZero = errors.New("negative zero")
	// ErrInvalidData is returned when data not valid for the operation was encountered.
	ErrInvalidData = errors.New("invalid data")
)

// UnexpectedByteError is returned when a byte is read which cannot start an
// item.
type UnexpectedByteError struct {
	Byte byte
}

func (e *UnexpectedByteError) Error() string {
	return fmt.Sprintf("unexpected byte `%d`", e.Byte)
}
