package idx

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrFormat    = errors.New("bad magic number")
	ErrTruncated = errors.New("truncated data")
)

// FormatError reports a header whose magic number does not match the
// expected value for the file kind being read.
type FormatError struct {
	Want uint32
	Got  uint32
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	return fmt.Sprintf("bad magic number: got %d, want %d", e.Got, e.Want)
}

// Unwrap makes errors.Is(err, ErrFormat) work.
func (e *FormatError) Unwrap() error { return ErrFormat }

// HeaderError reports a header word with an impossible value, such as a
// negative item count in a corrupt file.
type HeaderError struct {
	Field string
	Value int
}

// Error implements the error interface.
func (e *HeaderError) Error() string {
	return fmt.Sprintf("bad header: %s is %d", e.Field, e.Value)
}

// Unwrap makes errors.Is(err, ErrFormat) work.
func (e *HeaderError) Unwrap() error { return ErrFormat }

// TruncatedError reports a payload shorter than the header promised.
// Item is the index of the short item for image files, or -1 for the
// label section, which is read as a single block.
type TruncatedError struct {
	Item int
	Want int
	Got  int
}

// Error implements the error interface.
func (e *TruncatedError) Error() string {
	if e.Item >= 0 {
		return fmt.Sprintf("truncated data: item %d has %d bytes, want %d", e.Item, e.Got, e.Want)
	}
	return fmt.Sprintf("truncated data: got %d bytes, want %d", e.Got, e.Want)
}

// Unwrap makes errors.Is(err, ErrTruncated) work.
func (e *TruncatedError) Unwrap() error { return ErrTruncated }
