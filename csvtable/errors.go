package csvtable

import "errors"

// Common errors returned by the csvtable package.
var (
	// ErrEmptyFile is returned by Build when the line sequence is empty.
	// It is a recoverable condition, not a parse failure.
	ErrEmptyFile = errors.New("file has no lines")

	// ErrInvalidRow is returned when a row index is out of range.
	ErrInvalidRow = errors.New("invalid row index")

	// ErrInvalidColumn is returned when a column index is out of range.
	ErrInvalidColumn = errors.New("invalid column index")
)
