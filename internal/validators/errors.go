package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEntryID     = errors.New("invalid entry ID")
	ErrDuplicateEntryID   = errors.New("duplicate entry ID")
	ErrInvalidBaseVersion = errors.New("invalid base version")
	ErrEmptyItems         = errors.New("commit items list cannot be empty")
	ErrLengthMismatch     = errors.New("length does not match number of items")
	ErrInvalidSince       = errors.New("invalid since")
	ErrInvalidLimit       = errors.New("invalid limit")
)
