package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrUnknownConflictPolicy = errors.New("unknown conflict policy")

	ErrClassificationFailed = errors.New("conflict classification failed")
	ErrEmptyEntryID         = errors.New("empty entry ID")

	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrIntegrityCheckFailed  = errors.New("integrity check failed")
	ErrServerUnavailable     = errors.New("sync server temporarily unavailable")
	ErrServerInternal        = errors.New("sync server internal error")
	ErrUnexpectedCommitReply = errors.New("unexpected commit response")

	ErrValidationNoCommitItemsProvided = errors.New("no commit items provided")
	ErrValidationEmptyEntryIDProvided  = errors.New("empty entry ID provided")
	ErrValidationDuplicateEntryID      = errors.New("duplicate entry ID provided")
	ErrValidationNegativeBaseVersion   = errors.New("base version must not be negative")
	ErrValidationLengthMismatch        = errors.New("length does not match number of items")
	ErrValidationInvalidSinceParameter = errors.New("invalid since parameter")
	ErrValidationInvalidLimitParameter = errors.New("invalid limit parameter")
)
