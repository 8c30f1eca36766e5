// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// sync server handlers and the client transport.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies by the server and matched by the client when it maps a
// transport error back to a service error. Keeping them in one place keeps
// both sides in agreement.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgServiceUnavailable is returned when the database reported a
	// transient failure; the client may retry on its next cycle.
	MsgServiceUnavailable = "service temporarily unavailable"

	// MsgIntegrityCheckFailed is returned when the digest carried by a
	// commit request does not match its items.
	MsgIntegrityCheckFailed = "integrity check failed"

	// MsgNoCommitItemsProvided is returned when a commit request contains
	// an empty item list.
	MsgNoCommitItemsProvided = "no commit items provided"

	// MsgEmptyEntryIDProvided is returned when at least one commit item has
	// a blank ID.
	MsgEmptyEntryIDProvided = "empty entry ID provided"

	// MsgDuplicateEntryIDProvided is returned when a commit request carries
	// the same ID twice.
	MsgDuplicateEntryIDProvided = "duplicate entry ID provided"

	// MsgNegativeBaseVersion is returned when a commit item carries a base
	// version below zero.
	MsgNegativeBaseVersion = "base version must not be negative"

	// MsgLengthMismatch is returned when the length field of a request does
	// not match the number of items it carries.
	MsgLengthMismatch = "length does not match number of items"

	// MsgInvalidSinceParameter is returned when the since query parameter is
	// not a non-negative integer.
	MsgInvalidSinceParameter = "invalid since parameter"

	// MsgInvalidLimitParameter is returned when the limit query parameter is
	// not a positive integer.
	MsgInvalidLimitParameter = "invalid limit parameter"

	// MsgEntryNotFound is returned when the requested entry does not exist
	// on the server.
	MsgEntryNotFound = "entry not found"
)
