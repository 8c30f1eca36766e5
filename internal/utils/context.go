// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context keys, value digests,
// HTTP response writing, HTTP client initialization, ID generation
// and other common operations.
package utils

import (
	"context"
)

// TraceIDHeader carries the trace ID of a request or a sync cycle between
// client and server.
const TraceIDHeader = "X-Trace-ID"

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey is the key used to store the trace identifier of a request or
// a sync cycle in the context. The client adapter forwards it to the server
// in the [TraceIDHeader] header so both sides log under the same ID.
//
// Example of writing a value to the context:
//
//	ctx := utils.WithTraceID(ctx, "0190f1c2-...")
var TraceIDCtxKey = contextKey("traceID")

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext retrieves the trace identifier from the context.
//
// Returns the trace ID and an ok flag:
//   - ok == true  — value is found, is a string and is not empty
//   - ok == false — value is missing, empty or has an unexpected type
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}
