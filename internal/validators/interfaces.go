// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks sync requests before they reach the entry
// repository. Failures wrap the sentinels in errors.go, which the HTTP layer
// maps to 400 responses.
package validators

import "context"

// Validator checks a request value. Passing field names limits the check to
// those fields; no names means every field.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
