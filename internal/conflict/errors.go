// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package conflict

import "errors"

// ErrUnknownResolution is returned by [Resolver.Apply] for a resolution value
// it has no primitive for. The handle is not touched in that case.
var ErrUnknownResolution = errors.New("unknown conflict resolution")
