// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated means no enabled transport has a handler to serve.
var errNoServersAreCreated = errors.New("no servers are created")
