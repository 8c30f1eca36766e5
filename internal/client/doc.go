// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the sync client runtime.
//
// It wires the local store, the server adapter, the client services and the
// background sync worker into a single process lifecycle.
package client
