// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the session store, the REST adapter, the client services and the
// terminal UI into a single process lifecycle.
package client
