// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires configuration, the inventory (a local store over the configured
// slot backend, or the remote HTTP adapter) and the terminal UI into a single
// process lifecycle, and flushes the store on exit.
package client
