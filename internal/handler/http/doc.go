// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the local HTTP API of the inventory.
//
// It exposes route wiring, request handlers, and middleware used by scanners,
// deep links and the terminal client in remote mode. Cross-cutting concerns
// such as request tracing, access logging, response compression and request
// timeouts are handled in this package before requests are delegated to the
// service layer.
package http
