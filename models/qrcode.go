// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// QRCodePrefix starts every generated box code.
const QRCodePrefix = "BOX-"

const qrCodeIDHexLen = 8

// QRCodeID derives the printable box code from a box id: the prefix followed
// by the first eight hexadecimal characters of the id, upper-cased.
// Non-hex characters such as UUID dashes are skipped.
func QRCodeID(id string) string {
	hex := make([]byte, 0, qrCodeIDHexLen)
	for i := 0; i < len(id) && len(hex) < qrCodeIDHexLen; i++ {
		if isHex(id[i]) {
			hex = append(hex, id[i])
		}
	}

	return QRCodePrefix + strings.ToUpper(string(hex))
}

// DeepLink builds the link a QR label can embed instead of the bare code,
// e.g. "boxkeeper://box/<id>".
func DeepLink(scheme, boxID string) string {
	return scheme + "://box/" + boxID
}

// ParseDeepLink extracts the box id from a link built by [DeepLink]. For any
// other input it returns the input unchanged, so scanned codes can be passed
// through it blindly.
func ParseDeepLink(scheme, scanned string) string {
	prefix := scheme + "://box/"
	if scheme != "" && strings.HasPrefix(scanned, prefix) {
		return strings.TrimSuffix(strings.TrimPrefix(scanned, prefix), "/")
	}
	return scanned
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
