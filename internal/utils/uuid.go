// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// IDGenerator produces unique opaque identifiers.
type IDGenerator interface {
	Generate() string
}

// UUIDGenerator issues random (version 4) UUIDs. Random ids keep the leading
// hex digits well distributed, which matters for codes derived from them.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	return uuid.NewString()
}
