// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-box-keeper/internal/adapter"
	"github.com/MKhiriev/go-box-keeper/internal/inventory"
	"github.com/MKhiriev/go-box-keeper/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "validation keeps rule", err: fmt.Errorf("add box: %w", validators.ErrEmptyName), want: "invalid data provided: name is required"},
		{name: "bare validation", err: inventory.ErrValidation, want: MsgInvalidDataProvided},
		{name: "box not found", err: fmt.Errorf("scan: %w", inventory.ErrBoxNotFound), want: MsgBoxNotFound},
		{name: "item not found", err: inventory.ErrItemNotFound, want: MsgItemNotFound},
		{name: "box capacity", err: inventory.ErrBoxCapacityExceeded, want: MsgBoxCapacityExceeded},
		{name: "item capacity", err: inventory.ErrItemCapacityExceeded, want: MsgItemCapacityExceeded},
		{name: "id exhausted", err: inventory.ErrIDExhausted, want: MsgIDExhausted},
		{name: "unreachable", err: fmt.Errorf("list boxes: %w", adapter.ErrServerUnreachable), want: MsgServerUnavailable},
		{name: "dial error text", err: errors.New("dial tcp 127.0.0.1:8080: connect: connection refused"), want: MsgServerUnavailable},
		{name: "other", err: errors.New("boom"), want: MsgInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}
