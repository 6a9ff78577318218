// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional_UnmarshalDistinguishesStates(t *testing.T) {
	var u ItemUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Drill","description":null,"value":"12.50"}`), &u))

	assert.True(t, u.Name.Set)
	assert.False(t, u.Name.Null)
	assert.Equal(t, "Drill", u.Name.Value)

	assert.True(t, u.Description.Set)
	assert.True(t, u.Description.Null)

	assert.False(t, u.Quantity.Set)
	assert.False(t, u.PhotoURI.Set)

	require.True(t, u.Value.Set)
	assert.True(t, decimal.RequireFromString("12.5").Equal(u.Value.Value))
}

func TestOptional_MarshalOmitsUnsetFields(t *testing.T) {
	u := BoxUpdate{
		Name:        Some("Garage"),
		Description: Clear[string](),
	}

	data, err := json.Marshal(u)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Garage","description":null}`, string(data))
}

func TestOptional_ApplyTo(t *testing.T) {
	assert.Equal(t, "old", Optional[string]{}.ApplyTo("old"))
	assert.Equal(t, "new", Some("new").ApplyTo("old"))
	assert.Equal(t, "", Clear[string]().ApplyTo("old"))
}

func TestItemUpdate_Apply(t *testing.T) {
	v := decimal.NewFromInt(10)
	item := Item{
		ID:          "item-1",
		BoxID:       "box-1",
		Name:        "Hammer",
		Quantity:    1,
		Description: "claw hammer",
		PhotoURI:    "file:///photos/hammer.jpg",
		Value:       &v,
	}

	got := ItemUpdate{
		Quantity: Some(3),
		PhotoURI: Clear[string](),
		Value:    Clear[decimal.Decimal](),
	}.Apply(item)

	assert.Equal(t, "item-1", got.ID)
	assert.Equal(t, "box-1", got.BoxID)
	assert.Equal(t, "Hammer", got.Name)
	assert.Equal(t, 3, got.Quantity)
	assert.Equal(t, "claw hammer", got.Description)
	assert.Empty(t, got.PhotoURI)
	assert.Nil(t, got.Value)

	// the source item is untouched
	require.NotNil(t, item.Value)
	assert.Equal(t, "file:///photos/hammer.jpg", item.PhotoURI)
}

func TestItemUpdate_ApplySetsValue(t *testing.T) {
	got := ItemUpdate{Value: Some(decimal.RequireFromString("4.99"))}.Apply(Item{Name: "Mug"})
	require.NotNil(t, got.Value)
	assert.Equal(t, "4.99", got.Value.String())
}

func TestBoxUpdate_IsEmpty(t *testing.T) {
	assert.True(t, BoxUpdate{}.IsEmpty())
	assert.False(t, BoxUpdate{Color: Some(ColorBlue)}.IsEmpty())
	assert.True(t, ItemUpdate{}.IsEmpty())
	assert.False(t, ItemUpdate{Value: Clear[decimal.Decimal]()}.IsEmpty())
}

func TestItem_CloneDoesNotShareValue(t *testing.T) {
	v := decimal.NewFromInt(5)
	item := Item{Value: &v}

	clone := item.Clone()
	*clone.Value = decimal.NewFromInt(7)

	assert.Equal(t, "5", item.Value.String())
}
