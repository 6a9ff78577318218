// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-box-keeper/models"
	"github.com/shopspring/decimal"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldName targets the display name of a box or an item.
	FieldName = "name"

	// FieldLocation targets the physical location of a box.
	FieldLocation = "location"

	// FieldCategory targets the box category enumeration.
	FieldCategory = "category"

	// FieldBoxID targets the owning box reference of an item.
	FieldBoxID = "box_id"

	// FieldQuantity targets the item quantity.
	FieldQuantity = "quantity"

	// FieldValue targets the optional monetary value of an item.
	FieldValue = "value"
)

var (
	defaultBoxFields  = []string{FieldName, FieldLocation, FieldCategory}
	defaultItemFields = []string{FieldBoxID, FieldName, FieldQuantity, FieldValue}
)

// InventoryValidator implements [Validator] for boxes and items, both for
// creation inputs (models.NewBox, models.NewItem) and for merged records
// (models.Box, models.Item) produced by partial updates.
//
// Box color is presentation-only and is never validated.
type InventoryValidator struct {
	minQuantity int
}

// NewInventoryValidator returns a [Validator] that rejects item quantities
// below minQuantity.
func NewInventoryValidator(minQuantity int) Validator {
	return &InventoryValidator{minQuantity: minQuantity}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted. When fields is empty every rule of the type is checked.
func (v *InventoryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NewBox:
		return v.validateBox(value.Name, value.Location, value.Category, fields...)
	case *models.NewBox:
		return v.validateBox(value.Name, value.Location, value.Category, fields...)
	case models.Box:
		return v.validateBox(value.Name, value.Location, value.Category, fields...)
	case *models.Box:
		return v.validateBox(value.Name, value.Location, value.Category, fields...)

	case models.NewItem:
		return v.validateItem(value.BoxID, value.Name, value.Quantity, value.Value, fields...)
	case *models.NewItem:
		return v.validateItem(value.BoxID, value.Name, value.Quantity, value.Value, fields...)
	case models.Item:
		return v.validateItem(value.BoxID, value.Name, value.Quantity, value.Value, fields...)
	case *models.Item:
		return v.validateItem(value.BoxID, value.Name, value.Quantity, value.Value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *InventoryValidator) validateBox(name, location string, category models.BoxCategory, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultBoxFields
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if isBlank(name) {
				return ErrEmptyName
			}
		case FieldLocation:
			if isBlank(location) {
				return ErrEmptyLocation
			}
		case FieldCategory:
			if !category.IsValid() {
				return fmt.Errorf("%w: %q", ErrInvalidCategory, category)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *InventoryValidator) validateItem(boxID, name string, quantity int, value *decimal.Decimal, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultItemFields
	}

	for _, f := range fields {
		switch f {
		case FieldBoxID:
			if isBlank(boxID) {
				return ErrEmptyBoxID
			}
		case FieldName:
			if isBlank(name) {
				return ErrEmptyName
			}
		case FieldQuantity:
			if quantity < v.minQuantity {
				return fmt.Errorf("%w: got %d, want at least %d", ErrInvalidQuantity, quantity, v.minQuantity)
			}
		case FieldValue:
			if value != nil && value.IsNegative() {
				return ErrNegativeValue
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
