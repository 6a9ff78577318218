// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strconv"

	"github.com/MKhiriev/go-box-keeper/models"
	"github.com/shopspring/decimal"
)

const (
	itemFieldName = iota
	itemFieldQuantity
	itemFieldUnit
	itemFieldDescription
	itemFieldPhoto
	itemFieldValue
)

// newItemForm opens a form for a new item of boxID, or a prefilled one when
// it is set.
func newItemForm(boxID string, it *models.Item) formModel {
	f := formModel{kind: formNewItem, title: "NEW ITEM", targetID: boxID}

	src := models.Item{Quantity: 1}
	if it != nil {
		src = *it
		f.kind = formEditItem
		f.title = "EDIT ITEM"
		f.targetID = it.ID
	}

	value := ""
	if src.Value != nil {
		value = src.Value.String()
	}

	f.fields = []field{
		itemFieldName:        newTextField("Name", src.Name, "Hammer"),
		itemFieldQuantity:    newTextField("Quantity", strconv.Itoa(src.Quantity), "1"),
		itemFieldUnit:        newTextField("Unit", src.QuantityUnit, "optional, e.g. pair"),
		itemFieldDescription: newTextField("Description", src.Description, "optional"),
		itemFieldPhoto:       newTextField("Photo URI", src.PhotoURI, "optional"),
		itemFieldValue:       newTextField("Value", value, "optional, e.g. 12.50"),
	}
	return f
}

func (f formModel) newItem() (models.NewItem, error) {
	quantity, err := parseQuantity(f.fields[itemFieldQuantity].value())
	if err != nil {
		return models.NewItem{}, err
	}
	value, err := parseValue(f.fields[itemFieldValue].value())
	if err != nil {
		return models.NewItem{}, err
	}

	return models.NewItem{
		BoxID:        f.targetID,
		Name:         f.fields[itemFieldName].value(),
		Quantity:     quantity,
		QuantityUnit: f.fields[itemFieldUnit].value(),
		Description:  f.fields[itemFieldDescription].value(),
		PhotoURI:     f.fields[itemFieldPhoto].value(),
		Value:        value,
	}, nil
}

// itemUpdate sets every field; empty optional fields are cleared.
func (f formModel) itemUpdate() (models.ItemUpdate, error) {
	ni, err := f.newItem()
	if err != nil {
		return models.ItemUpdate{}, err
	}

	u := models.ItemUpdate{
		Name:         models.Some(ni.Name),
		Quantity:     models.Some(ni.Quantity),
		QuantityUnit: optionalText(ni.QuantityUnit),
		Description:  optionalText(ni.Description),
		PhotoURI:     optionalText(ni.PhotoURI),
		Value:        models.Clear[decimal.Decimal](),
	}
	if ni.Value != nil {
		u.Value = models.Some(*ni.Value)
	}
	return u, nil
}

func parseQuantity(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errInvalidQuantity
	}
	return n, nil
}

func parseValue(s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return nil, errInvalidValue
	}
	return &v, nil
}
