// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-box-keeper/models"

const (
	boxFieldName = iota
	boxFieldLocation
	boxFieldDescription
	boxFieldCategory
	boxFieldColor
)

func categoryOptions() []string {
	out := make([]string, 0, len(models.Categories))
	for _, c := range models.Categories {
		out = append(out, c.String())
	}
	return out
}

func colorOptions() []string {
	out := make([]string, 0, len(models.Colors))
	for _, c := range models.Colors {
		out = append(out, c.String())
	}
	return out
}

// newBoxForm opens an empty form, or a prefilled one when b is set.
func newBoxForm(b *models.Box) formModel {
	f := formModel{kind: formNewBox, title: "NEW BOX"}

	var src models.Box
	if b != nil {
		src = *b
		f.kind = formEditBox
		f.title = "EDIT BOX " + b.QRCodeID
		f.targetID = b.ID
	} else {
		src.Category = models.CategoryOther
		src.Color = models.ColorBlue
	}

	f.fields = []field{
		boxFieldName:        newTextField("Name", src.Name, "Winter clothes"),
		boxFieldLocation:    newTextField("Location", src.Location, "Garage, shelf A"),
		boxFieldDescription: newTextField("Description", src.Description, "optional"),
		boxFieldCategory:    newChoiceField("Category", categoryOptions(), src.Category.String()),
		boxFieldColor:       newChoiceField("Color", colorOptions(), src.Color.String()),
	}
	return f
}

func (f formModel) newBox() models.NewBox {
	return models.NewBox{
		Name:        f.fields[boxFieldName].value(),
		Location:    f.fields[boxFieldLocation].value(),
		Description: f.fields[boxFieldDescription].value(),
		Category:    models.BoxCategory(f.fields[boxFieldCategory].value()),
		Color:       models.BoxColor(f.fields[boxFieldColor].value()),
	}
}

// boxUpdate sets every field; an empty description clears it.
func (f formModel) boxUpdate() models.BoxUpdate {
	nb := f.newBox()
	return models.BoxUpdate{
		Name:        models.Some(nb.Name),
		Location:    models.Some(nb.Location),
		Description: optionalText(nb.Description),
		Category:    models.Some(nb.Category),
		Color:       models.Some(nb.Color),
	}
}

func optionalText(s string) models.Optional[string] {
	if s == "" {
		return models.Clear[string]()
	}
	return models.Some(s)
}
