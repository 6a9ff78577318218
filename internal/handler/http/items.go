// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-box-keeper/internal/utils"
	"github.com/MKhiriev/go-box-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.Inventory.Items(r.Context())
	if err != nil {
		writeError(w, r, err, "*Handler.listItems")
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.services.Inventory.GetItemByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "*Handler.getItem")
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	var update models.ItemUpdate
	if err := decodeJSON(w, r, &update); err != nil {
		writeError(w, r, err, "*Handler.updateItem")
		return
	}

	item, err := h.services.Inventory.UpdateItem(r.Context(), chi.URLParam(r, "id"), update)
	if err != nil {
		writeError(w, r, err, "*Handler.updateItem")
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	if err := h.services.Inventory.DeleteItem(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, "*Handler.deleteItem")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
