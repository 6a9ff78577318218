// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-box-keeper/internal/utils"
	"github.com/MKhiriev/go-box-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listBoxes(w http.ResponseWriter, r *http.Request) {
	boxes, err := h.services.Inventory.Boxes(r.Context())
	if err != nil {
		writeError(w, r, err, "*Handler.listBoxes")
		return
	}

	utils.WriteJSON(w, boxes, http.StatusOK)
}

func (h *Handler) createBox(w http.ResponseWriter, r *http.Request) {
	var newBox models.NewBox
	if err := decodeJSON(w, r, &newBox); err != nil {
		writeError(w, r, err, "*Handler.createBox")
		return
	}

	box, err := h.services.Inventory.AddBox(r.Context(), newBox)
	if err != nil {
		writeError(w, r, err, "*Handler.createBox")
		return
	}

	utils.WriteJSON(w, box, http.StatusCreated)
}

func (h *Handler) getBox(w http.ResponseWriter, r *http.Request) {
	box, err := h.services.Inventory.GetBoxByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "*Handler.getBox")
		return
	}

	utils.WriteJSON(w, box, http.StatusOK)
}

func (h *Handler) updateBox(w http.ResponseWriter, r *http.Request) {
	var update models.BoxUpdate
	if err := decodeJSON(w, r, &update); err != nil {
		writeError(w, r, err, "*Handler.updateBox")
		return
	}

	box, err := h.services.Inventory.UpdateBox(r.Context(), chi.URLParam(r, "id"), update)
	if err != nil {
		writeError(w, r, err, "*Handler.updateBox")
		return
	}

	utils.WriteJSON(w, box, http.StatusOK)
}

func (h *Handler) deleteBox(w http.ResponseWriter, r *http.Request) {
	if err := h.services.Inventory.DeleteBox(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, "*Handler.deleteBox")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listBoxItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.Inventory.GetItemsByBoxID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "*Handler.listBoxItems")
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

// createBoxItem adds an item to the box named in the path. A boxId in the
// body is ignored.
func (h *Handler) createBoxItem(w http.ResponseWriter, r *http.Request) {
	var newItem models.NewItem
	if err := decodeJSON(w, r, &newItem); err != nil {
		writeError(w, r, err, "*Handler.createBoxItem")
		return
	}
	newItem.BoxID = chi.URLParam(r, "id")

	item, err := h.services.Inventory.AddItem(r.Context(), newItem)
	if err != nil {
		writeError(w, r, err, "*Handler.createBoxItem")
		return
	}

	utils.WriteJSON(w, item, http.StatusCreated)
}

// scan resolves a decoded QR payload: either a printed code or a deep link
// built with the configured scheme.
//
// chi routes on RawPath when the request carries one, so only then is the
// parameter still escaped.
func (h *Handler) scan(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if r.URL.RawPath != "" {
		unescaped, err := url.PathUnescape(code)
		if err != nil {
			writeError(w, r, ErrInvalidScanCode, "*Handler.scan")
			return
		}
		code = unescaped
	}

	box, err := h.services.Inventory.GetBoxByQrID(r.Context(), models.ParseDeepLink(h.deepLinkScheme, code))
	if err != nil {
		writeError(w, r, err, "*Handler.scan")
		return
	}

	utils.WriteJSON(w, box, http.StatusOK)
}
