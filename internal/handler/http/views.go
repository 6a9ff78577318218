// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-box-keeper/internal/utils"
)

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	result, err := h.services.Inventory.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, r, err, "*Handler.search")
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.Inventory.Stats(r.Context())
	if err != nil {
		writeError(w, r, err, "*Handler.stats")
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}
