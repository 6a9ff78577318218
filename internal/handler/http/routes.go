// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGzipBody)
	router.Use(middleware.Compress(5, "application/json"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getVersion)

		r.Route("/boxes", func(r chi.Router) {
			r.Get("/", h.listBoxes)
			r.Post("/", h.createBox)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.getBox)
				r.Patch("/", h.updateBox)
				r.Delete("/", h.deleteBox)

				r.Get("/items", h.listBoxItems)
				r.Post("/items", h.createBoxItem)
			})
		})

		r.Route("/items", func(r chi.Router) {
			r.Get("/", h.listItems)
			r.Get("/{id}", h.getItem)
			r.Patch("/{id}", h.updateItem)
			r.Delete("/{id}", h.deleteItem)
		})

		r.Get("/scan/{code}", h.scan)
		r.Get("/search", h.search)
		r.Get("/stats", h.stats)
	})

	router.NotFound(NotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
