// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/olegiv/hourlog-go/internal/hypermedia"
)

// Routes registers every hypermedia address on r.
func (h *Handler) Routes(r chi.Router) {
	r.Get(hypermedia.APIRoot, h.EntryPoint)

	r.Route(hypermedia.CategoriesPath, func(r chi.Router) {
		r.Get("/", listItems(h, categoryCollection))
		r.Post("/", h.CreateCategory)

		r.Route("/{category}", func(r chi.Router) {
			r.Get("/", getItem(h, categoryResource))
			r.Put("/", updateItem(h, categoryResource))
			r.Delete("/", deleteItem(h, categoryResource))

			r.Route("/activities", func(r chi.Router) {
				r.Get("/", listItems(h, activityCollection))
				r.Post("/", h.CreateActivity)
				r.Get("/{activity}", getItem(h, activityResource))
				r.Put("/{activity}", updateItem(h, activityResource))
				r.Delete("/{activity}", deleteItem(h, activityResource))
			})
		})
	})

	r.Route(hypermedia.UsersPath, func(r chi.Router) {
		r.Get("/", listItems(h, userCollection))
		r.Post("/", h.CreateUser)

		r.Route("/{username}", func(r chi.Router) {
			r.Get("/", getItem(h, userResource))
			r.Put("/", updateItem(h, userResource))
			r.Delete("/", deleteItem(h, userResource))

			r.Get("/logs", listItems(h, logCollection))
			r.Post("/logs", h.CreateLog)
			r.Get("/reports", listItems(h, reportCollection))
			r.Post("/reports", h.CreateReport)
		})
	})

	r.Get(hypermedia.LogsPath+"/{id}", getItem(h, logResource))
	r.Delete(hypermedia.LogsPath+"/{id}", deleteItem(h, logResource))

	r.Get(hypermedia.ReportsPath+"/{id}", getItem(h, reportResource))
	r.Delete(hypermedia.ReportsPath+"/{id}", deleteItem(h, reportResource))

	r.Get(hypermedia.ProfilesPath+"/{profile}", h.Profile)
	r.Get(hypermedia.LinkRelations, h.LinkRelations)
}
