// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"net/http"

	"github.com/olegiv/hourlog-go/internal/hypermedia"
	"github.com/olegiv/hourlog-go/internal/mason"
	"github.com/olegiv/hourlog-go/internal/store"
)

// collection describes a list address: which kind it holds, which route
// parameter scopes it, and how its items and extra controls are built.
type collection[E any] struct {
	kind       hypermedia.Kind
	scopeParam string

	list     func(ctx context.Context, u *store.UnitOfWork, scope string) ([]E, error)
	item     func(b *hypermedia.Builder, e E)
	controls func(b *hypermedia.Builder, scope string)
}

// listItems serves GET on a collection. An unknown scope yields an empty list.
func listItems[E any](h *Handler, c collection[E]) http.HandlerFunc {
	op := "list " + c.kind.String()
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var scope string
		if c.scopeParam != "" {
			scope = pathParam(r, c.scopeParam)
		}

		doc := hypermedia.NewBuilder()
		err := h.inUnit(ctx, func(u *store.UnitOfWork) error {
			rows, err := c.list(ctx, u, scope)
			if err != nil {
				return err
			}
			items := make([]*mason.Document, 0, len(rows))
			for _, row := range rows {
				ib := &hypermedia.Builder{Document: mason.New()}
				c.item(ib, row)
				items = append(items, ib.Document)
			}
			doc.SetField("items", items)
			return nil
		})
		if err != nil {
			WriteError(w, r, op, err)
			return
		}

		doc.AddListControls(c.kind, scope)
		if c.controls != nil {
			c.controls(doc, scope)
		}
		WriteJSON(w, http.StatusOK, doc.Document)
	}
}
