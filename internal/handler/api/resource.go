// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/olegiv/hourlog-go/internal/hypermedia"
	"github.com/olegiv/hourlog-go/internal/store"
)

// resource describes one entity type to the generic item operations.
// K is the key shape taken from the path, E the stored entity.
type resource[K hypermedia.Key, E any] struct {
	name string

	// key extracts the item key from the route. A malformed key is a NotFound.
	key func(r *http.Request) (K, error)
	// keyOf rebuilds the full key from a fetched entity.
	keyOf func(E) K

	fetch     func(ctx context.Context, u *store.UnitOfWork, key K) (E, error)
	remove    func(ctx context.Context, u *store.UnitOfWork, key K) error
	represent func(b *hypermedia.Builder, e E)

	// update applies the mutable fields of b. Nil for immutable kinds.
	update func(ctx context.Context, u *store.UnitOfWork, key K, b body) error
}

func (res resource[K, E]) missing(err error, key K) error {
	return storeError(err, fmt.Sprintf("No %s at %s", res.name, key.ItemURL()), "")
}

// getItem serves GET on an item address.
func getItem[K hypermedia.Key, E any](h *Handler, res resource[K, E]) http.HandlerFunc {
	op := "get " + res.name
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		key, err := res.key(r)
		if err != nil {
			WriteError(w, r, op, err)
			return
		}

		doc := hypermedia.NewBuilder()
		err = h.inUnit(ctx, func(u *store.UnitOfWork) error {
			e, err := res.fetch(ctx, u, key)
			if err != nil {
				return res.missing(err, key)
			}
			res.represent(doc, e)
			return nil
		})
		if err != nil {
			WriteError(w, r, op, err)
			return
		}

		WriteJSON(w, http.StatusOK, doc.Document)
	}
}

// deleteItem serves DELETE on an item address. Dependents are left to the
// store's foreign key rules.
func deleteItem[K hypermedia.Key, E any](h *Handler, res resource[K, E]) http.HandlerFunc {
	op := "delete " + res.name
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		key, err := res.key(r)
		if err != nil {
			WriteError(w, r, op, err)
			return
		}

		var full K
		err = h.inUnit(ctx, func(u *store.UnitOfWork) error {
			e, err := res.fetch(ctx, u, key)
			if err != nil {
				return res.missing(err, key)
			}
			full = res.keyOf(e)
			if err := res.remove(ctx, u, key); err != nil {
				return res.missing(err, key)
			}
			return nil
		})
		if err != nil {
			WriteError(w, r, op, err)
			return
		}

		slog.InfoContext(ctx, res.name+" deleted", "url", full.ItemURL())
		WriteAck(w, full.CollectionURL(), fmt.Sprintf("The %s was deleted", res.name))
	}
}

// updateItem serves PUT on an item address with partial update semantics.
func updateItem[K hypermedia.Key, E any](h *Handler, res resource[K, E]) http.HandlerFunc {
	op := "update " + res.name
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		b, err := decodeBody(r)
		if err != nil {
			WriteError(w, r, op, err)
			return
		}

		key, err := res.key(r)
		if err != nil {
			WriteError(w, r, op, err)
			return
		}

		err = h.inUnit(ctx, func(u *store.UnitOfWork) error {
			if err := res.update(ctx, u, key, b); err != nil {
				return res.missing(err, key)
			}
			return nil
		})
		if err != nil {
			WriteError(w, r, op, err)
			return
		}

		slog.InfoContext(ctx, res.name+" updated", "url", key.ItemURL())
		WriteAck(w, key.CollectionURL(), fmt.Sprintf("The %s was updated", res.name))
	}
}

// create runs a create operation and answers 201 with the new item's address.
// fn returns the new item's key.
func (h *Handler) create(w http.ResponseWriter, r *http.Request, kind hypermedia.Kind, conflict string,
	fn func(ctx context.Context, u *store.UnitOfWork, b body) (hypermedia.Key, error),
) {
	ctx := r.Context()
	op := "create " + kind.String()

	b, err := decodeBody(r)
	if err != nil {
		WriteError(w, r, op, err)
		return
	}

	var key hypermedia.Key
	err = h.inUnit(ctx, func(u *store.UnitOfWork) error {
		k, err := fn(ctx, u, b)
		if err != nil {
			return err
		}
		key = k
		return nil
	})
	if err != nil {
		WriteError(w, r, op, storeError(err, "Referenced item does not exist", conflict))
		return
	}

	slog.InfoContext(ctx, kind.String()+" created", "url", key.ItemURL())
	WriteCreated(w, key.ItemURL(), fmt.Sprintf("The %s was created", kind))
}
