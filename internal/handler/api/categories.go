// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"net/http"

	"github.com/olegiv/hourlog-go/internal/hypermedia"
	"github.com/olegiv/hourlog-go/internal/store"
)

func categoryFields(b *hypermedia.Builder, c store.Category) {
	b.SetField("name", c.Name)
	b.SetField("description", nullable(c.Description))
}

var categoryResource = resource[hypermedia.CategoryKey, store.Category]{
	name: "category",
	key: func(r *http.Request) (hypermedia.CategoryKey, error) {
		return hypermedia.CategoryKey{Name: pathParam(r, "category")}, nil
	},
	keyOf: func(c store.Category) hypermedia.CategoryKey {
		return hypermedia.CategoryKey{Name: c.Name}
	},
	fetch: func(ctx context.Context, u *store.UnitOfWork, key hypermedia.CategoryKey) (store.Category, error) {
		return u.GetCategory(ctx, key.Name)
	},
	remove: func(ctx context.Context, u *store.UnitOfWork, key hypermedia.CategoryKey) error {
		return u.DeleteCategory(ctx, key.Name)
	},
	represent: func(b *hypermedia.Builder, c store.Category) {
		key := hypermedia.CategoryKey{Name: c.Name}
		categoryFields(b, c)
		b.AddItemControls(key)
		b.AddActivitiesIn(c.Name)
		b.AddEditControl(key)
		b.AddDeleteControl(key)
	},
	update: func(ctx context.Context, u *store.UnitOfWork, key hypermedia.CategoryKey, b body) error {
		desc, err := b.optionalString("description")
		if err != nil {
			return err
		}
		if err := checkText("description", desc); err != nil {
			return err
		}
		if !desc.Valid {
			_, err := u.GetCategory(ctx, key.Name)
			return err
		}
		return u.UpdateCategory(ctx, store.UpdateCategoryParams{Name: key.Name, Description: desc})
	},
}

var categoryCollection = collection[store.Category]{
	kind: hypermedia.KindCategory,
	list: func(ctx context.Context, u *store.UnitOfWork, _ string) ([]store.Category, error) {
		return u.ListCategories(ctx)
	},
	item: func(b *hypermedia.Builder, c store.Category) {
		categoryFields(b, c)
		b.AddItemControls(hypermedia.CategoryKey{Name: c.Name})
	},
	controls: func(b *hypermedia.Builder, _ string) {
		b.AddUsersAll()
	},
}

// CreateCategory handles POST /api/categories.
func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, hypermedia.KindCategory, "A category with this name already exists",
		func(ctx context.Context, u *store.UnitOfWork, b body) (hypermedia.Key, error) {
			name, err := b.requiredString("name")
			if err != nil {
				return nil, err
			}
			desc, err := b.optionalString("description")
			if err != nil {
				return nil, err
			}
			if err := checkKey("name", name); err != nil {
				return nil, err
			}
			if err := checkText("description", desc); err != nil {
				return nil, err
			}

			err = u.CreateCategory(ctx, store.CreateCategoryParams{Name: name, Description: desc})
			return hypermedia.CategoryKey{Name: name}, err
		})
}
