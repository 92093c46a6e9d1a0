// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"net/http"

	"github.com/olegiv/hourlog-go/internal/hypermedia"
	"github.com/olegiv/hourlog-go/internal/store"
)

func activityFields(b *hypermedia.Builder, a store.Activity) {
	b.SetField("name", a.Name)
	b.SetField("category", a.CategoryName)
	b.SetField("description", nullable(a.Description))
}

func activityKey(a store.Activity) hypermedia.ActivityKey {
	return hypermedia.ActivityKey{Category: a.CategoryName, Name: a.Name}
}

var activityResource = resource[hypermedia.ActivityKey, store.Activity]{
	name: "activity",
	key: func(r *http.Request) (hypermedia.ActivityKey, error) {
		return hypermedia.ActivityKey{
			Category: pathParam(r, "category"),
			Name:     pathParam(r, "activity"),
		}, nil
	},
	keyOf: activityKey,
	fetch: func(ctx context.Context, u *store.UnitOfWork, key hypermedia.ActivityKey) (store.Activity, error) {
		return u.GetActivity(ctx, key.Category, key.Name)
	},
	remove: func(ctx context.Context, u *store.UnitOfWork, key hypermedia.ActivityKey) error {
		return u.DeleteActivity(ctx, key.Category, key.Name)
	},
	represent: func(b *hypermedia.Builder, a store.Activity) {
		key := activityKey(a)
		activityFields(b, a)
		b.AddItemControls(key)
		b.AddCategoryUp(a.CategoryName)
		b.AddEditControl(key)
		b.AddDeleteControl(key)
	},
	update: func(ctx context.Context, u *store.UnitOfWork, key hypermedia.ActivityKey, b body) error {
		desc, err := b.optionalString("description")
		if err != nil {
			return err
		}
		if err := checkText("description", desc); err != nil {
			return err
		}
		if !desc.Valid {
			_, err := u.GetActivity(ctx, key.Category, key.Name)
			return err
		}
		return u.UpdateActivity(ctx, store.UpdateActivityParams{
			Name:         key.Name,
			CategoryName: key.Category,
			Description:  desc,
		})
	},
}

var activityCollection = collection[store.Activity]{
	kind:       hypermedia.KindActivity,
	scopeParam: "category",
	list: func(ctx context.Context, u *store.UnitOfWork, category string) ([]store.Activity, error) {
		return u.ListActivitiesByCategory(ctx, category)
	},
	item: func(b *hypermedia.Builder, a store.Activity) {
		activityFields(b, a)
		b.AddItemControls(activityKey(a))
	},
	controls: func(b *hypermedia.Builder, category string) {
		b.AddCategoryUp(category)
	},
}

// CreateActivity handles POST /api/categories/{category}/activities.
func (h *Handler) CreateActivity(w http.ResponseWriter, r *http.Request) {
	category := pathParam(r, "category")

	h.create(w, r, hypermedia.KindActivity, "An activity with this name already exists in the category",
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

			if _, err := u.GetCategory(ctx, category); err != nil {
				return nil, storeError(err, "No category named "+category, "")
			}

			err = u.CreateActivity(ctx, store.CreateActivityParams{
				Name:         name,
				CategoryName: category,
				Description:  desc,
			})
			return hypermedia.ActivityKey{Category: category, Name: name}, err
		})
}
